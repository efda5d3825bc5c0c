package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/luca-patrignani/deck-odds/config"
	"github.com/luca-patrignani/deck-odds/domain/probability"
)

// Single-group conditions, named after their subcommands.
const (
	modeExactly = "exactly"
	modeAtLeast = "at-least"
	modeAtMost  = "at-most"
	modeBetween = "between"
	modeTable   = "table"
)

type query struct {
	mode   string
	deck   int
	target int
	draw   int
	k      int
	min    int
	max    int
}

func parseQuery(mode string, args []string, cfg *config.Config) (query, error) {
	q := query{mode: mode}
	fs := flag.NewFlagSet(mode, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&q.deck, "deck", cfg.DeckSize, "total cards in deck (N)")
	fs.IntVar(&q.target, "target", 0, "target cards in deck (K)")
	fs.IntVar(&q.draw, "draw", cfg.HandSize, "cards drawn (n)")
	switch mode {
	case modeExactly, modeAtLeast, modeAtMost:
		fs.IntVar(&q.k, "k", 1, "number of target cards")
	case modeBetween:
		fs.IntVar(&q.min, "min", 1, "minimum number of target cards")
		fs.IntVar(&q.max, "max", -1, "maximum number of target cards (default: cards drawn)")
	}
	if err := fs.Parse(args); err != nil {
		return query{}, err
	}
	if q.target == 0 {
		return query{}, fmt.Errorf("must specify --target <K>")
	}
	if q.max < 0 {
		q.max = q.draw
	}
	if err := probability.CheckDraw(q.deck, q.target, q.draw); err != nil {
		return query{}, err
	}
	return q, nil
}

func (q query) evaluate() float64 {
	switch q.mode {
	case modeExactly:
		return probability.Hypergeometric(q.deck, q.target, q.draw, q.k)
	case modeAtLeast:
		return probability.AtLeast(q.deck, q.target, q.draw, q.k)
	case modeAtMost:
		return probability.AtMost(q.deck, q.target, q.draw, q.k)
	case modeBetween:
		return probability.Between(q.deck, q.target, q.draw, q.min, q.max)
	}
	return 0
}

func (q query) describe() string {
	switch q.mode {
	case modeBetween:
		return fmt.Sprintf("between %d and %d", q.min, q.max)
	case modeAtLeast:
		return fmt.Sprintf("at least %d", q.k)
	case modeAtMost:
		return fmt.Sprintf("at most %d", q.k)
	}
	return fmt.Sprintf("exactly %d", q.k)
}
