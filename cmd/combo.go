package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/luca-patrignani/deck-odds/config"
	"github.com/luca-patrignani/deck-odds/domain/deck"
)

// pileFlags collects repeated --group name:count[:min[:max]] flags.
type pileFlags []deck.Pile

func (p *pileFlags) String() string {
	parts := make([]string, len(*p))
	for i, pile := range *p {
		parts[i] = pile.Name + ":" + strconv.Itoa(pile.Count)
	}
	return strings.Join(parts, ",")
}

func (p *pileFlags) Set(value string) error {
	fields := strings.Split(value, ":")
	if len(fields) < 2 || len(fields) > 4 {
		return fmt.Errorf("group %q must look like name:count[:min[:max]]", value)
	}
	pile := deck.Pile{Name: fields[0]}
	nums := make([]int, len(fields)-1)
	for i, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return fmt.Errorf("group %q: %w", value, err)
		}
		nums[i] = n
	}
	pile.Count = nums[0]
	if len(nums) > 1 {
		pile.Min = &nums[1]
	}
	if len(nums) > 2 {
		pile.Max = &nums[2]
	}
	*p = append(*p, pile)
	return nil
}

type combo struct {
	deck    *deck.Deck
	draws   int
	trials  int
	workers int
}

func parseCombo(name string, args []string, cfg *config.Config) (combo, error) {
	var (
		piles     pileFlags
		scenario  string
		size      int
		draws     int
		turn      int
		onThePlay bool
		c         = combo{}
	)
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&scenario, "scenario", "", "scenario file (yaml, json or toml)")
	fs.IntVar(&size, "deck", cfg.DeckSize, "total cards in deck (N)")
	fs.IntVar(&draws, "draw", -1, "cards drawn (default: cards seen by --turn, or the opening hand)")
	fs.IntVar(&turn, "turn", 0, "turn to evaluate")
	fs.BoolVar(&onThePlay, "on-the-play", true, "skip the draw on the first turn")
	fs.Var(&piles, "group", "group as name:count[:min[:max]], repeatable")
	fs.IntVar(&c.trials, "trials", cfg.Trials, "simulated games")
	fs.IntVar(&c.workers, "workers", cfg.Workers, "simulation workers")
	if err := fs.Parse(args); err != nil {
		return combo{}, err
	}

	if scenario != "" {
		s, err := config.LoadScenario(scenario, cfg)
		if err != nil {
			return combo{}, err
		}
		d, err := s.Deck()
		if err != nil {
			return combo{}, err
		}
		c.deck, c.draws = d, s.DrawCount()
		return c, nil
	}

	if len(piles) == 0 {
		return combo{}, fmt.Errorf("must specify --scenario or at least one --group")
	}
	d, err := deck.NewDeck(size, piles...)
	if err != nil {
		return combo{}, err
	}
	c.deck = d
	switch {
	case draws >= 0:
		c.draws = draws
	case turn > 0:
		c.draws = deck.CardsSeen(turn, cfg.HandSize, onThePlay)
	default:
		c.draws = cfg.HandSize
	}
	return c, nil
}
