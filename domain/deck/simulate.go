package deck

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/luca-patrignani/deck-odds/domain/probability"
)

// checkEvery is how many trials a worker runs between context checks.
const checkEvery = 1024

// Estimate is the outcome of a Monte Carlo run.
type Estimate struct {
	Trials      int
	Hits        int
	Probability float64
	// StdErr is the standard error of Probability.
	StdErr float64
}

// Simulate shuffles the deck and draws from it trials times, counting how
// often every pile window is met. Trials are split across workers, each with
// its own copy of the deck.
func Simulate(ctx context.Context, d *Deck, draws, trials, workers int) (Estimate, error) {
	if draws < 0 || draws > d.Size {
		return Estimate{}, fmt.Errorf("%w: cannot draw %d cards from a population of %d", probability.ErrInvalidShape, draws, d.Size)
	}
	if trials <= 0 {
		return Estimate{}, fmt.Errorf("trials must be positive, got %d", trials)
	}
	workers = max(1, min(workers, trials))

	hits := make([]int, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		share := trials / workers
		if w < trials%workers {
			share++
		}
		g.Go(func() error {
			local := &Deck{Size: d.Size, Piles: d.Piles}
			local.PrepareDeck()
			n, err := local.run(ctx, draws, share)
			hits[w] = n
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Estimate{}, err
	}

	total := 0
	for _, h := range hits {
		total += h
	}
	p := float64(total) / float64(trials)
	return Estimate{
		Trials:      trials,
		Hits:        total,
		Probability: p,
		StdErr:      math.Sqrt(p * (1 - p) / float64(trials)),
	}, nil
}

func (d *Deck) run(ctx context.Context, draws, trials int) (int, error) {
	counts := make([]int, len(d.Piles))
	hits := 0
	for t := 0; t < trials; t++ {
		if t%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return hits, err
			}
		}
		if err := d.Shuffle(); err != nil {
			return hits, err
		}
		clear(counts)
		for range draws {
			card, err := d.DrawCard()
			if err != nil {
				return hits, err
			}
			if card != Remainder {
				counts[card]++
			}
		}
		if d.Satisfied(counts, draws) {
			hits++
		}
	}
	return hits, nil
}
