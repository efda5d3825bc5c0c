package deck

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/luca-patrignani/deck-odds/domain/probability"
)

// Remainder tags cards that belong to no pile.
const Remainder = -1

var validate = validator.New()

// Pile is a named set of interchangeable cards in a deck, e.g. every land or
// every copy of a combo piece, with the window of copies wanted in a draw.
type Pile struct {
	Name  string `validate:"required"`
	Count int    `validate:"gte=0"`
	Min   *int   `validate:"omitempty,gte=0"`
	Max   *int   `validate:"omitempty,gte=0"`
}

// Deck is a population of Size cards split into disjoint piles. Cards not in
// any pile make up the remainder.
type Deck struct {
	Size  int    `validate:"gte=0"`
	Piles []Pile `validate:"dive"`

	cards         []int
	lastDrawnCard int
	rng           shuffler
}

// NewDeck validates the piles against the deck size.
func NewDeck(size int, piles ...Pile) (*Deck, error) {
	d := &Deck{Size: size, Piles: piles}
	if err := validate.Struct(d); err != nil {
		return nil, errors.Join(probability.ErrInvalidShape, err)
	}
	total := 0
	for _, p := range piles {
		total += p.Count
	}
	if total > size {
		return nil, fmt.Errorf("%w: total group cards %d exceeds population size %d", probability.ErrInvalidShape, total, size)
	}
	return d, nil
}

// Groups converts the piles to probability groups, keeping their order.
func (d *Deck) Groups() []probability.Group {
	groups := make([]probability.Group, len(d.Piles))
	for i, p := range d.Piles {
		groups[i] = probability.Group{Name: p.Name, Count: p.Count, Min: p.Min, Max: p.Max}
	}
	return groups
}

// Other returns how many cards are outside every pile.
func (d *Deck) Other() int {
	other := d.Size
	for _, p := range d.Piles {
		other -= p.Count
	}
	return other
}

// ComboProbability returns the exact probability that draws cards satisfy
// every pile at once.
func (d *Deck) ComboProbability(draws int) (float64, error) {
	return probability.Multivariate(d.Size, d.Groups(), draws)
}

// Satisfied reports whether per-pile draw counts meet every pile window.
func (d *Deck) Satisfied(counts []int, draws int) bool {
	for i, g := range d.Groups() {
		lo, hi := g.Window(draws)
		if counts[i] < max(lo, 0) || counts[i] > hi {
			return false
		}
	}
	return true
}

// CardsSeen returns how many cards a player has seen by the given turn. The
// player on the play skips the draw step of their first turn.
func CardsSeen(turn, handSize int, onThePlay bool) int {
	if turn < 1 {
		return handSize
	}
	if onThePlay {
		return handSize + turn - 1
	}
	return handSize + turn
}
