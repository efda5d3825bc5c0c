package deck

import (
	"crypto/cipher"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"go.dedis.ch/kyber/v4/suites"
)

var suite suites.Suite = suites.MustFind("Ed25519")

type shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// streamSource adapts a cipher stream to a math/rand source.
type streamSource struct {
	stream cipher.Stream
	buf    [8]byte
}

func (s *streamSource) Uint64() uint64 {
	clear(s.buf[:])
	s.stream.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}

func newShuffler() shuffler {
	return rand.New(&streamSource{stream: suite.RandomStream()})
}

// PrepareDeck lays out one entry per card, tagged with its pile index or
// Remainder, in pile order.
func (d *Deck) PrepareDeck() {
	cards := make([]int, 0, d.Size)
	for i, p := range d.Piles {
		for range p.Count {
			cards = append(cards, i)
		}
	}
	for range d.Other() {
		cards = append(cards, Remainder)
	}
	d.cards = cards
	d.lastDrawnCard = 0
	if d.rng == nil {
		d.rng = newShuffler()
	}
}

// Shuffle permutes the prepared deck and resets the draw position.
func (d *Deck) Shuffle() error {
	if d.rng == nil {
		return fmt.Errorf("deck not prepared")
	}
	d.lastDrawnCard = 0
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	return nil
}

// DrawCard returns the pile index of the next card, or Remainder.
func (d *Deck) DrawCard() (int, error) {
	if d.Remaining() == 0 {
		return 0, fmt.Errorf("no cards left to draw")
	}
	card := d.cards[d.lastDrawnCard]
	d.lastDrawnCard++
	return card, nil
}

// Remaining returns how many cards can still be drawn.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.lastDrawnCard
}
