package probability

// Group is a set of interchangeable cards, such as every copy of a combo
// piece, together with the number of them that must show up in a draw.
//
// A nil Min means "at least one" and a nil Max means "any number", which is
// how combo questions are usually phrased. Set Min to 0 explicitly to leave
// the lower bound open.
type Group struct {
	Name  string
	Count int
	Min   *int
	Max   *int
}

// NewGroup returns a group of count cards with the default window.
func NewGroup(count int) Group {
	return Group{Count: count}
}

// WithName returns a copy of the group labelled name.
func (g Group) WithName(name string) Group {
	g.Name = name
	return g
}

// WithMin returns a copy of the group requiring at least m cards.
func (g Group) WithMin(m int) Group {
	g.Min = &m
	return g
}

// WithMax returns a copy of the group allowing at most m cards.
func (g Group) WithMax(m int) Group {
	g.Max = &m
	return g
}

// Window returns the inclusive range of cards accepted from this group when n
// cards are drawn, before clamping to the group size.
func (g Group) Window(n int) (lo, hi int) {
	lo, hi = 1, n
	if g.Min != nil {
		lo = *g.Min
	}
	if g.Max != nil {
		hi = *g.Max
	}
	return lo, hi
}
