package probability

import (
	"math"
	"strconv"
)

// Multivariate returns the probability that drawing n cards from a population
// of N satisfies every group window at once. Cards outside all groups form an
// unconstrained remainder of N - sum(Count).
//
// It fails with ErrInvalidShape when the groups do not fit in the population
// or n cards cannot be drawn from it. Windows that cannot be met yield 0.
func Multivariate(N int, groups []Group, n int) (float64, error) {
	if N < 0 {
		return 0, invalidShape("population size %d is negative", N)
	}
	if n < 0 || n > N {
		return 0, invalidShape("cannot draw %d cards from a population of %d", n, N)
	}
	total := 0
	for i, g := range groups {
		if g.Count < 0 {
			return 0, invalidShape("group %s has negative count %d", label(g, i), g.Count)
		}
		total += g.Count
	}
	if total > N {
		return 0, invalidShape("total group cards %d exceeds population size %d", total, N)
	}

	e := enumerator{
		groups: make([]window, len(groups)),
		other:  N - total,
		denom:  Binomial(N, n),
	}
	if math.IsInf(e.denom, 0) {
		e.logDenom = LogBinomial(N, n)
	}
	required := 0
	for i, g := range groups {
		lo, hi := g.Window(n)
		lo = max(lo, 0)
		hi = min(hi, g.Count)
		if lo > hi {
			return 0, nil
		}
		required += lo
		e.groups[i] = window{count: g.Count, lo: lo, hi: hi}
	}
	if required > n {
		return 0, nil
	}
	if e.logDenom != 0 {
		return min(1, e.walkLog(0, n, 0)), nil
	}
	return e.walk(0, n, 1), nil
}

type window struct {
	count  int
	lo, hi int
}

type enumerator struct {
	groups []window
	other  int
	denom  float64
	// logDenom is set when denom overflows float64.
	logDenom float64
}

// walk assigns a draw count to groups[i:] from the remaining budget. Each
// complete assignment leaves the rest of the budget to the remainder.
func (e *enumerator) walk(i, budget int, ways float64) float64 {
	if i == len(e.groups) {
		return ways * Binomial(e.other, budget) / e.denom
	}
	w := e.groups[i]
	probability := 0.0
	for k := w.lo; k <= min(w.hi, budget); k++ {
		probability += e.walk(i+1, budget-k, ways*Binomial(w.count, k))
	}
	return probability
}

// walkLog is walk with the number of ways carried as a logarithm. Every
// partial product is at most C(N, n), so it is only needed when that
// overflows.
func (e *enumerator) walkLog(i, budget int, logWays float64) float64 {
	if i == len(e.groups) {
		return math.Exp(logWays + LogBinomial(e.other, budget) - e.logDenom)
	}
	w := e.groups[i]
	probability := 0.0
	for k := w.lo; k <= min(w.hi, budget); k++ {
		probability += e.walkLog(i+1, budget-k, logWays+LogBinomial(w.count, k))
	}
	return probability
}

func label(g Group, i int) string {
	if g.Name != "" {
		return g.Name
	}
	return "#" + strconv.Itoa(i+1)
}
