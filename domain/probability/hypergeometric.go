package probability

import "math"

// Hypergeometric returns the probability of drawing exactly k successes when
// n cards are drawn without replacement from a population of N cards holding
// K successes.
//
// Draws that cannot happen (negative sizes, n > N, K > N) evaluate to 0.
// Populations whose coefficients overflow float64 are evaluated in log space.
func Hypergeometric(N, K, n, k int) float64 {
	if k < 0 || K < 0 || K > N || !drawable(N, n) {
		return 0
	}
	// C(K, k) * C(N-K, n-k) / C(N, n)
	successes, failures := Binomial(K, k), Binomial(N-K, n-k)
	if successes == 0 || failures == 0 {
		return 0
	}
	numerator, denominator := successes*failures, Binomial(N, n)
	if math.IsInf(numerator, 0) || math.IsInf(denominator, 0) {
		return min(1, math.Exp(LogBinomial(K, k)+LogBinomial(N-K, n-k)-LogBinomial(N, n)))
	}
	return numerator / denominator
}

// AtLeast returns the probability of drawing minSuccesses or more successes.
func AtLeast(N, K, n, minSuccesses int) float64 {
	return sum(N, K, n, minSuccesses, upper(n, K))
}

// AtMost returns the probability of drawing maxSuccesses or fewer successes.
func AtMost(N, K, n, maxSuccesses int) float64 {
	return sum(N, K, n, 0, min(maxSuccesses, upper(n, K)))
}

// Between returns the probability of drawing between minSuccesses and
// maxSuccesses successes, both inclusive.
func Between(N, K, n, minSuccesses, maxSuccesses int) float64 {
	return sum(N, K, n, minSuccesses, min(maxSuccesses, upper(n, K)))
}

// Distribution returns P(X = k) for every k from 0 to min(n, K). The slice is
// empty when the draw cannot happen.
func Distribution(N, K, n int) []float64 {
	if K < 0 || K > N || !drawable(N, n) {
		return []float64{}
	}
	table := make([]float64, upper(n, K)+1)
	for k := range table {
		table[k] = Hypergeometric(N, K, n, k)
	}
	return table
}

// upper is the largest success count that can appear in a sample.
func upper(n, K int) int {
	return min(n, K)
}

func sum(N, K, n, lo, hi int) float64 {
	lo = max(lo, 0)
	probability := 0.0
	for k := lo; k <= hi; k++ {
		probability += Hypergeometric(N, K, n, k)
	}
	return probability
}
