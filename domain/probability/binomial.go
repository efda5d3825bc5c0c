package probability

import "math"

// Binomial returns C(n,k), the number of ways to choose k items out of n.
// It returns 0 when k is negative or greater than n.
//
// The product is built as result*(n-i)/(i+1), dividing after every step. Each
// partial result is itself a binomial coefficient, which keeps magnitudes
// bounded for populations in the hundreds.
func Binomial(n, k int) float64 {
	if k > n || k < 0 {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	k = min(k, n-k)

	result := 1.0
	for i := 0; i < k; i++ {
		result *= float64(n - i)
		result /= float64(i + 1)
	}
	return result
}

// LogBinomial returns ln C(n,k), or -Inf where Binomial would return 0.
func LogBinomial(n, k int) float64 {
	if k > n || k < 0 {
		return math.Inf(-1)
	}
	if k == 0 || k == n {
		return 0
	}
	a, _ := math.Lgamma(float64(n + 1))
	b, _ := math.Lgamma(float64(k + 1))
	c, _ := math.Lgamma(float64(n - k + 1))
	return a - b - c
}
