// Package probability implements the hypergeometric probability engine used to
// answer deck-consistency questions such as "what are the odds of holding at
// least two lands in a seven card opening hand".
//
// # Core Functions
//
// Binomial: C(n,k) computed by interleaved multiplication and division so that
// every partial product stays an integer-valued coefficient.
//
// Hypergeometric: P(X = k) when drawing n cards without replacement from a
// population of N that contains K successes.
//
// AtLeast, AtMost, Between: cumulative sums of Hypergeometric over a range of k.
//
// Multivariate: the probability that several disjoint groups simultaneously
// land inside their [Min, Max] windows. Groups are enumerated in order sharing
// a draw budget, so only assignments that fit into the sample are generated.
//
// # Impossible Versus Invalid
//
// Requests that cannot happen (more successes than exist, minimums that do not
// fit into the sample) evaluate to 0. Inputs that describe an inconsistent
// deck, such as groups larger than the population, are rejected with
// ErrInvalidShape.
//
// All functions are pure and safe for concurrent use.
package probability
