package probability

import (
	"errors"
	"fmt"
)

// ErrInvalidShape is returned when the inputs do not describe a drawable deck.
var ErrInvalidShape = errors.New("invalid shape")

func invalidShape(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidShape, fmt.Sprintf(format, args...))
}

// CheckDraw reports whether drawing n cards from a population of N holding K
// successes is a well formed request. The probability functions never fail on
// such inputs, they return 0; CheckDraw lets callers reject them loudly instead.
func CheckDraw(N, K, n int) error {
	var errs []error
	if N < 0 {
		errs = append(errs, invalidShape("population size %d is negative", N))
	}
	if K < 0 {
		errs = append(errs, invalidShape("successes in population %d is negative", K))
	}
	if K > N {
		errs = append(errs, invalidShape("successes in population %d exceed population size %d", K, N))
	}
	if n < 0 {
		errs = append(errs, invalidShape("sample size %d is negative", n))
	}
	if n > N {
		errs = append(errs, invalidShape("sample size %d exceeds population size %d", n, N))
	}
	return errors.Join(errs...)
}

func drawable(N, n int) bool {
	return N >= 0 && n >= 0 && n <= N
}
