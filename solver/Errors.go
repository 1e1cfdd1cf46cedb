package solver

import (
	"errors"
	"fmt"
)

var errUnconverged = errors.New("policy iteration did not converge")

// newUnconverged returns an error reporting that a configured bound
// elapsed before convergence
func newUnconverged(op string, bound int) error {
	return fmt.Errorf("%s: %w within %d iterations", op, errUnconverged, bound)
}

// IsUnconverged returns whether an error reports that policy iteration
// exhausted a configured bound before converging. Solve returns its
// partial result alongside such errors, so callers may accept the
// partial solution instead of failing.
func IsUnconverged(err error) bool {
	return errors.Is(err, errUnconverged)
}
