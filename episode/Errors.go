package episode

import (
	"errors"
	"fmt"
)

var errNonTerminating = errors.New("episode did not terminate")

// newNonTerminating returns an error reporting that an episode
// exceeded its step bound without reaching a terminal state
func newNonTerminating(op string, steps int) error {
	return fmt.Errorf("%s: %w within %d steps", op, errNonTerminating, steps)
}

// IsNonTerminating returns whether an error reports an episode that
// exceeded its step bound without terminating. Such errors are
// recoverable: the episode produced no trajectory and the caller may
// simply generate another.
func IsNonTerminating(err error) bool {
	return errors.Is(err, errNonTerminating)
}
