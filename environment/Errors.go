package environment

import (
	"errors"
	"fmt"

	"github.com/BenjaminWills/reinforcement-learning/timestep"
)

// Error implements errors unique to interacting with an environment
type Error struct {
	Op  string
	Err error
}

// Error satisfies the error interface
func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying condition so that callers can inspect
// it with the Is* helpers
func (e *Error) Unwrap() error {
	return e.Err
}

var errInvalidAction = errors.New("action is not legal in state")

var errInvalidParameter = errors.New("parameter out of range")

// NewInvalidAction returns an error reporting that action a was
// selected in state s, where it is not legal. Environments return this
// from Step; it is fatal to the episode.
func NewInvalidAction(op string, a timestep.Action, s timestep.State) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf("%w: action %d in state %d", errInvalidAction, a, s),
	}
}

// NewInvalidParameter returns an error reporting that a numeric
// parameter was outside its legal range. Constructors return this
// before any simulation work begins.
func NewInvalidParameter(op, name string, value float64) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf("%w: %s = %v", errInvalidParameter, name, value),
	}
}

// IsInvalidAction returns whether an error reports an action that is
// not legal in the state it was selected in
func IsInvalidAction(err error) bool {
	return errors.Is(err, errInvalidAction)
}

// IsInvalidParameter returns whether an error reports a numeric
// parameter outside its legal range
func IsInvalidParameter(err error) bool {
	return errors.Is(err, errInvalidParameter)
}
