// Package timestep implements timesteps of the agent-environment interaction
package timestep

import "fmt"

// State identifies a discrete environment state. Each environment
// defines its own encoding of states into integers; the rest of the
// module treats states as opaque, comparable identifiers.
type State int

// Action identifies a discrete action. An Action is only meaningful
// with respect to the state it was selected in: environments define
// which actions are legal in which states.
type Action int

// StepType denotes the type of step that a TimeStep can be, either the
// first environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// TimeStep packages together a single timestep in an environment: the
// state the agent was in, the action it took there, and the reward
// received for taking that action.
type TimeStep struct {
	StepType StepType
	State    State
	Action   Action
	Reward   float64
	Number   int
}

func New(t StepType, s State, a Action, r float64, n int) TimeStep {
	return TimeStep{t, s, a, r, n}
}

// First returns whether a TimeStep is the first in an episode
func (t TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an episode
func (t TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an episode
func (t TimeStep) Last() bool {
	return t.StepType == Last
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  State: %v  |  Action: %v  |  " +
		"Reward:  %.2f  |  Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.State, t.Action, t.Reward, t.Number)
}
