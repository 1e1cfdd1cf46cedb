package table

import (
	"github.com/BenjaminWills/reinforcement-learning/timestep"
)

// stateAction keys the action-value table
type stateAction struct {
	state  timestep.State
	action timestep.Action
}

// ActionValues maps (state, action) pairs to estimated expected
// returns. Like StateValues, visit counts are diagnostic only. The
// zero value is not usable, construct with NewActionValues.
type ActionValues struct {
	values  map[stateAction]float64
	visits  map[stateAction]int
	initial float64
}

// NewActionValues returns a new ActionValues with every pair's value
// starting at initial
func NewActionValues(initial float64) *ActionValues {
	return &ActionValues{
		values:  make(map[stateAction]float64),
		visits:  make(map[stateAction]int),
		initial: initial,
	}
}

// At returns the estimated value of taking action a in state s
func (q *ActionValues) At(s timestep.State, a timestep.Action) float64 {
	if value, ok := q.values[stateAction{s, a}]; ok {
		return value
	}
	return q.initial
}

// Set sets the estimated value of taking action a in state s
func (q *ActionValues) Set(s timestep.State, a timestep.Action, value float64) {
	q.values[stateAction{s, a}] = value
}

// CountVisit records that the pair (s, a) was visited by an update
func (q *ActionValues) CountVisit(s timestep.State, a timestep.Action) {
	q.visits[stateAction{s, a}]++
}

// Visits returns how many updates have visited the pair (s, a)
func (q *ActionValues) Visits(s timestep.State, a timestep.Action) int {
	return q.visits[stateAction{s, a}]
}

// AtAll returns the values of a slice of actions in state s, in the
// same order as the actions
func (q *ActionValues) AtAll(s timestep.State, actions []timestep.Action) []float64 {
	values := make([]float64, len(actions))
	for i, a := range actions {
		values[i] = q.At(s, a)
	}
	return values
}

// Snapshot returns a copy of every value set so far as a nested plain
// mapping state -> action -> value
func (q *ActionValues) Snapshot() map[timestep.State]map[timestep.Action]float64 {
	snapshot := make(map[timestep.State]map[timestep.Action]float64)
	for key, value := range q.values {
		if snapshot[key.state] == nil {
			snapshot[key.state] = make(map[timestep.Action]float64)
		}
		snapshot[key.state][key.action] = value
	}
	return snapshot
}
