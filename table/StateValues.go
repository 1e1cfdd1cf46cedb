// Package table implements tabular value functions for finite MDPs
package table

import (
	"github.com/BenjaminWills/reinforcement-learning/timestep"

	"gonum.org/v1/gonum/floats"
)

// StateValues maps states to estimated expected returns. A visit count
// is kept per state for diagnostics; it plays no part in the values
// themselves. The zero value is not usable, construct with
// NewStateValues.
type StateValues struct {
	values  map[timestep.State]float64
	visits  map[timestep.State]int
	initial float64
}

// NewStateValues returns a new StateValues with every state's value
// starting at initial
func NewStateValues(initial float64) *StateValues {
	return &StateValues{
		values:  make(map[timestep.State]float64),
		visits:  make(map[timestep.State]int),
		initial: initial,
	}
}

// At returns the estimated value of state s
func (v *StateValues) At(s timestep.State) float64 {
	if value, ok := v.values[s]; ok {
		return value
	}
	return v.initial
}

// Set sets the estimated value of state s
func (v *StateValues) Set(s timestep.State, value float64) {
	v.values[s] = value
}

// CountVisit records that state s was visited by an update
func (v *StateValues) CountVisit(s timestep.State) {
	v.visits[s]++
}

// Visits returns how many updates have visited state s
func (v *StateValues) Visits(s timestep.State) int {
	return v.visits[s]
}

// Snapshot returns a copy of every value set so far, as a plain
// mapping for consumers to read
func (v *StateValues) Snapshot() map[timestep.State]float64 {
	snapshot := make(map[timestep.State]float64, len(v.values))
	for s, value := range v.values {
		snapshot[s] = value
	}
	return snapshot
}

// Normalized returns a copy of the values scaled so the largest is 1.
// If no value is positive the values are returned unscaled.
func (v *StateValues) Normalized() map[timestep.State]float64 {
	snapshot := v.Snapshot()
	if len(snapshot) == 0 {
		return snapshot
	}

	values := make([]float64, 0, len(snapshot))
	for _, value := range snapshot {
		values = append(values, value)
	}

	max := floats.Max(values)
	if max <= 0 {
		return snapshot
	}

	for s := range snapshot {
		snapshot[s] /= max
	}
	return snapshot
}
