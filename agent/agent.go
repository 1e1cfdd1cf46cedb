// Package agent defines how agents select actions
package agent

import "github.com/BenjaminWills/reinforcement-learning/timestep"

// Policy represents a policy that an agent can follow.
//
// Policies determine how agents select actions in each state. A Policy
// may be stochastic, in which case SelectAction samples from the
// policy's action distribution in the state using randomness seeded at
// construction. SelectAction returns an error when the policy has no
// legal action to select, such as when queried in a terminal state.
type Policy interface {
	SelectAction(s timestep.State) (timestep.Action, error)
}
