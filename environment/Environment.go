// Package environment outlines the interfaces and structs needed to implement
// concrete environments
package environment

import (
	"github.com/BenjaminWills/reinforcement-learning/timestep"
)

// Transition is the sampled result of taking an action in a state
type Transition struct {
	State    timestep.State
	Action   timestep.Action
	Reward   float64
	Next     timestep.State
	Terminal bool
}

// Environment implements a finite Markov decision process: a finite,
// enumerable set of discrete states, a set of legal actions per state,
// and a stochastic transition and reward model.
//
// Step must be deterministic in distribution but stochastic in
// outcome: two environments constructed with the same seed produce
// identical transition sequences. Randomness is always owned by the
// environment and seeded through its constructor, never ambient.
type Environment interface {
	// Reset starts a new episode and returns its start state, sampled
	// from the environment's initial-state distribution
	Reset() timestep.State

	// Actions returns the legal actions in a state. The returned slice
	// is empty if and only if the state is terminal. The slice order is
	// fixed for a given state; policies break value ties by the first
	// index in this order.
	Actions(timestep.State) []timestep.Action

	// Step samples a transition from taking an action in a state. It
	// returns an InvalidAction error if the action is not legal in the
	// state; illegal actions are never clamped to legal ones.
	Step(timestep.State, timestep.Action) (Transition, error)

	// IsTerminal returns whether a state ends the episode
	IsTerminal(timestep.State) bool

	// States enumerates every valid state of the environment,
	// terminal states included
	States() []timestep.State
}

// Outcome is one branch of a known transition distribution: with
// probability Probability the transition yields Reward and moves to
// Next.
type Outcome struct {
	Probability float64
	Reward      float64
	Next        timestep.State
	Terminal    bool
}

// Model is an Environment whose transition dynamics are fully known,
// so that planning methods can back up over every outcome instead of
// sampling. The outcomes returned for a legal (state, action) pair
// have probabilities summing to 1 and must agree in distribution with
// what Step samples.
type Model interface {
	Environment

	// Outcomes returns every possible result of taking an action in a
	// state along with its probability
	Outcomes(timestep.State, timestep.Action) ([]Outcome, error)
}
