// Package randomwalk implements the seven-state random walk
//
// The walk has states 0 through 6. Episodes begin in the centre state
// 3 and move one position left or right with equal probability. States
// 0 and 6 are terminal; reaching state 6 rewards 1, every other
// transition rewards 0. There is only one action, taking the step.
package randomwalk

import (
	"golang.org/x/exp/rand"

	"github.com/BenjaminWills/reinforcement-learning/environment"
	"github.com/BenjaminWills/reinforcement-learning/timestep"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// LeftTerminal is the losing end of the walk
	LeftTerminal timestep.State = 0

	// RightTerminal is the winning end of the walk
	RightTerminal timestep.State = 6

	// Centre is the starting state
	Centre timestep.State = 3

	// Walk is the single action available in every non-terminal state
	Walk timestep.Action = 0
)

// RandomWalk implements the seven-state random walk. The dynamics are
// fully known, so RandomWalk satisfies environment.Model.
type RandomWalk struct {
	coin distuv.Bernoulli
}

// New returns a new RandomWalk
func New(seed uint64) *RandomWalk {
	return &RandomWalk{
		coin: distuv.Bernoulli{P: 0.5, Src: rand.NewSource(seed)},
	}
}

// Reset starts a new episode in the centre state
func (r *RandomWalk) Reset() timestep.State {
	return Centre
}

// Actions returns the single Walk action, or no actions in a terminal
// state
func (r *RandomWalk) Actions(s timestep.State) []timestep.Action {
	if r.IsTerminal(s) {
		return nil
	}
	return []timestep.Action{Walk}
}

// Step moves one position left or right with equal probability,
// rewarding 1 on reaching the right terminal
func (r *RandomWalk) Step(s timestep.State, a timestep.Action) (environment.Transition, error) {
	if r.IsTerminal(s) || a != Walk {
		return environment.Transition{}, environment.NewInvalidAction(
			"randomwalk.Step", a, s)
	}

	next := s - 1
	if r.coin.Rand() == 1 {
		next = s + 1
	}

	reward := 0.0
	if next == RightTerminal {
		reward = 1.0
	}

	return environment.Transition{
		State:    s,
		Action:   a,
		Reward:   reward,
		Next:     next,
		Terminal: r.IsTerminal(next),
	}, nil
}

// IsTerminal returns whether the walk has reached either end
func (r *RandomWalk) IsTerminal(s timestep.State) bool {
	return s == LeftTerminal || s == RightTerminal
}

// States enumerates the seven states of the walk
func (r *RandomWalk) States() []timestep.State {
	states := make([]timestep.State, 0, int(RightTerminal)+1)
	for s := LeftTerminal; s <= RightTerminal; s++ {
		states = append(states, s)
	}
	return states
}

// Outcomes returns the two equally likely results of a step
func (r *RandomWalk) Outcomes(s timestep.State, a timestep.Action) ([]environment.Outcome, error) {
	if r.IsTerminal(s) || a != Walk {
		return nil, environment.NewInvalidAction("randomwalk.Outcomes", a, s)
	}

	up := s + 1
	down := s - 1

	upReward := 0.0
	if up == RightTerminal {
		upReward = 1.0
	}

	return []environment.Outcome{
		{
			Probability: 0.5,
			Reward:      upReward,
			Next:        up,
			Terminal:    r.IsTerminal(up),
		},
		{
			Probability: 0.5,
			Reward:      0.0,
			Next:        down,
			Terminal:    r.IsTerminal(down),
		},
	}, nil
}
