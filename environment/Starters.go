package environment

import (
	"golang.org/x/exp/rand"

	"github.com/BenjaminWills/reinforcement-learning/timestep"

	"gonum.org/v1/gonum/stat/distuv"
)

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter interface {
	Start() timestep.State
}

// SingleStart is a Starter that always starts episodes in the same
// state
type SingleStart struct {
	state timestep.State
}

// NewSingleStart returns a new SingleStart beginning every episode in
// state s
func NewSingleStart(s timestep.State) SingleStart {
	return SingleStart{s}
}

// Start returns the starting state
func (s SingleStart) Start() timestep.State {
	return s.state
}

// CategoricalStarter returns starting states sampled uniformly from a
// fixed, finite set of states
type CategoricalStarter struct {
	states []timestep.State
	rand   distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter sampling
// uniformly from states. NewCategoricalStarter panics if states is
// empty.
func NewCategoricalStarter(states []timestep.State, seed uint64) CategoricalStarter {
	if len(states) == 0 {
		panic("categoricalstarter: no states to sample from")
	}
	source := rand.NewSource(seed)

	// Equal weight on every state gives the uniform categorical
	weights := make([]float64, len(states))
	for i := range weights {
		weights[i] = 1.0 / float64(len(weights))
	}

	return CategoricalStarter{
		states: append([]timestep.State(nil), states...),
		rand:   distuv.NewCategorical(weights, source),
	}
}

// Start returns a starting state
func (c CategoricalStarter) Start() timestep.State {
	return c.states[int(c.rand.Rand())]
}
