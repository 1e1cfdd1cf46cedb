// Package montecarlo implements first-visit, constant-alpha
// Monte-Carlo policy evaluation and control for finite MDPs
//
// Updates use a fixed step size rather than a sample-count-weighted
// average: V[k] <- V[k] + alpha*(G - V[k]). A fixed alpha never
// converges to the exact expectation unless it decays, but it weights
// recent experience more, which is what control settings with a
// changing policy need.
package montecarlo

import (
	"github.com/BenjaminWills/reinforcement-learning/environment"
	"github.com/BenjaminWills/reinforcement-learning/table"
	"github.com/BenjaminWills/reinforcement-learning/timestep"
)

// validateFraction returns an InvalidParameter error unless value lies
// in [0, 1]
func validateFraction(op, name string, value float64) error {
	if value < 0.0 || value > 1.0 {
		return environment.NewInvalidParameter(op, name, value)
	}
	return nil
}

// Evaluation estimates a state-value function from complete episode
// trajectories. It owns its value table exclusively: the table is
// mutated only through Update, one trajectory at a time.
type Evaluation struct {
	values *table.StateValues
	alpha  float64
	gamma  float64
}

// NewEvaluation returns a new Evaluation with step size alpha,
// discount gamma, and every state's value starting at initial
func NewEvaluation(alpha, gamma, initial float64) (*Evaluation, error) {
	if err := validateFraction("montecarlo.NewEvaluation", "alpha", alpha); err != nil {
		return nil, err
	}
	if err := validateFraction("montecarlo.NewEvaluation", "gamma", gamma); err != nil {
		return nil, err
	}

	return &Evaluation{
		values: table.NewStateValues(initial),
		alpha:  alpha,
		gamma:  gamma,
	}, nil
}

// Update folds one complete episode into the value table using
// first-visit updates: within the trajectory, only the earliest
// occurrence of each state updates the table, with the return computed
// from that occurrence. Later revisits in the same episode are
// ignored.
func (e *Evaluation) Update(trajectory timestep.Trajectory) {
	returns := trajectory.Returns(e.gamma)

	visited := make(map[timestep.State]bool, len(trajectory))
	for i, step := range trajectory {
		if visited[step.State] {
			continue
		}
		visited[step.State] = true

		v := e.values.At(step.State)
		e.values.Set(step.State, v+e.alpha*(returns[i]-v))
		e.values.CountVisit(step.State)
	}
}

// Values returns the value table the Evaluation maintains
func (e *Evaluation) Values() *table.StateValues {
	return e.values
}
