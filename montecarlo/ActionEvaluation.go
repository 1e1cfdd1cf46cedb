package montecarlo

import (
	"github.com/BenjaminWills/reinforcement-learning/table"
	"github.com/BenjaminWills/reinforcement-learning/timestep"
)

// ActionEvaluation estimates an action-value function from complete
// episode trajectories, the state-action counterpart of Evaluation.
// Control methods use it so that greedy policies can be derived from
// the estimates without a model.
type ActionEvaluation struct {
	values *table.ActionValues
	alpha  float64
	gamma  float64
}

// NewActionEvaluation returns a new ActionEvaluation with step size
// alpha, discount gamma, and every pair's value starting at initial
func NewActionEvaluation(alpha, gamma, initial float64) (*ActionEvaluation, error) {
	op := "montecarlo.NewActionEvaluation"
	if err := validateFraction(op, "alpha", alpha); err != nil {
		return nil, err
	}
	if err := validateFraction(op, "gamma", gamma); err != nil {
		return nil, err
	}

	return &ActionEvaluation{
		values: table.NewActionValues(initial),
		alpha:  alpha,
		gamma:  gamma,
	}, nil
}

// pair keys the first-visit set within a single trajectory
type pair struct {
	state  timestep.State
	action timestep.Action
}

// Update folds one complete episode into the action-value table using
// first-visit updates over (state, action) pairs
func (e *ActionEvaluation) Update(trajectory timestep.Trajectory) {
	returns := trajectory.Returns(e.gamma)

	visited := make(map[pair]bool, len(trajectory))
	for i, step := range trajectory {
		key := pair{step.State, step.Action}
		if visited[key] {
			continue
		}
		visited[key] = true

		q := e.values.At(step.State, step.Action)
		e.values.Set(step.State, step.Action, q+e.alpha*(returns[i]-q))
		e.values.CountVisit(step.State, step.Action)
	}
}

// Values returns the action-value table the ActionEvaluation maintains
func (e *ActionEvaluation) Values() *table.ActionValues {
	return e.values
}
