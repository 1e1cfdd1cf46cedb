// Package solver implements model-based solution methods for finite
// MDPs whose transition dynamics are fully known
package solver

import (
	"math"

	"github.com/BenjaminWills/reinforcement-learning/agent/policy"
	"github.com/BenjaminWills/reinforcement-learning/environment"
	"github.com/BenjaminWills/reinforcement-learning/table"
	"github.com/BenjaminWills/reinforcement-learning/timestep"
	"github.com/BenjaminWills/reinforcement-learning/utils/floatutils"
)

const (
	// DefaultMaxSweeps bounds the evaluation sweeps of a single
	// evaluation phase
	DefaultMaxSweeps = 10_000

	// DefaultMaxIterations bounds the evaluate-improve rounds
	DefaultMaxIterations = 1_000
)

// Plan is a deterministic policy over the states of a solved MDP
type Plan map[timestep.State]timestep.Action

// Rule adapts the plan for use as a fixed policy
func (p Plan) Rule() policy.Rule {
	return func(s timestep.State) timestep.Action {
		return p[s]
	}
}

// Option configures a PolicyIteration
type Option func(*PolicyIteration)

// WithMaxSweeps bounds the number of evaluation sweeps per evaluation
// phase
func WithMaxSweeps(sweeps int) Option {
	return func(p *PolicyIteration) {
		if sweeps > 0 {
			p.maxSweeps = sweeps
		}
	}
}

// WithMaxIterations bounds the number of evaluate-improve rounds
func WithMaxIterations(iterations int) Option {
	return func(p *PolicyIteration) {
		if iterations > 0 {
			p.maxIterations = iterations
		}
	}
}

// WithTerminalValues pins the reported values of terminal states.
// Sweeps never read or update terminal states - a terminal state's
// return-to-go is zero, and rewards for reaching it are carried by the
// transitions - but pinning records the reward that defines each
// terminal state in the output table, e.g. 1 for the gambler's goal.
func WithTerminalValues(values map[timestep.State]float64) Option {
	return func(p *PolicyIteration) {
		p.terminalValues = values
	}
}

// PolicyIteration solves a known finite MDP by classic two-phase
// policy iteration: full policy evaluation via Bellman expectation
// backups swept to a convergence threshold, then greedy policy
// improvement via one-step lookahead over the full transition model,
// repeated until the policy is stable.
type PolicyIteration struct {
	gamma          float64
	theta          float64
	maxSweeps      int
	maxIterations  int
	terminalValues map[timestep.State]float64
}

// NewPolicyIteration returns a new PolicyIteration with discount gamma
// and evaluation convergence threshold theta. Evaluation sweeps stop
// once the largest value change across a sweep falls below theta.
func NewPolicyIteration(gamma, theta float64, options ...Option) (*PolicyIteration, error) {
	if gamma < 0.0 || gamma > 1.0 {
		return nil, environment.NewInvalidParameter(
			"solver.NewPolicyIteration", "gamma", gamma)
	}
	if theta <= 0.0 {
		return nil, environment.NewInvalidParameter(
			"solver.NewPolicyIteration", "theta", theta)
	}

	p := &PolicyIteration{
		gamma:         gamma,
		theta:         theta,
		maxSweeps:     DefaultMaxSweeps,
		maxIterations: DefaultMaxIterations,
	}
	for _, option := range options {
		option(p)
	}
	return p, nil
}

// Solve computes the optimal state values and a greedy plan for m.
//
// If an evaluation phase fails to meet theta within the sweep bound,
// or the policy is still changing after the iteration bound, Solve
// returns the partial values and plan together with an Unconverged
// error; the caller decides whether to accept them.
func (p *PolicyIteration) Solve(m environment.Model) (*table.StateValues, Plan, error) {
	values := table.NewStateValues(0.0)
	for s, v := range p.terminalValues {
		values.Set(s, v)
	}

	// Non-terminal states are the only ones swept or planned for
	states := make([]timestep.State, 0, len(m.States()))
	for _, s := range m.States() {
		if !m.IsTerminal(s) {
			states = append(states, s)
		}
	}

	// Start from the first legal action in every state
	plan := make(Plan, len(states))
	for _, s := range states {
		plan[s] = m.Actions(s)[0]
	}

	for i := 0; i < p.maxIterations; i++ {
		if err := p.evaluate(m, states, plan, values); err != nil {
			return values, plan, err
		}

		improved, err := p.improve(m, states, values)
		if err != nil {
			return values, plan, err
		}

		stable := true
		for _, s := range states {
			if plan[s] != improved[s] {
				stable = false
				break
			}
		}
		plan = improved
		if stable {
			return values, plan, nil
		}
	}

	return values, plan, newUnconverged("solver.Solve", p.maxIterations)
}

// evaluate sweeps Bellman expectation backups over the states under
// the current plan until the largest change in a sweep is below theta
func (p *PolicyIteration) evaluate(m environment.Model,
	states []timestep.State, plan Plan, values *table.StateValues) error {
	for sweep := 0; sweep < p.maxSweeps; sweep++ {
		delta := 0.0
		for _, s := range states {
			backup, err := p.lookahead(m, s, plan[s], values)
			if err != nil {
				return err
			}

			delta = math.Max(delta, math.Abs(backup-values.At(s)))
			values.Set(s, backup)
		}

		if delta < p.theta {
			return nil
		}
	}
	return newUnconverged("solver.evaluate", p.maxSweeps)
}

// improve returns the plan that is greedy with respect to values,
// breaking ties by the first action in the model's action order
func (p *PolicyIteration) improve(m environment.Model,
	states []timestep.State, values *table.StateValues) (Plan, error) {
	plan := make(Plan, len(states))
	for _, s := range states {
		actions := m.Actions(s)
		backups := make([]float64, len(actions))
		for i, a := range actions {
			backup, err := p.lookahead(m, s, a, values)
			if err != nil {
				return nil, err
			}
			backups[i] = backup
		}
		plan[s] = actions[floatutils.ArgMax(backups)]
	}
	return plan, nil
}

// lookahead computes the one-step expected value of taking action a in
// state s: the sum over outcomes of p*(reward + gamma*V[next]). A
// terminal outcome contributes no continuation value - its future
// return is zero by definition.
func (p *PolicyIteration) lookahead(m environment.Model, s timestep.State,
	a timestep.Action, values *table.StateValues) (float64, error) {
	outcomes, err := m.Outcomes(s, a)
	if err != nil {
		return 0, err
	}

	backup := 0.0
	for _, o := range outcomes {
		continuation := 0.0
		if !o.Terminal {
			continuation = values.At(o.Next)
		}
		backup += o.Probability * (o.Reward + p.gamma*continuation)
	}
	return backup, nil
}
