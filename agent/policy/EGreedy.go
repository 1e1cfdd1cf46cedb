package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/BenjaminWills/reinforcement-learning/environment"
	"github.com/BenjaminWills/reinforcement-learning/table"
	"github.com/BenjaminWills/reinforcement-learning/timestep"
	"github.com/BenjaminWills/reinforcement-learning/utils/floatutils"

	"gonum.org/v1/gonum/stat/distuv"
)

// EGreedy implements an ε-greedy policy over a tabular action-value
// function.
//
// An EGreedy is a live view over the table it was constructed with: it
// stores no action preferences of its own, so every update to the
// table is reflected by the very next query. With probability ε the
// policy selects uniformly among the legal actions, and with
// probability 1-ε it selects the greedy action. Value ties are broken
// by the first action in the environment's action order, so greedy
// selection is reproducible.
type EGreedy struct {
	values  *table.ActionValues
	env     environment.Environment
	epsilon float64
	source  rand.Source
}

// NewEGreedy constructs a new EGreedy policy, where epsilon is the
// probability with which a random action is selected and values is the
// action-value table the policy reads greedy actions from
func NewEGreedy(values *table.ActionValues, epsilon float64, seed uint64,
	env environment.Environment) (*EGreedy, error) {
	if epsilon < 0.0 || epsilon > 1.0 {
		return nil, environment.NewInvalidParameter("policy.NewEGreedy",
			"epsilon", epsilon)
	}

	return &EGreedy{
		values:  values,
		env:     env,
		epsilon: epsilon,
		source:  rand.NewSource(seed),
	}, nil
}

// NewGreedy creates a new greedy policy: an EGreedy that always
// selects the action of maximal estimated value
func NewGreedy(values *table.ActionValues, seed uint64,
	env environment.Environment) *EGreedy {
	greedy, err := NewEGreedy(values, 0.0, seed, env)
	if err != nil {
		// Epsilon 0 is always valid
		panic(err)
	}
	return greedy
}

// SelectAction selects an action from the ε-greedy policy
func (p *EGreedy) SelectAction(s timestep.State) (timestep.Action, error) {
	actions := p.env.Actions(s)
	if len(actions) == 0 {
		return 0, fmt.Errorf("selectaction: no legal actions in state %d", s)
	}

	// Find the greedy action under the current value estimates
	greedyAction := floatutils.ArgMax(p.values.AtAll(s, actions))

	// Calculate the ε probability of choosing any action at random
	prob := p.epsilon / float64(len(actions))
	actionProbabilities := make([]float64, len(actions))
	for i := range actionProbabilities {
		actionProbabilities[i] = prob
	}

	// Adjust the probability of choosing the greedy action
	actionProbabilities[greedyAction] += 1.0 - p.epsilon

	// Sample an action from the categorical distribution over actions
	dist := distuv.NewCategorical(actionProbabilities, p.source)
	return actions[int(dist.Rand())], nil
}

// Epsilon returns the policy's exploration probability
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// SetEpsilon sets the policy's exploration probability. SetEpsilon is
// how control loops decay exploration between episodes.
func (p *EGreedy) SetEpsilon(epsilon float64) error {
	if epsilon < 0.0 || epsilon > 1.0 {
		return environment.NewInvalidParameter("policy.SetEpsilon",
			"epsilon", epsilon)
	}
	p.epsilon = epsilon
	return nil
}
