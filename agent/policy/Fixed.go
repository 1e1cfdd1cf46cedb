// Package policy implements policies over tabular action values
package policy

import (
	"github.com/BenjaminWills/reinforcement-learning/timestep"
)

// Rule maps a state to the action taken in it
type Rule func(timestep.State) timestep.Action

// Fixed is a deterministic policy defined by a fixed rule, independent
// of any value table. Fixed policies are used for evaluation-only
// tasks, where the policy under study never changes.
type Fixed struct {
	rule Rule
}

// NewFixed returns a new Fixed policy following rule
func NewFixed(rule Rule) *Fixed {
	return &Fixed{rule: rule}
}

// SelectAction returns the action the rule prescribes for state s
func (p *Fixed) SelectAction(s timestep.State) (timestep.Action, error) {
	return p.rule(s), nil
}
