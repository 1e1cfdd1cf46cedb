// Package episode generates episodes of agent-environment interaction
package episode

import (
	"github.com/BenjaminWills/reinforcement-learning/agent"
	"github.com/BenjaminWills/reinforcement-learning/environment"
	"github.com/BenjaminWills/reinforcement-learning/timestep"
)

// DefaultMaxSteps is the default bound on episode length. All three
// shipped environments terminate in far fewer steps with probability
// 1; the bound exists to surface policies or environments that never
// terminate.
const DefaultMaxSteps = 100_000

// Generator drives an environment from a start state to termination
// under a policy, recording the trajectory
type Generator struct {
	env      environment.Environment
	maxSteps int
}

// NewGenerator returns a new Generator for env whose episodes are
// bounded at maxSteps steps. A maxSteps of 0 uses DefaultMaxSteps.
func NewGenerator(env environment.Environment, maxSteps int) (*Generator, error) {
	if maxSteps < 0 {
		return nil, environment.NewInvalidParameter("episode.NewGenerator",
			"maxSteps", float64(maxSteps))
	}
	if maxSteps == 0 {
		maxSteps = DefaultMaxSteps
	}

	return &Generator{env: env, maxSteps: maxSteps}, nil
}

// Generate runs one episode under p and returns its trajectory. Each
// entry records the state the agent was in, the action it took and the
// reward it received, the terminating transition included.
//
// If the step bound elapses before a terminal state is reached,
// Generate returns a NonTerminatingEpisode error and no trajectory:
// partial episodes are never returned, so callers can never fold one
// into a value function.
func (g *Generator) Generate(p agent.Policy) (timestep.Trajectory, error) {
	s := g.env.Reset()
	trajectory := make(timestep.Trajectory, 0)

	for n := 0; ; n++ {
		if n >= g.maxSteps {
			return nil, newNonTerminating("episode.Generate", g.maxSteps)
		}

		a, err := p.SelectAction(s)
		if err != nil {
			return nil, err
		}

		transition, err := g.env.Step(s, a)
		if err != nil {
			return nil, err
		}

		stepType := timestep.Mid
		if n == 0 {
			stepType = timestep.First
		}
		if transition.Terminal {
			stepType = timestep.Last
		}
		trajectory = append(trajectory,
			timestep.New(stepType, s, a, transition.Reward, n))

		if transition.Terminal {
			return trajectory, nil
		}
		s = transition.Next
	}
}
