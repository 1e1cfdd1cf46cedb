package episode

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BenjaminWills/reinforcement-learning/agent/policy"
	"github.com/BenjaminWills/reinforcement-learning/environment"
	"github.com/BenjaminWills/reinforcement-learning/environment/randomwalk"
	"github.com/BenjaminWills/reinforcement-learning/timestep"
)

// loopEnv never reaches a terminal state
type loopEnv struct{}

func (loopEnv) Reset() timestep.State { return 0 }

func (loopEnv) Actions(timestep.State) []timestep.Action {
	return []timestep.Action{0}
}

func (loopEnv) Step(s timestep.State, a timestep.Action) (environment.Transition, error) {
	return environment.Transition{State: s, Action: a, Next: s}, nil
}

func (loopEnv) IsTerminal(timestep.State) bool { return false }

func (loopEnv) States() []timestep.State { return []timestep.State{0} }

// stay is the policy that always takes the only action
var stay = policy.NewFixed(func(timestep.State) timestep.Action { return 0 })

func TestNewGenerator(t *testing.T) {
	t.Run("rejects a negative step bound", func(t *testing.T) {
		_, err := NewGenerator(loopEnv{}, -1)
		require.Error(t, err)
		require.True(t, environment.IsInvalidParameter(err))
	})

	t.Run("a zero bound uses the default", func(t *testing.T) {
		g, err := NewGenerator(loopEnv{}, 0)
		require.NoError(t, err)
		require.Equal(t, DefaultMaxSteps, g.maxSteps)
	})
}

func TestGenerate(t *testing.T) {
	t.Run("records every transition of a terminating episode", func(t *testing.T) {
		walk := randomwalk.New(1923)
		g, err := NewGenerator(walk, 0)
		require.NoError(t, err)

		trajectory, err := g.Generate(stay)
		require.NoError(t, err)
		require.NotEmpty(t, trajectory)

		require.True(t, trajectory[0].First())
		require.Equal(t, randomwalk.Centre, trajectory[0].State)

		last := trajectory[len(trajectory)-1]
		require.True(t, last.Last())
		for _, step := range trajectory[1 : len(trajectory)-1] {
			require.True(t, step.Mid())
		}

		// Steps are numbered consecutively from 0
		for i, step := range trajectory {
			require.Equal(t, i, step.Number)
		}

		// Reward 1 exactly when the walk exited on the right
		require.Contains(t, []float64{0.0, 1.0}, last.Reward)
		require.Equal(t, last.Reward, trajectory.TotalReward())
	})

	t.Run("a guaranteed-terminating environment never trips the bound", func(t *testing.T) {
		walk := randomwalk.New(7)

		// The walk can wander, but 100k steps is beyond any plausible
		// excursion of a seven-state walk
		g, err := NewGenerator(walk, DefaultMaxSteps)
		require.NoError(t, err)

		for i := 0; i < 1000; i++ {
			_, err := g.Generate(stay)
			require.NoError(t, err)
		}
	})

	t.Run("reports a non-terminating episode and returns no trajectory", func(t *testing.T) {
		g, err := NewGenerator(loopEnv{}, 50)
		require.NoError(t, err)

		trajectory, err := g.Generate(stay)
		require.Error(t, err)
		require.True(t, IsNonTerminating(err))
		require.Nil(t, trajectory)
	})

	t.Run("an illegal action is fatal to the episode", func(t *testing.T) {
		walk := randomwalk.New(7)
		g, err := NewGenerator(walk, 0)
		require.NoError(t, err)

		illegal := policy.NewFixed(func(timestep.State) timestep.Action {
			return randomwalk.Walk + 3
		})

		trajectory, err := g.Generate(illegal)
		require.Error(t, err)
		require.True(t, environment.IsInvalidAction(err))
		require.False(t, IsNonTerminating(err))
		require.Nil(t, trajectory)
	})
}
