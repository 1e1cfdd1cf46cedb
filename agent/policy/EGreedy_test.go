package policy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BenjaminWills/reinforcement-learning/environment"
	"github.com/BenjaminWills/reinforcement-learning/table"
	"github.com/BenjaminWills/reinforcement-learning/timestep"
)

// fakeEnv is a two-state environment: state 0 offers three actions and
// state 1 is terminal
type fakeEnv struct{}

func (fakeEnv) Reset() timestep.State { return 0 }

func (fakeEnv) Actions(s timestep.State) []timestep.Action {
	if s == 1 {
		return nil
	}
	return []timestep.Action{0, 1, 2}
}

func (fakeEnv) Step(s timestep.State, a timestep.Action) (environment.Transition, error) {
	return environment.Transition{
		State: s, Action: a, Next: 1, Terminal: true,
	}, nil
}

func (fakeEnv) IsTerminal(s timestep.State) bool { return s == 1 }

func (fakeEnv) States() []timestep.State { return []timestep.State{0, 1} }

func TestNewEGreedy(t *testing.T) {
	values := table.NewActionValues(0.0)

	t.Run("rejects epsilon outside [0,1]", func(t *testing.T) {
		_, err := NewEGreedy(values, 1.5, 1, fakeEnv{})
		require.Error(t, err)
		require.True(t, environment.IsInvalidParameter(err))

		_, err = NewEGreedy(values, -0.5, 1, fakeEnv{})
		require.True(t, environment.IsInvalidParameter(err))
	})

	t.Run("rejects an invalid epsilon on update too", func(t *testing.T) {
		p, err := NewEGreedy(values, 0.5, 1, fakeEnv{})
		require.NoError(t, err)

		require.True(t, environment.IsInvalidParameter(p.SetEpsilon(2.0)))
		require.NoError(t, p.SetEpsilon(0.25))
		require.Equal(t, 0.25, p.Epsilon())
	})
}

func TestSelectAction(t *testing.T) {
	t.Run("epsilon 0 always selects the argmax action", func(t *testing.T) {
		values := table.NewActionValues(0.0)
		values.Set(0, 0, 0.1)
		values.Set(0, 1, 0.7)
		values.Set(0, 2, 0.3)

		// The greedy choice must not depend on the seed
		for seed := uint64(0); seed < 20; seed++ {
			greedy := NewGreedy(values, seed, fakeEnv{})

			a, err := greedy.SelectAction(0)
			require.NoError(t, err)
			require.Equal(t, timestep.Action(1), a)
		}
	})

	t.Run("ties break to the first action", func(t *testing.T) {
		values := table.NewActionValues(0.0)
		values.Set(0, 1, 0.5)
		values.Set(0, 2, 0.5)

		for seed := uint64(0); seed < 20; seed++ {
			greedy := NewGreedy(values, seed, fakeEnv{})

			a, err := greedy.SelectAction(0)
			require.NoError(t, err)
			require.Equal(t, timestep.Action(1), a)
		}
	})

	t.Run("epsilon 1 samples uniformly over legal actions", func(t *testing.T) {
		values := table.NewActionValues(0.0)
		values.Set(0, 2, 100.0) // a large value must not matter

		p, err := NewEGreedy(values, 1.0, 1923, fakeEnv{})
		require.NoError(t, err)

		const draws = 30_000
		counts := make(map[timestep.Action]int)
		for i := 0; i < draws; i++ {
			a, err := p.SelectAction(0)
			require.NoError(t, err)
			counts[a]++
		}

		for _, a := range []timestep.Action{0, 1, 2} {
			frequency := float64(counts[a]) / draws
			require.InDelta(t, 1.0/3.0, frequency, 0.02,
				"action %d drawn with frequency %v", a, frequency)
		}
	})

	t.Run("sees table updates immediately", func(t *testing.T) {
		values := table.NewActionValues(0.0)
		values.Set(0, 0, 1.0)
		greedy := NewGreedy(values, 1, fakeEnv{})

		a, err := greedy.SelectAction(0)
		require.NoError(t, err)
		require.Equal(t, timestep.Action(0), a)

		// The policy is a live view: no reconstruction needed
		values.Set(0, 2, 2.0)
		a, err = greedy.SelectAction(0)
		require.NoError(t, err)
		require.Equal(t, timestep.Action(2), a)
	})

	t.Run("errors in a state with no legal actions", func(t *testing.T) {
		greedy := NewGreedy(table.NewActionValues(0.0), 1, fakeEnv{})

		_, err := greedy.SelectAction(1)
		require.Error(t, err)
	})
}

func TestFixed(t *testing.T) {
	fixed := NewFixed(func(s timestep.State) timestep.Action {
		return timestep.Action(s) + 1
	})

	a, err := fixed.SelectAction(4)
	require.NoError(t, err)
	require.Equal(t, timestep.Action(5), a)
}
