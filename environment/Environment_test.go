package environment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BenjaminWills/reinforcement-learning/timestep"
)

func TestSingleStart(t *testing.T) {
	start := NewSingleStart(7)
	for i := 0; i < 5; i++ {
		require.Equal(t, timestep.State(7), start.Start())
	}
}

func TestCategoricalStarter(t *testing.T) {
	t.Run("panics with no states", func(t *testing.T) {
		require.Panics(t, func() { NewCategoricalStarter(nil, 1) })
	})

	t.Run("only samples the given states", func(t *testing.T) {
		states := []timestep.State{3, 8, 21}
		start := NewCategoricalStarter(states, 1)

		for i := 0; i < 100; i++ {
			require.Contains(t, states, start.Start())
		}
	})

	t.Run("samples approximately uniformly", func(t *testing.T) {
		states := []timestep.State{0, 1}
		start := NewCategoricalStarter(states, 1)

		const draws = 10_000
		ones := 0
		for i := 0; i < draws; i++ {
			if start.Start() == 1 {
				ones++
			}
		}
		require.InDelta(t, 0.5, float64(ones)/draws, 0.02)
	})

	t.Run("copies the state slice", func(t *testing.T) {
		states := []timestep.State{5}
		start := NewCategoricalStarter(states, 1)
		states[0] = 9
		require.Equal(t, timestep.State(5), start.Start())
	})
}

func TestErrors(t *testing.T) {
	t.Run("invalid action", func(t *testing.T) {
		err := NewInvalidAction("gambler.Step", 50, 10)
		require.True(t, IsInvalidAction(err))
		require.False(t, IsInvalidParameter(err))
		require.Contains(t, err.Error(), "gambler.Step")
		require.Contains(t, err.Error(), "action 50 in state 10")
	})

	t.Run("invalid parameter", func(t *testing.T) {
		err := NewInvalidParameter("gambler.New", "headsProbability", 1.5)
		require.True(t, IsInvalidParameter(err))
		require.False(t, IsInvalidAction(err))
		require.Contains(t, err.Error(), "headsProbability = 1.5")
	})

	t.Run("unwraps through wrapping", func(t *testing.T) {
		err := NewInvalidAction("op", 1, 2)
		var e *Error
		require.True(t, errors.As(err, &e))
		require.Equal(t, "op", e.Op)
	})
}
