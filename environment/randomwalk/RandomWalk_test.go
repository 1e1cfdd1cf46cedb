package randomwalk

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BenjaminWills/reinforcement-learning/environment"
	"github.com/BenjaminWills/reinforcement-learning/timestep"
)

func TestRandomWalk(t *testing.T) {
	walk := New(1923)

	t.Run("starts in the centre", func(t *testing.T) {
		require.Equal(t, Centre, walk.Reset())
	})

	t.Run("has a single action outside the terminals", func(t *testing.T) {
		for s := LeftTerminal + 1; s < RightTerminal; s++ {
			require.Equal(t, []timestep.Action{Walk}, walk.Actions(s))
		}
		require.Empty(t, walk.Actions(LeftTerminal))
		require.Empty(t, walk.Actions(RightTerminal))
	})

	t.Run("moves one position per step", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			transition, err := walk.Step(Centre, Walk)
			require.NoError(t, err)
			require.Contains(t, []timestep.State{Centre - 1, Centre + 1},
				transition.Next)
			require.Zero(t, transition.Reward)
		}
	})

	t.Run("rewards 1 only on the right terminal", func(t *testing.T) {
		right, left := false, false
		for i := 0; i < 200 && !(right && left); i++ {
			transition, err := walk.Step(RightTerminal-1, Walk)
			require.NoError(t, err)

			if transition.Next == RightTerminal {
				require.Equal(t, 1.0, transition.Reward)
				require.True(t, transition.Terminal)
				right = true
			} else {
				require.Zero(t, transition.Reward)
				require.False(t, transition.Terminal)
				left = true
			}
		}
		require.True(t, right && left)
	})

	t.Run("rejects stepping from a terminal", func(t *testing.T) {
		_, err := walk.Step(LeftTerminal, Walk)
		require.True(t, environment.IsInvalidAction(err))

		_, err = walk.Step(Centre, Walk+1)
		require.True(t, environment.IsInvalidAction(err))
	})

	t.Run("enumerates seven states", func(t *testing.T) {
		require.Len(t, walk.States(), 7)
	})
}

func TestOutcomes(t *testing.T) {
	walk := New(1)

	outcomes, err := walk.Outcomes(RightTerminal-1, Walk)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	require.Equal(t, RightTerminal, outcomes[0].Next)
	require.Equal(t, 1.0, outcomes[0].Reward)
	require.True(t, outcomes[0].Terminal)
	require.InDelta(t, 0.5, outcomes[0].Probability, 1e-12)

	require.Equal(t, RightTerminal-2, outcomes[1].Next)
	require.Zero(t, outcomes[1].Reward)

	_, err = walk.Outcomes(LeftTerminal, Walk)
	require.True(t, environment.IsInvalidAction(err))
}
