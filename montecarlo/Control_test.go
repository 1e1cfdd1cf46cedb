package montecarlo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BenjaminWills/reinforcement-learning/environment"
	"github.com/BenjaminWills/reinforcement-learning/environment/blackjack"
	"github.com/BenjaminWills/reinforcement-learning/environment/randomwalk"
	"github.com/BenjaminWills/reinforcement-learning/timestep"
	"github.com/BenjaminWills/reinforcement-learning/utils/floatutils"
)

func TestNewControlValidatesConfig(t *testing.T) {
	base := Config{Episodes: 100, Alpha: 0.1, Gamma: 1.0, Epsilon: 0.1}

	t.Run("accepts a valid configuration", func(t *testing.T) {
		_, err := NewControl(base)
		require.NoError(t, err)
	})

	t.Run("rejects bad parameters", func(t *testing.T) {
		bad := []Config{
			{Episodes: 0, Alpha: 0.1, Gamma: 1.0, Epsilon: 0.1},
			{Episodes: -5, Alpha: 0.1, Gamma: 1.0, Epsilon: 0.1},
			{Episodes: 100, Alpha: -0.1, Gamma: 1.0, Epsilon: 0.1},
			{Episodes: 100, Alpha: 1.5, Gamma: 1.0, Epsilon: 0.1},
			{Episodes: 100, Alpha: 0.1, Gamma: 1.1, Epsilon: 0.1},
			{Episodes: 100, Alpha: 0.1, Gamma: 1.0, Epsilon: -0.2},
			{Episodes: 100, Alpha: 0.1, Gamma: 1.0, Epsilon: 0.1,
				EpsilonDecay: 1.5},
		}

		for _, config := range bad {
			c, err := NewControl(config)
			require.Nil(t, c)
			require.True(t, environment.IsInvalidParameter(err))
		}
	})

	t.Run("a decay of zero means no decay", func(t *testing.T) {
		config := base
		config.EpsilonDecay = 0
		_, err := NewControl(config)
		require.NoError(t, err)
	})
}

func TestControlLearnsRandomWalk(t *testing.T) {
	const seed uint64 = 11

	c, err := NewControl(Config{
		Episodes: 2_000,
		Alpha:    0.05,
		Gamma:    1.0,
		Epsilon:  0.1,
	})
	require.NoError(t, err)

	values, err := c.Train(randomwalk.New(seed), seed)
	require.NoError(t, err)
	require.NotNil(t, values)

	// The walk has a single action, so control degenerates to
	// evaluation of the random walk itself: Q(s, Walk) ~ s/6
	for s := 1; s <= 5; s++ {
		q := values.At(timestep.State(s), randomwalk.Walk)
		require.InDelta(t, float64(s)/6.0, q, 0.1)
	}
}

func TestControlLearnsBlackjackBasicDecisions(t *testing.T) {
	const seed uint64 = 7

	c, err := NewControl(Config{
		Episodes: 200_000,
		Alpha:    0.005,
		Gamma:    1.0,
		Epsilon:  0.1,
	})
	require.NoError(t, err)

	values, err := c.Train(blackjack.New(seed), seed)
	require.NoError(t, err)

	actions := []timestep.Action{blackjack.Hit, blackjack.Stick}

	// Two decisions with wide value margins: stick on a hard 20, and
	// hit a soft 13 against a dealer ten (hitting cannot bust)
	twenty := blackjack.StateOf(20, 10, false)
	greedy := floatutils.ArgMax(values.AtAll(twenty, actions))
	require.Equal(t, 1, greedy, "should stick on a hard 20")

	softThirteen := blackjack.StateOf(13, 10, true)
	greedy = floatutils.ArgMax(values.AtAll(softThirteen, actions))
	require.Equal(t, 0, greedy, "should hit a soft 13 against a ten")
}
