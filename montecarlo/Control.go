package montecarlo

import (
	"github.com/rs/zerolog/log"

	"github.com/BenjaminWills/reinforcement-learning/agent/policy"
	"github.com/BenjaminWills/reinforcement-learning/environment"
	"github.com/BenjaminWills/reinforcement-learning/episode"
	"github.com/BenjaminWills/reinforcement-learning/table"
)

// Config holds the hyperparameters of a Monte-Carlo control run
type Config struct {
	// Episodes is the number of episodes to train for
	Episodes int

	// Alpha is the constant step size of the value updates
	Alpha float64

	// Gamma is the discount factor
	Gamma float64

	// Epsilon is the exploration probability of the behaviour policy
	Epsilon float64

	// EpsilonDecay multiplies Epsilon after every episode. A decay of
	// 0 or 1 holds Epsilon constant throughout training.
	EpsilonDecay float64

	// InitialValue is the value every (state, action) pair starts at
	InitialValue float64

	// MaxEpisodeSteps bounds episode length; 0 uses the episode
	// generator's default
	MaxEpisodeSteps int
}

// validate checks every numeric parameter before any simulation work
func (c Config) validate() error {
	op := "montecarlo.NewControl"
	if c.Episodes <= 0 {
		return environment.NewInvalidParameter(op, "episodes",
			float64(c.Episodes))
	}
	if err := validateFraction(op, "alpha", c.Alpha); err != nil {
		return err
	}
	if err := validateFraction(op, "gamma", c.Gamma); err != nil {
		return err
	}
	if err := validateFraction(op, "epsilon", c.Epsilon); err != nil {
		return err
	}
	if c.EpsilonDecay != 0 {
		return validateFraction(op, "epsilonDecay", c.EpsilonDecay)
	}
	return nil
}

// Control learns an action-value function by generalized policy
// iteration: each episode is generated under an ε-greedy policy
// derived live from the current estimates, then folded into the
// estimates by first-visit constant-alpha updates. Because the policy
// is a view over the value table, improvement is implicit and
// continuous; there is no separate improvement step to forget to run.
type Control struct {
	config Config
}

// NewControl returns a new Control with the given configuration
func NewControl(config Config) (*Control, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &Control{config: config}, nil
}

// Train runs the control loop on env for the configured number of
// episodes and returns the learned action-value table. The greedy
// policy with respect to the returned table is the learned behaviour;
// derive it with policy.NewGreedy.
//
// Episodes that exceed the step bound are logged, skipped and not
// counted: they yield no trajectory, so the value table is never
// corrupted by a partial episode. Any other episode failure aborts
// training.
func (c *Control) Train(env environment.Environment, seed uint64) (*table.ActionValues, error) {
	estimator, err := NewActionEvaluation(c.config.Alpha, c.config.Gamma,
		c.config.InitialValue)
	if err != nil {
		return nil, err
	}

	soft, err := policy.NewEGreedy(estimator.Values(), c.config.Epsilon,
		seed, env)
	if err != nil {
		return nil, err
	}

	generator, err := episode.NewGenerator(env, c.config.MaxEpisodeSteps)
	if err != nil {
		return nil, err
	}

	for i := 0; i < c.config.Episodes; i++ {
		trajectory, err := generator.Generate(soft)
		if episode.IsNonTerminating(err) {
			log.Warn().Int("episode", i).Err(err).
				Msg("skipping episode that did not terminate")
			continue
		}
		if err != nil {
			return nil, err
		}

		estimator.Update(trajectory)

		if decay := c.config.EpsilonDecay; decay != 0 && decay != 1 {
			if err := soft.SetEpsilon(soft.Epsilon() * decay); err != nil {
				return nil, err
			}
		}
	}

	return estimator.Values(), nil
}
