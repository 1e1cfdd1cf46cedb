package experiment

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/BenjaminWills/reinforcement-learning/agent/policy"
	"github.com/BenjaminWills/reinforcement-learning/environment"
	"github.com/BenjaminWills/reinforcement-learning/episode"
	"github.com/BenjaminWills/reinforcement-learning/experiment/tracker"
	"github.com/BenjaminWills/reinforcement-learning/montecarlo"
	"github.com/BenjaminWills/reinforcement-learning/table"
	"github.com/BenjaminWills/reinforcement-learning/utils/progressbar"
)

// MonteCarloControl is an Experiment that learns an action-value
// function by ε-greedy Monte-Carlo control, the exploring counterpart
// of MonteCarloEvaluation. It runs the same loop as
// montecarlo.Control, adding trackers and progress display.
type MonteCarloControl struct {
	env       environment.Environment
	config    montecarlo.Config
	estimator *montecarlo.ActionEvaluation
	soft      *policy.EGreedy
	generator *episode.Generator
	trackers  []tracker.Tracker
}

// NewMonteCarloControl creates and returns a new control experiment on
// env with the given configuration and seed
func NewMonteCarloControl(env environment.Environment,
	config montecarlo.Config, seed uint64,
	trackers ...tracker.Tracker) (*MonteCarloControl, error) {
	// NewControl validates the full configuration
	if _, err := montecarlo.NewControl(config); err != nil {
		return nil, err
	}

	estimator, err := montecarlo.NewActionEvaluation(config.Alpha,
		config.Gamma, config.InitialValue)
	if err != nil {
		return nil, err
	}

	soft, err := policy.NewEGreedy(estimator.Values(), config.Epsilon,
		seed, env)
	if err != nil {
		return nil, err
	}

	generator, err := episode.NewGenerator(env, config.MaxEpisodeSteps)
	if err != nil {
		return nil, err
	}

	return &MonteCarloControl{
		env:       env,
		config:    config,
		estimator: estimator,
		soft:      soft,
		generator: generator,
		trackers:  trackers,
	}, nil
}

// Register registers a tracker.Tracker with the experiment
func (m *MonteCarloControl) Register(t tracker.Tracker) {
	m.trackers = append(m.trackers, t)
}

// Run trains for the configured number of episodes. The behaviour
// policy is ε-greedy over the live value estimates, so improvement
// is continuous; episodes that exceed the step bound are logged and
// skipped.
func (m *MonteCarloControl) Run() error {
	bar := progressbar.New(os.Stdout, m.config.Episodes)

	for i := 0; i < m.config.Episodes; i++ {
		trajectory, err := m.generator.Generate(m.soft)
		if episode.IsNonTerminating(err) {
			log.Warn().Int("episode", i).Err(err).
				Msg("skipping episode that did not terminate")
			bar.Increment()
			continue
		}
		if err != nil {
			return err
		}

		m.estimator.Update(trajectory)
		for _, t := range m.trackers {
			t.Track(i, trajectory)
		}

		if decay := m.config.EpsilonDecay; decay != 0 && decay != 1 {
			if err := m.soft.SetEpsilon(m.soft.Epsilon() * decay); err != nil {
				return err
			}
		}
		bar.Increment()
	}

	log.Info().Int("episodes", m.config.Episodes).
		Float64("epsilon", m.soft.Epsilon()).
		Msg("Monte-Carlo control finished")
	return nil
}

// Values returns the learned action-value table
func (m *MonteCarloControl) Values() *table.ActionValues {
	return m.estimator.Values()
}

// GreedyPolicy returns the greedy policy with respect to the learned
// values, the experiment's learned behaviour
func (m *MonteCarloControl) GreedyPolicy(seed uint64) *policy.EGreedy {
	return policy.NewGreedy(m.estimator.Values(), seed, m.env)
}

// Save saves all the data cached by the trackers to disk
func (m *MonteCarloControl) Save() error {
	for _, t := range m.trackers {
		if err := t.Save(); err != nil {
			return err
		}
	}
	return nil
}
