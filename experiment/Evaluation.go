package experiment

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/BenjaminWills/reinforcement-learning/agent"
	"github.com/BenjaminWills/reinforcement-learning/environment"
	"github.com/BenjaminWills/reinforcement-learning/episode"
	"github.com/BenjaminWills/reinforcement-learning/experiment/tracker"
	"github.com/BenjaminWills/reinforcement-learning/montecarlo"
	"github.com/BenjaminWills/reinforcement-learning/utils/progressbar"
)

// MonteCarloEvaluation is an Experiment that evaluates a fixed policy
// by first-visit constant-alpha Monte-Carlo over repeated episodes
type MonteCarloEvaluation struct {
	env       environment.Environment
	pol       agent.Policy
	estimator *montecarlo.Evaluation
	generator *episode.Generator
	episodes  int
	trackers  []tracker.Tracker
}

// NewMonteCarloEvaluation creates and returns a new evaluation
// experiment running episodes episodes of env under pol, folding each
// into estimator. Episode length is bounded at maxSteps; 0 uses the
// generator's default bound.
func NewMonteCarloEvaluation(env environment.Environment, pol agent.Policy,
	estimator *montecarlo.Evaluation, episodes, maxSteps int,
	trackers ...tracker.Tracker) (*MonteCarloEvaluation, error) {
	if episodes <= 0 {
		return nil, environment.NewInvalidParameter(
			"experiment.NewMonteCarloEvaluation", "episodes",
			float64(episodes))
	}

	generator, err := episode.NewGenerator(env, maxSteps)
	if err != nil {
		return nil, err
	}

	return &MonteCarloEvaluation{
		env:       env,
		pol:       pol,
		estimator: estimator,
		generator: generator,
		episodes:  episodes,
		trackers:  trackers,
	}, nil
}

// Register registers a tracker.Tracker with the experiment so that
// data generated during the experiment can be tracked and saved
func (m *MonteCarloEvaluation) Register(t tracker.Tracker) {
	m.trackers = append(m.trackers, t)
}

// Run generates and evaluates all episodes. Episodes that exceed the
// step bound are logged and skipped; they contribute nothing to the
// value estimates.
func (m *MonteCarloEvaluation) Run() error {
	bar := progressbar.New(os.Stdout, m.episodes)

	for i := 0; i < m.episodes; i++ {
		trajectory, err := m.generator.Generate(m.pol)
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
		bar.Increment()
	}

	log.Info().Int("episodes", m.episodes).
		Msg("Monte-Carlo evaluation finished")
	return nil
}

// Save saves all the data cached by the trackers to disk
func (m *MonteCarloEvaluation) Save() error {
	for _, t := range m.trackers {
		if err := t.Save(); err != nil {
			return err
		}
	}
	return nil
}
