// Package experiment implements functionality for running an experiment
//
// An experiment orchestrates repeated episode generation against an
// environment, feeding completed trajectories to an estimator and to
// any registered trackers. Experiments display a progress bar while
// running and log skipped episodes; the algorithms they orchestrate
// live in the montecarlo package and carry no such machinery.
package experiment

import "github.com/BenjaminWills/reinforcement-learning/experiment/tracker"

// Experiment outlines structs that can run experiments. Run generates
// and consumes all episodes; Save writes the data cached by every
// registered tracker to disk, and is usually called once after Run.
type Experiment interface {
	Run() error
	Save() error

	// Register adds a tracker to the experiment. Trackers observe
	// every completed episode.
	Register(tracker.Tracker)
}
