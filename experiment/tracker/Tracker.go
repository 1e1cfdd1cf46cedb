// Package tracker implements tracking of data generated during an
// experiment
//
// Trackers observe each completed episode and cache whatever data they
// are interested in. After an experiment has been run, the Save()
// method takes all cached data and writes it to disk, gob-encoded.
package tracker

import "github.com/BenjaminWills/reinforcement-learning/timestep"

// Tracker tracks data generated by the episodes of an experiment
type Tracker interface {
	// Track observes the trajectory of a completed episode. Episodes
	// are numbered from 0 in the order they were generated.
	Track(episode int, trajectory timestep.Trajectory)

	// Save writes all tracked data to disk
	Save() error
}
