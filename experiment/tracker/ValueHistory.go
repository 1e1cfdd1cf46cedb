package tracker

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/BenjaminWills/reinforcement-learning/table"
	"github.com/BenjaminWills/reinforcement-learning/timestep"
)

// ValueHistory periodically snapshots a state-value table during an
// experiment, recording how the estimates evolve over training. One
// snapshot is taken every interval episodes.
type ValueHistory struct {
	values    *table.StateValues
	interval  int
	snapshots []map[timestep.State]float64
	filename  string
}

// NewValueHistory creates and returns a new *ValueHistory Tracker
// snapshotting values every interval episodes and saving to filename.
// An interval below 1 snapshots every episode.
func NewValueHistory(values *table.StateValues, interval int,
	filename string) *ValueHistory {
	if interval < 1 {
		interval = 1
	}

	return &ValueHistory{
		values:   values,
		interval: interval,
		filename: filename,
	}
}

// Track snapshots the value table when the episode lands on the
// snapshot interval
func (v *ValueHistory) Track(episode int, _ timestep.Trajectory) {
	if episode%v.interval == 0 {
		v.snapshots = append(v.snapshots, v.values.Snapshot())
	}
}

// Snapshots returns the snapshots taken so far
func (v *ValueHistory) Snapshots() []map[timestep.State]float64 {
	return v.snapshots
}

// Save writes the tracked snapshots to disk
func (v *ValueHistory) Save() error {
	file, err := os.Create(v.filename)
	if err != nil {
		return fmt.Errorf("save: could not open save file: %w", err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(v.snapshots); err != nil {
		return fmt.Errorf("save: could not encode value history: %w", err)
	}
	return nil
}
