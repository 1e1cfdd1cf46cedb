package tracker

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/BenjaminWills/reinforcement-learning/timestep"
)

// Return tracks the episodic return of every episode in an experiment.
// For tasks whose only reward is 1 on success, the mean of the tracked
// returns is the policy's win rate.
type Return struct {
	episodeReturns []float64
	filename       string
}

// NewReturn creates and returns a new *Return Tracker saving to
// filename
func NewReturn(filename string) *Return {
	return &Return{filename: filename}
}

// Track caches the total reward of a completed episode
func (r *Return) Track(_ int, trajectory timestep.Trajectory) {
	r.episodeReturns = append(r.episodeReturns, trajectory.TotalReward())
}

// Returns returns the episodic returns tracked so far
func (r *Return) Returns() []float64 {
	return r.episodeReturns
}

// Mean returns the mean episodic return tracked so far, 0 if no
// episodes were tracked
func (r *Return) Mean() float64 {
	if len(r.episodeReturns) == 0 {
		return 0.0
	}

	total := 0.0
	for _, g := range r.episodeReturns {
		total += g
	}
	return total / float64(len(r.episodeReturns))
}

// Save writes the tracked returns to disk
func (r *Return) Save() error {
	file, err := os.Create(r.filename)
	if err != nil {
		return fmt.Errorf("save: could not open save file: %w", err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(r.episodeReturns); err != nil {
		return fmt.Errorf("save: could not encode return data: %w", err)
	}
	return nil
}

// LoadReturns reads returns saved by a Return Tracker back from disk
func LoadReturns(filename string) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loadreturns: could not open file: %w", err)
	}
	defer file.Close()

	var returns []float64
	if err := gob.NewDecoder(file).Decode(&returns); err != nil {
		return nil, fmt.Errorf("loadreturns: could not decode data: %w", err)
	}
	return returns, nil
}
