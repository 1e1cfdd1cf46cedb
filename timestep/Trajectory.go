package timestep

// Trajectory is the ordered record of a single episode, from the first
// transition to the terminating one. Trajectories are created fresh by
// an episode generator and discarded once folded into a value function.
type Trajectory []TimeStep

// Returns computes the discounted return from each timestep to the end
// of the episode: G_t = sum_{k=t}^{T} gamma^{k-t} * r_k. The returned
// slice is index-aligned with the trajectory.
func (traj Trajectory) Returns(gamma float64) []float64 {
	returns := make([]float64, len(traj))

	g := 0.0
	for i := len(traj) - 1; i >= 0; i-- {
		g = traj[i].Reward + gamma*g
		returns[i] = g
	}
	return returns
}

// TotalReward returns the undiscounted sum of rewards in the episode
func (traj Trajectory) TotalReward() float64 {
	total := 0.0
	for _, step := range traj {
		total += step.Reward
	}
	return total
}
