// Package gambler implements the gambler's problem environment
//
// A gambler repeatedly bets on a biased coin flip. On heads the stake
// is won, on tails it is lost. The episode ends when the gambler's
// capital reaches the goal of 100 (reward 1) or falls to 0 (reward 0).
// From capital s the legal bets are 1 up to min(s, 100-s): the gambler
// can never bet more than they hold, nor more than is needed to reach
// the goal.
package gambler

import (
	"golang.org/x/exp/rand"

	"github.com/BenjaminWills/reinforcement-learning/environment"
	"github.com/BenjaminWills/reinforcement-learning/timestep"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// Ruin is the losing terminal state
	Ruin timestep.State = 0

	// Goal is the winning terminal state
	Goal timestep.State = 100
)

// Gambler implements the gambler's problem. Its transition dynamics
// are fully known, so Gambler satisfies environment.Model and can be
// solved by planning methods as well as simulated.
type Gambler struct {
	headsProbability float64
	starter          environment.Starter
	coin             distuv.Bernoulli
}

// New returns a new Gambler whose coin lands heads with probability
// headsProbability. Episodes start with a uniformly random capital in
// 1..99, matching a gambler entering the game with an arbitrary stake.
func New(headsProbability float64, seed uint64) (*Gambler, error) {
	starts := make([]timestep.State, 0, int(Goal)-1)
	for s := Ruin + 1; s < Goal; s++ {
		starts = append(starts, s)
	}
	starter := environment.NewCategoricalStarter(starts, seed)

	return NewWithStarter(headsProbability, seed, starter)
}

// NewWithStarter returns a new Gambler drawing its starting capital
// from starter
func NewWithStarter(headsProbability float64, seed uint64,
	starter environment.Starter) (*Gambler, error) {
	if headsProbability < 0.0 || headsProbability > 1.0 {
		return nil, environment.NewInvalidParameter("gambler.New",
			"headsProbability", headsProbability)
	}

	coin := distuv.Bernoulli{P: headsProbability, Src: rand.NewSource(seed)}

	return &Gambler{
		headsProbability: headsProbability,
		starter:          starter,
		coin:             coin,
	}, nil
}

// Reset starts a new episode, returning the starting capital
func (g *Gambler) Reset() timestep.State {
	return g.starter.Start()
}

// Actions returns the legal bets from state s: 1 up to
// min(s, Goal-s). Terminal states have no legal bets.
func (g *Gambler) Actions(s timestep.State) []timestep.Action {
	if g.IsTerminal(s) {
		return nil
	}

	maxBet := min(int(s), int(Goal-s))
	bets := make([]timestep.Action, maxBet)
	for i := range bets {
		bets[i] = timestep.Action(i + 1)
	}
	return bets
}

// Step flips the coin and moves the gambler's capital by the bet,
// rewarding 1 only when the goal is reached
func (g *Gambler) Step(s timestep.State, a timestep.Action) (environment.Transition, error) {
	if !g.legal(s, a) {
		return environment.Transition{}, environment.NewInvalidAction(
			"gambler.Step", a, s)
	}

	next := s - timestep.State(a)
	if g.coin.Rand() == 1 {
		next = s + timestep.State(a)
	}

	reward := 0.0
	if next == Goal {
		reward = 1.0
	}

	return environment.Transition{
		State:    s,
		Action:   a,
		Reward:   reward,
		Next:     next,
		Terminal: g.IsTerminal(next),
	}, nil
}

// IsTerminal returns whether the capital has reached ruin or the goal
func (g *Gambler) IsTerminal(s timestep.State) bool {
	return s == Ruin || s == Goal
}

// States enumerates every capital from ruin to the goal
func (g *Gambler) States() []timestep.State {
	states := make([]timestep.State, 0, int(Goal)+1)
	for s := Ruin; s <= Goal; s++ {
		states = append(states, s)
	}
	return states
}

// Outcomes returns the two possible results of a bet: win with the
// heads probability, lose with its complement
func (g *Gambler) Outcomes(s timestep.State, a timestep.Action) ([]environment.Outcome, error) {
	if !g.legal(s, a) {
		return nil, environment.NewInvalidAction("gambler.Outcomes", a, s)
	}

	win := s + timestep.State(a)
	lose := s - timestep.State(a)

	winReward := 0.0
	if win == Goal {
		winReward = 1.0
	}

	return []environment.Outcome{
		{
			Probability: g.headsProbability,
			Reward:      winReward,
			Next:        win,
			Terminal:    g.IsTerminal(win),
		},
		{
			Probability: 1.0 - g.headsProbability,
			Reward:      0.0,
			Next:        lose,
			Terminal:    g.IsTerminal(lose),
		},
	}, nil
}

// legal returns whether bet a can be placed from state s
func (g *Gambler) legal(s timestep.State, a timestep.Action) bool {
	if g.IsTerminal(s) {
		return false
	}
	return int(a) >= 1 && int(a) <= min(int(s), int(Goal-s))
}

// BetMax is a betting strategy that always stakes as much as the
// state allows: min(capital, Goal-capital)
func BetMax(s timestep.State) timestep.Action {
	return timestep.Action(min(int(s), int(Goal-s)))
}

// BetOne is a betting strategy that always stakes a single unit
func BetOne(timestep.State) timestep.Action {
	return 1
}
