// Package blackjack implements the game of blackjack as a finite MDP
//
// Cards are drawn with replacement from a 13-rank deck, so each rank
// appears with probability 1/13 and a ten-valued card (10, J, Q, K)
// with probability 4/13. An ace counts 11 whenever that does not bust
// the hand, and 1 otherwise; a hand holding an ace counted as 11 has a
// usable ace. The dealer shows one card and hits until their total
// exceeds 16. Rewards are -1, 0 or +1 at termination for a loss, draw
// or win, and 0 on every other step.
//
// The player state is (player sum, dealer showing card, usable ace).
// Hands below a player sum of 12 are resolved by forced hits inside
// Reset, since hitting below 12 can never bust. At a sum of exactly 21
// the only legal action is Stick, so a dealt natural resolves on the
// next step; a natural pays the ordinary +1 with no bonus, and a draw
// against a dealer 21 pays 0.
package blackjack

import (
	"golang.org/x/exp/rand"

	"github.com/BenjaminWills/reinforcement-learning/environment"
	"github.com/BenjaminWills/reinforcement-learning/timestep"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// Hit draws another card
	Hit timestep.Action = 0

	// Stick ends the player's turn and plays out the dealer
	Stick timestep.Action = 1

	// Done is the single terminal state. The outcome of the hand is
	// carried by the reward on the transition into Done, not by the
	// state itself.
	Done timestep.State = numStates

	minPlayerSum   = 12
	maxPlayerSum   = 21
	numPlayerSums  = maxPlayerSum - minPlayerSum + 1
	numDealerCards = 10
	numStates      = numPlayerSums * numDealerCards * 2

	dealerStand = 17 // dealer hits on anything lower
)

// cardValues maps the 13 deck ranks 2..9, 10, J, Q, K, A to their
// values. An ace is drawn as 1 and promoted to 11 by the hand logic.
var cardValues = [13]int{2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 10, 10, 1}

// StateOf encodes a player state. StateOf panics when the components
// are outside their valid ranges: player sum 12..21, dealer card
// 1..10.
func StateOf(playerSum, dealerCard int, usableAce bool) timestep.State {
	if playerSum < minPlayerSum || playerSum > maxPlayerSum {
		panic("blackjack: player sum out of range")
	}
	if dealerCard < 1 || dealerCard > numDealerCards {
		panic("blackjack: dealer card out of range")
	}

	ace := 0
	if usableAce {
		ace = 1
	}
	index := (playerSum-minPlayerSum)*numDealerCards*2 + (dealerCard-1)*2 + ace
	return timestep.State(index)
}

// PlayerSum decodes the player's hand total from a non-terminal state
func PlayerSum(s timestep.State) int {
	return int(s)/(numDealerCards*2) + minPlayerSum
}

// DealerCard decodes the dealer's showing card from a non-terminal
// state. An ace shows as 1.
func DealerCard(s timestep.State) int {
	return (int(s)/2)%numDealerCards + 1
}

// UsableAce decodes whether the player holds an ace counted as 11
func UsableAce(s timestep.State) bool {
	return int(s)%2 == 1
}

// Blackjack implements the blackjack environment
type Blackjack struct {
	deck distuv.Categorical
}

// New returns a new Blackjack drawing cards with the given seed
func New(seed uint64) *Blackjack {
	weights := make([]float64, len(cardValues))
	for i := range weights {
		weights[i] = 1.0 / float64(len(weights))
	}

	return &Blackjack{
		deck: distuv.NewCategorical(weights, rand.NewSource(seed)),
	}
}

// Reset deals a new hand: two cards to the player, one showing card to
// the dealer, then forced hits until the player sum reaches 12
func (b *Blackjack) Reset() timestep.State {
	dealerCard := b.draw()

	sum, usable := 0, false
	sum, usable = addCard(sum, usable, b.draw())
	sum, usable = addCard(sum, usable, b.draw())

	// Sums below 12 always hit: another card can never bust them
	for sum < minPlayerSum {
		sum, usable = addCard(sum, usable, b.draw())
	}

	return StateOf(sum, dealerCard, usable)
}

// Actions returns the legal actions in a state. At a player sum of 21
// the hand cannot improve, so Stick is the only legal action.
func (b *Blackjack) Actions(s timestep.State) []timestep.Action {
	if b.IsTerminal(s) {
		return nil
	}
	if PlayerSum(s) == maxPlayerSum {
		return []timestep.Action{Stick}
	}
	return []timestep.Action{Hit, Stick}
}

// Step draws a card for the player, or plays out the dealer on Stick
func (b *Blackjack) Step(s timestep.State, a timestep.Action) (environment.Transition, error) {
	if !b.legal(s, a) {
		return environment.Transition{}, environment.NewInvalidAction(
			"blackjack.Step", a, s)
	}

	if a == Hit {
		sum, usable := addCard(PlayerSum(s), UsableAce(s), b.draw())
		if sum > maxPlayerSum {
			// Bust: the hand is lost regardless of the dealer
			return environment.Transition{
				State:    s,
				Action:   a,
				Reward:   -1.0,
				Next:     Done,
				Terminal: true,
			}, nil
		}

		return environment.Transition{
			State:  s,
			Action: a,
			Reward: 0.0,
			Next:   StateOf(sum, DealerCard(s), usable),
		}, nil
	}

	dealerScore := b.playDealer(DealerCard(s))

	return environment.Transition{
		State:    s,
		Action:   a,
		Reward:   outcome(PlayerSum(s), dealerScore),
		Next:     Done,
		Terminal: true,
	}, nil
}

// IsTerminal returns whether the hand is over
func (b *Blackjack) IsTerminal(s timestep.State) bool {
	return s == Done
}

// States enumerates every player state plus the terminal state
func (b *Blackjack) States() []timestep.State {
	states := make([]timestep.State, 0, numStates+1)
	for s := timestep.State(0); s <= Done; s++ {
		states = append(states, s)
	}
	return states
}

// playDealer draws the dealer's hole card and hits until the dealer
// stands, returning the dealer's final total
func (b *Blackjack) playDealer(showing int) int {
	sum, usable := addCard(0, false, showing)
	sum, usable = addCard(sum, usable, b.draw())

	for sum < dealerStand {
		sum, usable = addCard(sum, usable, b.draw())
	}
	return sum
}

// draw samples a card value from the deck. Aces are drawn as 1.
func (b *Blackjack) draw() int {
	return cardValues[int(b.deck.Rand())]
}

func (b *Blackjack) legal(s timestep.State, a timestep.Action) bool {
	if b.IsTerminal(s) {
		return false
	}
	if a == Stick {
		return true
	}
	return a == Hit && PlayerSum(s) < maxPlayerSum
}

// addCard adds a card to a hand, promoting a drawn ace to 11 when that
// does not bust and demoting a usable ace to 1 when the hand would
// otherwise bust
func addCard(sum int, usable bool, card int) (int, bool) {
	if card == 1 && sum+11 <= maxPlayerSum {
		return sum + 11, true
	}

	sum += card
	if sum > maxPlayerSum && usable {
		return sum - 10, false
	}
	return sum, usable
}

// outcome compares a non-bust player total against the dealer's
func outcome(playerScore, dealerScore int) float64 {
	switch {
	case dealerScore > maxPlayerSum:
		return 1.0
	case playerScore == dealerScore:
		return 0.0
	case playerScore > dealerScore:
		return 1.0
	default:
		return -1.0
	}
}
