package main

import (
	"fmt"
	"os"

	"github.com/BenjaminWills/reinforcement-learning/examples"
)

func main() {
	name := "randomwalk"
	if len(os.Args) > 1 {
		name = os.Args[1]
	}

	switch name {
	case "randomwalk":
		examples.RandomWalk()
	case "gambler":
		examples.Gambler()
	case "blackjack":
		examples.Blackjack()
	default:
		fmt.Printf("unknown example %q: want randomwalk, gambler or "+
			"blackjack\n", name)
		os.Exit(1)
	}
}
