package shell

import "fmt"

// StrategyName selects a guessing rule.
type StrategyName string

const (
	// Guess uniformly, ignoring everything about the trial.
	StrategyRandom StrategyName = "random"
	// Guess from swap-count parity: the start cup for even counts,
	// any other cup for odd counts.
	StrategySmart StrategyName = "smart"
)

// Strategies lists the known strategies in plotting order.
var Strategies = []StrategyName{StrategyRandom, StrategySmart}

// Strategy maps what the player observed to a guessed final position.
// The guess must not look at t.Final.
type Strategy interface {
	Name() StrategyName
	Guess(p Params, t Trial, rng RandomSource) int
}

type randomGuess struct{}

func (randomGuess) Name() StrategyName { return StrategyRandom }

func (randomGuess) Guess(p Params, _ Trial, rng RandomSource) int {
	return Between(rng, 1, p.Cups)
}

type smartGuess struct{}

func (smartGuess) Name() StrategyName { return StrategySmart }

// Even counts come back to the start more often than 1/N on the cycle of
// forced moves; odd counts less often, so any other cup is the better bet.
func (smartGuess) Guess(p Params, t Trial, rng RandomSource) int {
	if t.Swaps%2 == 0 {
		return t.Initial
	}
	return DrawExcluding(rng, 1, p.Cups, t.Initial)
}

var (
	RandomGuess Strategy = randomGuess{}
	SmartGuess  Strategy = smartGuess{}
)

// StrategyByName resolves a strategy by its name.
func StrategyByName(name StrategyName) (Strategy, error) {
	switch name {
	case StrategyRandom:
		return RandomGuess, nil
	case StrategySmart:
		return SmartGuess, nil
	}
	return nil, fmt.Errorf("unknown strategy %q", name)
}
