package shell

// Tracker observes evaluation progress. It never affects results.
type Tracker interface {
	Advance(n int)
	Done()
}

type nopTracker struct{}

func (nopTracker) Advance(int) {}
func (nopTracker) Done()       {}

// progressStep batches tracker updates so the hot loop stays cheap.
const progressStep = 4096

// Evaluate plays p.Iterations games with a pinned swap count and returns the
// fraction in which s guessed the final position.
func Evaluate(p Params, s Strategy, swaps int, rng RandomSource, tr Tracker) float64 {
	if p.Iterations <= 0 {
		return 0
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	if tr == nil {
		tr = nopTracker{}
	}
	defer tr.Done()

	correct := 0
	pending := 0
	for i := 0; i < p.Iterations; i++ {
		t := p.Walk(rng, swaps, nil)
		if s.Guess(p, t, rng) == t.Final {
			correct++
		}
		pending++
		if pending == progressStep {
			tr.Advance(pending)
			pending = 0
		}
	}
	if pending > 0 {
		tr.Advance(pending)
	}
	return float64(correct) / float64(p.Iterations)
}

// EvaluateRandom scores the uniform random guess.
func EvaluateRandom(p Params, swaps int, rng RandomSource, tr Tracker) float64 {
	return Evaluate(p, RandomGuess, swaps, rng, tr)
}

// EvaluateSmart scores the parity-aware guess.
func EvaluateSmart(p Params, swaps int, rng RandomSource, tr Tracker) float64 {
	return Evaluate(p, SmartGuess, swaps, rng, tr)
}
