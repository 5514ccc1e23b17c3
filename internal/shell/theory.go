package shell

import "math"

// ReturnProbability is the chance that k forced swaps among n cups end on the
// starting cup: 1/n + (n-1)/n * (-1/(n-1))^k.
func ReturnProbability(n, k int) float64 {
	if n < 2 {
		return 1
	}
	nf := float64(n)
	return 1/nf + (nf-1)/nf*math.Pow(-1/(nf-1), float64(k))
}

// Expected returns the exact accuracy of strategy s with k swaps on n cups.
func Expected(s StrategyName, n, k int) float64 {
	switch s {
	case StrategyRandom:
		return 1 / float64(n)
	case StrategySmart:
		back := ReturnProbability(n, k)
		if k%2 == 0 {
			return back
		}
		// the item sits on each of the other n-1 cups with equal chance
		return (1 - back) / float64(n-1)
	}
	return math.NaN()
}
