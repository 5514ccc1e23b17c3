package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/xtding233/shellgame/internal/shell"
)

// Summary is the YAML record of one sweep. Only aggregated accuracies are
// kept, never individual trials.
type Summary struct {
	Version    string                   `yaml:"version,omitempty"`
	Cups       int                      `yaml:"cups"`
	Iterations int                      `yaml:"iterations"`
	Seed       *uint64                  `yaml:"seed,omitempty"`
	Swaps      []int                    `yaml:"swaps"`
	Strategies map[string]StrategyTrace `yaml:"strategies"`
}

type StrategyTrace struct {
	Accuracy     []float64 `yaml:"accuracy"`
	Expected     []float64 `yaml:"expected"`
	Mean         float64   `yaml:"mean"`
	MaxDeviation float64   `yaml:"max_deviation"`
}

// NewSummary collects a sweep result together with the settings that made it.
func NewSummary(s Settings, res shell.SweepResult) Summary {
	out := Summary{
		Version:    s.Version,
		Cups:       s.Cups,
		Iterations: s.Iterations,
		Seed:       s.Seed,
		Swaps:      res.Swaps,
		Strategies: make(map[string]StrategyTrace, len(shell.Strategies)),
	}
	for _, name := range shell.Strategies {
		st := res.Stats(name)
		out.Strategies[string(name)] = StrategyTrace{
			Accuracy:     res.Series(name),
			Expected:     res.Expected[name],
			Mean:         st.Mean,
			MaxDeviation: st.MaxDeviation,
		}
	}
	return out
}

// WriteSummary writes sum as YAML, creating parent directories.
func WriteSummary(path string, sum Summary) error {
	b, err := yaml.Marshal(sum)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// ReadSummary loads a summary written by WriteSummary.
func ReadSummary(path string) (Summary, error) {
	var sum Summary
	b, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, err
	}
	if err := yaml.Unmarshal(b, &sum); err != nil {
		return Summary{}, fmt.Errorf("%s: %w", path, err)
	}
	return sum, nil
}
