package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvOverrides maps SHELLGAME_* variables. Unset variables stay nil.
type EnvOverrides struct {
	Profile      string  `env:"SHELLGAME_PROFILE"`
	ConfigDir    string  `env:"SHELLGAME_CONFIG_DIR"`
	Cups         *int    `env:"SHELLGAME_CUPS"`
	MinSwaps     *int    `env:"SHELLGAME_MIN_SWAPS"`
	MaxSwaps     *int    `env:"SHELLGAME_MAX_SWAPS"`
	Iterations   *int    `env:"SHELLGAME_ITERATIONS"`
	Seed         *uint64 `env:"SHELLGAME_SEED"`
	Workers      *int    `env:"SHELLGAME_WORKERS"`
	Output       *string `env:"SHELLGAME_OUTPUT"`
	ShowExpected *bool   `env:"SHELLGAME_SHOW_EXPECTED"`
}

// ParseEnv loads overrides from environment variables.
func ParseEnv() (EnvOverrides, error) {
	var e EnvOverrides
	if err := env.Parse(&e); err != nil {
		return EnvOverrides{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Overrides converts the environment layer.
func (e EnvOverrides) Overrides() Overrides {
	return Overrides{
		Cups:         e.Cups,
		MinSwaps:     e.MinSwaps,
		MaxSwaps:     e.MaxSwaps,
		Iterations:   e.Iterations,
		Seed:         e.Seed,
		Workers:      e.Workers,
		Output:       e.Output,
		ShowExpected: e.ShowExpected,
	}
}

// Merge lays o over base, o winning where set.
func (base Overrides) Merge(o Overrides) Overrides {
	return Overrides{
		Cups:         pick(base.Cups, o.Cups),
		MinSwaps:     pick(base.MinSwaps, o.MinSwaps),
		MaxSwaps:     pick(base.MaxSwaps, o.MaxSwaps),
		Iterations:   pick(base.Iterations, o.Iterations),
		Seed:         pick(base.Seed, o.Seed),
		Workers:      pick(base.Workers, o.Workers),
		Output:       pick(base.Output, o.Output),
		ShowExpected: pick(base.ShowExpected, o.ShowExpected),
	}
}
