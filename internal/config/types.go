// types.go
package config

// Raw config loaded from YAML. Unset fields stay nil so that layers merge.
type RawConfig struct {
	Version string      `yaml:"version"`
	Game    GameConfig  `yaml:"game"`
	Run     RunConfig   `yaml:"run"`
	Plot    *PlotConfig `yaml:"plot,omitempty"`
	Notes   string      `yaml:"notes,omitempty"`
}

type GameConfig struct {
	Cups     *int `yaml:"cups"`
	MinSwaps *int `yaml:"min_swaps"`
	MaxSwaps *int `yaml:"max_swaps"`
}

type RunConfig struct {
	Iterations *int    `yaml:"iterations"`
	Seed       *uint64 `yaml:"seed,omitempty"`
	Workers    *int    `yaml:"workers,omitempty"`
}

type PlotConfig struct {
	Output       string   `yaml:"output"`
	Title        string   `yaml:"title,omitempty"`
	WidthIn      *float64 `yaml:"width_in,omitempty"`
	HeightIn     *float64 `yaml:"height_in,omitempty"`
	ShowExpected *bool    `yaml:"show_expected,omitempty"`
}

// Overrides carries values that win over every file layer (env, flags).
type Overrides struct {
	Cups         *int
	MinSwaps     *int
	MaxSwaps     *int
	Iterations   *int
	Seed         *uint64
	Workers      *int
	Output       *string
	ShowExpected *bool
}

// Settings is the normalized result handed to the simulator and the chart.
type Settings struct {
	Cups         int
	MinSwaps     int
	MaxSwaps     int
	Iterations   int
	Seed         *uint64
	Workers      int
	Output       string
	Title        string
	WidthIn      float64
	HeightIn     float64
	ShowExpected bool
	Version      string // effective config version for tracing
}
