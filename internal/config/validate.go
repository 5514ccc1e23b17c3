package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateRaw checks semantic constraints of a RawConfig.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	// game
	if cfg.Game.Cups != nil && *cfg.Game.Cups < 2 {
		errs = append(errs, "game.cups must be >= 2")
	}
	if cfg.Game.MinSwaps != nil && *cfg.Game.MinSwaps < 1 {
		errs = append(errs, "game.min_swaps must be >= 1")
	}
	if cfg.Game.MinSwaps != nil && cfg.Game.MaxSwaps != nil && *cfg.Game.MaxSwaps < *cfg.Game.MinSwaps {
		errs = append(errs, "game.max_swaps must be >= game.min_swaps")
	}

	// run
	if cfg.Run.Iterations != nil && *cfg.Run.Iterations <= 0 {
		errs = append(errs, "run.iterations must be > 0")
	}
	if cfg.Run.Workers != nil && *cfg.Run.Workers < 0 {
		errs = append(errs, "run.workers must be >= 0 (0 means one per CPU)")
	}

	// plot
	if cfg.Plot != nil {
		if cfg.Plot.WidthIn != nil && *cfg.Plot.WidthIn <= 0 {
			errs = append(errs, "plot.width_in must be > 0")
		}
		if cfg.Plot.HeightIn != nil && *cfg.Plot.HeightIn <= 0 {
			errs = append(errs, "plot.height_in must be > 0")
		}
		if cfg.Plot.Output != "" {
			switch strings.ToLower(filepath.Ext(cfg.Plot.Output)) {
			case ".png", ".jpg", ".jpeg", ".svg", ".pdf", ".eps", ".tif", ".tiff":
			default:
				errs = append(errs, fmt.Sprintf("plot.output %q has an unsupported extension", cfg.Plot.Output))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
