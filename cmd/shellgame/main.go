package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xtding233/shellgame/internal/config"
)

var (
	// Global flags
	verbose   bool
	configDir string
	profile   string

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "shellgame",
	Short: "Monte Carlo shell game: random guessing vs parity-aware guessing",
	Long: `shellgame plays the three-cup shell game many times and compares a
uniform random guess with a guess that looks at the parity of the swap count.

Settings come from <config-dir>/default.yaml, an optional profile under
<config-dir>/profiles/, SHELLGAME_* environment variables and flags, in
increasing order of precedence.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging, including per-job progress")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "configs", "directory holding default.yaml and profiles/")
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "profile name under <config-dir>/profiles")

	addGameFlags(sweepCmd)
	addGameFlags(evaluateCmd)
	addGameFlags(playCmd)
	addRangeFlags(theoryCmd)
	rootCmd.AddCommand(sweepCmd, evaluateCmd, playCmd, theoryCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// settingsSource resolves settings for one command. The loader is kept so
// repeated resolutions (the watch loop) hit its cache until invalidated.
type settingsSource struct {
	loader  *config.Loader
	profile string
	o       config.Overrides
}

// newSettingsSource picks the config dir and profile from flags or
// environment, and stacks flag overrides over environment overrides.
func newSettingsSource(cmd *cobra.Command) (*settingsSource, error) {
	envCfg, err := config.ParseEnv()
	if err != nil {
		return nil, err
	}
	dir, prof := configDir, profile
	if !cmd.Flags().Changed("config-dir") && envCfg.ConfigDir != "" {
		dir = envCfg.ConfigDir
	}
	if !cmd.Flags().Changed("profile") && envCfg.Profile != "" {
		prof = envCfg.Profile
	}
	return &settingsSource{
		loader:  config.NewLoader(dir),
		profile: prof,
		o:       envCfg.Overrides().Merge(flagOverrides(cmd)),
	}, nil
}

// Settings resolves files, environment and flags, in that order.
func (src *settingsSource) Settings() (config.Settings, error) {
	s, err := src.loader.Resolve(src.profile, src.o)
	if err != nil {
		return config.Settings{}, err
	}
	logger.Debug("settings resolved",
		zap.String("config_dir", src.loader.Paths().BaseDir),
		zap.String("profile", src.profile),
		zap.String("version", s.Version),
		zap.Int("cups", s.Cups),
		zap.Int("iterations", s.Iterations),
	)
	return s, nil
}

// loadSettings is the one-shot form used by commands that resolve once.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	src, err := newSettingsSource(cmd)
	if err != nil {
		return config.Settings{}, err
	}
	return src.Settings()
}
