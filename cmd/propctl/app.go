package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bindprop/internal/config"
	"bindprop/internal/logging"
)

// appState is what setupApp resolved for the running command.
type appState struct {
	cfg        config.Config
	configPath string
	color      bool
	quiet      bool
	timings    bool
	cleanup    func()
}

var app appState

func (a *appState) close() {
	if a.cleanup != nil {
		a.cleanup()
		a.cleanup = nil
	}
}

// setupApp loads the configuration, applies flag overrides and installs the
// logging sink. It runs before every subcommand.
func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, path, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyFlagOverrides(cmd, &cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	mode, err := config.ParseColor(cfg.Log.Color)
	if err != nil {
		return err
	}
	useColor := mode.Resolve(isTerminal(os.Stdout))
	color.NoColor = !useColor

	flags := cmd.Root().PersistentFlags()
	quiet, err := flags.GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	timings, err := flags.GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	cleanup, err := setupLogging(cmd, cfg.Log)
	if err != nil {
		return err
	}
	app = appState{
		cfg:        cfg,
		configPath: path,
		color:      useColor,
		quiet:      quiet,
		timings:    timings,
		cleanup:    cleanup,
	}
	if path != "" {
		logging.Debugf("config: loaded %s", path)
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	explicit, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, "", fmt.Errorf("failed to get config flag: %w", err)
	}
	if explicit != "" {
		cfg, err := config.Load(explicit)
		return cfg, explicit, err
	}
	return config.Discover(".")
}

// applyFlagOverrides copies every explicitly set logging flag over cfg.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Root().PersistentFlags()
	stringFlags := []struct {
		name string
		dst  *string
	}{
		{"log-level", &cfg.Log.Level},
		{"log-format", &cfg.Log.Format},
		{"log-output", &cfg.Log.Output},
		{"color", &cfg.Log.Color},
	}
	for _, f := range stringFlags {
		if !flags.Changed(f.name) {
			continue
		}
		v, err := flags.GetString(f.name)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", f.name, err)
		}
		*f.dst = v
	}
	if flags.Changed("log-detailed") {
		v, err := flags.GetBool("log-detailed")
		if err != nil {
			return fmt.Errorf("failed to get log-detailed flag: %w", err)
		}
		cfg.Log.Detailed = v
	}
	return nil
}
