package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// config captures the optional bigcalc.toml settings.
type config struct {
	Output outputConfig `toml:"output"`
}

type outputConfig struct {
	Color  string `toml:"color"`
	Prompt string `toml:"prompt"`
}

func defaultConfig() config {
	return config{Output: outputConfig{Color: "auto", Prompt: "> "}}
}

// loadConfig reads the configuration for cmd: the file named by the
// --config flag, or a bigcalc.toml in the working directory if one
// exists. The --color flag, when set, overrides the configured mode.
func loadConfig(cmd *cobra.Command) (config, error) {
	cfg := defaultConfig()

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return cfg, err
	}
	explicit := path != ""
	if !explicit {
		path = "bigcalc.toml"
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
	}

	if mode, err := cmd.Flags().GetString("color"); err == nil && mode != "" {
		cfg.Output.Color = mode
	}
	switch cfg.Output.Color {
	case "auto", "on", "off":
	default:
		return cfg, fmt.Errorf("unsupported color mode %q (must be auto, on, or off)", cfg.Output.Color)
	}
	if cfg.Output.Prompt == "" {
		cfg.Output.Prompt = "> "
	}
	return cfg, nil
}

// colorEnabled resolves the configured color mode against the output file.
func colorEnabled(mode string, f *os.File) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	}
	return isTerminal(f)
}
