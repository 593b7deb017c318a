package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// config holds the defaults that can be read from a TOML file. Flags given on
// the command line always win.
type config struct {
	Radix    int    `toml:"radix"`
	Endian   string `toml:"endian"`
	Color    string `toml:"color"`
	LogLevel string `toml:"loglevel"`
	Dump     bool   `toml:"dump"`
}

func defaultConfig() config {
	return config{
		Radix:    10,
		Endian:   "be",
		Color:    "auto",
		LogLevel: "warn",
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// resolveConfig loads the --config file, then overlays any persistent flags
// the user set explicitly.
func resolveConfig(cmd *cobra.Command) (config, error) {
	flags := cmd.Root().PersistentFlags()

	path, err := flags.GetString("config")
	if err != nil {
		return config{}, err
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return cfg, err
	}

	if flags.Changed("radix") {
		if cfg.Radix, err = flags.GetInt("radix"); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("endian") {
		if cfg.Endian, err = flags.GetString("endian"); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("color") {
		if cfg.Color, err = flags.GetString("color"); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("loglevel") {
		if cfg.LogLevel, err = flags.GetString("loglevel"); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("dump") {
		if cfg.Dump, err = flags.GetBool("dump"); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.validate()
}

func (cfg config) validate() error {
	switch cfg.Radix {
	case 10, 16:
	default:
		return fmt.Errorf("radix must be 10 or 16, found %d", cfg.Radix)
	}
	switch cfg.Endian {
	case "le", "be":
	default:
		return fmt.Errorf("endian must be le or be, found %q", cfg.Endian)
	}
	switch cfg.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("color must be auto, on or off, found %q", cfg.Color)
	}
	return nil
}
