package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/mines"
)

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

type LogConfig struct {
	File       string `json:"file"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

type Config struct {
	Mode string           `json:"mode"`
	Game mines.GameParams `json:"game"`
	Seed *uint64          `json:"seed,omitempty"`
	Log  LogConfig        `json:"log"`
}

func Default() *Config {
	return &Config{
		Mode: ModeProduction,
		Game: Presets[PresetClassic],
		Log: LogConfig{
			File:       "mines.log",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load builds a config from defaults, then the JSON file at path (skipped
// when path is empty), then MINES_* environment variables.
func Load(path string) (*Config, error) {
	config := Default()
	if path != "" {
		if err := ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}
	if err := config.loadEnv(); err != nil {
		return nil, err
	}
	return config, nil
}

func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}

func (c *Config) loadEnv() error {
	if mode, ok := os.LookupEnv("MINES_MODE"); ok {
		c.Mode = mode
	}
	if preset, ok := os.LookupEnv("MINES_PRESET"); ok {
		if err := c.SetPreset(preset); err != nil {
			return fmt.Errorf("MINES_PRESET: %w", err)
		}
	}
	if game, ok := os.LookupEnv("MINES_GAME"); ok {
		if err := c.SetGame(game); err != nil {
			return fmt.Errorf("MINES_GAME: %w", err)
		}
	}
	if seedStr, ok := os.LookupEnv("MINES_SEED"); ok {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			return fmt.Errorf("unable to convert MINES_SEED to uint64: %w", err)
		}
		c.Seed = &seed
	}
	if file, ok := os.LookupEnv("MINES_LOG_FILE"); ok {
		c.Log.File = file
	}
	return nil
}

func (c *Config) SetPreset(name string) error {
	params, ok := Presets[name]
	if !ok {
		return fmt.Errorf("unknown preset %q", name)
	}
	c.Game = params
	return nil
}

func (c *Config) SetGame(query string) error {
	params, err := ParseGameParams(query)
	if err != nil {
		return err
	}
	c.Game = params
	return nil
}

func (c Config) Validate() error {
	switch c.Mode {
	case ModeDevelopment, ModeProduction:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	return c.Game.Validate()
}

func (c Config) Production() bool {
	return c.Mode == ModeProduction
}

func (c Config) Development() bool {
	return c.Mode != ModeProduction
}

func (c Config) Fields() logrus.Fields {
	fields := logrus.Fields{
		"mode":             c.Mode,
		"game":             c.Game.String(),
		"log_file":         c.Log.File,
		"log_max_size_mb":  c.Log.MaxSizeMB,
		"log_max_backups":  c.Log.MaxBackups,
		"log_max_age_days": c.Log.MaxAgeDays,
	}
	if c.Seed != nil {
		fields["seed"] = *c.Seed
	}
	return fields
}
