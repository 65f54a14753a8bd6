package config

import (
	"fmt"
	"os"
	"time"

	"RoachSentinel/internal/scenario"
	"RoachSentinel/internal/theme"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Demo struct {
		CycleInterval    time.Duration `yaml:"cycle_interval"`
		PlaybackInterval time.Duration `yaml:"playback_interval"`
		StartScenario    string        `yaml:"start_scenario"`
		Autoplay         bool          `yaml:"autoplay"`
	} `yaml:"demo"`
	Schedule struct {
		RotateCron  string `yaml:"rotate_cron"`
		SummaryCron string `yaml:"summary_cron"`
	} `yaml:"schedule"`
	Display struct {
		Theme string `yaml:"theme"`
		Color bool   `yaml:"color"`
	} `yaml:"display"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies .env and environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Demo.Autoplay = true
	cfg.Display.Color = true

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// A missing .env is fine.
	_ = godotenv.Load()

	// Environment variable overrides
	if v := os.Getenv("CYCLE_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("CYCLE_INTERVAL: %w", err)
		}
		cfg.Demo.CycleInterval = d
	}
	if v := os.Getenv("PLAYBACK_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("PLAYBACK_INTERVAL: %w", err)
		}
		cfg.Demo.PlaybackInterval = d
	}
	if v := os.Getenv("START_SCENARIO"); v != "" {
		cfg.Demo.StartScenario = v
	}
	if v := os.Getenv("ROTATE_CRON"); v != "" {
		cfg.Schedule.RotateCron = v
	}
	if v := os.Getenv("SUMMARY_CRON"); v != "" {
		cfg.Schedule.SummaryCron = v
	}
	if v := os.Getenv("THEME"); v != "" {
		cfg.Display.Theme = v
	}
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.Display.Color = false
	}
	if v, ok := os.LookupEnv("SQLITE_PATH"); ok {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Demo.CycleInterval == 0 {
		cfg.Demo.CycleInterval = 4 * time.Second
	}
	if cfg.Demo.PlaybackInterval == 0 {
		cfg.Demo.PlaybackInterval = 800 * time.Millisecond
	}
	if cfg.Demo.StartScenario == "" {
		cfg.Demo.StartScenario = scenario.Stable
	}
	if cfg.Schedule.RotateCron == "" {
		cfg.Schedule.RotateCron = "*/30 * * * * *"
	}
	if cfg.Schedule.SummaryCron == "" {
		cfg.Schedule.SummaryCron = "0 * * * * *"
	}
	if cfg.Display.Theme == "" {
		cfg.Display.Theme = string(theme.Dark)
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.Demo.CycleInterval <= 0 {
		return fmt.Errorf("demo.cycle_interval must be positive")
	}
	if c.Demo.PlaybackInterval <= 0 {
		return fmt.Errorf("demo.playback_interval must be positive")
	}
	if _, err := scenario.Get(c.Demo.StartScenario); err != nil {
		return fmt.Errorf("demo.start_scenario: %w", err)
	}
	if _, err := theme.ParseMode(c.Display.Theme); err != nil {
		return fmt.Errorf("display.theme: %w", err)
	}
	return nil
}
