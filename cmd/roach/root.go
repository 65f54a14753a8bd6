package main

import (
	"fmt"
	"log"
	"os"

	"RoachSentinel/internal/config"
	"RoachSentinel/internal/scenario"
	"RoachSentinel/internal/tier"

	"github.com/spf13/cobra"
)

// configPath is the --config flag value
var configPath string

var rootCmd = &cobra.Command{
	Use:   "roach",
	Short: "Roach token dynamic tax demo",
	Long: `roach renders the Roach token's dynamic tax tiers and market scenario
simulations in the terminal: a tier showcase that cycles every few seconds
and a scenario playback comparing Roach against a fixed-tax token.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: $CONFIG_PATH or configs/config.yaml)")
	rootCmd.AddCommand(runCmd, tiersCmd, classifyCmd, scenariosCmd)
}

// loadConfig resolves the config path and loads it.
// Precedence: --config flag > CONFIG_PATH env var > configs/config.yaml
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = "configs/config.yaml"
		if v := os.Getenv("CONFIG_PATH"); v != "" {
			path = v
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// checkTables logs every invariant the built-in tables break. It never fails.
func checkTables() int {
	n := 0
	for _, v := range tier.Validate(tier.Table()) {
		log.Printf("[WARN] tier table: %s", v)
		n++
	}
	for _, err := range scenario.Validate(scenario.Presets()) {
		log.Printf("[WARN] scenario dataset: %v", err)
		n++
	}
	return n
}
