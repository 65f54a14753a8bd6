package main

import (
	"fmt"

	"RoachSentinel/internal/render"
	"RoachSentinel/internal/theme"
	"RoachSentinel/internal/tier"

	"github.com/spf13/cobra"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Print the tax tier table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		mode, _ := theme.ParseMode(cfg.Display.Theme)
		out := cmd.OutOrStdout()
		fmt.Fprint(out, render.FormatTierTable(tier.Table(), render.Palette{Color: cfg.Display.Color, Mode: mode}))
		if n := checkTables(); n > 0 {
			fmt.Fprintf(out, "\n%d configuration warning(s), see log\n", n)
		}
		return nil
	},
}
