package main

import (
	"fmt"

	"RoachSentinel/internal/model"
	"RoachSentinel/internal/render"
	"RoachSentinel/internal/scenario"

	"github.com/spf13/cobra"
)

// dayFlag is the scenarios --day flag value
var dayFlag int

var scenariosCmd = &cobra.Command{
	Use:   "scenarios [id]",
	Short: "Print market scenario comparisons",
	Long: `Print one scenario, or all of them, as of a given day (default: last day).
Scenario ids: stable, dip, selloff, crash.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		presets := scenario.Presets()
		if len(args) == 1 {
			p, err := scenario.Get(args[0])
			if err != nil {
				return err
			}
			presets = []model.ScenarioPreset{p}
		}
		out := cmd.OutOrStdout()
		for _, p := range presets {
			day := dayFlag
			if day < 0 || day >= p.SimulationData.Len() {
				day = p.SimulationData.Len() - 1
			}
			fmt.Fprintln(out, render.FormatScenario(p, day, render.Palette{}))
		}
		return nil
	},
}

func init() {
	scenariosCmd.Flags().IntVar(&dayFlag, "day", -1, "Day to show (default: last day)")
}
