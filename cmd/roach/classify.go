package main

import (
	"fmt"
	"math"
	"strconv"

	"RoachSentinel/internal/render"
	"RoachSentinel/internal/tier"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <ratio>...",
	Short: "Show which tier each sell/buy ratio falls into",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, arg := range args {
			ratio, err := strconv.ParseFloat(arg, 64)
			if err != nil || ratio < 0 || math.IsNaN(ratio) {
				return fmt.Errorf("invalid ratio %q: must be a non-negative number", arg)
			}
			t, err := tier.At(tier.Classify(ratio))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-8s tier %d %-13s buy %2.0f%% sell %2.0f%%  %s\n",
				arg, t.ID, t.Name, t.Taxes.Buy, t.Taxes.Sell, render.FormatGauge(ratio))
		}
		return nil
	},
}
