package main

import (
	"github.com/spf13/cobra"

	"github.com/vestview/vestview/internal/data"
	"github.com/vestview/vestview/internal/portfolio"
)

func newAllocationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "allocations",
		Short: "Compute the per-asset allocation breakdown",
		Long:  "Prints each holding's base amount, current value, and return over the selected timeframe",
		RunE:  runAllocations,
	}
}

func runAllocations(cmd *cobra.Command, args []string) error {
	in, err := loadInputs(cmd)
	if err != nil {
		return err
	}

	ranges := data.PriceRanges(in.doc.Holdings, in.seriesList)
	breakdowns, err := portfolio.ComputeAllocations(in.doc.Holdings, in.baseAmount, ranges)
	if err != nil {
		return err
	}

	return printJSON(breakdowns)
}
