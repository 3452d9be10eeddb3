package main

import (
	"github.com/spf13/cobra"

	"github.com/vestview/vestview/internal/portfolio"
)

func newCurveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "curve",
		Short: "Compute the portfolio value curve",
		Long:  "Aligns per-asset price series onto a common axis and prints the chronological portfolio value curve as JSON",
		RunE:  runCurve,
	}
}

func runCurve(cmd *cobra.Command, args []string) error {
	in, err := loadInputs(cmd)
	if err != nil {
		return err
	}

	aligned, err := portfolio.AlignSeries(in.seriesList)
	if err != nil {
		return err
	}
	valuator := portfolio.NewValuator(in.config.ValuationMode())
	curve, err := valuator.ComputeValueCurve(in.doc.Holdings, aligned, in.baseAmount)
	if err != nil {
		return err
	}

	return printJSON(curve)
}
