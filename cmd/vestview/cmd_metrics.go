package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vestview/vestview/internal/portfolio"
)

// metricsReport is the full dashboard payload for one portfolio: the metrics
// snapshot plus display labels, qualitative descriptions, and classification.
type metricsReport struct {
	Portfolio    string                       `json:"portfolio"`
	RiskProfile  portfolio.RiskProfile        `json:"riskProfile"`
	Timeframe    portfolio.Timeframe          `json:"timeframe"`
	Metrics      *portfolio.PortfolioMetrics  `json:"metrics"`
	Labels       portfolio.TimeframeLabels    `json:"labels"`
	Descriptions portfolio.MetricDescriptions `json:"descriptions"`
}

func newMetricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Compute the portfolio risk/return snapshot",
		Long:  "Builds the value curve for the selected timeframe and derives total/annualized return, volatility, max drawdown, Sortino ratio, and day change",
		RunE:  runMetrics,
	}
}

func runMetrics(cmd *cobra.Command, args []string) error {
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

	calc := portfolio.NewMetricsCalculator(in.config.Metrics)
	metrics, err := calc.ComputeMetrics(curve, in.baseAmount)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	start, err := time.Parse(portfolio.DateLayout, metrics.StartDate)
	if err != nil {
		start = now
	}

	return printJSON(metricsReport{
		Portfolio:    in.doc.Name,
		RiskProfile:  portfolio.Classify(in.doc.Holdings),
		Timeframe:    in.timeframe,
		Metrics:      metrics,
		Labels:       in.timeframe.Labels(start, now),
		Descriptions: portfolio.DescribeMetrics(in.timeframe, metrics.TotalReturn, metrics.Volatility, metrics.SortinoRatio),
	})
}
