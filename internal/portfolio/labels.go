package portfolio

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// TimeframeLabels are the display strings the dashboard shows next to each
// metric for a given lookback window.
type TimeframeLabels struct {
	TimeframeLabel      string `json:"timeframeLabel"`      // e.g. "YTD Return"
	ReturnLabel         string `json:"returnLabel"`         // e.g. "Return since Jan 1, 2026"
	PortfolioValueLabel string `json:"portfolioValueLabel"` // e.g. "Portfolio value change over 1 year"
	VolatilityLabel     string `json:"volatilityLabel"`     // e.g. "1Y Volatility"
	SortinoLabel        string `json:"sortinoLabel"`        // e.g. "1Y Sortino Ratio"
}

// Labels builds the metric labels for the timeframe. The start time is only
// consulted for MAX, where the label names the first year of data.
func (tf Timeframe) Labels(start, now time.Time) TimeframeLabels {
	switch tf {
	case Timeframe1D, Timeframe5D, Timeframe1M, Timeframe6M, Timeframe1Y, Timeframe5Y:
		return TimeframeLabels{
			TimeframeLabel:      fmt.Sprintf("%s Return", tf),
			ReturnLabel:         fmt.Sprintf("Return over %s", tf.PeriodText()),
			PortfolioValueLabel: fmt.Sprintf("Portfolio value change over %s", tf.PeriodText()),
			VolatilityLabel:     fmt.Sprintf("%s Volatility", tf),
			SortinoLabel:        fmt.Sprintf("%s Sortino Ratio", tf),
		}
	case TimeframeYTD:
		return TimeframeLabels{
			TimeframeLabel:      "YTD Return",
			ReturnLabel:         fmt.Sprintf("Return since Jan 1, %d", now.Year()),
			PortfolioValueLabel: fmt.Sprintf("Portfolio value change since Jan 1, %d", now.Year()),
			VolatilityLabel:     "YTD Volatility",
			SortinoLabel:        "YTD Sortino Ratio",
		}
	case TimeframeMax:
		return TimeframeLabels{
			TimeframeLabel:      "Total Return",
			ReturnLabel:         fmt.Sprintf("Return since %d", start.Year()),
			PortfolioValueLabel: fmt.Sprintf("Portfolio value change since %d", start.Year()),
			VolatilityLabel:     "Total Volatility",
			SortinoLabel:        "Total Sortino Ratio",
		}
	default:
		return TimeframeLabels{
			TimeframeLabel:      "Return",
			ReturnLabel:         "Return for selected period",
			PortfolioValueLabel: "Portfolio value change for selected period",
			VolatilityLabel:     "Volatility",
			SortinoLabel:        "Sortino Ratio",
		}
	}
}

// MetricDescriptions are qualitative one-liners explaining the numbers to a
// non-technical reader.
type MetricDescriptions struct {
	PortfolioValue string `json:"portfolioValueDescription"`
	Volatility     string `json:"volatilityDescription"`
	Sortino        string `json:"sortinoDescription"`
}

// DescribeMetrics builds the qualitative descriptions for a computed metrics
// snapshot, with thresholds tuned per timeframe horizon.
func DescribeMetrics(tf Timeframe, totalReturn, volatility, sortinoRatio float64) MetricDescriptions {
	sign := ""
	if totalReturn >= 0 {
		sign = "+"
	}
	value := fmt.Sprintf("%s$%s over %s", sign, groupThousands(math.Abs(totalReturn)), tf.PeriodText())

	return MetricDescriptions{
		PortfolioValue: value,
		Volatility:     describeVolatility(tf, volatility),
		Sortino:        describeSortino(sortinoRatio),
	}
}

func describeVolatility(tf Timeframe, volatility float64) string {
	switch tf {
	case Timeframe1D, Timeframe5D:
		switch {
		case volatility < 5:
			return "Stable daily movements"
		case volatility > 15:
			return "Expect large daily swings"
		default:
			return "Moderate daily price changes"
		}
	case Timeframe1M, Timeframe6M, TimeframeYTD:
		switch {
		case volatility < 8:
			return "Relatively steady performance"
		case volatility > 20:
			return "Large price swings expected"
		default:
			return "Moderate price movements"
		}
	default:
		switch {
		case volatility < 12:
			return "Consistent long-term growth"
		case volatility > 25:
			return "Major ups and downs likely"
		default:
			return "Normal market fluctuations"
		}
	}
}

func describeSortino(ratio float64) string {
	switch {
	case ratio < 0:
		return "More downside than upside"
	case ratio < 0.5:
		return "Risk not well compensated"
	case ratio < 1.0:
		return "Returns barely justify risk"
	case ratio < 1.5:
		return "Decent risk-reward balance"
	case ratio < 2.0:
		return "Good downside protection"
	default:
		return "Excellent risk management"
	}
}

// groupThousands formats a non-negative dollar amount with comma separators
// and no fractional digits.
func groupThousands(amount float64) string {
	s := fmt.Sprintf("%.0f", amount)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
