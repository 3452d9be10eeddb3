package portfolio

import (
	"fmt"
	"math"
	"time"
)

// MetricsConfig holds the tunable constants of the metrics calculation.
type MetricsConfig struct {
	// TradingDaysPerYear annualizes volatility and downside deviation (default: 252).
	TradingDaysPerYear int `yaml:"trading_days_per_year"`

	// NoDownsideSortino is reported when a curve has zero negative daily
	// returns. It is a design constant meaning "no observed downside", not a
	// statistically derived value (default: 2.0).
	NoDownsideSortino float64 `yaml:"no_downside_sortino"`

	// CalendarDaysPerYear converts curve length to a year fraction for
	// compounded annualization (default: 365).
	CalendarDaysPerYear int `yaml:"calendar_days_per_year"`
}

// DefaultMetricsConfig returns the engine defaults.
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		TradingDaysPerYear:  252,
		NoDownsideSortino:   2.0,
		CalendarDaysPerYear: 365,
	}
}

// MetricsCalculator derives risk/return statistics from a value curve.
type MetricsCalculator struct {
	config MetricsConfig
	now    func() time.Time
}

// NewMetricsCalculator creates a calculator with the given configuration.
// Zero-valued config fields fall back to the defaults.
func NewMetricsCalculator(config MetricsConfig) *MetricsCalculator {
	defaults := DefaultMetricsConfig()
	if config.TradingDaysPerYear <= 0 {
		config.TradingDaysPerYear = defaults.TradingDaysPerYear
	}
	if config.NoDownsideSortino == 0 {
		config.NoDownsideSortino = defaults.NoDownsideSortino
	}
	if config.CalendarDaysPerYear <= 0 {
		config.CalendarDaysPerYear = defaults.CalendarDaysPerYear
	}
	return &MetricsCalculator{config: config, now: time.Now}
}

// ComputeMetrics derives the full metrics snapshot from a value curve. The
// curve must be ascending by date, as produced by Valuator.ComputeValueCurve.
// An empty curve yields the zero-metrics object (currentValue = baseAmount,
// all derived fields zero) so downstream consumers never need nil checks.
func (mc *MetricsCalculator) ComputeMetrics(curve []ValuePoint, baseAmount float64) (*PortfolioMetrics, error) {
	if baseAmount <= 0 {
		return nil, fmt.Errorf("%w: %.2f", ErrInvalidBaseAmount, baseAmount)
	}

	now := mc.now().UTC()
	if len(curve) == 0 {
		return &PortfolioMetrics{
			BaseAmount:   baseAmount,
			CurrentValue: baseAmount,
			StartDate:    now.Format(DateLayout),
			LastUpdated:  now.Format(time.RFC3339),
		}, nil
	}

	currentValue := curve[len(curve)-1].Value
	totalReturn := currentValue - baseAmount
	totalReturnPercent := totalReturn / baseAmount * 100

	returns := computeDailyReturns(curve)

	annualizedReturnPercent := mc.annualizedReturnPercent(currentValue, baseAmount, len(curve))
	change, changePercent := computeDayChange(curve)

	return &PortfolioMetrics{
		BaseAmount:              baseAmount,
		CurrentValue:            currentValue,
		TotalReturn:             totalReturn,
		TotalReturnPercent:      totalReturnPercent,
		AnnualizedReturn:        baseAmount * annualizedReturnPercent / 100,
		AnnualizedReturnPercent: annualizedReturnPercent,
		Volatility:              mc.annualizedVolatility(returns),
		SortinoRatio:            mc.sortinoRatio(returns, annualizedReturnPercent),
		MaxDrawdown:             maxDrawdown(curve),
		DayChange:               change,
		DayChangePercent:        changePercent,
		StartDate:               curve[0].Date,
		LastUpdated:             now.Format(time.RFC3339),
	}, nil
}

// computeDailyReturns computes r[i] = (v[i] - v[i-1]) / v[i-1]. Intervals
// starting from a non-positive value are data errors and are skipped rather
// than producing Inf or NaN.
func computeDailyReturns(curve []ValuePoint) []float64 {
	returns := make([]float64, 0, len(curve))
	for i := 1; i < len(curve); i++ {
		prev := curve[i-1].Value
		if prev <= 0 {
			continue
		}
		returns = append(returns, (curve[i].Value-prev)/prev)
	}
	return returns
}

// annualizedVolatility is the population standard deviation of daily returns
// scaled by sqrt(trading days per year), as a percentage. Fewer than two
// curve points yield zero, not NaN.
func (mc *MetricsCalculator) annualizedVolatility(returns []float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	return populationStdev(returns) * math.Sqrt(float64(mc.config.TradingDaysPerYear)) * 100
}

// annualizedReturnPercent compounds the total return over the curve length.
// The year fraction is floored at a single day so one-day curves do not blow
// up the exponent.
func (mc *MetricsCalculator) annualizedReturnPercent(currentValue, baseAmount float64, curveDays int) float64 {
	days := float64(mc.config.CalendarDaysPerYear)
	yearFraction := math.Max(float64(curveDays)/days, 1/days)
	if yearFraction <= 0 {
		return 0
	}
	return (math.Pow(currentValue/baseAmount, 1/yearFraction) - 1) * 100
}

// sortinoRatio divides the annualized return by the annualized downside
// deviation (population stdev of only the negative daily returns). Zero
// negative returns report the configured no-downside sentinel. A zero
// downside deviation with negative returns present (the degenerate
// all-equal-negative case) reports zero rather than dividing by zero.
func (mc *MetricsCalculator) sortinoRatio(returns []float64, annualizedReturnPercent float64) float64 {
	if len(returns) == 0 {
		return 0
	}

	var downside []float64
	for _, r := range returns {
		if r < 0 {
			downside = append(downside, r)
		}
	}
	if len(downside) == 0 {
		return mc.config.NoDownsideSortino
	}

	downsideDeviation := populationStdev(downside)
	if downsideDeviation <= 0 {
		return 0
	}
	return annualizedReturnPercent / 100 / (downsideDeviation * math.Sqrt(float64(mc.config.TradingDaysPerYear)))
}

// maxDrawdown tracks the running peak and returns the most negative
// peak-to-trough decline as a non-positive percentage.
func maxDrawdown(curve []ValuePoint) float64 {
	if len(curve) == 0 {
		return 0
	}
	peak := curve[0].Value
	maxDD := 0.0
	for _, point := range curve {
		if point.Value > peak {
			peak = point.Value
		}
		if peak <= 0 {
			continue
		}
		drawdown := (point.Value - peak) / peak * 100
		if drawdown < maxDD {
			maxDD = drawdown
		}
	}
	return maxDD
}

// computeDayChange reports the dollar and percent move between the last two
// curve points, zero when fewer than two points exist.
func computeDayChange(curve []ValuePoint) (change, changePercent float64) {
	if len(curve) < 2 {
		return 0, 0
	}
	prev := curve[len(curve)-2].Value
	change = curve[len(curve)-1].Value - prev
	if prev > 0 {
		changePercent = change / prev * 100
	}
	return change, changePercent
}

// populationStdev is the population (not sample) standard deviation.
func populationStdev(values []float64) float64 {
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	variance /= float64(len(values))

	return math.Sqrt(variance)
}
