// Package portfolio is the canonical performance and risk calculation engine.
//
// It turns weighted asset holdings plus per-asset historical price series into a
// time-indexed value curve and derived risk/return statistics. Every computation
// is a pure function over its inputs: no shared state, no I/O, safe for
// concurrent use from multiple in-flight requests.
package portfolio

import (
	"errors"
	"time"
)

// DateLayout is the ISO date format used across the engine (UTC trading days).
const DateLayout = "2006-01-02"

var (
	// ErrInvalidBaseAmount indicates a caller passed a zero or negative base investment.
	ErrInvalidBaseAmount = errors.New("base amount must be positive")

	// ErrMalformedDate indicates a price or value point carries a date that is not ISO YYYY-MM-DD.
	ErrMalformedDate = errors.New("malformed ISO date")

	// ErrSeriesCountMismatch indicates the aligned series do not correspond 1:1 with the holdings.
	ErrSeriesCountMismatch = errors.New("price series count does not match holdings count")

	// ErrInvalidTimeframe indicates an unrecognized timeframe token.
	ErrInvalidTimeframe = errors.New("invalid timeframe")
)

// AssetClass categorizes a holding for allocation rollups and risk classification.
type AssetClass string

const (
	ClassCash         AssetClass = "Cash"
	ClassEquities     AssetClass = "Equities"
	ClassFixedIncome  AssetClass = "Fixed Income"
	ClassAlternatives AssetClass = "Alternatives"
)

// AssetHolding is one weighted position in a portfolio. Weights are percentages
// (0-100). Callers validate that weights sum to 100; the engine tolerates sums
// that drift from 100 and treats weights as given.
type AssetHolding struct {
	Symbol        string     `json:"symbol" yaml:"symbol"`
	Name          string     `json:"name" yaml:"name"`
	AssetClass    AssetClass `json:"assetClass" yaml:"class"`
	WeightPercent float64    `json:"weightPercent" yaml:"weight_percent"`
}

// PricePoint is one closing price for one asset on one trading day.
// Per-asset series need not share start dates, end dates, or calendars.
type PricePoint struct {
	Date  string  `json:"date"`  // ISO YYYY-MM-DD
	Close float64 `json:"close"` // closing price
}

// ValuePoint is the total portfolio dollar value on one date of the aligned axis.
type ValuePoint struct {
	Date            string  `json:"date"`      // ISO YYYY-MM-DD
	Value           float64 `json:"value"`     // total portfolio value, cent precision
	TimestampMillis int64   `json:"timestamp"` // date at UTC midnight, in Unix millis
}

// PortfolioMetrics is an immutable risk/return snapshot derived from a value
// curve. All *Percent fields are plain percentages (15.6 means 15.6%), never
// fractions. MaxDrawdown is always reported non-positive.
type PortfolioMetrics struct {
	BaseAmount              float64 `json:"baseAmount"`              // hypothetical initial investment
	CurrentValue            float64 `json:"currentValue"`            // value of the last curve point
	TotalReturn             float64 `json:"totalReturn"`             // dollar return since start
	TotalReturnPercent      float64 `json:"totalReturnPercent"`      // percent return since start
	AnnualizedReturn        float64 `json:"annualizedReturn"`        // dollar-equivalent annualized return
	AnnualizedReturnPercent float64 `json:"annualizedReturnPercent"` // compounded annual rate
	Volatility              float64 `json:"volatility"`              // annualized stdev of daily returns, percent
	SortinoRatio            float64 `json:"sortinoRatio"`            // downside-deviation-adjusted return
	MaxDrawdown             float64 `json:"maxDrawdown"`             // worst peak-to-trough decline, percent (<= 0)
	DayChange               float64 `json:"dayChange"`               // dollar change over the last two points
	DayChangePercent        float64 `json:"dayChangePercent"`        // percent change over the last two points
	StartDate               string  `json:"startDate"`               // first curve date, ISO
	LastUpdated             string  `json:"lastUpdated"`             // computation time, RFC 3339
}

// AllocationBreakdown is the per-asset value/return slice of the portfolio
// summary table. BaseAmount is the asset's share of the portfolio base amount.
type AllocationBreakdown struct {
	Symbol             string     `json:"symbol"`
	Name               string     `json:"name"`
	AssetClass         AssetClass `json:"assetClass"`
	WeightPercent      float64    `json:"weightPercent"`
	BaseAmount         float64    `json:"baseAmount"`
	CurrentValue       float64    `json:"currentValue"`
	TotalReturn        float64    `json:"totalReturn"`
	TotalReturnPercent float64    `json:"totalReturnPercent"`
	DayChange          float64    `json:"dayChange"`
	DayChangePercent   float64    `json:"dayChangePercent"`
}

// AssetPriceRange carries the reference prices the allocation projector needs
// for one symbol. PreviousPrice may be zero when only one day of data exists;
// day change then reports zero.
type AssetPriceRange struct {
	StartPrice    float64 `json:"startPrice"`    // first price in the window
	PreviousPrice float64 `json:"previousPrice"` // close of the second-to-last day
	CurrentPrice  float64 `json:"currentPrice"`  // latest close
}

// parseDate validates and parses an ISO date string.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrMalformedDate
	}
	return t, nil
}
