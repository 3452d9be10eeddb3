package portfolio

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
)

// ValuationMode selects how asset weights evolve over the value curve.
type ValuationMode struct {
	rebalance bool
	interval  int // trading days between rebalances
}

// BuyAndHold fixes initial dollar weights at the start date and lets them
// drift with each asset's own price performance. This is the default and
// matches a one-shot investment with no further trading.
func BuyAndHold() ValuationMode {
	return ValuationMode{}
}

// PeriodicRebalance resets every asset back to its target weight after each
// interval of trading days. The interval must be at least 1.
func PeriodicRebalance(intervalDays int) ValuationMode {
	if intervalDays < 1 {
		intervalDays = 1
	}
	return ValuationMode{rebalance: true, interval: intervalDays}
}

// String implements fmt.Stringer for logs and CLI output.
func (m ValuationMode) String() string {
	if m.rebalance {
		return fmt.Sprintf("rebalance-%dd", m.interval)
	}
	return "buy-and-hold"
}

// Valuator computes portfolio value curves from holdings and aligned prices.
type Valuator struct {
	mode ValuationMode
}

// NewValuator creates a valuator with the given valuation mode.
func NewValuator(mode ValuationMode) *Valuator {
	return &Valuator{mode: mode}
}

// ComputeValueCurve produces the chronological portfolio value curve. Each
// asset's dollar contribution starts at exactly its target weight share of
// baseAmount on the common start date and scales with that asset's own price
// ratio. Values are rounded to cent precision.
//
// Data-quality problems degrade per asset rather than failing the curve: an
// asset with no usable start price (empty series, or a zero/negative price)
// contributes zero for the whole curve; an asset missing a price on a given
// date with no prior price to fill from contributes zero for that date.
func (v *Valuator) ComputeValueCurve(holdings []AssetHolding, aligned *AlignedSeries, baseAmount float64) ([]ValuePoint, error) {
	if baseAmount <= 0 {
		return nil, fmt.Errorf("%w: %.2f", ErrInvalidBaseAmount, baseAmount)
	}
	if aligned.SeriesCount() != len(holdings) {
		return nil, fmt.Errorf("%w: %d series for %d holdings", ErrSeriesCountMismatch, aligned.SeriesCount(), len(holdings))
	}

	startDate, ok := aligned.StartDate()
	if !ok {
		return []ValuePoint{}, nil
	}

	// units[i] is the share count bought with the asset's target dollar
	// amount at the start date (zero when the asset is excluded).
	units := make([]float64, len(holdings))
	for i, h := range holdings {
		first, ok := aligned.FirstPriceFrom(i, startDate)
		if !ok {
			log.Warn().Str("symbol", h.Symbol).Msg("No price history at start date, excluding from curve")
			continue
		}
		if first <= 0 {
			log.Warn().Str("symbol", h.Symbol).Float64("price", first).Msg("Non-positive start price, excluding from curve")
			continue
		}
		units[i] = (h.WeightPercent / 100) * baseAmount / first
	}

	axis := aligned.Axis()
	curve := make([]ValuePoint, 0, len(axis))
	sinceRebalance := 0

	for _, date := range axis {
		total := 0.0
		contributed := false
		for i := range holdings {
			if units[i] == 0 {
				continue
			}
			price, ok := aligned.PriceAt(i, date)
			if !ok || price <= 0 {
				continue
			}
			total += units[i] * price
			contributed = true
		}
		if !contributed {
			continue
		}

		t, err := parseDate(date)
		if err != nil {
			return nil, err
		}
		curve = append(curve, ValuePoint{
			Date:            date,
			Value:           math.Round(total*100) / 100,
			TimestampMillis: t.UnixMilli(),
		})

		if v.mode.rebalance {
			sinceRebalance++
			if sinceRebalance >= v.mode.interval {
				v.rebalanceUnits(holdings, aligned, date, total, units)
				sinceRebalance = 0
			}
		}
	}

	return curve, nil
}

// rebalanceUnits resets each asset's share count so its dollar value on the
// boundary date equals its target weight share of the current total. Assets
// without a usable price on the boundary keep zero units until the next
// boundary, mirroring the start-date exclusion rule.
func (v *Valuator) rebalanceUnits(holdings []AssetHolding, aligned *AlignedSeries, date string, total float64, units []float64) {
	for i, h := range holdings {
		price, ok := aligned.PriceAt(i, date)
		if !ok || price <= 0 {
			units[i] = 0
			continue
		}
		units[i] = (h.WeightPercent / 100) * total / price
	}
}
