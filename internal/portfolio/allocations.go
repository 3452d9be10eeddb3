package portfolio

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// ComputeAllocations produces the per-asset value/return breakdown that feeds
// portfolio summary tables. Each asset's base amount is its weight share of
// the portfolio base amount.
//
// A symbol with missing or non-positive reference prices falls back to a flat
// no-data assumption (current value = base amount, zero returns) so that one
// bad symbol never aborts the breakdown for the rest of the portfolio.
func ComputeAllocations(holdings []AssetHolding, baseAmount float64, prices map[string]AssetPriceRange) ([]AllocationBreakdown, error) {
	if baseAmount <= 0 {
		return nil, fmt.Errorf("%w: %.2f", ErrInvalidBaseAmount, baseAmount)
	}

	breakdowns := make([]AllocationBreakdown, 0, len(holdings))
	for _, h := range holdings {
		assetBase := h.WeightPercent / 100 * baseAmount

		b := AllocationBreakdown{
			Symbol:        h.Symbol,
			Name:          h.Name,
			AssetClass:    h.AssetClass,
			WeightPercent: h.WeightPercent,
			BaseAmount:    assetBase,
			CurrentValue:  assetBase,
		}

		r, known := prices[h.Symbol]
		if known && r.StartPrice > 0 && r.CurrentPrice > 0 {
			b.CurrentValue = assetBase * (r.CurrentPrice / r.StartPrice)
			b.TotalReturn = b.CurrentValue - assetBase
			if assetBase > 0 {
				b.TotalReturnPercent = b.TotalReturn / assetBase * 100
			}
			if r.PreviousPrice > 0 {
				shares := assetBase / r.StartPrice
				b.DayChange = shares * (r.CurrentPrice - r.PreviousPrice)
				b.DayChangePercent = (r.CurrentPrice - r.PreviousPrice) / r.PreviousPrice * 100
			}
		} else if !known {
			log.Warn().Str("symbol", h.Symbol).Msg("No reference prices, assuming flat allocation")
		}

		breakdowns = append(breakdowns, b)
	}

	return breakdowns, nil
}
