package portfolio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoAssetHoldings() []AssetHolding {
	return []AssetHolding{
		{Symbol: "SPY", Name: "S&P 500 ETF", AssetClass: ClassEquities, WeightPercent: 60},
		{Symbol: "AGG", Name: "Aggregate Bond ETF", AssetClass: ClassFixedIncome, WeightPercent: 40},
	}
}

func TestComputeValueCurve_StartsAtBaseAmount(t *testing.T) {
	aligned, err := AlignSeries([][]PricePoint{
		{{Date: "2024-01-02", Close: 100}, {Date: "2024-01-03", Close: 110}},
		{{Date: "2024-01-02", Close: 50}, {Date: "2024-01-03", Close: 50}},
	})
	require.NoError(t, err)

	curve, err := NewValuator(BuyAndHold()).ComputeValueCurve(twoAssetHoldings(), aligned, 10000)
	require.NoError(t, err)
	require.Len(t, curve, 2)

	// Day 1: every asset at exactly its target dollar weight.
	assert.Equal(t, "2024-01-02", curve[0].Date)
	assert.Equal(t, 10000.0, curve[0].Value)

	// Day 2: SPY up 10% on a 60% weight, AGG flat.
	assert.Equal(t, 10600.0, curve[1].Value)
	assert.Greater(t, curve[1].TimestampMillis, curve[0].TimestampMillis)
}

func TestComputeValueCurve_EmptySeriesContributesZero(t *testing.T) {
	aligned, err := AlignSeries([][]PricePoint{
		{{Date: "2024-01-02", Close: 100}, {Date: "2024-01-03", Close: 120}},
		{},
	})
	require.NoError(t, err)

	curve, err := NewValuator(BuyAndHold()).ComputeValueCurve(twoAssetHoldings(), aligned, 10000)
	require.NoError(t, err)
	require.Len(t, curve, 2)

	// Only the 60% holding contributes; the empty series never raises.
	assert.Equal(t, 6000.0, curve[0].Value)
	assert.Equal(t, 7200.0, curve[1].Value)
}

func TestComputeValueCurve_NonPositiveStartPriceExcludesAsset(t *testing.T) {
	aligned, err := AlignSeries([][]PricePoint{
		{{Date: "2024-01-02", Close: 100}},
		{{Date: "2024-01-02", Close: 0}},
	})
	require.NoError(t, err)

	curve, err := NewValuator(BuyAndHold()).ComputeValueCurve(twoAssetHoldings(), aligned, 10000)
	require.NoError(t, err)
	require.Len(t, curve, 1)
	assert.Equal(t, 6000.0, curve[0].Value, "zero-price asset excluded for the whole curve")
}

func TestComputeValueCurve_ForwardFillsMissingDates(t *testing.T) {
	aligned, err := AlignSeries([][]PricePoint{
		{{Date: "2024-01-02", Close: 100}, {Date: "2024-01-03", Close: 100}, {Date: "2024-01-04", Close: 100}},
		{{Date: "2024-01-02", Close: 50}, {Date: "2024-01-04", Close: 60}},
	})
	require.NoError(t, err)

	curve, err := NewValuator(BuyAndHold()).ComputeValueCurve(twoAssetHoldings(), aligned, 10000)
	require.NoError(t, err)
	require.Len(t, curve, 3)

	// Jan 3 has no AGG print: its Jan 2 close carries forward.
	assert.Equal(t, 10000.0, curve[1].Value)
	// Jan 4: AGG up 20% on a 40% weight.
	assert.Equal(t, 10800.0, curve[2].Value)
}

func TestComputeValueCurve_EmptyAxis(t *testing.T) {
	aligned, err := AlignSeries([][]PricePoint{{}, {}})
	require.NoError(t, err)

	curve, err := NewValuator(BuyAndHold()).ComputeValueCurve(twoAssetHoldings(), aligned, 10000)
	require.NoError(t, err)
	assert.Empty(t, curve)
}

func TestComputeValueCurve_CentRounding(t *testing.T) {
	aligned, err := AlignSeries([][]PricePoint{
		{{Date: "2024-01-02", Close: 3}, {Date: "2024-01-03", Close: 1}},
	})
	require.NoError(t, err)

	holdings := []AssetHolding{{Symbol: "XYZ", WeightPercent: 100}}
	curve, err := NewValuator(BuyAndHold()).ComputeValueCurve(holdings, aligned, 10000)
	require.NoError(t, err)
	require.Len(t, curve, 2)

	// 10000/3 shares at $1 is 3333.333..., reported at cent precision.
	assert.Equal(t, 3333.33, curve[1].Value)
}

func TestComputeValueCurve_InvalidInputs(t *testing.T) {
	aligned, err := AlignSeries([][]PricePoint{
		{{Date: "2024-01-02", Close: 100}},
	})
	require.NoError(t, err)

	_, err = NewValuator(BuyAndHold()).ComputeValueCurve(twoAssetHoldings(), aligned, 10000)
	assert.True(t, errors.Is(err, ErrSeriesCountMismatch))

	oneHolding := []AssetHolding{{Symbol: "SPY", WeightPercent: 100}}
	_, err = NewValuator(BuyAndHold()).ComputeValueCurve(oneHolding, aligned, -5)
	assert.True(t, errors.Is(err, ErrInvalidBaseAmount))
}

func TestComputeValueCurve_RebalanceLongIntervalEqualsBuyAndHold(t *testing.T) {
	series := [][]PricePoint{
		{{Date: "2024-01-02", Close: 100}, {Date: "2024-01-03", Close: 110}, {Date: "2024-01-04", Close: 95}},
		{{Date: "2024-01-02", Close: 50}, {Date: "2024-01-03", Close: 52}, {Date: "2024-01-04", Close: 49}},
	}

	aligned, err := AlignSeries(series)
	require.NoError(t, err)
	holdCurve, err := NewValuator(BuyAndHold()).ComputeValueCurve(twoAssetHoldings(), aligned, 10000)
	require.NoError(t, err)

	rebalCurve, err := NewValuator(PeriodicRebalance(100)).ComputeValueCurve(twoAssetHoldings(), aligned, 10000)
	require.NoError(t, err)

	assert.Equal(t, holdCurve, rebalCurve, "an interval longer than the curve never triggers a rebalance")
}

func TestComputeValueCurve_DailyRebalanceResetsWeights(t *testing.T) {
	holdings := []AssetHolding{
		{Symbol: "AAA", WeightPercent: 50},
		{Symbol: "BBB", WeightPercent: 50},
	}
	series := [][]PricePoint{
		{{Date: "2024-01-02", Close: 100}, {Date: "2024-01-03", Close: 100}, {Date: "2024-01-04", Close: 100}},
		{{Date: "2024-01-02", Close: 100}, {Date: "2024-01-03", Close: 200}, {Date: "2024-01-04", Close: 300}},
	}

	aligned, err := AlignSeries(series)
	require.NoError(t, err)

	// Buy and hold: 50 shares each. Day 3 = 50*100 + 50*300 = 20000.
	holdCurve, err := NewValuator(BuyAndHold()).ComputeValueCurve(holdings, aligned, 10000)
	require.NoError(t, err)
	require.Len(t, holdCurve, 3)
	assert.Equal(t, 20000.0, holdCurve[2].Value)

	// Daily rebalance: day 2 total is 15000, reset to 7500/7500. BBB then
	// gains 50% on half the book: 7500 + 11250 = 18750.
	rebalCurve, err := NewValuator(PeriodicRebalance(1)).ComputeValueCurve(holdings, aligned, 10000)
	require.NoError(t, err)
	require.Len(t, rebalCurve, 3)
	assert.Equal(t, 15000.0, rebalCurve[1].Value, "rebalancing does not change the boundary-date value")
	assert.Equal(t, 18750.0, rebalCurve[2].Value)
}

func TestComputeValueCurve_WeightsNotSummingTo100Tolerated(t *testing.T) {
	holdings := []AssetHolding{{Symbol: "SPY", WeightPercent: 80}}
	aligned, err := AlignSeries([][]PricePoint{
		{{Date: "2024-01-02", Close: 100}},
	})
	require.NoError(t, err)

	curve, err := NewValuator(BuyAndHold()).ComputeValueCurve(holdings, aligned, 10000)
	require.NoError(t, err)
	require.Len(t, curve, 1)
	assert.Equal(t, 8000.0, curve[0].Value, "weights are taken as given")
}
