package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Boundaries(t *testing.T) {
	cases := []struct {
		equityWeight float64
		want         RiskProfile
	}{
		{0, ProfileConservative},
		{35, ProfileConservative},
		{35.01, ProfileModerate},
		{70, ProfileModerate},
		{70.01, ProfileAggressive},
		{100, ProfileAggressive},
	}
	for _, tc := range cases {
		holdings := []AssetHolding{
			{Symbol: "SPY", AssetClass: ClassEquities, WeightPercent: tc.equityWeight},
			{Symbol: "AGG", AssetClass: ClassFixedIncome, WeightPercent: 100 - tc.equityWeight},
		}
		assert.Equal(t, tc.want, Classify(holdings), "equity weight %v", tc.equityWeight)
	}
}

func TestClassify_SumsEquityAcrossHoldings(t *testing.T) {
	holdings := []AssetHolding{
		{Symbol: "SPY", AssetClass: ClassEquities, WeightPercent: 30},
		{Symbol: "VTI", AssetClass: ClassEquities, WeightPercent: 30},
		{Symbol: "AGG", AssetClass: ClassFixedIncome, WeightPercent: 40},
	}
	assert.Equal(t, ProfileModerate, Classify(holdings))
}

func TestClassWeights(t *testing.T) {
	holdings := []AssetHolding{
		{Symbol: "SPY", AssetClass: ClassEquities, WeightPercent: 40},
		{Symbol: "VTI", AssetClass: ClassEquities, WeightPercent: 20},
		{Symbol: "AGG", AssetClass: ClassFixedIncome, WeightPercent: 30},
		{Symbol: "GLD", AssetClass: ClassAlternatives, WeightPercent: 10},
	}

	weights := ClassWeights(holdings)
	assert.Equal(t, 60.0, weights[ClassEquities])
	assert.Equal(t, 30.0, weights[ClassFixedIncome])
	assert.Equal(t, 10.0, weights[ClassAlternatives])
	assert.NotContains(t, weights, ClassCash)
}
