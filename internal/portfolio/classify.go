package portfolio

// RiskProfile buckets a portfolio by how much of it sits in equities.
type RiskProfile string

const (
	ProfileConservative RiskProfile = "Conservative"
	ProfileModerate     RiskProfile = "Moderate"
	ProfileAggressive   RiskProfile = "Aggressive"
)

// Classify derives the risk profile from the summed equity weight:
// <= 35% Conservative, <= 70% Moderate, above that Aggressive.
func Classify(holdings []AssetHolding) RiskProfile {
	equity := 0.0
	for _, h := range holdings {
		if h.AssetClass == ClassEquities {
			equity += h.WeightPercent
		}
	}
	switch {
	case equity <= 35:
		return ProfileConservative
	case equity <= 70:
		return ProfileModerate
	default:
		return ProfileAggressive
	}
}

// ClassWeights rolls holdings up to summed weight per asset class, for the
// strategy summary shown alongside the dashboard.
func ClassWeights(holdings []AssetHolding) map[AssetClass]float64 {
	weights := make(map[AssetClass]float64)
	for _, h := range holdings {
		weights[h.AssetClass] += h.WeightPercent
	}
	return weights
}
