package ordering

import (
	"github.com/shopwalk/aisle-engine/internal/domain"
)

// Weights is the blend of the three evidence sources used to rank one scope
type Weights struct {
	Store     float64 `json:"store"`
	Aggregate float64 `json:"aggregate"`
	Default   float64 `json:"default"`
}

var (
	// NoStoreWeights applies when no store is known or the store has no valid sequences
	NoStoreWeights = Weights{Store: 0, Aggregate: 0.70, Default: 0.30}
	// LowConfidenceWeights applies below half of the level threshold
	LowConfidenceWeights = Weights{Store: 0.30, Aggregate: 0.68, Default: 0.02}
	// FullConfidenceWeights applies at or above the level threshold
	FullConfidenceWeights = Weights{Store: 0.90, Aggregate: 0.08, Default: 0.02}
)

// curvePoint maps a valid sequence count, expressed as a fraction of the
// level threshold, to a weight triple
type curvePoint struct {
	fraction float64
	weights  Weights
}

// confidencePoints is the piecewise-linear store weight curve shared by all levels.
// Between two points the store and aggregate weights are interpolated linearly
// and the default weight stays fixed.
var confidencePoints = []curvePoint{
	{fraction: 0.5, weights: LowConfidenceWeights},
	{fraction: 1.0, weights: FullConfidenceWeights},
}

// ConfidenceCurve turns the number of valid checkoff sequences recorded for a
// store into blending weights for one level
type ConfidenceCurve struct {
	Level     domain.Level
	Threshold int
}

var confidenceCurves = map[domain.Level]ConfidenceCurve{
	domain.LevelGroup:    {Level: domain.LevelGroup, Threshold: domain.GROUP_CONFIDENCE_THRESHOLD},
	domain.LevelSubgroup: {Level: domain.LevelSubgroup, Threshold: domain.SUBGROUP_CONFIDENCE_THRESHOLD},
	domain.LevelProduct:  {Level: domain.LevelProduct, Threshold: domain.PRODUCT_CONFIDENCE_THRESHOLD},
}

// CurveFor returns the confidence curve of a level
func CurveFor(level domain.Level) ConfidenceCurve {
	curve, ok := confidenceCurves[level]
	if !ok {
		return confidenceCurves[domain.LevelProduct]
	}
	return curve
}

// Weights returns the blending weights for the given number of valid sequences
func (c ConfidenceCurve) Weights(validCount int64) Weights {
	if validCount <= 0 || c.Threshold <= 0 {
		return NoStoreWeights
	}

	fraction := float64(validCount) / float64(c.Threshold)

	first := confidencePoints[0]
	if fraction < first.fraction {
		return first.weights
	}

	for i := 1; i < len(confidencePoints); i++ {
		lo, hi := confidencePoints[i-1], confidencePoints[i]
		if fraction >= hi.fraction {
			continue
		}

		t := (fraction - lo.fraction) / (hi.fraction - lo.fraction)
		return Weights{
			Store:     lerp(lo.weights.Store, hi.weights.Store, t),
			Aggregate: lerp(lo.weights.Aggregate, hi.weights.Aggregate, t),
			Default:   lo.weights.Default,
		}
	}

	return confidencePoints[len(confidencePoints)-1].weights
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
