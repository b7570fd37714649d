// Package threshold decides which gene values pass a geneset's score
// threshold.
package threshold

import (
	"github.com/nodeadmin/geneweaver-core/enum"
	"github.com/nodeadmin/geneweaver-core/schema"
)

// Check evaluates every value against score and returns one result per
// value, in order. Binary thresholds pass every value.
func Check(values []schema.GeneValue, score schema.ScoreThreshold) []bool {
	out := make([]bool, len(values))
	for i, v := range values {
		out[i] = checkValue(score, v.Value, true)
	}
	return out
}

// CheckOne evaluates a single value. Unlike Check, a binary threshold here
// requires value >= threshold.
func CheckOne(score schema.ScoreThreshold, value float64) bool {
	return checkValue(score, value, false)
}

// CheckList applies CheckOne to each value.
func CheckList(score schema.ScoreThreshold, values []float64) []bool {
	out := make([]bool, len(values))
	for i, v := range values {
		out[i] = CheckOne(score, v)
	}
	return out
}

func checkValue(score schema.ScoreThreshold, value float64, binaryPasses bool) bool {
	switch score.Kind {
	case enum.Binary:
		return binaryPasses || value >= score.Threshold
	case enum.PValue, enum.QValue:
		return OneSided(value, score.Threshold)
	case enum.Correlation, enum.Effect:
		low, ok := score.Low()
		if !ok {
			return value <= score.Threshold
		}
		return TwoSided(value, low, score.Threshold)
	}
	return false
}

// OneSided reports value <= threshold.
func OneSided(value, threshold float64) bool { return value <= threshold }

// TwoSided reports low <= value <= high.
func TwoSided(value, low, high float64) bool { return low <= value && value <= high }
