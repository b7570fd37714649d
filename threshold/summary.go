package threshold

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/nodeadmin/geneweaver-core/schema"
)

var ErrNoValues = errors.New("geneset has no values")

// Summary describes a geneset's values and how many pass its threshold.
type Summary struct {
	Count   int     `json:"count" yaml:"count"`
	Passing int     `json:"passing" yaml:"passing"`
	Min     float64 `json:"min" yaml:"min"`
	Max     float64 `json:"max" yaml:"max"`
	Mean    float64 `json:"mean" yaml:"mean"`
	Median  float64 `json:"median" yaml:"median"`
}

// Summarize computes a Summary using Check semantics for the passing count.
func Summarize(values []schema.GeneValue, score schema.ScoreThreshold) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrNoValues
	}
	data := make(stats.Float64Data, len(values))
	for i, v := range values {
		data[i] = v.Value
	}

	s := Summary{Count: len(values)}
	for _, ok := range Check(values, score) {
		if ok {
			s.Passing++
		}
	}

	var err error
	if s.Min, err = stats.Min(data); err != nil {
		return Summary{}, fmt.Errorf("min: %w", err)
	}
	if s.Max, err = stats.Max(data); err != nil {
		return Summary{}, fmt.Errorf("max: %w", err)
	}
	if s.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, fmt.Errorf("mean: %w", err)
	}
	if s.Median, err = stats.Median(data); err != nil {
		return Summary{}, fmt.Errorf("median: %w", err)
	}
	return s, nil
}
