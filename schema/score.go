package schema

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nodeadmin/geneweaver-core/enum"
)

// DefaultThreshold is the cutoff used for p-value and q-value scores when
// none is given.
const DefaultThreshold = 0.05

// ScoreThreshold is a parsed score cutoff for a geneset.
//
// ThresholdLow is only set for two-sided score types and is never greater
// than Threshold. Values are immutable once built with NewScoreThreshold.
type ScoreThreshold struct {
	Kind         enum.ScoreType `json:"score_type" yaml:"score_type"`
	Threshold    float64        `json:"threshold" yaml:"threshold"`
	ThresholdLow *float64       `json:"threshold_low,omitempty" yaml:"threshold_low,omitempty"`
}

// NewScoreThreshold builds and validates a threshold. low may be nil.
func NewScoreThreshold(kind enum.ScoreType, threshold float64, low *float64) (ScoreThreshold, error) {
	s := ScoreThreshold{Kind: kind, Threshold: threshold}
	if low != nil {
		l := *low
		s.ThresholdLow = &l
	}
	if err := s.Validate(); err != nil {
		return ScoreThreshold{}, err
	}
	return s, nil
}

// BinaryThreshold is the threshold every binary geneset uses.
func BinaryThreshold() ScoreThreshold {
	return ScoreThreshold{Kind: enum.Binary, Threshold: 1}
}

func (s ScoreThreshold) Validate() error { return check(s) }

// Low returns the lower bound and whether one is set.
func (s ScoreThreshold) Low() (float64, bool) {
	if s.ThresholdLow == nil {
		return 0, false
	}
	return *s.ThresholdLow, true
}

// Equal compares kinds and both bounds.
func (s ScoreThreshold) Equal(o ScoreThreshold) bool {
	if s.Kind != o.Kind || s.Threshold != o.Threshold {
		return false
	}
	sl, sok := s.Low()
	ol, ook := o.Low()
	return sok == ook && sl == ol
}

// kindTitle renders P_VALUE as "P-Value" and CORRELATION as "Correlation".
// Casers carry state, so one is built per call.
func kindTitle(k enum.ScoreType) string {
	words := strings.ReplaceAll(k.Name(), "_", " ")
	return strings.ReplaceAll(cases.Title(language.English).String(words), " ", "-")
}

// String renders the threshold in the batch-file score syntax, for example
// "P-Value < 0.05" or "0.4 < Correlation < 0.9".
func (s ScoreThreshold) String() string {
	name := kindTitle(s.Kind)
	high := formatFloat(s.Threshold)
	if low, ok := s.Low(); ok {
		return formatFloat(low) + " < " + name + " < " + high
	}
	return name + " < " + high
}

// DBString renders the threshold the way the geneset table stores it.
func (s ScoreThreshold) DBString() string {
	if low, ok := s.Low(); ok {
		return formatFloat(low) + "," + formatFloat(s.Threshold)
	}
	return formatFloat(s.Threshold)
}

// formatFloat never uses exponent notation; the score grammar would read
// the exponent sign as a second number.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
