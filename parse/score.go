package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nodeadmin/geneweaver-core/enum"
	"github.com/nodeadmin/geneweaver-core/schema"
)

type scoreParser struct {
	keyword string
	parse   func(string) (schema.ScoreThreshold, error)
}

// scoreParsers is searched in order and the first keyword found anywhere in
// the lower-cased input wins. The order decides inputs that contain more
// than one keyword and must not change.
var scoreParsers = []scoreParser{
	{"binary", parseBinary},
	{"p-value", oneSided(enum.PValue)},
	{"q-value", oneSided(enum.QValue)},
	{"correlation", twoSided(enum.Correlation)},
	{"effect", twoSided(enum.Effect)},
}

// ParseScore parses a batch-file score expression such as "Binary",
// "P-Value < 0.05" or "0.40 < Correlation < 0.90".
func ParseScore(input string) (schema.ScoreThreshold, error) {
	lower := strings.ToLower(input)
	for _, p := range scoreParsers {
		if strings.Contains(lower, p.keyword) {
			return p.parse(input)
		}
	}
	return schema.ScoreThreshold{}, fmt.Errorf("%w: no score type in %q", ErrInvalidScoreThreshold, input)
}

func parseBinary(string) (schema.ScoreThreshold, error) {
	return schema.BinaryThreshold(), nil
}

func oneSided(kind enum.ScoreType) func(string) (schema.ScoreThreshold, error) {
	return func(input string) (schema.ScoreThreshold, error) {
		v, err := ExtractSingleNumericValue(input)
		if err != nil {
			return schema.ScoreThreshold{}, err
		}
		return newThreshold(kind, v, nil)
	}
}

// twoSided keeps the literals in the order written: the first becomes the
// low bound even when it is larger, and validation then rejects it.
func twoSided(kind enum.ScoreType) func(string) (schema.ScoreThreshold, error) {
	return func(input string) (schema.ScoreThreshold, error) {
		low, high, err := ExtractOneOrTwoNumericValues(input)
		if err != nil {
			return schema.ScoreThreshold{}, err
		}
		return newThreshold(kind, high, low)
	}
}

func newThreshold(kind enum.ScoreType, high float64, low *float64) (schema.ScoreThreshold, error) {
	s, err := schema.NewScoreThreshold(kind, high, low)
	if err != nil {
		return schema.ScoreThreshold{}, fmt.Errorf("%w: %w", ErrInvalidScoreThreshold, err)
	}
	return s, nil
}

// ExtractNumericValues returns every signed decimal literal in s, in order.
//
// A '-' counts as a sign only when it does not directly follow a digit, so
// "4-5" yields ["4" "5"] while "-4 -5" yields ["-4" "-5"]. No literal may
// start right after a digit either. Go's regexp has no lookbehind, so this
// is a small scanner rather than a pattern.
func ExtractNumericValues(s string) []string {
	out := []string{}
	i := 0
	for i < len(s) {
		if i > 0 && isDigit(s[i-1]) {
			i++
			continue
		}
		start := i
		j := i
		if s[j] == '-' {
			j++
		}
		k := j
		for k < len(s) && isNumeric(s[k]) {
			k++
		}
		if k == j {
			i++
			continue
		}
		out = append(out, s[start:k])
		i = k
	}
	return out
}

// ExtractSingleNumericValue requires exactly one literal in s.
func ExtractSingleNumericValue(s string) (float64, error) {
	values := ExtractNumericValues(s)
	if len(values) != 1 {
		return 0, fmt.Errorf("%w: want 1 number in %q, found %d", ErrInvalidScoreThreshold, s, len(values))
	}
	return parseLiteral(values[0])
}

// ExtractOneOrTwoNumericValues returns (nil, v) for one literal and
// (&first, second) for two.
func ExtractOneOrTwoNumericValues(s string) (*float64, float64, error) {
	values := ExtractNumericValues(s)
	switch len(values) {
	case 1:
		v, err := parseLiteral(values[0])
		return nil, v, err
	case 2:
		low, err := parseLiteral(values[0])
		if err != nil {
			return nil, 0, err
		}
		high, err := parseLiteral(values[1])
		if err != nil {
			return nil, 0, err
		}
		return &low, high, nil
	}
	return nil, 0, fmt.Errorf("%w: want 1 or 2 numbers in %q, found %d", ErrInvalidScoreThreshold, s, len(values))
}

// parseLiteral rejects scanner hits such as "." or "1.2.3".
func parseLiteral(lit string) (float64, error) {
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad number %q", ErrInvalidScoreThreshold, lit)
	}
	return v, nil
}

func isDigit(c byte) bool   { return c >= '0' && c <= '9' }
func isNumeric(c byte) bool { return isDigit(c) || c == '.' }
