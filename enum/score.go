package enum

import (
	"errors"
	"fmt"
)

var ErrUnknownScoreType = errors.New("unknown score type")

// ScoreType is the rule used to decide whether a gene value is significant.
// Values match the GeneWeaver database codes.
type ScoreType int

const (
	PValue      ScoreType = 1
	QValue      ScoreType = 2
	Binary      ScoreType = 3
	Correlation ScoreType = 4
	Effect      ScoreType = 5
)

var scoreTypes = newRegistry(
	member[ScoreType]{PValue, "P_VALUE", "p-value"},
	member[ScoreType]{QValue, "Q_VALUE", "q-value"},
	member[ScoreType]{Binary, "BINARY", "binary"},
	member[ScoreType]{Correlation, "CORRELATION", "correlation"},
	member[ScoreType]{Effect, "EFFECT", "effect"},
)

// ParseScoreType resolves a label ("p-value"), name ("P_VALUE") or code ("1").
func ParseScoreType(s string) (ScoreType, error) {
	v, ok := scoreTypes.resolve(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownScoreType, s)
	}
	return v, nil
}

func (s ScoreType) Name() string   { return scoreTypes.name(s) }
func (s ScoreType) String() string { return scoreTypes.label(s) }
func (s ScoreType) Valid() bool    { _, ok := scoreTypes.get(s); return ok }

// TwoSided reports whether the score type is bounded on both sides.
func (s ScoreType) TwoSided() bool {
	return s == Correlation || s == Effect
}

func (s ScoreType) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScoreType, int(s))
	}
	return []byte(s.String()), nil
}

func (s *ScoreType) UnmarshalText(b []byte) error {
	v, err := ParseScoreType(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ScoreTypes returns every score type in database code order.
func ScoreTypes() []ScoreType { return scoreTypes.values() }
