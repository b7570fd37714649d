package schema

import "strconv"

// GeneValue is one row of gene-level data: a symbol (gene symbol, probe id,
// ...) and its measurement.
//
// Identity is the symbol alone. Two values for the same symbol are Equal and
// share a Key even when their measurements differ, so de-duplicating by Key
// silently drops one of them.
type GeneValue struct {
	Symbol string  `json:"symbol" yaml:"symbol" validate:"required"`
	Value  float64 `json:"value" yaml:"value"`
}

// NewGeneValue pairs a symbol with its measurement.
func NewGeneValue(symbol string, value float64) GeneValue {
	return GeneValue{Symbol: symbol, Value: value}
}

// Key is the identity used for hashing, the symbol.
func (g GeneValue) Key() string { return g.Symbol }

// Equal compares symbols only.
func (g GeneValue) Equal(o GeneValue) bool { return g.Symbol == o.Symbol }

// String renders the value as a tab separated batch-file row.
func (g GeneValue) String() string {
	return g.Symbol + "\t" + strconv.FormatFloat(g.Value, 'g', -1, 64)
}

// Validate reports an empty symbol.
func (g GeneValue) Validate() error { return check(g) }
