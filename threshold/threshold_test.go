package threshold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodeadmin/geneweaver-core/enum"
	"github.com/nodeadmin/geneweaver-core/schema"
)

func low(v float64) *float64 { return &v }

func TestCheckPValue(t *testing.T) {
	values := []schema.GeneValue{
		schema.NewGeneValue("g", 0.01),
		schema.NewGeneValue("g2", 0.06),
	}
	score := schema.ScoreThreshold{Kind: enum.PValue, Threshold: 0.05}
	assert.Equal(t, []bool{true, false}, Check(values, score))
}

func TestCheckBoundariesInclusive(t *testing.T) {
	values := []schema.GeneValue{
		schema.NewGeneValue("a", 0.4),
		schema.NewGeneValue("b", 0.9),
		schema.NewGeneValue("c", 0.39),
		schema.NewGeneValue("d", 0.91),
	}
	score := schema.ScoreThreshold{Kind: enum.Correlation, Threshold: 0.9, ThresholdLow: low(0.4)}
	assert.Equal(t, []bool{true, true, false, false}, Check(values, score))

	score = schema.ScoreThreshold{Kind: enum.QValue, Threshold: 0.4}
	assert.Equal(t, []bool{true, false, true, false}, Check(values, score))
}

func TestCheckTwoSidedWithoutLow(t *testing.T) {
	values := []schema.GeneValue{schema.NewGeneValue("a", -100), schema.NewGeneValue("b", 3)}
	score := schema.ScoreThreshold{Kind: enum.Effect, Threshold: 2}
	assert.Equal(t, []bool{true, false}, Check(values, score))
}

func TestBinaryRulesDiffer(t *testing.T) {
	score := schema.BinaryThreshold()
	values := []schema.GeneValue{schema.NewGeneValue("a", 0), schema.NewGeneValue("b", 1)}

	assert.Equal(t, []bool{true, true}, Check(values, score))
	assert.False(t, CheckOne(score, 0))
	assert.True(t, CheckOne(score, 1))
	assert.Equal(t, []bool{false, true, true}, CheckList(score, []float64{0, 1, 2}))
}

func TestCheckOne(t *testing.T) {
	p := schema.ScoreThreshold{Kind: enum.PValue, Threshold: 0.05}
	assert.True(t, CheckOne(p, 0.05))
	assert.False(t, CheckOne(p, 0.051))

	e := schema.ScoreThreshold{Kind: enum.Effect, Threshold: 22.5, ThresholdLow: low(6)}
	assert.Equal(t, []bool{false, true, true, false}, CheckList(e, []float64{5.9, 6, 22.5, 23}))

	assert.False(t, CheckOne(schema.ScoreThreshold{Kind: enum.ScoreType(99)}, 0))
}

func TestCheckEmpty(t *testing.T) {
	assert.Empty(t, Check(nil, schema.BinaryThreshold()))
	assert.Empty(t, CheckList(schema.BinaryThreshold(), nil))
}

func TestSummarize(t *testing.T) {
	values := []schema.GeneValue{
		schema.NewGeneValue("a", 0.01),
		schema.NewGeneValue("b", 0.03),
		schema.NewGeneValue("c", 0.2),
		schema.NewGeneValue("d", 0.5),
	}
	s, err := Summarize(values, schema.ScoreThreshold{Kind: enum.PValue, Threshold: 0.05})
	require.NoError(t, err)
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, 2, s.Passing)
	assert.Equal(t, 0.01, s.Min)
	assert.Equal(t, 0.5, s.Max)
	assert.InDelta(t, 0.185, s.Mean, 1e-9)
	assert.InDelta(t, 0.115, s.Median, 1e-9)

	_, err = Summarize(nil, schema.BinaryThreshold())
	assert.ErrorIs(t, err, ErrNoValues)
}
