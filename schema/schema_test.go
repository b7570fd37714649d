package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodeadmin/geneweaver-core/enum"
)

func f64(v float64) *float64 { return &v }

func TestNewScoreThreshold(t *testing.T) {
	s, err := NewScoreThreshold(enum.Correlation, 0.9, f64(0.4))
	require.NoError(t, err)
	low, ok := s.Low()
	assert.True(t, ok)
	assert.Equal(t, 0.4, low)

	_, err = NewScoreThreshold(enum.Correlation, 0.4, f64(0.9))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewScoreThreshold(enum.PValue, 0.05, f64(0.01))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewScoreThreshold(enum.ScoreType(42), 0.05, nil)
	assert.ErrorIs(t, err, ErrValidation)

	s, err = NewScoreThreshold(enum.Effect, 2, f64(2))
	require.NoError(t, err, "equal bounds are allowed")
	assert.Equal(t, 2.0, s.Threshold)
}

func TestNewScoreThresholdCopiesLow(t *testing.T) {
	low := 0.1
	s, err := NewScoreThreshold(enum.Effect, 1, &low)
	require.NoError(t, err)
	low = 5
	got, _ := s.Low()
	assert.Equal(t, 0.1, got)
}

func TestScoreThresholdString(t *testing.T) {
	tests := []struct {
		s   ScoreThreshold
		str string
		dbs string
	}{
		{ScoreThreshold{Kind: enum.PValue, Threshold: 0.05}, "P-Value < 0.05", "0.05"},
		{ScoreThreshold{Kind: enum.QValue, Threshold: 0.1}, "Q-Value < 0.1", "0.1"},
		{BinaryThreshold(), "Binary < 1", "1"},
		{ScoreThreshold{Kind: enum.Correlation, Threshold: 0.9, ThresholdLow: f64(0.4)}, "0.4 < Correlation < 0.9", "0.4,0.9"},
		{ScoreThreshold{Kind: enum.Effect, Threshold: 22.5, ThresholdLow: f64(0)}, "0 < Effect < 22.5", "0,22.5"},
		{ScoreThreshold{Kind: enum.PValue, Threshold: 0.00001}, "P-Value < 0.00001", "0.00001"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.str, tt.s.String())
		assert.Equal(t, tt.dbs, tt.s.DBString())
	}
}

func TestScoreThresholdEqual(t *testing.T) {
	a := ScoreThreshold{Kind: enum.Effect, Threshold: 1, ThresholdLow: f64(0.5)}
	b := ScoreThreshold{Kind: enum.Effect, Threshold: 1, ThresholdLow: f64(0.5)}
	c := ScoreThreshold{Kind: enum.Effect, Threshold: 1}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestGeneValueIdentityIsSymbol(t *testing.T) {
	a := NewGeneValue("Gad1", 0.01)
	b := NewGeneValue("Gad1", 0.9)
	c := NewGeneValue("Gad2", 0.01)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
	assert.False(t, a.Equal(c))

	seen := map[string]GeneValue{}
	for _, v := range []GeneValue{a, b, c} {
		seen[v.Key()] = v
	}
	assert.Len(t, seen, 2, "same symbol collides regardless of value")

	assert.Equal(t, "Gad1\t0.01", a.String())
	assert.ErrorIs(t, NewGeneValue("", 1).Validate(), ErrValidation)
}

func validGeneset() BatchUploadGeneset {
	return BatchUploadGeneset{
		Score:        ScoreThreshold{Kind: enum.PValue, Threshold: 0.05},
		Species:      enum.MusMusculus,
		GeneIDType:   enum.IdentifierType(enum.Entrez),
		Private:      true,
		Abbreviation: "ABBR",
		Name:         "Full Name",
		Description:  "A description.",
		Values:       []GeneValue{NewGeneValue("gene1", 0.01)},
	}
}

func TestBatchUploadGenesetValidate(t *testing.T) {
	require.NoError(t, validGeneset().Validate())

	g := validGeneset()
	g.Name = ""
	assert.ErrorIs(t, g.Validate(), ErrValidation)

	g = validGeneset()
	g.Species = enum.Species(99)
	assert.ErrorIs(t, g.Validate(), ErrValidation)

	g = validGeneset()
	g.GeneIDType = enum.GeneIDType{}
	assert.ErrorIs(t, g.Validate(), ErrValidation)

	g = validGeneset()
	g.Score = ScoreThreshold{Kind: enum.Binary, Threshold: 1, ThresholdLow: f64(0)}
	assert.ErrorIs(t, g.Validate(), ErrValidation)

	g = validGeneset()
	g.Values = append(g.Values, GeneValue{Value: 1})
	assert.ErrorIs(t, g.Validate(), ErrValidation)

	g = validGeneset()
	g.Description = ""
	assert.ErrorIs(t, g.Validate(), ErrValidation)
}

func TestBatchUploadGenesetTier(t *testing.T) {
	g := validGeneset()
	assert.Equal(t, enum.TierV, g.Tier())
	g.Private = false
	assert.Equal(t, enum.TierIV, g.Tier())
	three := 3
	g.CurationID = &three
	assert.Equal(t, enum.TierIII, g.Tier())
}

func TestBatchUploadGenesetFields(t *testing.T) {
	g := validGeneset()
	pmid := "12345"
	five := 5
	g.PubmedID = &pmid
	g.CurationID = &five

	assert.Equal(t, []Field{
		{FieldScore, "P-Value < 0.05"},
		{FieldSpecies, "Mus Musculus"},
		{FieldGeneIDType, "Entrez"},
		{FieldPubmedID, "12345"},
		{FieldPrivate, "private"},
		{FieldCurationID, "5"},
		{FieldAbbreviation, "ABBR"},
		{FieldName, "Full Name"},
		{FieldDescription, "A description."},
	}, g.Fields())

	g.Description = ""
	for _, f := range g.Fields() {
		assert.NotEqual(t, FieldDescription, f.Name)
	}
}

func TestPrefixTable(t *testing.T) {
	p := DefaultPrefixes()

	name, ok := p.Single(':')
	assert.True(t, ok)
	assert.Equal(t, FieldAbbreviation, name)

	_, ok = p.Single('P')
	assert.False(t, ok)
	name, ok = p.Spaced('P')
	assert.True(t, ok)
	assert.Equal(t, FieldPubmedID, name)

	assert.True(t, p.Ignored('#'))
	assert.True(t, p.Ignored(' '))
	assert.False(t, p.Ignored('x'))

	c, ok := p.Prefix(FieldGeneIDType)
	assert.True(t, ok)
	assert.Equal(t, byte('%'), c)
	_, ok = p.Prefix("unknown")
	assert.False(t, ok)

	assert.Equal(t, []string{FieldAbbreviation, FieldName, FieldDescription}, p.RequiredFields())
}

func TestPrefixTableIsolatedFromConfig(t *testing.T) {
	cfg := PrefixTableConfig{
		Single:   map[byte]string{'>': "name"},
		Required: []byte{'>'},
	}
	p := NewPrefixTable(cfg)
	cfg.Single['<'] = "other"
	cfg.Required[0] = '<'

	_, ok := p.Single('<')
	assert.False(t, ok)
	assert.Equal(t, []string{"name"}, p.RequiredFields())
}

func TestPublicationInfoValidate(t *testing.T) {
	p := PublicationInfo{Authors: "A B", Title: "T", Year: 2020, PubmedID: 1}
	assert.NoError(t, p.Validate())
	p.Year = 0
	assert.ErrorIs(t, p.Validate(), ErrValidation)
}
