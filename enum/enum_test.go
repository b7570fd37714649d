package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	cases := map[string]string{
		"Mus Musculus":                          "MUS_MUSCULUS",
		"  mus   musculus ":                     "MUS_MUSCULUS",
		"Affymetrix C. elegans Genome Array":    "AFFYMETRIX_C_ELEGANS_GENOME_ARRAY",
		"Agilent Mouse G4121A (Toxicogenomics)": "AGILENT_MOUSE_G4121A_TOXICOGENOMICS",
		"p-value":                               "P_VALUE",
		"":                                      "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeKey(in), in)
	}
}

func TestParseSpecies(t *testing.T) {
	for _, in := range []string{"Mus Musculus", "MUS_MUSCULUS", "mus musculus", "1", " 1 "} {
		got, err := ParseSpecies(in)
		require.NoError(t, err, in)
		assert.Equal(t, MusMusculus, got, in)
	}

	_, err := ParseSpecies("Felis Catus")
	assert.ErrorIs(t, err, ErrUnknownSpecies)
	_, err = ParseSpecies("7")
	assert.ErrorIs(t, err, ErrUnknownSpecies)
	_, err = ParseSpecies("")
	assert.ErrorIs(t, err, ErrUnknownSpecies)
}

func TestSpeciesLabelsRoundTrip(t *testing.T) {
	for _, s := range AllSpeciesValues() {
		got, err := ParseSpecies(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestParseGeneIDType(t *testing.T) {
	tests := []struct {
		in   string
		want GeneIDType
	}{
		{"Entrez", IdentifierType(Entrez)},
		{"gene symbol", IdentifierType(GeneSymbol)},
		{"7", IdentifierType(GeneSymbol)},
		{"Ensemble Gene", IdentifierType(EnsemblGene)},
		{"Affymetrix Mouse Genome 430 2.0", MicroarrayType(AffymetrixMouseGenome43020)},
		{"microarray Affymetrix Mouse Genome 430 2.0", MicroarrayType(AffymetrixMouseGenome43020)},
		{"MICROARRAY Illumina MouseWG-6 v1.1", MicroarrayType(IlluminaMouseWG6V11)},
		{"101", MicroarrayType(AffymetrixDrosophilaGenome20)},
	}
	for _, tt := range tests {
		got, err := ParseGeneIDType(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseGeneIDType("not a platform")
	assert.ErrorIs(t, err, ErrUnknownGeneIDType)
}

func TestGeneIDTypeStringRoundTrip(t *testing.T) {
	for _, g := range geneIdentifiers.values() {
		got, err := ParseGeneIDType(IdentifierType(g).String())
		require.NoError(t, err)
		assert.Equal(t, IdentifierType(g), got)
	}
	for _, m := range microarrays.values() {
		rendered := MicroarrayType(m).String()
		assert.Contains(t, rendered, "microarray ")
		got, err := ParseGeneIDType(rendered)
		require.NoError(t, err, rendered)
		assert.Equal(t, MicroarrayType(m), got)
	}
}

func TestGeneIDTypeCode(t *testing.T) {
	assert.Equal(t, 1, IdentifierType(Entrez).Code())
	assert.Equal(t, 144, MicroarrayType(IlluminaMouseWG6V20).Code())
	assert.Equal(t, 0, GeneIDType{}.Code())
	assert.False(t, GeneIDType{}.Valid())
}

func TestScoreType(t *testing.T) {
	got, err := ParseScoreType("P-Value")
	require.NoError(t, err)
	assert.Equal(t, PValue, got)
	assert.Equal(t, "P_VALUE", got.Name())
	assert.Equal(t, "p-value", got.String())
	assert.True(t, Correlation.TwoSided())
	assert.True(t, Effect.TwoSided())
	assert.False(t, Binary.TwoSided())
	assert.Equal(t, []ScoreType{PValue, QValue, Binary, Correlation, Effect}, ScoreTypes())

	b, err := Effect.MarshalText()
	require.NoError(t, err)
	var back ScoreType
	require.NoError(t, back.UnmarshalText(b))
	assert.Equal(t, Effect, back)

	_, err = ScoreType(9).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownScoreType)
}

func TestDefaultTier(t *testing.T) {
	assert.Equal(t, TierV, DefaultTier(true))
	assert.Equal(t, TierIV, DefaultTier(false))
	assert.Equal(t, "Tier IV", TierIV.String())
}

func TestAONIDTypeForSpecies(t *testing.T) {
	got, ok := AONIDTypeForSpecies(MusMusculus)
	assert.True(t, ok)
	assert.Equal(t, MGI, got)

	got, ok = AONIDTypeForSpecies(CanisFamiliaris)
	assert.True(t, ok)
	assert.Equal(t, Entrez, got)

	_, ok = AONIDTypeForSpecies(AllSpecies)
	assert.False(t, ok)
}

func TestParseFileType(t *testing.T) {
	ft, err := ParseFileType("xlsx")
	require.NoError(t, err)
	assert.Equal(t, FileTypeExcel, ft)

	_, err = ParseFileType("pdf")
	assert.Error(t, err)
}
