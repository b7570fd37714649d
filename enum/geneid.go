package enum

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownGeneIDType = errors.New("unknown gene id type")

// GeneIdentifier is a gene identifier scheme, coded as in the GeneWeaver database.
type GeneIdentifier int

const (
	Entrez            GeneIdentifier = 1
	EnsemblGene       GeneIdentifier = 2
	EnsemblProtein    GeneIdentifier = 3
	EnsemblTranscript GeneIdentifier = 4
	Unigene           GeneIdentifier = 5
	GeneSymbol        GeneIdentifier = 7
	Unannotated       GeneIdentifier = 8
	MGI               GeneIdentifier = 10
	HGNC              GeneIdentifier = 11
	RGD               GeneIdentifier = 12
	ZFIN              GeneIdentifier = 13
	FlyBase           GeneIdentifier = 14
	Wormbase          GeneIdentifier = 15
	SGD               GeneIdentifier = 16
	MiRBase           GeneIdentifier = 17
	CGNC              GeneIdentifier = 20
)

// The ENSEMBLE_* spelling is kept because it is what stored batch files use.
var geneIdentifiers = newRegistry(
	member[GeneIdentifier]{Entrez, "ENTREZ", "Entrez"},
	member[GeneIdentifier]{EnsemblGene, "ENSEMBLE_GENE", "Ensemble Gene"},
	member[GeneIdentifier]{EnsemblProtein, "ENSEMBLE_PROTEIN", "Ensemble Protein"},
	member[GeneIdentifier]{EnsemblTranscript, "ENSEMBLE_TRANSCRIPT", "Ensemble Transcript"},
	member[GeneIdentifier]{Unigene, "UNIGENE", "Unigene"},
	member[GeneIdentifier]{GeneSymbol, "GENE_SYMBOL", "Gene Symbol"},
	member[GeneIdentifier]{Unannotated, "UNANNOTATED", "Unannotated"},
	member[GeneIdentifier]{MGI, "MGI", "MGI"},
	member[GeneIdentifier]{HGNC, "HGNC", "HGNC"},
	member[GeneIdentifier]{RGD, "RGD", "RGD"},
	member[GeneIdentifier]{ZFIN, "ZFIN", "ZFIN"},
	member[GeneIdentifier]{FlyBase, "FLYBASE", "FlyBase"},
	member[GeneIdentifier]{Wormbase, "WORMBASE", "Wormbase"},
	member[GeneIdentifier]{SGD, "SGD", "SGD"},
	member[GeneIdentifier]{MiRBase, "MIRBASE", "miRBase"},
	member[GeneIdentifier]{CGNC, "CGNC", "CGNC"},
)

func ParseGeneIdentifier(s string) (GeneIdentifier, error) {
	v, ok := geneIdentifiers.resolve(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownGeneIDType, s)
	}
	return v, nil
}

func (g GeneIdentifier) Name() string   { return geneIdentifiers.name(g) }
func (g GeneIdentifier) String() string { return geneIdentifiers.label(g) }
func (g GeneIdentifier) Valid() bool    { _, ok := geneIdentifiers.get(g); return ok }

// Microarray is a microarray platform. Codes start at 100 and do not
// collide with GeneIdentifier codes.
type Microarray int

const (
	AffymetrixCElegansGenomeArray        Microarray = 100
	AffymetrixDrosophilaGenome20         Microarray = 101
	AffymetrixHTHumanGenomeU133A         Microarray = 102
	AffymetrixHuman35KSet                Microarray = 103
	AffymetrixHuman35KSubA               Microarray = 104
	AffymetrixHuman35KSubB               Microarray = 105
	AffymetrixHuman35KSubC               Microarray = 106
	AffymetrixHuman35KSubD               Microarray = 107
	AffymetrixHumanGenomeU133A           Microarray = 108
	AffymetrixHumanGenomeU133A20         Microarray = 109
	AffymetrixHumanGenomeU133B           Microarray = 110
	AffymetrixHumanGenomeU133Plus20      Microarray = 111
	AffymetrixHumanGenomeU133Set         Microarray = 112
	AffymetrixHumanHGFocusTarget         Microarray = 113
	AffymetrixMouseExon10ST              Microarray = 114
	AffymetrixMouseExpression430A        Microarray = 115
	AffymetrixMouseExpression430B        Microarray = 116
	AffymetrixMouseExpression430Set      Microarray = 117
	AffymetrixMouseGene10STArray         Microarray = 118
	AffymetrixMouseGenome43020           Microarray = 119
	AffymetrixMouseGenome430A20          Microarray = 120
	AffymetrixMurine11KSet               Microarray = 121
	AffymetrixMurine11KSubA              Microarray = 122
	AffymetrixMurine11KSubB              Microarray = 123
	AffymetrixMurineGenomeU74A           Microarray = 124
	AffymetrixMurineGenomeU74B           Microarray = 125
	AffymetrixMurineGenomeU74C           Microarray = 126
	AffymetrixMurineGenomeU74Set         Microarray = 127
	AffymetrixMurineGenomeU74Version2    Microarray = 128
	AffymetrixMurineGenomeU74Version2Set Microarray = 129
	AffymetrixRatExon10ST                Microarray = 130
	AffymetrixRatExpression230A          Microarray = 131
	AffymetrixRatExpression230B          Microarray = 132
	AffymetrixRatExpression230Set        Microarray = 133
	AffymetrixRatGenome23020             Microarray = 134
	AffymetrixRhesusMacaqueGenome        Microarray = 135
	AffymetrixYeastGenome20Array         Microarray = 136
	AffymetrixYeastGenomeS98Array        Microarray = 137
	AffymetrixZebrafishGenome            Microarray = 138
	AgilentMouseG4121AToxicogenomics     Microarray = 139
	AgilentMouseWholeGenomeG4122F        Microarray = 140
	IlluminaHuman6V20                    Microarray = 141
	IlluminaMouseRef8V20                 Microarray = 142
	IlluminaMouseWG6V11                  Microarray = 143
	IlluminaMouseWG6V20                  Microarray = 144
)

var microarrays = newRegistry(
	member[Microarray]{AffymetrixCElegansGenomeArray, "AFFYMETRIX_C_ELEGANS_GENOME_ARRAY", "Affymetrix C. elegans Genome Array"},
	member[Microarray]{AffymetrixDrosophilaGenome20, "AFFYMETRIX_DROSOPHILA_GENOME_2_0", "Affymetrix Drosophila Genome 2.0"},
	member[Microarray]{AffymetrixHTHumanGenomeU133A, "AFFYMETRIX_HT_HUMAN_GENOME_U133A", "Affymetrix HT Human Genome U133A"},
	member[Microarray]{AffymetrixHuman35KSet, "AFFYMETRIX_HUMAN_35K_SET", "Affymetrix Human 35k Set"},
	member[Microarray]{AffymetrixHuman35KSubA, "AFFYMETRIX_HUMAN_35K_SUBA", "Affymetrix Human 35k SubA"},
	member[Microarray]{AffymetrixHuman35KSubB, "AFFYMETRIX_HUMAN_35K_SUBB", "Affymetrix Human 35k SubB"},
	member[Microarray]{AffymetrixHuman35KSubC, "AFFYMETRIX_HUMAN_35K_SUBC", "Affymetrix Human 35k SubC"},
	member[Microarray]{AffymetrixHuman35KSubD, "AFFYMETRIX_HUMAN_35K_SUBD", "Affymetrix Human 35k SubD"},
	member[Microarray]{AffymetrixHumanGenomeU133A, "AFFYMETRIX_HUMAN_GENOME_U133A", "Affymetrix Human Genome U133A"},
	member[Microarray]{AffymetrixHumanGenomeU133A20, "AFFYMETRIX_HUMAN_GENOME_U133A_2_0", "Affymetrix Human Genome U133A 2.0"},
	member[Microarray]{AffymetrixHumanGenomeU133B, "AFFYMETRIX_HUMAN_GENOME_U133B", "Affymetrix Human Genome U133B"},
	member[Microarray]{AffymetrixHumanGenomeU133Plus20, "AFFYMETRIX_HUMAN_GENOME_U133_PLUS_2_0", "Affymetrix Human Genome U133 Plus 2.0"},
	member[Microarray]{AffymetrixHumanGenomeU133Set, "AFFYMETRIX_HUMAN_GENOME_U133_SET", "Affymetrix Human Genome U133 Set"},
	member[Microarray]{AffymetrixHumanHGFocusTarget, "AFFYMETRIX_HUMAN_HG_FOCUS_TARGET", "Affymetrix Human HG-Focus Target"},
	member[Microarray]{AffymetrixMouseExon10ST, "AFFYMETRIX_MOUSE_EXON_1_0_ST", "Affymetrix Mouse Exon 1.0 ST"},
	member[Microarray]{AffymetrixMouseExpression430A, "AFFYMETRIX_MOUSE_EXPRESSION_430A", "Affymetrix Mouse Expression 430A"},
	member[Microarray]{AffymetrixMouseExpression430B, "AFFYMETRIX_MOUSE_EXPRESSION_430B", "Affymetrix Mouse Expression 430B"},
	member[Microarray]{AffymetrixMouseExpression430Set, "AFFYMETRIX_MOUSE_EXPRESSION_430_SET", "Affymetrix Mouse Expression 430 Set"},
	member[Microarray]{AffymetrixMouseGene10STArray, "AFFYMETRIX_MOUSE_GENE_1_0_ST_ARRAY", "Affymetrix Mouse Gene 1.0 ST Array"},
	member[Microarray]{AffymetrixMouseGenome43020, "AFFYMETRIX_MOUSE_GENOME_430_2_0", "Affymetrix Mouse Genome 430 2.0"},
	member[Microarray]{AffymetrixMouseGenome430A20, "AFFYMETRIX_MOUSE_GENOME_430A_2_0", "Affymetrix Mouse Genome 430A 2.0"},
	member[Microarray]{AffymetrixMurine11KSet, "AFFYMETRIX_MURINE_11K_SET", "Affymetrix Murine 11K Set"},
	member[Microarray]{AffymetrixMurine11KSubA, "AFFYMETRIX_MURINE_11K_SUBA", "Affymetrix Murine 11K SubA"},
	member[Microarray]{AffymetrixMurine11KSubB, "AFFYMETRIX_MURINE_11K_SUBB", "Affymetrix Murine 11K SubB"},
	member[Microarray]{AffymetrixMurineGenomeU74A, "AFFYMETRIX_MURINE_GENOME_U74A", "Affymetrix Murine Genome U74A"},
	member[Microarray]{AffymetrixMurineGenomeU74B, "AFFYMETRIX_MURINE_GENOME_U74B", "Affymetrix Murine Genome U74B"},
	member[Microarray]{AffymetrixMurineGenomeU74C, "AFFYMETRIX_MURINE_GENOME_U74C", "Affymetrix Murine Genome U74C"},
	member[Microarray]{AffymetrixMurineGenomeU74Set, "AFFYMETRIX_MURINE_GENOME_U74_SET", "Affymetrix Murine Genome U74 Set"},
	member[Microarray]{AffymetrixMurineGenomeU74Version2, "AFFYMETRIX_MURINE_GENOME_U74_VERSION_2", "Affymetrix Murine Genome U74 Version 2"},
	member[Microarray]{AffymetrixMurineGenomeU74Version2Set, "AFFYMETRIX_MURINE_GENOME_U74_VERSION_2_SET", "Affymetrix Murine Genome U74 Version 2 Set"},
	member[Microarray]{AffymetrixRatExon10ST, "AFFYMETRIX_RAT_EXON_1_0_ST", "Affymetrix Rat Exon 1.0 ST"},
	member[Microarray]{AffymetrixRatExpression230A, "AFFYMETRIX_RAT_EXPRESSION_230A", "Affymetrix Rat Expression 230A"},
	member[Microarray]{AffymetrixRatExpression230B, "AFFYMETRIX_RAT_EXPRESSION_230B", "Affymetrix Rat Expression 230B"},
	member[Microarray]{AffymetrixRatExpression230Set, "AFFYMETRIX_RAT_EXPRESSION_230_SET", "Affymetrix Rat Expression 230 Set"},
	member[Microarray]{AffymetrixRatGenome23020, "AFFYMETRIX_RAT_GENOME_230_2_0", "Affymetrix Rat Genome 230 2.0"},
	member[Microarray]{AffymetrixRhesusMacaqueGenome, "AFFYMETRIX_RHESUS_MACAQUE_GENOME", "Affymetrix Rhesus Macaque Genome"},
	member[Microarray]{AffymetrixYeastGenome20Array, "AFFYMETRIX_YEAST_GENOME_2_0_ARRAY", "Affymetrix Yeast Genome 2.0 Array"},
	member[Microarray]{AffymetrixYeastGenomeS98Array, "AFFYMETRIX_YEAST_GENOME_S98_ARRAY", "Affymetrix Yeast Genome S98 Array"},
	member[Microarray]{AffymetrixZebrafishGenome, "AFFYMETRIX_ZEBRAFISH_GENOME", "Affymetrix Zebrafish Genome"},
	member[Microarray]{AgilentMouseG4121AToxicogenomics, "AGILENT_MOUSE_G4121A_TOXICOGENOMICS", "Agilent Mouse G4121A (Toxicogenomics)"},
	member[Microarray]{AgilentMouseWholeGenomeG4122F, "AGILENT_MOUSE_WHOLE_GENOME_G4122F", "Agilent Mouse Whole Genome G4122F"},
	member[Microarray]{IlluminaHuman6V20, "ILLUMINA_HUMAN_6_V2_0", "Illumina Human-6 v2.0"},
	member[Microarray]{IlluminaMouseRef8V20, "ILLUMINA_MOUSEREF_8_V2_0", "Illumina MouseRef-8 v2.0"},
	member[Microarray]{IlluminaMouseWG6V11, "ILLUMINA_MOUSEWG_6_V1_1", "Illumina MouseWG-6 v1.1"},
	member[Microarray]{IlluminaMouseWG6V20, "ILLUMINA_MOUSEWG_6_V2_0", "Illumina MouseWG-6 v2.0"},
)

const microarrayPrefix = "MICROARRAY"

// ParseMicroarray resolves a platform label or code. A leading "microarray"
// word, as written by the renderer, is ignored.
func ParseMicroarray(s string) (Microarray, error) {
	if v, ok := microarrays.resolve(s); ok {
		return v, nil
	}
	key := strings.TrimPrefix(NormalizeKey(s), microarrayPrefix)
	key = strings.TrimPrefix(key, "_")
	if v, ok := microarrays.resolve(key); ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGeneIDType, s)
}

func (m Microarray) Name() string   { return microarrays.name(m) }
func (m Microarray) String() string { return microarrays.label(m) }
func (m Microarray) Valid() bool    { _, ok := microarrays.get(m); return ok }

// GeneIDKind tags which arm of a GeneIDType is populated.
type GeneIDKind int

const (
	GeneIDKindUnknown GeneIDKind = iota
	GeneIDKindIdentifier
	GeneIDKindMicroarray
)

// GeneIDType is either a gene identifier scheme or a microarray platform.
type GeneIDType struct {
	Kind       GeneIDKind
	Identifier GeneIdentifier
	Microarray Microarray
}

func IdentifierType(g GeneIdentifier) GeneIDType {
	return GeneIDType{Kind: GeneIDKindIdentifier, Identifier: g}
}

func MicroarrayType(m Microarray) GeneIDType {
	return GeneIDType{Kind: GeneIDKindMicroarray, Microarray: m}
}

// ParseGeneIDType resolves s as a gene identifier first and falls back to
// the microarray platforms.
func ParseGeneIDType(s string) (GeneIDType, error) {
	if g, err := ParseGeneIdentifier(s); err == nil {
		return IdentifierType(g), nil
	}
	m, err := ParseMicroarray(s)
	if err != nil {
		return GeneIDType{}, err
	}
	return MicroarrayType(m), nil
}

// Code returns the database code of whichever arm is set.
func (t GeneIDType) Code() int {
	switch t.Kind {
	case GeneIDKindIdentifier:
		return int(t.Identifier)
	case GeneIDKindMicroarray:
		return int(t.Microarray)
	}
	return 0
}

func (t GeneIDType) Valid() bool {
	switch t.Kind {
	case GeneIDKindIdentifier:
		return t.Identifier.Valid()
	case GeneIDKindMicroarray:
		return t.Microarray.Valid()
	}
	return false
}

// String renders identifiers by label and platforms as "microarray <label>".
func (t GeneIDType) String() string {
	switch t.Kind {
	case GeneIDKindIdentifier:
		return t.Identifier.String()
	case GeneIDKindMicroarray:
		return "microarray " + t.Microarray.String()
	}
	return ""
}

func (t GeneIDType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %+v", ErrUnknownGeneIDType, t)
	}
	return []byte(t.String()), nil
}

func (t *GeneIDType) UnmarshalText(b []byte) error {
	v, err := ParseGeneIDType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
