package schema

import (
	"strconv"

	"github.com/nodeadmin/geneweaver-core/enum"
)

// BatchUploadGeneset is one geneset read from a batch upload file.
type BatchUploadGeneset struct {
	Score         ScoreThreshold  `json:"score" yaml:"score"`
	Species       enum.Species    `json:"species" yaml:"species"`
	GeneIDType    enum.GeneIDType `json:"gene_id_type" yaml:"gene_id_type"`
	PubmedID      *string         `json:"pubmed_id,omitempty" yaml:"pubmed_id,omitempty"`
	Private       bool            `json:"private" yaml:"private"`
	CurationID    *int            `json:"curation_id,omitempty" yaml:"curation_id,omitempty"`
	Abbreviation  string          `json:"abbreviation" yaml:"abbreviation" validate:"required"`
	Name          string          `json:"name" yaml:"name" validate:"required"`
	Description   string          `json:"description" yaml:"description" validate:"required"`
	Ontology      *string         `json:"ontology,omitempty" yaml:"ontology,omitempty"`
	UserID        *string         `json:"user_id,omitempty" yaml:"user_id,omitempty"`
	AttributionID *string         `json:"attribution_id,omitempty" yaml:"attribution_id,omitempty"`
	Values        []GeneValue     `json:"values" yaml:"values" validate:"dive"`
}

// Validate checks required fields, enum membership, the score invariants
// and every gene value.
func (g BatchUploadGeneset) Validate() error { return check(g) }

// Tier returns the curation tier, applying the private/public default when
// no curation id was given.
func (g BatchUploadGeneset) Tier() enum.GenesetTier {
	if g.CurationID != nil {
		return enum.GenesetTier(*g.CurationID)
	}
	return enum.DefaultTier(g.Private)
}

// Field is one populated metadata field of a geneset, as rendered into a
// batch file header.
type Field struct {
	Name  string
	Value string
}

// Fields lists the populated metadata fields in rendering order. Values are
// excluded and empty strings count as unpopulated.
func (g BatchUploadGeneset) Fields() []Field {
	out := make([]Field, 0, 12)
	add := func(name, value string) {
		if value != "" {
			out = append(out, Field{Name: name, Value: value})
		}
	}
	addPtr := func(name string, value *string) {
		if value != nil {
			add(name, *value)
		}
	}

	add(FieldScore, g.Score.String())
	add(FieldSpecies, g.Species.String())
	add(FieldGeneIDType, g.GeneIDType.String())
	addPtr(FieldPubmedID, g.PubmedID)
	if g.Private {
		add(FieldPrivate, "private")
	} else {
		add(FieldPrivate, "public")
	}
	if g.CurationID != nil {
		add(FieldCurationID, strconv.Itoa(*g.CurationID))
	}
	add(FieldAbbreviation, g.Abbreviation)
	add(FieldName, g.Name)
	add(FieldDescription, g.Description)
	addPtr(FieldOntology, g.Ontology)
	addPtr(FieldUserID, g.UserID)
	addPtr(FieldAttributionID, g.AttributionID)
	return out
}
