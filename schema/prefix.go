package schema

// Canonical header field names.
const (
	FieldAbbreviation  = "abbreviation"
	FieldName          = "name"
	FieldDescription   = "description"
	FieldSpecies       = "species"
	FieldScore         = "score"
	FieldGeneIDType    = "gene_id_type"
	FieldOntology      = "ontology"
	FieldPubmedID      = "pubmed_id"
	FieldPrivate       = "private"
	FieldCurationID    = "curation_id"
	FieldUserID        = "user_id"
	FieldAttributionID = "attribution_id"
)

// PrefixTable maps batch-file prefix characters to header fields and back.
// A table is never modified after construction, so one value can be shared
// by any number of parsers and renderers.
type PrefixTable struct {
	single   map[byte]string
	spaced   map[byte]string
	ignore   map[byte]string
	inverse  map[string]byte
	required []byte
}

// PrefixTableConfig lists the entries of a PrefixTable.
type PrefixTableConfig struct {
	// Single prefixes are followed directly by the value (":ABBR").
	Single map[byte]string
	// Spaced prefixes must be followed by a space or tab ("P 12345"),
	// since the same letters start ordinary gene symbols.
	Spaced map[byte]string
	// Ignore prefixes mark comment and continuation lines.
	Ignore map[byte]string
	// Required lists Single prefixes every geneset must define.
	Required []byte
}

// NewPrefixTable copies cfg into an immutable table.
func NewPrefixTable(cfg PrefixTableConfig) *PrefixTable {
	t := &PrefixTable{
		single:   make(map[byte]string, len(cfg.Single)),
		spaced:   make(map[byte]string, len(cfg.Spaced)),
		ignore:   make(map[byte]string, len(cfg.Ignore)),
		inverse:  make(map[string]byte, len(cfg.Single)+len(cfg.Spaced)+len(cfg.Ignore)),
		required: append([]byte(nil), cfg.Required...),
	}
	for c, name := range cfg.Single {
		t.single[c] = name
		t.inverse[name] = c
	}
	for c, name := range cfg.Spaced {
		t.spaced[c] = name
		t.inverse[name] = c
	}
	for c, name := range cfg.Ignore {
		t.ignore[c] = name
		t.inverse[name] = c
	}
	return t
}

var defaultPrefixes = NewPrefixTable(PrefixTableConfig{
	Single: map[byte]string{
		':': FieldAbbreviation,
		'=': FieldName,
		'+': FieldDescription,
		'@': FieldSpecies,
		'!': FieldScore,
		'%': FieldGeneIDType,
		'~': FieldOntology,
	},
	Spaced: map[byte]string{
		'P': FieldPubmedID,
		'A': FieldPrivate,
		'T': FieldCurationID,
		'U': FieldUserID,
		'D': FieldAttributionID,
	},
	Ignore: map[byte]string{
		'#': "comment",
		' ': "space",
	},
	Required: []byte{':', '=', '+'},
})

// DefaultPrefixes returns the standard GeneWeaver batch prefix table.
func DefaultPrefixes() *PrefixTable { return defaultPrefixes }

// Single returns the field for a prefix written directly before its value.
func (t *PrefixTable) Single(c byte) (string, bool) {
	name, ok := t.single[c]
	return name, ok
}

// Spaced returns the field for a prefix that needs whitespace before its value.
func (t *PrefixTable) Spaced(c byte) (string, bool) {
	name, ok := t.spaced[c]
	return name, ok
}

// Ignored reports whether lines starting with c are skipped.
func (t *PrefixTable) Ignored(c byte) bool {
	_, ok := t.ignore[c]
	return ok
}

// Prefix returns the prefix character for a field name.
func (t *PrefixTable) Prefix(field string) (byte, bool) {
	c, ok := t.inverse[field]
	return c, ok
}

// RequiredFields returns the field names every geneset header must carry.
func (t *PrefixTable) RequiredFields() []string {
	out := make([]string, 0, len(t.required))
	for _, c := range t.required {
		if name, ok := t.single[c]; ok {
			out = append(out, name)
		}
	}
	return out
}
