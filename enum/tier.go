package enum

import "fmt"

// GenesetTier is the curation tier of a geneset. Lower tiers are more
// heavily curated.
type GenesetTier int

const (
	TierI   GenesetTier = 1
	TierII  GenesetTier = 2
	TierIII GenesetTier = 3
	TierIV  GenesetTier = 4
	TierV   GenesetTier = 5
)

var tiers = newRegistry(
	member[GenesetTier]{TierI, "TIER1", "Tier I"},
	member[GenesetTier]{TierII, "TIER2", "Tier II"},
	member[GenesetTier]{TierIII, "TIER3", "Tier III"},
	member[GenesetTier]{TierIV, "TIER4", "Tier IV"},
	member[GenesetTier]{TierV, "TIER5", "Tier V"},
)

func (t GenesetTier) String() string { return tiers.label(t) }
func (t GenesetTier) Valid() bool    { _, ok := tiers.get(t); return ok }

// DefaultTier is the tier assigned to an uploaded geneset that does not
// name one: private uploads start at Tier V, public ones at Tier IV.
func DefaultTier(private bool) GenesetTier {
	if private {
		return TierV
	}
	return TierIV
}

// FileType is an upload file format, keyed by extension.
type FileType string

const (
	FileTypeText  FileType = "txt"
	FileTypeExcel FileType = "xlsx"
	FileTypeCSV   FileType = "csv"
	FileTypeBatch FileType = "gw"
)

// GeneweaverFileType distinguishes the two text upload grammars.
type GeneweaverFileType string

const (
	GeneweaverBatch  GeneweaverFileType = "batch"
	GeneweaverValues GeneweaverFileType = "values"
)

func (t GeneweaverFileType) String() string { return string(t) }

func ParseFileType(s string) (FileType, error) {
	switch ft := FileType(s); ft {
	case FileTypeText, FileTypeExcel, FileTypeCSV, FileTypeBatch:
		return ft, nil
	}
	return "", fmt.Errorf("unsupported file type %q", s)
}
