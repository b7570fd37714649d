package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nodeadmin/geneweaver-core/schema"
)

// LineKind tells header lines from value lines.
type LineKind int

const (
	HeaderLine LineKind = iota + 1
	ValueLine
)

func (k LineKind) String() string {
	switch k {
	case HeaderLine:
		return "header"
	case ValueLine:
		return "value"
	}
	return "unknown"
}

// Line is a classified, non-ignored line of a batch file. For header lines
// Key is the field name; for value lines it is the gene symbol and Value is
// the raw, unconverted measurement.
type Line struct {
	Kind  LineKind
	Key   string
	Value string
}

// Tokenizer classifies single lines against a prefix table. It holds no
// state between calls.
type Tokenizer struct {
	prefixes *schema.PrefixTable
}

// NewTokenizer returns a tokenizer for the given table, or for the default
// GeneWeaver table when prefixes is nil.
func NewTokenizer(prefixes *schema.PrefixTable) *Tokenizer {
	if prefixes == nil {
		prefixes = schema.DefaultPrefixes()
	}
	return &Tokenizer{prefixes: prefixes}
}

var defaultTokenizer = NewTokenizer(nil)

// Prefixes returns the table the tokenizer was built with.
func (t *Tokenizer) Prefixes() *schema.PrefixTable { return t.prefixes }

// ClassifyLine tries the header grammar first and falls back to the value
// grammar. Lines to be skipped come back as ErrIgnoreLine.
func (t *Tokenizer) ClassifyLine(line string) (Line, error) {
	key, value, err := t.ProcessHeaderLine(line)
	switch {
	case err == nil:
		return Line{Kind: HeaderLine, Key: key, Value: value}, nil
	case !errors.Is(err, ErrNotAHeaderRow):
		return Line{}, err
	}

	symbol, raw, err := ProcessValueLine(line)
	if err != nil {
		return Line{}, err
	}
	return Line{Kind: ValueLine, Key: symbol, Value: raw}, nil
}

// ProcessHeaderLine returns the (field, value) pair encoded by line. It
// returns ErrIgnoreLine for blank and comment lines and ErrNotAHeaderRow
// for anything that is not a header.
func (t *Tokenizer) ProcessHeaderLine(line string) (string, string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", "", ErrIgnoreLine
	}
	prefix := line[0]
	if t.prefixes.Ignored(prefix) {
		return "", "", ErrIgnoreLine
	}
	if _, ok := t.prefixes.Single(prefix); ok {
		return t.ReadSinglePrefixHeader(prefix, line)
	}
	if _, ok := t.prefixes.Spaced(prefix); ok {
		return t.ReadSpaceSeparatedHeader(prefix, line)
	}
	return "", "", ErrNotAHeaderRow
}

// ReadSinglePrefixHeader reads a header whose value follows the prefix
// directly, as in ":ABBR". An empty value is not a header.
func (t *Tokenizer) ReadSinglePrefixHeader(prefix byte, line string) (string, string, error) {
	key, ok := t.prefixes.Single(prefix)
	if !ok || line == "" || line[0] != prefix {
		return "", "", ErrNotAHeaderRow
	}
	value := strings.TrimSpace(line[1:])
	if value == "" {
		return "", "", ErrNotAHeaderRow
	}
	return key, value, nil
}

// ReadSpaceSeparatedHeader reads a header whose prefix letter must be
// followed by a space or tab, as in "P 12345". "Pax6 0.1" is not a header.
func (t *Tokenizer) ReadSpaceSeparatedHeader(prefix byte, line string) (string, string, error) {
	key, ok := t.prefixes.Spaced(prefix)
	if !ok || len(line) < 2 || line[0] != prefix {
		return "", "", ErrNotAHeaderRow
	}
	if line[1] != ' ' && line[1] != '\t' {
		return "", "", ErrNotAHeaderRow
	}
	value := strings.TrimSpace(line[2:])
	if value == "" {
		return "", "", ErrNotAHeaderRow
	}
	return key, value, nil
}

// ProcessHeaderLine classifies line against the default prefix table.
func ProcessHeaderLine(line string) (string, string, error) {
	return defaultTokenizer.ProcessHeaderLine(line)
}

// ClassifyLine classifies line against the default prefix table.
func ClassifyLine(line string) (Line, error) {
	return defaultTokenizer.ClassifyLine(line)
}

// ProcessValueLine splits a "symbol value" line on whitespace. Exactly two
// tokens are required.
func ProcessValueLine(line string) (string, string, error) {
	if StringHasNewlines(line) {
		return "", "", ErrMultiLineString
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", "", fmt.Errorf("%w: want 2 fields, found %d", ErrInvalidValueLine, len(fields))
	}
	return fields[0], fields[1], nil
}

// StringHasNewlines reports whether s contains '\n' or '\r'.
func StringHasNewlines(s string) bool {
	return strings.ContainsAny(s, "\r\n")
}
