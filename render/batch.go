// Package render writes genesets back out as batch files, CSV, gene lists,
// JSON and YAML.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nodeadmin/geneweaver-core/schema"
)

const writerBufferSize = 256 * 1024 // 256 KB

// ErrUnrenderableSymbol marks a gene symbol that would not read back as a
// value row.
var ErrUnrenderableSymbol = errors.New("symbol cannot be rendered as a value row")

// BatchRenderer formats genesets as batch-upload text using a prefix table.
// Fields with no prefix in the table are written under their field name.
type BatchRenderer struct {
	Prefixes *schema.PrefixTable
}

var defaultRenderer = &BatchRenderer{}

func (r *BatchRenderer) prefixes() *schema.PrefixTable {
	if r.Prefixes == nil {
		return schema.DefaultPrefixes()
	}
	return r.Prefixes
}

// BatchFile renders every geneset, separated by blank lines.
//
// Parsing the output yields the same genesets, with two exceptions. A
// geneset without values merges into the header of the one after it. A value
// whose symbol reads as a header, comment or malformed row (see CheckValues)
// is misread or dropped; WriteBatchFile rejects such genesets instead.
func BatchFile(genesets []schema.BatchUploadGeneset) string {
	return defaultRenderer.BatchFile(genesets)
}

// Geneset renders one geneset with the default prefix table.
func Geneset(g schema.BatchUploadGeneset) string { return defaultRenderer.Geneset(g) }

// GenesetMetadata renders one geneset's header lines with the default
// prefix table.
func GenesetMetadata(g schema.BatchUploadGeneset) string { return defaultRenderer.GenesetMetadata(g) }

// CheckValues reports the first value of g that BatchFile cannot round-trip
// under the default prefix table.
func CheckValues(g schema.BatchUploadGeneset) error { return defaultRenderer.CheckValues(g) }

// WriteBatchFile streams BatchFile output to w, failing with
// ErrUnrenderableSymbol before writing a geneset that CheckValues rejects.
func WriteBatchFile(w io.Writer, genesets []schema.BatchUploadGeneset) error {
	return defaultRenderer.WriteBatchFile(w, genesets)
}

func (r *BatchRenderer) BatchFile(genesets []schema.BatchUploadGeneset) string {
	var b strings.Builder
	for i, g := range genesets {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(r.Geneset(g))
	}
	return b.String()
}

// Geneset renders the metadata block, a blank line and the value rows.
func (r *BatchRenderer) Geneset(g schema.BatchUploadGeneset) string {
	return r.GenesetMetadata(g) + "\n" + GenesetValues(g)
}

// GenesetMetadata renders one "<prefix> <value>" line per populated field.
func (r *BatchRenderer) GenesetMetadata(g schema.BatchUploadGeneset) string {
	table := r.prefixes()
	var b strings.Builder
	for _, f := range g.Fields() {
		if c, ok := table.Prefix(f.Name); ok {
			b.WriteByte(c)
		} else {
			b.WriteString(f.Name)
		}
		b.WriteByte(' ')
		b.WriteString(f.Value)
		b.WriteByte('\n')
	}
	return b.String()
}

// GenesetValues renders one tab separated row per gene value.
func GenesetValues(g schema.BatchUploadGeneset) string {
	var b strings.Builder
	for _, v := range g.Values {
		b.WriteString(v.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// CheckValues is CheckValues using r's prefix table.
func (r *BatchRenderer) CheckValues(g schema.BatchUploadGeneset) error {
	table := r.prefixes()
	for i, v := range g.Values {
		if err := checkSymbol(table, v.Symbol); err != nil {
			return fmt.Errorf("%w: value %d %q: %s", ErrUnrenderableSymbol, i+1, v.Symbol, err)
		}
	}
	return nil
}

func checkSymbol(table *schema.PrefixTable, sym string) error {
	if sym == "" {
		return errors.New("empty")
	}
	if strings.ContainsAny(sym, " \t\r\n") {
		return errors.New("contains whitespace")
	}
	c := sym[0]
	if table.Ignored(c) {
		return errors.New("starts with a comment prefix")
	}
	if _, ok := table.Single(c); ok {
		return errors.New("starts with a header prefix")
	}
	// the row is "<sym>\t<value>", so a one-letter symbol is followed by a tab
	if _, ok := table.Spaced(c); ok && len(sym) == 1 {
		return errors.New("is a header prefix")
	}
	return nil
}

// WriteBatchFile is WriteBatchFile using r's prefix table.
func (r *BatchRenderer) WriteBatchFile(w io.Writer, genesets []schema.BatchUploadGeneset) error {
	bw := bufio.NewWriterSize(w, writerBufferSize)
	for i, g := range genesets {
		if err := r.CheckValues(g); err != nil {
			return fmt.Errorf("geneset %d: %w", i+1, err)
		}
		if i > 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(r.Geneset(g)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
