package render

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/nodeadmin/geneweaver-core/schema"
)

// CSVMetadata renders populated metadata as "<prefix><field>,<value>"
// records. Curation id is left out.
func CSVMetadata(g schema.BatchUploadGeneset, sep rune, prefix string) (string, error) {
	var buf bytes.Buffer
	w, err := newCSVWriter(&buf, sep)
	if err != nil {
		return "", err
	}
	for _, f := range g.Fields() {
		if f.Name == schema.FieldCurationID {
			continue
		}
		if err := w.Write([]string{prefix + f.Name, f.Value}); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}

// CSVFile renders the metadata records, a "gene,value" header row and one
// record per gene value.
func CSVFile(g schema.BatchUploadGeneset, sep rune, prefix string) (string, error) {
	meta, err := CSVMetadata(g, sep, prefix)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString(meta)
	w, _ := newCSVWriter(&buf, sep)
	if err := w.Write([]string{"gene", "value"}); err != nil {
		return "", err
	}
	for _, v := range g.Values {
		if err := w.Write([]string{v.Symbol, strconv.FormatFloat(v.Value, 'g', -1, 64)}); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}

func newCSVWriter(buf *bytes.Buffer, sep rune) (*csv.Writer, error) {
	if sep == '"' || sep == '\r' || sep == '\n' || sep == 0 {
		return nil, fmt.Errorf("invalid csv separator %q", sep)
	}
	w := csv.NewWriter(buf)
	w.Comma = sep
	return w, nil
}
