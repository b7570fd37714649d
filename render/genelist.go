package render

import (
	"strconv"
	"strings"

	"github.com/nodeadmin/geneweaver-core/schema"
)

// GeneList renders "symbol<sep>value" rows joined by newlines, the format
// accepted by the gene list text box.
func GeneList(values []schema.GeneValue, sep string) string {
	rows := make([]string, len(values))
	for i, v := range values {
		rows[i] = v.Symbol + sep + strconv.FormatFloat(v.Value, 'g', -1, 64)
	}
	return strings.Join(rows, "\n")
}
