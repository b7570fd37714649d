package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nodeadmin/geneweaver-core/parse"
	"github.com/nodeadmin/geneweaver-core/render"
	"github.com/nodeadmin/geneweaver-core/schema"
)

type workbookSheet struct {
	Sheet    string             `json:"sheet,omitempty" yaml:"sheet,omitempty"`
	Metadata []string           `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Headers  []string           `json:"headers,omitempty" yaml:"headers,omitempty"`
	Values   []schema.GeneValue `json:"values" yaml:"values"`
}

func xlsxCmd(a *app) *cobra.Command {
	var sheet string
	var symbolCol string
	var valueCol string
	var to string

	c := &cobra.Command{
		Use:   "xlsx FILE",
		Short: "Extract gene values from an Excel workbook",
		Long: "Extract gene values from an Excel workbook. Columns are 0-based indexes\n" +
			"or header names; rows above a detected header are reported as metadata.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := parse.OpenWorkbook(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = wb.Close() }()

			headers, idx, err := wb.Headers(sheet)
			if err != nil {
				return err
			}
			a.log.Debug("xlsx.header", "file", args[0], "sheet", sheet, "row", idx, "headers", headers)

			if strings.EqualFold(to, "maps") {
				if idx < 0 {
					return fmt.Errorf("%s: no header row in the first %d rows", args[0], parse.DefaultHeaderSearchRows)
				}
				maps, err := wb.ReadToMaps(sheet, idx)
				if err != nil {
					return err
				}
				return writeOutput(cmd.OutOrStdout(), maps, "pretty")
			}

			sc, err := columnIndex(symbolCol, headers)
			if err != nil {
				return err
			}
			vc, err := columnIndex(valueCol, headers)
			if err != nil {
				return err
			}
			rows, err := wb.ReadRows(sheet, math.MaxInt32, idx+1)
			if err != nil {
				return err
			}
			values, err := parse.GeneValuesFromRows(rows, sc, vc)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			out := workbookSheet{Sheet: sheet, Headers: headers, Values: values}
			if idx > 0 {
				if out.Metadata, err = wb.ReadMetadata(sheet); err != nil {
					return err
				}
			}
			a.log.Info("xlsx.done", "file", args[0], "values", len(values))

			switch strings.ToLower(to) {
			case "genelist":
				_, err := fmt.Fprintln(cmd.OutOrStdout(), render.GeneList(values, "\t"))
				return err
			default:
				return writeOutput(cmd.OutOrStdout(), out, to)
			}
		},
	}

	c.Flags().StringVar(&sheet, "sheet", "", "Sheet name (default: active sheet)")
	c.Flags().StringVar(&symbolCol, "symbol-col", "0", "Gene symbol column")
	c.Flags().StringVar(&valueCol, "value-col", "1", "Value column")
	c.Flags().StringVarP(&to, "to", "t", "genelist", "Output: genelist|maps|json|pretty|yaml")
	return c
}

// columnIndex resolves a 0-based index or a header name.
func columnIndex(col string, headers []string) (int, error) {
	if i, err := strconv.Atoi(col); err == nil {
		return i, nil
	}
	for i, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), col) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("column %q not found in headers %v", col, headers)
}
