package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/nodeadmin/geneweaver-core/enum"
	"github.com/nodeadmin/geneweaver-core/parse"
	"github.com/nodeadmin/geneweaver-core/render"
	"github.com/nodeadmin/geneweaver-core/schema"
)

func renderCmd(a *app) *cobra.Command {
	var to string
	var sep string
	var prefix string

	c := &cobra.Command{
		Use:   "render FILE",
		Short: "Re-render a batch file as batch text, CSV or a gene list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			res, err := a.parseText(text)
			if err != nil {
				return err
			}
			if res.Type != enum.GeneweaverBatch {
				return fmt.Errorf("%s: %w: render needs a batch file", args[0], parse.ErrUnsupportedFileType)
			}
			return renderGenesets(cmd.OutOrStdout(), res.Genesets, to, sep, prefix)
		},
	}

	c.Flags().StringVarP(&to, "to", "t", "batch", "Output: batch|csv|genelist|json|yaml")
	c.Flags().StringVar(&sep, "sep", "", "Field separator for csv (default ,) and genelist (default tab)")
	c.Flags().StringVar(&prefix, "prefix", "#", "Metadata line prefix for csv")
	return c
}

func renderGenesets(w io.Writer, gs []schema.BatchUploadGeneset, to, sep, prefix string) error {
	switch strings.ToLower(to) {
	case "batch":
		return render.WriteBatchFile(w, gs)
	case "csv":
		comma, err := csvSeparator(sep)
		if err != nil {
			return err
		}
		for i, g := range gs {
			out, err := render.CSVFile(g, comma, prefix)
			if err != nil {
				return fmt.Errorf("geneset %d: %w", i+1, err)
			}
			if i > 0 {
				fmt.Fprintln(w)
			}
			if _, err := io.WriteString(w, out); err != nil {
				return err
			}
		}
		return nil
	case "genelist":
		if sep == "" {
			sep = "\t"
		}
		for i, g := range gs {
			if i > 0 {
				fmt.Fprintln(w)
			}
			if _, err := fmt.Fprintln(w, render.GeneList(g.Values, sep)); err != nil {
				return err
			}
		}
		return nil
	case "json", "pretty", "yaml", "yml":
		return writeOutput(w, gs, to)
	default:
		return fmt.Errorf("unsupported render target %q (expected batch|csv|genelist|json|yaml)", to)
	}
}

func csvSeparator(sep string) (rune, error) {
	if sep == "" {
		return ',', nil
	}
	if sep == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(sep) != 1 {
		return 0, errors.New("csv separator must be a single character")
	}
	r, _ := utf8.DecodeRuneInString(sep)
	return r, nil
}
