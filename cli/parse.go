package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nodeadmin/geneweaver-core/parse"
	"github.com/nodeadmin/geneweaver-core/render"
)

func parseCmd(a *app) *cobra.Command {
	var format string
	var output string

	c := &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse a batch or values file and print it as JSON or YAML",
		Long:  "Parse a batch or values file and print it as JSON or YAML. Use - to read stdin.",
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
			a.log.Info("parse.done", "file", args[0], "type", res.Type,
				"genesets", len(res.Genesets), "values", len(res.Values))

			if output == "" {
				return writeOutput(cmd.OutOrStdout(), res, format)
			}
			return writeOutputFile(output, res, format)
		},
	}

	c.Flags().StringVarP(&format, "format", "f", "pretty", "Output format: json|pretty|yaml")
	c.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	return c
}

func detectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "detect FILE...",
		Short: "Report whether each file is a batch or values file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, path := range args {
				text, err := readInput(cmd, path)
				if err != nil {
					return err
				}
				kind, err := parse.DetectFileType(text)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				a.log.Debug("detect.done", "file", path, "type", kind)
				fmt.Fprintf(w, "%s\t%s\n", path, kind)
			}
			return nil
		},
	}
}

func (a *app) parseText(text string) (parse.Result, error) {
	p := parse.BatchParser{Logger: a.log}
	return p.ParseFile(text)
}

func writeOutput(w io.Writer, v any, format string) error {
	switch strings.ToLower(format) {
	case "json":
		return render.WriteJSON(v, w)
	case "pretty", "":
		return render.WriteJSONPretty(v, w)
	case "yaml", "yml":
		return render.WriteYAML(v, w)
	default:
		return fmt.Errorf("unsupported format %q (expected json|pretty|yaml)", format)
	}
}

func writeOutputFile(path string, v any, format string) (err error) {
	if strings.EqualFold(format, "json") {
		return render.WriteJSONFile(v, path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return writeOutput(f, v, format)
}
