package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nodeadmin/geneweaver-core/parse"
	"github.com/nodeadmin/geneweaver-core/schema"
	"github.com/nodeadmin/geneweaver-core/threshold"
)

type geneResult struct {
	Symbol string  `json:"symbol" yaml:"symbol"`
	Value  float64 `json:"value" yaml:"value"`
	Passes bool    `json:"passes" yaml:"passes"`
}

type checkReport struct {
	Name    string            `json:"name,omitempty" yaml:"name,omitempty"`
	Score   string            `json:"score" yaml:"score"`
	Summary threshold.Summary `json:"summary" yaml:"summary"`
	Genes   []geneResult      `json:"genes,omitempty" yaml:"genes,omitempty"`
}

func checkCmd(a *app) *cobra.Command {
	var scoreExpr string
	var format string
	var genes bool

	c := &cobra.Command{
		Use:   "check FILE",
		Short: "Count the gene values that pass each geneset's score threshold",
		Long: "Count the gene values that pass each geneset's score threshold.\n" +
			"--score overrides the threshold in a batch file and is required for values files.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			res, err := a.parseText(text)
			if err != nil {
				return err
			}

			var override *schema.ScoreThreshold
			if scoreExpr != "" {
				s, err := parse.ParseScore(scoreExpr)
				if err != nil {
					return err
				}
				override = &s
			}

			reports, err := buildReports(res, override, genes)
			if err != nil {
				return err
			}
			for _, r := range reports {
				a.log.Debug("check.geneset", "name", r.Name, "score", r.Score,
					"count", r.Summary.Count, "passing", r.Summary.Passing)
			}

			if strings.EqualFold(format, "table") {
				return printReports(cmd.OutOrStdout(), reports)
			}
			return writeOutput(cmd.OutOrStdout(), reports, format)
		},
	}

	c.Flags().StringVarP(&scoreExpr, "score", "s", "", `Score expression, e.g. "P-Value < 0.01"`)
	c.Flags().StringVarP(&format, "format", "f", "table", "Output format: table|json|pretty|yaml")
	c.Flags().BoolVar(&genes, "genes", false, "Include a pass/fail verdict for every gene")
	return c
}

func buildReports(res parse.Result, override *schema.ScoreThreshold, withGenes bool) ([]checkReport, error) {
	type target struct {
		name   string
		score  *schema.ScoreThreshold
		values []schema.GeneValue
	}

	var targets []target
	if len(res.Genesets) > 0 {
		for i := range res.Genesets {
			g := &res.Genesets[i]
			targets = append(targets, target{name: g.Name, score: &g.Score, values: g.Values})
		}
	} else {
		if override == nil {
			return nil, errors.New("values files carry no threshold; pass --score")
		}
		targets = append(targets, target{values: res.Values})
	}

	reports := make([]checkReport, 0, len(targets))
	for _, t := range targets {
		score := t.score
		if override != nil {
			score = override
		}
		sum, err := threshold.Summarize(t.values, *score)
		if err != nil && !errors.Is(err, threshold.ErrNoValues) {
			return nil, fmt.Errorf("%s: %w", t.name, err)
		}

		r := checkReport{Name: t.name, Score: score.String(), Summary: sum}
		if withGenes {
			passes := threshold.Check(t.values, *score)
			r.Genes = make([]geneResult, len(t.values))
			for i, v := range t.values {
				r.Genes[i] = geneResult{Symbol: v.Symbol, Value: v.Value, Passes: passes[i]}
			}
		}
		reports = append(reports, r)
	}
	return reports, nil
}

func printReports(w io.Writer, reports []checkReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSCORE\tCOUNT\tPASSING\tMIN\tMAX\tMEAN\tMEDIAN")
	for _, r := range reports {
		s := r.Summary
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%g\t%g\t%g\t%g\n",
			orDash(r.Name), r.Score, s.Count, s.Passing, s.Min, s.Max, s.Mean, s.Median)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, r := range reports {
		if len(r.Genes) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\n", orDash(r.Name))
		for _, g := range r.Genes {
			mark := "pass"
			if !g.Passes {
				mark = "fail"
			}
			fmt.Fprintf(w, "  %s\t%g\t%s\n", g.Symbol, g.Value, mark)
		}
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
