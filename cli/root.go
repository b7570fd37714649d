// Package cli implements the gwcore command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nodeadmin/geneweaver-core/config"
	"github.com/nodeadmin/geneweaver-core/enum"
	"github.com/nodeadmin/geneweaver-core/logging"
	"github.com/nodeadmin/geneweaver-core/parse"
)

// app carries what every subcommand needs once the root has loaded config.
type app struct {
	configPath string
	envFile    string
	logLevel   string

	cfg config.Config
	log *slog.Logger
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.L()}

	cmd := &cobra.Command{
		Use:           "gwcore",
		Short:         "Parse, render and check GeneWeaver geneset uploads",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (optional)")
	pf.StringVar(&a.envFile, "env-file", "", "dotenv file to load (default .env when present)")
	pf.StringVar(&a.logLevel, "log-level", "", "override the configured log level")

	cmd.AddCommand(
		parseCmd(a),
		detectCmd(a),
		renderCmd(a),
		checkCmd(a),
		pubmedCmd(a),
		xlsxCmd(a),
	)
	return cmd
}

func (a *app) setup(logOut io.Writer) error {
	var envFiles []string
	if a.envFile != "" {
		envFiles = append(envFiles, a.envFile)
	}
	cfg, err := config.Load(a.configPath, envFiles...)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	l, err := logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Writer: logOut,
	})
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = l
	l.Debug("config.loaded", "project", cfg.ProjectName, "version", cfg.Version, "path", a.configPath)
	return nil
}

func printError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	_, _ = red.Fprint(w, "error: ")
	fmt.Fprintln(w, err)
}

// readInput returns the contents of path, or of stdin when path is "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	if ft, err := parse.FileTypeFromPath(path); err == nil && ft == enum.FileTypeExcel {
		return "", fmt.Errorf("%s is a workbook; use gwcore xlsx", path)
	}
	return parse.ReadFileContent(path)
}
