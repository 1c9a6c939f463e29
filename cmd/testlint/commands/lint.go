package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/testlint/internal/config"
	"github.com/Sumatoshi-tech/testlint/internal/observability"
	"github.com/Sumatoshi-tech/testlint/internal/renderer"
	"github.com/Sumatoshi-tech/testlint/pkg/lint"
	"github.com/Sumatoshi-tech/testlint/pkg/uast"
	"github.com/Sumatoshi-tech/testlint/pkg/uast/node"
)

// ErrProblemsFound is returned when lint finishes with diagnostics, so the
// process exits non-zero.
var ErrProblemsFound = errors.New("problems found")

// LintCommand holds the flags for the lint command.
type LintCommand struct {
	configPath string
	output     string
	format     string
	ruleList   []string
	noColor    bool
}

// NewLintCommand creates and configures the lint command.
func NewLintCommand() *cobra.Command {
	cmd := &LintCommand{}

	cobraCmd := &cobra.Command{
		Use:   "lint [file...]",
		Short: "Run the lint rules over UAST input",
		Long: "Run the lint rules over UAST JSON input. Each argument is a file " +
			"holding one parsed tree; with no arguments a stream of trees is read from stdin.",
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.configPath, "config", "c", "", "Config file (default: built-in defaults)")
	cobraCmd.Flags().StringVarP(&cmd.output, "output", "o", "", "Output file (default: stdout)")
	cobraCmd.Flags().StringVarP(&cmd.format, "format", "f", "", "Output format: text, table, json, or yaml")
	cobraCmd.Flags().StringSliceVarP(&cmd.ruleList, "rules", "r", nil, "Rule IDs or globs to run (default: config selection)")
	cobraCmd.Flags().BoolVar(&cmd.noColor, "no-color", false, "Disable colored output")

	return cobraCmd
}

// Run executes the lint command.
func (c *LintCommand) Run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	c.applyFlagOverrides(cfg)

	logger := observability.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	registry, selected, err := cfg.BuildRegistry()
	if err != nil {
		return err
	}

	if len(c.ruleList) > 0 {
		selected, err = registry.Select(c.ruleList)
		if err != nil {
			return err
		}
	}

	runner := lint.NewRunner(selected, logger)

	diagnostics, fileCount, err := c.lintInputs(cmd.Context(), runner, logger, args)
	if err != nil {
		return err
	}

	writer, closeWriter, err := c.openOutput()
	if err != nil {
		return err
	}
	defer closeWriter()

	err = c.render(cfg, diagnostics, fileCount, writer)
	if err != nil {
		return err
	}

	if len(diagnostics) > 0 {
		return fmt.Errorf("%w: %d", ErrProblemsFound, len(diagnostics))
	}

	return nil
}

func (c *LintCommand) applyFlagOverrides(cfg *config.Config) {
	if c.format != "" {
		cfg.Output.Format = c.format
	}

	if c.noColor {
		cfg.Output.NoColor = true
	}
}

// lintInputs runs the rules over every input tree. A malformed tree aborts
// that file only; remaining files are still analyzed.
func (c *LintCommand) lintInputs(
	ctx context.Context,
	runner *lint.Runner,
	logger *slog.Logger,
	args []string,
) ([]lint.Diagnostic, int, error) {
	if len(args) == 0 {
		return c.lintStdin(ctx, runner, logger)
	}

	var diagnostics []lint.Diagnostic

	fileCount := 0

	for _, path := range args {
		root, err := decodeTreeFile(path)
		if err != nil {
			return nil, 0, err
		}

		fileCount++

		found, err := runner.LintFile(ctx, path, root)
		if err != nil {
			if errors.Is(err, lint.ErrMalformedTree) {
				logger.Warn("skipping file with malformed tree", slog.String("file", path), slog.Any("error", err))

				continue
			}

			return nil, 0, err
		}

		diagnostics = append(diagnostics, found...)
	}

	return diagnostics, fileCount, nil
}

func (c *LintCommand) lintStdin(
	ctx context.Context,
	runner *lint.Runner,
	logger *slog.Logger,
) ([]lint.Diagnostic, int, error) {
	trees, err := uast.DecodeTrees(os.Stdin)
	if err != nil {
		return nil, 0, err
	}

	var diagnostics []lint.Diagnostic

	for idx, root := range trees {
		name := stdinFileName(root, idx)

		found, err := runner.LintFile(ctx, name, root)
		if err != nil {
			if errors.Is(err, lint.ErrMalformedTree) {
				logger.Warn("skipping tree with malformed shape", slog.String("file", name), slog.Any("error", err))

				continue
			}

			return nil, 0, err
		}

		diagnostics = append(diagnostics, found...)
	}

	return diagnostics, len(trees), nil
}

// stdinFileName labels a stdin tree: the producer may stamp the source path
// onto the root node's props.
func stdinFileName(root *node.Node, idx int) string {
	if root != nil {
		if path, ok := root.Props["source_file"]; ok && path != "" {
			return path
		}
	}

	return fmt.Sprintf("<stdin:%d>", idx)
}

func decodeTreeFile(path string) (*node.Node, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	root, err := uast.DecodeTree(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return root, nil
}

func (c *LintCommand) openOutput() (io.Writer, func(), error) {
	if c.output == "" {
		return os.Stdout, func() {}, nil
	}

	file, err := os.Create(c.output)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file %s: %w", c.output, err)
	}

	return file, func() { _ = file.Close() }, nil
}

func (c *LintCommand) render(cfg *config.Config, diagnostics []lint.Diagnostic, fileCount int, writer io.Writer) error {
	switch cfg.Output.Format {
	case config.FormatJSON:
		return renderer.RenderJSON(diagnostics, writer)
	case config.FormatYAML:
		return renderer.RenderYAML(diagnostics, writer)
	case config.FormatTable:
		r := renderer.New(cfg.Output.NoColor)

		err := r.RenderTable(diagnostics, writer)
		if err != nil {
			return err
		}

		return r.RenderSummary(fileCount, len(diagnostics), writer)
	default:
		r := renderer.New(cfg.Output.NoColor)

		err := r.RenderText(diagnostics, writer)
		if err != nil {
			return err
		}

		return r.RenderSummary(fileCount, len(diagnostics), writer)
	}
}
