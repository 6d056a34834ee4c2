package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/hupe1980/pathways/internal/config"
	"github.com/hupe1980/pathways/internal/logging"
	"github.com/hupe1980/pathways/internal/output"
)

type reportOptions struct {
	filterOptions

	output string
	all    bool
	raw    bool
	width  int
}

func newReportCommand() *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a Markdown report of matching pathways",
		Long: `Report renders the matching pathways, including summaries, enabling
conditions, incentives, barriers, and examples, as a Markdown document.

On a terminal the report is styled with glamour. Use --raw for plain
Markdown; reports written with --output are always plain Markdown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, opts)
		},
	}

	registerFilterFlags(cmd, &opts.filterOptions)

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file path (default: stdout)")
	f.BoolVar(&opts.all, "all", false, "include non-matching pathways")
	f.BoolVar(&opts.raw, "raw", false, "print plain Markdown without styling")
	f.IntVar(&opts.width, "width", 80, "word wrap width for styled output")

	return cmd
}

func runReport(cmd *cobra.Command, opts *reportOptions) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := logging.FromContext(ctx)

	if opts.width <= 0 {
		return &ExitError{Code: exitUsage, Err: fmt.Errorf("invalid width %d: must be positive", opts.width)}
	}

	sel := opts.selection(cfg.EffectiveTaxonomy(), logger)

	res, err := loadPathways(ctx, cfg, logger, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	listing := output.NewListing(res.Pathways, sel, opts.all)
	listing.Source = res.Source
	listing.LastUpdated = res.LastUpdated

	md, err := output.SerializeMarkdown(listing)
	if err != nil {
		return &ExitError{Code: exitError, Err: err}
	}

	if opts.output == "" && !opts.raw {
		styled, renderErr := renderMarkdown(md, opts.width, cfg.NoColor)
		if renderErr != nil {
			return &ExitError{Code: exitError, Err: renderErr}
		}

		md = styled
	}

	w := output.NewWriter(opts.output, output.NewStdoutWriter(cmd.OutOrStdout()))
	if err := w.Write(md); err != nil {
		return &ExitError{Code: exitError, Err: fmt.Errorf("writing report: %w", err)}
	}

	return nil
}

// renderMarkdown styles md for the terminal.
func renderMarkdown(md []byte, width int, noColor bool) ([]byte, error) {
	style := glamour.WithAutoStyle()
	if noColor {
		style = glamour.WithStylePath("notty")
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}

	out, err := r.Render(string(md))
	if err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}

	return []byte(out), nil
}
