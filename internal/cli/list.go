package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/pathways/internal/config"
	"github.com/hupe1980/pathways/internal/logging"
	"github.com/hupe1980/pathways/internal/output"
)

type listOptions struct {
	filterOptions

	format string
	output string
	all    bool
}

func newListCommand() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pathways matching the given filters",
		Long: `List loads the pathway sheet and prints the pathways that match every
given filter. Values within one filter are ORed, different filters are
ANDed. Without filters every pathway is listed.

Supported formats:
  table     Summary line and an aligned table (default)
  yaml      Listing document as YAML
  json      Listing document as JSON
  markdown  Markdown report`,
		Example: `  pathways list --actor "Impact investors"
  pathways list --actor "Impact investors" --actor "Tourism & hospitality" --financed Restoration
  pathways list --condition "Revenue retention mechanism" --all --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts)
		},
	}

	registerFilterFlags(cmd, &opts.filterOptions)

	f := cmd.Flags()
	f.StringVar(&opts.format, "format", "table", "output format: table, yaml, json, markdown")
	f.StringVarP(&opts.output, "output", "o", "", "output file path (default: stdout)")
	f.BoolVar(&opts.all, "all", false, "include non-matching pathways with a match column")

	return cmd
}

func runList(cmd *cobra.Command, opts *listOptions) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := logging.FromContext(ctx)

	formatter, err := output.DefaultRegistry().Formatter(opts.format)
	if err != nil {
		return &ExitError{Code: exitUsage, Err: err}
	}

	sel := opts.selection(cfg.EffectiveTaxonomy(), logger)

	res, err := loadPathways(ctx, cfg, logger, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	listing := output.NewListing(res.Pathways, sel, opts.all)
	listing.Source = res.Source
	listing.LastUpdated = res.LastUpdated

	data, err := formatter.Format(listing)
	if err != nil {
		return &ExitError{Code: exitError, Err: err}
	}

	w := output.NewWriter(opts.output, output.NewStdoutWriter(cmd.OutOrStdout()))
	if err := w.Write(data); err != nil {
		return &ExitError{Code: exitError, Err: fmt.Errorf("writing listing: %w", err)}
	}

	return nil
}
