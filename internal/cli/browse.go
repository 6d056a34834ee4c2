package cli

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hupe1980/pathways/internal/config"
	"github.com/hupe1980/pathways/internal/loader"
	"github.com/hupe1980/pathways/internal/logging"
	"github.com/hupe1980/pathways/internal/tui"
)

type browseOptions struct {
	filterOptions

	logFile string
}

func newBrowseCommand() *cobra.Command {
	opts := &browseOptions{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Explore pathways interactively",
		Long: `Browse opens the interactive pathway explorer. Pick filter chips per
facet group; pathways that do not match stay visible but dimmed.

Keys:
  tab / shift+tab   move between facet groups
  left / right      move the chip cursor
  space / enter     toggle the chip
  c                 clear all filters
  up / down, j / k  move through pathways
  o                 show or hide pathway details
  r                 reload the sheet (filters are kept)
  q / ctrl+c        quit

The explorer owns the terminal, so logs go to --log-file or nowhere.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, opts)
		},
	}

	registerFilterFlags(cmd, &opts.filterOptions)
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file while browsing")

	return cmd
}

func runBrowse(cmd *cobra.Command, opts *browseOptions) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)

	logger := logging.Discard()

	if opts.logFile != "" {
		fileLogger, closer, err := logging.OpenFile(cfg, opts.logFile)
		if err != nil {
			return &ExitError{Code: exitUsage, Err: err}
		}
		defer func() { _ = closer.Close() }()

		logger = fileLogger
	}

	tax := cfg.EffectiveTaxonomy()
	l := newLoader(cfg, logger)

	load := func(ctx context.Context) *loader.Result {
		return l.Load(ctx, cfg.Source)
	}

	model := tui.New(load,
		tui.WithContext(ctx),
		tui.WithTaxonomy(tax),
		tui.WithSelection(opts.selection(tax, logger)),
		tui.WithNoColor(cfg.NoColor),
	)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	final, err := p.Run()
	if err != nil {
		return &ExitError{Code: exitError, Err: fmt.Errorf("running browser: %w", err)}
	}

	if m, ok := final.(tui.Model); ok {
		logger.Info("browser closed",
			slog.String("status", m.Status().String()),
			slog.Int("matches", m.Match().Count),
		)
	}

	return nil
}
