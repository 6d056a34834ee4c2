package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/pathways/internal/config"
	"github.com/hupe1980/pathways/internal/loader"
	"github.com/hupe1980/pathways/internal/logging"
	"github.com/hupe1980/pathways/internal/output"
	"github.com/hupe1980/pathways/internal/pathway"
	"github.com/hupe1980/pathways/internal/watch"
)

type watchOptions struct {
	filterOptions

	debounce time.Duration
	diff     bool
	output   string
	format   string
}

func newWatchCommand() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch a local CSV source and reload on change",
		Long: `Watch monitors a local pathway CSV (and the config file, if one is in
use) and reloads the sheet whenever either changes.

File changes are debounced to avoid rapid reloads. Each reload reports the
number of pathways, the number of skipped rows, and which pathways were
added, removed, or changed since the previous reload. Use --diff to also
print a unified diff of the YAML listing, and --output to keep a rendered
listing file up to date.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd, opts)
		},
	}

	registerFilterFlags(cmd, &opts.filterOptions)

	f := cmd.Flags()
	f.DurationVar(&opts.debounce, "debounce", 500*time.Millisecond, "debounce interval for file changes")
	f.BoolVar(&opts.diff, "diff", false, "print a unified diff of the listing after each reload")
	f.StringVarP(&opts.output, "output", "o", "", "write the listing to this file after each reload")
	f.StringVar(&opts.format, "format", "yaml", "format of the --output file: table, yaml, json, markdown")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *watchOptions) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := logging.FromContext(ctx)

	st, err := loader.Detect(cfg.Source)
	if err != nil || st != loader.SourceFile {
		return &ExitError{Code: exitUsage, Err: fmt.Errorf("watch requires a local CSV file as source, got %q", cfg.Source)}
	}

	if opts.debounce <= 0 {
		return &ExitError{Code: exitUsage, Err: fmt.Errorf("invalid debounce %s: must be positive", opts.debounce)}
	}

	formatter, err := output.DefaultRegistry().Formatter(opts.format)
	if err != nil {
		return &ExitError{Code: exitUsage, Err: err}
	}

	path, err := loader.FilePath(cfg.Source)
	if err != nil {
		return &ExitError{Code: exitUsage, Err: err}
	}

	files := []string{path}
	if cfgFile := config.ConfigFileFromContext(ctx); cfgFile != "" {
		files = append(files, cfgFile)
	}

	cfgFlag := ""
	if fl := cmd.Flag("config"); fl != nil {
		cfgFlag = fl.Value.String()
	}

	var (
		prev     []pathway.Pathway
		prevSnap []byte
		loaded   bool
	)

	runFn := func(runCtx context.Context) (*watch.RunResult, error) {
		// The config file may have changed, so it is read again on every run.
		runCfg, err := config.Load(cmd, cfgFlag)
		if err != nil {
			return nil, err
		}

		res := newLoader(runCfg, logger).Load(runCtx, runCfg.Source)
		if !res.OK() {
			return nil, res.Err
		}

		sel := opts.selection(runCfg.EffectiveTaxonomy(), logger)

		listing := output.NewListing(res.Pathways, sel, false)
		listing.Source = res.Source

		result := &watch.RunResult{
			Count:   listing.Count,
			Dropped: res.Dropped,
		}

		if loaded {
			result.Changes = watch.Diff(prev, res.Pathways)
		}

		if opts.diff {
			snap, err := output.SerializeYAML(listing)
			if err != nil {
				return nil, err
			}

			if loaded {
				d, err := watch.DiffSnapshots(prevSnap, snap, "previous", "current")
				if err != nil {
					return nil, err
				}

				result.Diff = d
			}

			prevSnap = snap
		}

		if opts.output != "" {
			listing.LastUpdated = res.LastUpdated

			data, err := formatter.Format(listing)
			if err != nil {
				return nil, err
			}

			if err := output.NewFileWriter(opts.output, output.WithLogger(logger)).Write(data); err != nil {
				return nil, fmt.Errorf("writing listing: %w", err)
			}
		}

		prev = res.Pathways
		loaded = true

		return result, nil
	}

	watchOpts := watch.DefaultOptions()
	watchOpts.Files = files
	watchOpts.Debounce = opts.debounce
	watchOpts.Color = !cfg.NoColor
	watchOpts.Logger = logger
	watchOpts.Out = cmd.ErrOrStderr()

	logger.Debug("starting watch", slog.Any("files", files), slog.String("source", filepath.Base(path)))

	return watch.Run(ctx, watchOpts, runFn)
}
