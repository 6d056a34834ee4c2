// Package cli implements the cobra command tree for pathways.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/pathways/internal/config"
	"github.com/hupe1980/pathways/internal/loader"
	"github.com/hupe1980/pathways/internal/logging"
)

// Process exit codes.
const (
	exitError      = 1
	exitUsage      = 2
	exitNoURL      = 3
	exitFetchError = 4
	exitParseError = 5
)

// ExitError wraps an error with a specific process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Execute builds the command tree, runs it, and returns the exit code.
func Execute() int {
	cmd := NewRootCommand()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}

		return exitError
	}

	return 0
}

// NewRootCommand constructs the top-level cobra.Command with all
// subcommands attached.
func NewRootCommand() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "pathways",
		Short: "Explore private capital pathways for marine conservation",
		Long: `pathways loads the private capital pathway sheet (a published
Google Sheets CSV or a local CSV file) and lets you filter the pathways by
private sector actor, enabling conditions, incentives, barriers, and what
is being financed.

Use "pathways browse" for the interactive explorer, or "pathways list" and
"pathways report" for scriptable output.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd, cfgFile)
			if err != nil {
				return &ExitError{Code: exitUsage, Err: err}
			}

			logger := logging.SetupWithWriter(cfg, cmd.ErrOrStderr())

			ctx := cmd.Context()
			ctx = config.NewContext(ctx, cfg)
			ctx = config.NewContextWithConfigFile(ctx, cfg.ConfigFile)
			ctx = logging.NewContext(ctx, logger)
			cmd.SetContext(ctx)

			logger.Debug("configuration loaded",
				slog.String("logLevel", cfg.LogLevel),
				slog.String("logFormat", cfg.LogFormat),
				slog.String("configFile", cfg.ConfigFile),
				slog.Bool("sourceConfigured", !loader.IsUnconfigured(cfg.Source)),
			)

			return nil
		},
	}

	// Global persistent flags.
	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: .pathways.yaml)")
	pf.String("source", loader.Unconfigured, "published CSV URL or local CSV file")
	pf.Duration("timeout", loader.DefaultTimeout, "timeout for fetching the source")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text, json")
	pf.Bool("no-color", false, "disable colored output")
	pf.BoolP("quiet", "q", false, "suppress non-essential output")

	// Flag parsing errors return exit code 2.
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: exitUsage, Err: err}
	})

	cmd.AddCommand(
		newVersionCommand(),
		newListCommand(),
		newReportCommand(),
		newBrowseCommand(),
		newTaxonomyCommand(),
		newWatchCommand(),
		newCompletionCommand(),
	)

	return cmd
}
