package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/hupe1980/pathways/internal/config"
	"github.com/hupe1980/pathways/internal/loader"
	"github.com/hupe1980/pathways/internal/tui"
)

// newLoader builds a Loader from the configuration. State transitions are
// logged at debug level.
func newLoader(cfg *config.Config, logger *slog.Logger) *loader.Loader {
	return loader.New(
		loader.WithTimeout(cfg.Timeout),
		loader.WithLogger(logger),
		loader.WithObserver(func(st loader.Status) {
			logger.Debug("load state changed", slog.String("status", st.String()))
		}),
	)
}

// loadPathways runs one load of the configured source. Non-OK outcomes are
// explained on w and returned as an *ExitError.
func loadPathways(ctx context.Context, cfg *config.Config, logger *slog.Logger, w io.Writer) (*loader.Result, error) {
	res := newLoader(cfg, logger).Load(ctx, cfg.Source)

	if err := explainLoad(w, res); err != nil {
		return nil, err
	}

	for _, warn := range res.Warnings {
		logger.Warn("malformed row", slog.String("error", warn.Error()))
	}

	if res.Dropped > 0 {
		logger.Info("skipped rows without id or name", slog.Int("dropped", res.Dropped))
	}

	return res, nil
}

// explainLoad prints the user-facing explanation of a failed load and maps
// it to an exit code. It returns nil for a successful load.
func explainLoad(w io.Writer, res *loader.Result) error {
	switch res.ErrorTag() {
	case loader.TagNone:
		return nil
	case loader.TagNoURL:
		fmt.Fprint(w, tui.SetupText())
		return &ExitError{Code: exitNoURL, Err: res.Err}
	case loader.TagFetchError:
		fmt.Fprintf(w, "%s\n%s\n", tui.ErrorTitle, tui.FetchErrorText)
		return &ExitError{Code: exitFetchError, Err: res.Err}
	case loader.TagParseError:
		fmt.Fprintf(w, "%s\n%s\n", tui.ErrorTitle, tui.ParseErrorText)
		return &ExitError{Code: exitParseError, Err: res.Err}
	default:
		return &ExitError{Code: exitError, Err: res.Err}
	}
}
