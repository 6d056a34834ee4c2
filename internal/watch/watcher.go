package watch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
)

// RunFunc is called each time the watcher triggers a reload. It returns the
// reload result for change reporting.
type RunFunc func(ctx context.Context) (*RunResult, error)

// RunResult holds the output of a single reload.
type RunResult struct {
	// Count is the number of records loaded.
	Count int
	// Dropped is the number of rows rejected by vetting.
	Dropped int
	// Changes lists record changes since the previous successful reload.
	// Nil on the first reload.
	Changes []Change
	// Diff is the snapshot diff against the previous reload, if requested.
	Diff *SnapshotDiff
}

// Options configures the watch behaviour.
type Options struct {
	// Files are the files to watch, typically the CSV source and the
	// config file. Their parent directories are watched so that editors
	// that replace files on save are still observed.
	Files []string

	// Debounce is the quiet period before triggering a reload.
	Debounce time.Duration

	// Color enables ANSI colors in diff output.
	Color bool

	// Logger is used for structured logging.
	Logger *slog.Logger

	// Out is the writer for user-facing status messages.
	Out io.Writer
}

// DefaultOptions returns sensible default watch options.
func DefaultOptions() Options {
	return Options{
		Debounce: 500 * time.Millisecond,
		Logger:   slog.Default(),
		Out:      os.Stderr,
	}
}

// Run starts the file watcher and blocks until the context is cancelled
// or a SIGINT/SIGTERM signal is received.
func Run(ctx context.Context, opts Options, runFn RunFunc) error {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	if opts.Out == nil {
		opts.Out = io.Discard
	}

	if len(opts.Files) == 0 {
		return fmt.Errorf("no files to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	targets, err := addTargets(watcher, opts.Files)
	if err != nil {
		return err
	}

	// Trap SIGINT / SIGTERM for graceful shutdown.
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(opts.Out, "watching %s (debounce=%s)\n", strings.Join(opts.Files, ", "), opts.Debounce)

	// Initial load.
	doRun(sigCtx, opts, runFn, "(initial)")

	// Reloads never overlap, even if one outlasts the debounce interval.
	var runMu sync.Mutex

	debouncer := NewDebouncer(opts.Debounce, func(paths []string) {
		runMu.Lock()
		defer runMu.Unlock()

		names := make([]string, 0, len(paths))
		for _, p := range paths {
			names = append(names, filepath.Base(p))
		}

		doRun(sigCtx, opts, runFn, strings.Join(names, ", "))
	})
	defer debouncer.Stop()

	for {
		select {
		case <-sigCtx.Done():
			fmt.Fprintln(opts.Out, "\nshutting down watcher")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !isRelevant(event, targets) {
				continue
			}

			opts.Logger.Debug("source changed", slog.String("path", event.Name), slog.String("op", event.Op.String()))
			debouncer.Trigger(event.Name)

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			opts.Logger.Error("watcher error", slog.String("error", watchErr.Error()))
		}
	}
}

// doRun executes a single reload and prints the status line.
func doRun(ctx context.Context, opts Options, runFn RunFunc, trigger string) {
	now := time.Now().Format("15:04:05")

	result, err := runFn(ctx)
	if err != nil {
		fmt.Fprintf(opts.Out, "[%s] %s → ERROR: %v\n", now, trigger, err)
		return
	}

	fmt.Fprintf(opts.Out, "[%s] %s → OK (%d pathways, %d dropped)\n",
		now, trigger, result.Count, result.Dropped)

	if result.Changes != nil {
		fmt.Fprintf(opts.Out, "  changes: %s\n", Summary(result.Changes))

		for _, c := range result.Changes {
			fmt.Fprintf(opts.Out, "    %s #%d %s\n", c.Kind, c.ID, c.Name)
		}
	}

	if result.Diff != nil {
		WriteDiff(opts.Out, result.Diff, opts.Color)
	}
}

// addTargets watches the parent directory of every file and returns the
// cleaned absolute paths of the files themselves.
func addTargets(watcher *fsnotify.Watcher, files []string) (map[string]struct{}, error) {
	targets := make(map[string]struct{}, len(files))
	dirs := make(map[string]struct{}, len(files))

	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("resolving %q: %w", f, err)
		}

		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("watching %q: %w", f, err)
		}

		if info.IsDir() {
			return nil, fmt.Errorf("watching %q: is a directory, expected a file", f)
		}

		targets[abs] = struct{}{}

		dir := filepath.Dir(abs)
		if _, done := dirs[dir]; done {
			continue
		}

		if err := watcher.Add(dir); err != nil {
			return nil, fmt.Errorf("watching directory %q: %w", dir, err)
		}

		dirs[dir] = struct{}{}
	}

	return targets, nil
}

// isRelevant filters out events on files other than the targets.
func isRelevant(event fsnotify.Event, targets map[string]struct{}) bool {
	if event.Op == 0 {
		return false
	}

	// Only care about write, create, remove, rename.
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	name := filepath.Base(event.Name)

	// Ignore editor temporary files.
	if strings.HasSuffix(name, "~") || strings.HasSuffix(name, ".swp") || strings.HasPrefix(name, "#") {
		return false
	}

	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}

	_, ok := targets[abs]

	return ok
}
