// Package loader resolves a configured source into a vetted, ordered list
// of pathway records. A load is a single state transition from idle through
// loading to one of four terminal outcomes; it never retries on its own and
// never reuses state from a previous invocation.
package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/pathways/internal/pathway"
)

// Status is a state of the load state machine.
type Status int

const (
	// StatusIdle is the state before a load has been triggered.
	StatusIdle Status = iota
	// StatusLoading is the state while the source is being fetched and parsed.
	StatusLoading
	// StatusOK means records were loaded (possibly zero of them).
	StatusOK
	// StatusUnconfigured means no source has been set up.
	StatusUnconfigured
	// StatusFetchError means the source could not be retrieved.
	StatusFetchError
	// StatusParseError means the response could not be read as a table.
	StatusParseError
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusOK:
		return "ok"
	case StatusUnconfigured:
		return "unconfigured"
	case StatusFetchError:
		return "fetch_error"
	case StatusParseError:
		return "parse_error"
	default:
		return "unknown"
	}
}

// Terminal reports whether s ends a load.
func (s Status) Terminal() bool {
	return s >= StatusOK
}

// ErrorTag is the error classification handed to the presentation layer.
type ErrorTag string

// Error tags.
const (
	TagNone       ErrorTag = "none"
	TagNoURL      ErrorTag = "no_url"
	TagFetchError ErrorTag = "fetch_error"
	TagParseError ErrorTag = "parse_error"
)

// ErrorTag maps a status to its presentation tag.
func (s Status) ErrorTag() ErrorTag {
	switch s {
	case StatusUnconfigured:
		return TagNoURL
	case StatusFetchError:
		return TagFetchError
	case StatusParseError:
		return TagParseError
	default:
		return TagNone
	}
}

// Sentinel errors wrapped by Result.Err.
var (
	ErrUnconfigured = errors.New("no source configured")
	ErrFetch        = errors.New("fetching source")
	ErrParse        = errors.New("parsing source")
)

// Result is the outcome of one load.
type Result struct {
	// Status is the terminal state reached.
	Status Status
	// Source is the configured reference, without the cache-busting token.
	Source string
	// SourceType is the detected kind of source.
	SourceType SourceType
	// Pathways are the vetted records in source row order.
	Pathways []pathway.Pathway
	// LastUpdated is when the load completed. Zero unless Status is StatusOK.
	LastUpdated time.Time
	// LoadID correlates log lines of one load.
	LoadID string
	// Rows is the number of data rows parsed before vetting.
	Rows int
	// Dropped is the number of rows rejected for a missing id or name.
	Dropped int
	// Warnings are row-level parse problems that did not stop the load.
	Warnings []error
	// Err is the cause for non-OK outcomes. It wraps one of ErrUnconfigured,
	// ErrFetch, or ErrParse.
	Err error
}

// ErrorTag returns the presentation tag for the result.
func (r *Result) ErrorTag() ErrorTag {
	return r.Status.ErrorTag()
}

// OK reports whether the load succeeded.
func (r *Result) OK() bool {
	return r.Status == StatusOK
}

// Observer receives every state transition of a load, in order.
type Observer func(Status)

// Loader loads pathway records from a source. A Loader holds configuration
// only; each Load call starts from a fresh state.
type Loader struct {
	http     Fetcher
	file     Fetcher
	logger   *slog.Logger
	now      func() time.Time
	observer Observer
}

// Option configures a Loader.
type Option func(*config)

type config struct {
	client   *http.Client
	timeout  time.Duration
	maxSize  int64
	logger   *slog.Logger
	now      func() time.Time
	observer Observer
	http     Fetcher
	file     Fetcher
}

// WithHTTPClient sets the HTTP client used for http(s) sources.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *config) { cfg.client = c }
}

// WithTimeout bounds each HTTP fetch. Ignored when WithHTTPClient is used.
func WithTimeout(d time.Duration) Option {
	return func(cfg *config) { cfg.timeout = d }
}

// WithMaxBodySize overrides DefaultMaxBodySize.
func WithMaxBodySize(n int64) Option {
	return func(cfg *config) { cfg.maxSize = n }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) { cfg.logger = l }
}

// WithClock overrides the time source used for timestamps and cache busting.
func WithClock(now func() time.Time) Option {
	return func(cfg *config) { cfg.now = now }
}

// WithObserver registers a callback for state transitions.
func WithObserver(o Observer) Option {
	return func(cfg *config) { cfg.observer = o }
}

// WithFetchers replaces the HTTP and file fetchers. Nil arguments keep the
// defaults.
func WithFetchers(httpFetcher, fileFetcher Fetcher) Option {
	return func(cfg *config) {
		cfg.http = httpFetcher
		cfg.file = fileFetcher
	}
}

// New creates a Loader.
func New(opts ...Option) *Loader {
	cfg := &config{
		timeout: DefaultTimeout,
		logger:  slog.Default(),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	if cfg.now == nil {
		cfg.now = time.Now
	}

	l := &Loader{
		http:     cfg.http,
		file:     cfg.file,
		logger:   cfg.logger,
		now:      cfg.now,
		observer: cfg.observer,
	}

	if l.http == nil {
		l.http = NewHTTPFetcher(cfg.client, cfg.timeout, cfg.maxSize)
	}

	if l.file == nil {
		l.file = NewFileFetcher(cfg.maxSize)
	}

	return l
}

// Load runs one load of source. It always returns a non-nil Result; failures
// are reported through Result.Status and Result.Err rather than panics.
func (l *Loader) Load(ctx context.Context, source string) *Result {
	res := &Result{Source: source, LoadID: uuid.NewString()}
	logger := l.logger.With(slog.String("loadId", res.LoadID))

	l.notify(StatusLoading)

	st, detectErr := Detect(source)
	res.SourceType = st

	var data []byte

	switch st {
	case SourceUnconfigured:
		return l.finish(logger, res, StatusUnconfigured, ErrUnconfigured)
	case SourceHTTP:
		ref, err := CacheBust(source, strconv.FormatInt(l.now().UnixMilli(), 10))
		if err != nil {
			return l.finish(logger, res, StatusFetchError, fmt.Errorf("%w: %w", ErrFetch, err))
		}

		logger.Info("fetching pathways", slog.String("sourceType", st.String()))

		if data, err = l.http.Fetch(ctx, ref); err != nil {
			return l.finish(logger, res, StatusFetchError, fmt.Errorf("%w: %w", ErrFetch, err))
		}
	case SourceFile:
		logger.Info("reading pathways", slog.String("sourceType", st.String()), slog.String("source", source))

		var err error
		if data, err = l.file.Fetch(ctx, source); err != nil {
			return l.finish(logger, res, StatusFetchError, fmt.Errorf("%w: %w", ErrFetch, err))
		}
	default:
		return l.finish(logger, res, StatusFetchError, fmt.Errorf("%w: %w", ErrFetch, detectErr))
	}

	table := ParseCSV(data)
	res.Rows = len(table.Rows)

	if len(table.Errors) > 0 && len(table.Rows) == 0 {
		return l.finish(logger, res, StatusParseError, fmt.Errorf("%w: %w", ErrParse, errors.Join(table.Errors...)))
	}

	res.Warnings = table.Errors
	res.Pathways = Vet(table.Rows)
	res.Dropped = res.Rows - len(res.Pathways)
	res.LastUpdated = l.now()

	return l.finish(logger, res, StatusOK, nil)
}

// Vet maps raw rows to records, keeping only those with a positive id and a
// non-empty name. Source order is preserved and duplicate ids are kept.
func Vet(rows []map[string]string) []pathway.Pathway {
	out := make([]pathway.Pathway, 0, len(rows))

	for _, row := range rows {
		if p := pathway.FromRow(row); p.Valid() {
			out = append(out, p)
		}
	}

	return out
}

func (l *Loader) finish(logger *slog.Logger, res *Result, st Status, err error) *Result {
	res.Status = st
	res.Err = err

	switch st {
	case StatusOK:
		attrs := []any{
			slog.Int("count", len(res.Pathways)),
			slog.Int("rows", res.Rows),
			slog.Int("dropped", res.Dropped),
			slog.Int("warnings", len(res.Warnings)),
		}

		if len(res.Pathways) > 0 {
			first := res.Pathways[0]
			attrs = append(attrs,
				slog.Any("firstActors", first.Actors),
				slog.String("firstFinanced", first.Financed),
				slog.Any("firstConditions", first.EnablingConditions),
			)
		}

		logger.Debug("pathways loaded", attrs...)
	case StatusUnconfigured:
		logger.Warn("no pathway source configured")
	default:
		logger.Error("loading pathways failed",
			slog.String("status", st.String()),
			slog.String("error", err.Error()),
		)
	}

	l.notify(st)

	return res
}

func (l *Loader) notify(st Status) {
	if l.observer != nil {
		l.observer(st)
	}
}
