// Package pathways provides a public Go API for loading the private capital
// pathway sheet and filtering it by facet.
//
// This package exposes the loader and the filter engine as a library,
// allowing programmatic use without the CLI.
//
// Basic usage:
//
//	res, err := pathways.Load(ctx, "https://docs.google.com/.../pub?output=csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sel := pathways.NewSelection().Toggle(pathways.FacetActor, "Impact investors")
//	m := pathways.Filter(res.Pathways, sel)
//	fmt.Printf("%d of %d pathways\n", m.Count, len(res.Pathways))
//
// With options:
//
//	res, err := pathways.Load(ctx, "pathways.csv",
//	    pathways.WithTimeout(10*time.Second),
//	    pathways.WithLogger(logger),
//	)
package pathways

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hupe1980/pathways/internal/facet"
	"github.com/hupe1980/pathways/internal/loader"
	"github.com/hupe1980/pathways/internal/output"
	"github.com/hupe1980/pathways/internal/pathway"
)

// Pathway is one financing-strategy record.
type Pathway = pathway.Pathway

// Facet is one filterable dimension.
type Facet = pathway.Facet

// Facets.
const (
	FacetActor     = pathway.FacetActor
	FacetCondition = pathway.FacetCondition
	FacetIncentive = pathway.FacetIncentive
	FacetBarrier   = pathway.FacetBarrier
	FacetFinanced  = pathway.FacetFinanced
)

// Taxonomy holds the ordered filter options of every facet.
type Taxonomy = pathway.Taxonomy

// Selection is an immutable filter selection.
type Selection = facet.Selection

// Matches is the outcome of Filter: one flag per record plus the count.
type Matches = facet.Result

// Status is the terminal state of a load.
type Status = loader.Status

// Load states.
const (
	StatusOK           = loader.StatusOK
	StatusUnconfigured = loader.StatusUnconfigured
	StatusFetchError   = loader.StatusFetchError
	StatusParseError   = loader.StatusParseError
)

// Errors returned by Load. Use errors.Is to classify a failure.
var (
	ErrUnconfigured = loader.ErrUnconfigured
	ErrFetch        = loader.ErrFetch
	ErrParse        = loader.ErrParse
)

// Unconfigured is the placeholder source meaning no sheet is connected.
const Unconfigured = loader.Unconfigured

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Option configures Load.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	client   *http.Client
	timeout  time.Duration
	maxSize  int64
	observer func(Status)
}

// WithLogger sets the logger. By default Load logs nothing.
func WithLogger(l *slog.Logger) Option { return func(o *options) { o.logger = l } }

// WithHTTPClient sets the HTTP client used for http(s) sources.
func WithHTTPClient(c *http.Client) Option { return func(o *options) { o.client = c } }

// WithTimeout bounds the fetch of an http(s) source.
func WithTimeout(d time.Duration) Option { return func(o *options) { o.timeout = d } }

// WithMaxBodySize limits the size of the fetched document.
func WithMaxBodySize(n int64) Option { return func(o *options) { o.maxSize = n } }

// WithObserver receives every state transition of the load.
func WithObserver(fn func(Status)) Option { return func(o *options) { o.observer = fn } }

// Result holds the outcome of a load.
type Result struct {
	// Status is the terminal state reached.
	Status Status
	// Pathways are the vetted records in sheet row order.
	Pathways []Pathway
	// LastUpdated is when the load completed. Zero unless Status is StatusOK.
	LastUpdated time.Time
	// Dropped counts rows skipped for a missing id or name.
	Dropped int
	// Warnings are malformed rows that did not stop the load.
	Warnings []error
}

// Load fetches and vets the pathway sheet at source, an http(s) URL, a
// local path, or a file:// URL. It returns a non-nil Result in every case;
// the error is non-nil unless Result.Status is StatusOK.
func Load(ctx context.Context, source string, opts ...Option) (*Result, error) {
	o := &options{
		logger:  discardLogger(),
		timeout: loader.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(o)
	}

	loaderOpts := []loader.Option{
		loader.WithLogger(o.logger),
		loader.WithTimeout(o.timeout),
		loader.WithMaxBodySize(o.maxSize),
	}

	if o.client != nil {
		loaderOpts = append(loaderOpts, loader.WithHTTPClient(o.client))
	}

	if o.observer != nil {
		loaderOpts = append(loaderOpts, loader.WithObserver(loader.Observer(o.observer)))
	}

	res := loader.New(loaderOpts...).Load(ctx, source)

	return &Result{
		Status:      res.Status,
		Pathways:    res.Pathways,
		LastUpdated: res.LastUpdated,
		Dropped:     res.Dropped,
		Warnings:    res.Warnings,
	}, res.Err
}

// NewSelection returns the empty selection.
func NewSelection() Selection {
	return Selection{}
}

// Filter evaluates sel against records.
func Filter(records []Pathway, sel Selection) Matches {
	return facet.Match(records, sel)
}

// DefaultTaxonomy returns the built-in facet options.
func DefaultTaxonomy() Taxonomy {
	return pathway.DefaultTaxonomy()
}

// Formats lists the names accepted by Render.
func Formats() []string {
	return output.DefaultRegistry().Formats()
}

// Render filters records by sel and renders the result as table, yaml,
// json, or markdown. With all set, non-matching records are included and
// flagged.
func Render(format string, records []Pathway, sel Selection, all bool) ([]byte, error) {
	f, err := output.DefaultRegistry().Formatter(format)
	if err != nil {
		return nil, err
	}

	return f.Format(output.NewListing(records, sel, all))
}
