package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/hupe1980/pathways/internal/version"
)

// DefaultMaxBodySize is 32 MB.
const DefaultMaxBodySize int64 = 32 << 20

// DefaultTimeout bounds a single fetch when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Fetcher retrieves the raw bytes of a source.
type Fetcher interface {
	// Fetch resolves ref and returns its content.
	Fetch(ctx context.Context, ref string) ([]byte, error)
}

// HTTPFetcher downloads a published CSV over HTTP(S).
type HTTPFetcher struct {
	client  *http.Client
	maxSize int64
}

// NewHTTPFetcher creates an HTTPFetcher. A nil client gets a default client
// with the given timeout.
func NewHTTPFetcher(client *http.Client, timeout time.Duration, maxSize int64) *HTTPFetcher {
	if client == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		client = &http.Client{Transport: transport, Timeout: timeout}
	}

	if maxSize <= 0 {
		maxSize = DefaultMaxBodySize
	}

	return &HTTPFetcher{client: client, maxSize: maxSize}
}

// Fetch issues a GET for ref. Any non-2xx status is an error.
func (f *HTTPFetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.5")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("User-Agent", version.GetInfo().UserAgent())

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting sheet: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("sheet returned status %d", resp.StatusCode)
	}

	return readLimited(resp.Body, f.maxSize)
}

// FileFetcher reads a CSV from the local filesystem.
type FileFetcher struct {
	maxSize int64
}

// NewFileFetcher creates a FileFetcher.
func NewFileFetcher(maxSize int64) *FileFetcher {
	if maxSize <= 0 {
		maxSize = DefaultMaxBodySize
	}

	return &FileFetcher{maxSize: maxSize}
}

// Fetch reads the file named by ref (a path or file:// URL).
func (f *FileFetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := FilePath(ref)
	if err != nil {
		return nil, err
	}

	fh, err := os.Open(path) //nolint:gosec // user-provided source path
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer func() { _ = fh.Close() }()

	return readLimited(fh, f.maxSize)
}

func readLimited(r io.Reader, maxSize int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}

	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("body exceeds %d bytes", maxSize)
	}

	return data, nil
}
