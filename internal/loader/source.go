package loader

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Unconfigured is the placeholder shipped in the default configuration. A
// source equal to it (or empty) means no sheet has been connected yet.
const Unconfigured = "YOUR_PUBLISHED_CSV_URL_HERE"

// SourceType identifies where a pathway CSV comes from.
type SourceType int

const (
	// SourceUnknown indicates the reference could not be classified.
	SourceUnknown SourceType = iota
	// SourceUnconfigured is the empty or placeholder source.
	SourceUnconfigured
	// SourceHTTP is a published http(s) CSV URL.
	SourceHTTP
	// SourceFile is a local CSV file, given as a path or file:// URL.
	SourceFile
)

// String returns a human-readable name for the source type.
func (s SourceType) String() string {
	switch s {
	case SourceUnconfigured:
		return "unconfigured"
	case SourceHTTP:
		return "http"
	case SourceFile:
		return "file"
	default:
		return "unknown"
	}
}

// IsUnconfigured reports whether ref is empty or the placeholder value.
func IsUnconfigured(ref string) bool {
	ref = strings.TrimSpace(ref)
	return ref == "" || ref == Unconfigured
}

// Detect classifies a source reference. It never performs network I/O.
func Detect(ref string) (SourceType, error) {
	if IsUnconfigured(ref) {
		return SourceUnconfigured, nil
	}

	ref = strings.TrimSpace(ref)
	lower := strings.ToLower(ref)

	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return SourceHTTP, nil
	}

	if strings.HasPrefix(lower, "file://") {
		return SourceFile, nil
	}

	if info, err := os.Stat(ref); err == nil && info.Mode().IsRegular() {
		return SourceFile, nil
	}

	return SourceUnknown, fmt.Errorf("cannot determine source type for %q: expected an http(s) URL or an existing CSV file", ref)
}

// FilePath returns the local path for a file source, stripping a file://
// scheme when present.
func FilePath(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if !strings.HasPrefix(strings.ToLower(ref), "file://") {
		return ref, nil
	}

	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("parsing file URL %q: %w", ref, err)
	}

	if u.Path == "" {
		return u.Opaque, nil
	}

	return u.Path, nil
}

// CacheBust appends a cachebust query parameter so intermediate caches do
// not serve a stale copy of the sheet. Existing query parameters are kept.
func CacheBust(rawURL, token string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing source URL: %w", err)
	}

	q := u.Query()
	q.Set("cachebust", token)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
