package watch

import (
	"fmt"
	"io"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// SnapshotDiff holds a unified diff between two rendered snapshots.
type SnapshotDiff struct {
	Unified        string
	HasDifferences bool
}

// DiffSnapshots computes a unified diff between two rendered snapshots.
func DiffSnapshots(prev, curr []byte, prevLabel, currLabel string) (*SnapshotDiff, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(prev)),
		B:        difflib.SplitLines(string(curr)),
		FromFile: prevLabel,
		ToFile:   currLabel,
		Context:  3,
	}

	unified, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return nil, fmt.Errorf("computing diff: %w", err)
	}

	return &SnapshotDiff{Unified: unified, HasDifferences: unified != ""}, nil
}

// WriteDiff writes a formatted diff to w with optional ANSI colors.
func WriteDiff(w io.Writer, d *SnapshotDiff, color bool) {
	if !d.HasDifferences {
		return
	}

	for _, line := range strings.Split(strings.TrimRight(d.Unified, "\n"), "\n") {
		if color {
			writeColorLine(w, line)
		} else {
			_, _ = fmt.Fprintln(w, line)
		}
	}
}

func writeColorLine(w io.Writer, line string) {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		cyan  = "\033[36m"
		bold  = "\033[1m"
		reset = "\033[0m"
	)

	switch {
	case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
		_, _ = fmt.Fprintf(w, "%s%s%s\n", bold, line, reset)
	case strings.HasPrefix(line, "@@"):
		_, _ = fmt.Fprintf(w, "%s%s%s\n", cyan, line, reset)
	case strings.HasPrefix(line, "-"):
		_, _ = fmt.Fprintf(w, "%s%s%s\n", red, line, reset)
	case strings.HasPrefix(line, "+"):
		_, _ = fmt.Fprintf(w, "%s%s%s\n", green, line, reset)
	default:
		_, _ = fmt.Fprintln(w, line)
	}
}
