package watch

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/hupe1980/pathways/internal/pathway"
)

// ChangeKind classifies a record-level change between two loads.
type ChangeKind string

// Change kinds.
const (
	ChangeAdded   ChangeKind = "added"
	ChangeRemoved ChangeKind = "removed"
	ChangeChanged ChangeKind = "changed"
)

// Change describes a single record that differs between two loads.
type Change struct {
	Kind ChangeKind
	ID   int
	// Name is the current name, or the previous one for removals.
	Name string
}

// recordKey identifies a record by id and occurrence, so duplicate ids are
// compared position by position.
type recordKey struct {
	id, n int
}

func index(records []pathway.Pathway) map[recordKey]pathway.Pathway {
	seen := make(map[int]int, len(records))
	out := make(map[recordKey]pathway.Pathway, len(records))

	for _, p := range records {
		out[recordKey{id: p.ID, n: seen[p.ID]}] = p
		seen[p.ID]++
	}

	return out
}

// Diff compares two loads and returns the changes ordered by id.
func Diff(prev, curr []pathway.Pathway) []Change {
	prevIdx := index(prev)
	currIdx := index(curr)

	var changes []Change

	for k, p := range prevIdx {
		if _, ok := currIdx[k]; !ok {
			changes = append(changes, Change{Kind: ChangeRemoved, ID: p.ID, Name: p.Name})
		}
	}

	for k, c := range currIdx {
		p, existed := prevIdx[k]
		if !existed {
			changes = append(changes, Change{Kind: ChangeAdded, ID: c.ID, Name: c.Name})
			continue
		}

		if !reflect.DeepEqual(p, c) {
			changes = append(changes, Change{Kind: ChangeChanged, ID: c.ID, Name: c.Name})
		}
	}

	sort.Slice(changes, func(i, j int) bool {
		if changes[i].ID != changes[j].ID {
			return changes[i].ID < changes[j].ID
		}

		return changes[i].Kind < changes[j].Kind
	})

	return changes
}

// Summary returns a human-readable one-line summary.
func Summary(changes []Change) string {
	var added, removed, changed int

	for _, c := range changes {
		switch c.Kind {
		case ChangeAdded:
			added++
		case ChangeRemoved:
			removed++
		case ChangeChanged:
			changed++
		}
	}

	if added == 0 && removed == 0 && changed == 0 {
		return "no changes"
	}

	parts := make([]string, 0, 3)

	if added > 0 {
		parts = append(parts, fmt.Sprintf("+%d added", added))
	}

	if removed > 0 {
		parts = append(parts, fmt.Sprintf("-%d removed", removed))
	}

	if changed > 0 {
		parts = append(parts, fmt.Sprintf("~%d changed", changed))
	}

	return strings.Join(parts, ", ")
}
