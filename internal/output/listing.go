package output

import (
	"fmt"
	"time"

	"github.com/hupe1980/pathways/internal/facet"
	"github.com/hupe1980/pathways/internal/pathway"
)

// Listing is the renderable result of filtering one load.
type Listing struct {
	// Source is the configured source reference.
	Source string
	// LastUpdated is when the records were loaded.
	LastUpdated time.Time
	// Total is the number of loaded records.
	Total int
	// Count is the number of matching records.
	Count int
	// Selection is the filter state the listing was built from.
	Selection facet.Selection
	// Items are the records to render, in source order.
	Items []Item
	// ShowMatch marks whether Items includes non-matching records.
	ShowMatch bool
}

// Item is one rendered record.
type Item struct {
	pathway.Pathway
	// Match reports whether the record satisfies the selection.
	Match bool
}

// NewListing filters records by sel. With all set, non-matching records are
// kept and flagged instead of dropped.
func NewListing(records []pathway.Pathway, sel facet.Selection, all bool) *Listing {
	res := facet.Match(records, sel)

	l := &Listing{
		Total:     len(records),
		Count:     res.Count,
		Selection: sel,
		ShowMatch: all,
		Items:     make([]Item, 0, len(records)),
	}

	for i, p := range records {
		if !all && !res.Matches[i] {
			continue
		}

		l.Items = append(l.Items, Item{Pathway: p, Match: res.Matches[i]})
	}

	return l
}

// Summary returns the "N of M pathways" line, suffixed with "matching"
// when any filter is active.
func (l *Listing) Summary() string {
	s := fmt.Sprintf("%d of %d pathways", l.Count, l.Total)
	if l.Selection.HasFilters() {
		s += " matching"
	}

	return s
}

// Empty reports whether filters are active and nothing matched.
func (l *Listing) Empty() bool {
	return l.Count == 0 && l.Total > 0
}
