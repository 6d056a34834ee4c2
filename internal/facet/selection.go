package facet

import (
	"github.com/hupe1980/pathways/internal/pathway"
)

// Selection is the filter selection state: one set of chosen values for each
// multi-value facet plus an optional financed category. The zero value is the
// empty selection. Selection is a value type; every mutating operation
// returns a new Selection and leaves the receiver untouched.
type Selection struct {
	actors     []string
	conditions []string
	incentives []string
	barriers   []string
	financed   string
}

// ActiveValue is one selected value together with its facet.
type ActiveValue struct {
	Facet pathway.Facet
	Value string
}

// NewSelection builds a selection from explicit values. Duplicate values
// within a group collapse to one; an empty financed string means unset.
func NewSelection(actors, conditions, incentives, barriers []string, financed string) Selection {
	var s Selection

	for _, g := range []struct {
		f    pathway.Facet
		vals []string
	}{
		{pathway.FacetActor, actors},
		{pathway.FacetCondition, conditions},
		{pathway.FacetIncentive, incentives},
		{pathway.FacetBarrier, barriers},
	} {
		for _, v := range g.vals {
			if !s.Contains(g.f, v) {
				s = s.Toggle(g.f, v)
			}
		}
	}

	s.financed = financed

	return s
}

// Selected returns a copy of the selected values for facet f, in the order
// they were added. For the financed facet it returns zero or one value.
func (s Selection) Selected(f pathway.Facet) []string {
	if f == pathway.FacetFinanced {
		if s.financed == "" {
			return nil
		}

		return []string{s.financed}
	}

	return clone(s.group(f))
}

// Financed returns the selected financed category and whether one is set.
func (s Selection) Financed() (string, bool) {
	return s.financed, s.financed != ""
}

// Contains reports whether v is selected in facet f.
func (s Selection) Contains(f pathway.Facet, v string) bool {
	if f == pathway.FacetFinanced {
		return s.financed != "" && s.financed == v
	}

	return indexOf(s.group(f), v) >= 0
}

// Toggle removes v from facet f if present and adds it otherwise. For the
// financed facet Toggle behaves like SelectFinanced.
func (s Selection) Toggle(f pathway.Facet, v string) Selection {
	if f == pathway.FacetFinanced {
		return s.SelectFinanced(v)
	}

	cur := s.group(f)

	var next []string
	if i := indexOf(cur, v); i >= 0 {
		next = make([]string, 0, len(cur)-1)
		next = append(next, cur[:i]...)
		next = append(next, cur[i+1:]...)
	} else {
		next = make([]string, 0, len(cur)+1)
		next = append(next, cur...)
		next = append(next, v)
	}

	return s.withGroup(f, next)
}

// SelectFinanced acts as a radio button with deselect: choosing the current
// category clears it, choosing another one replaces it.
func (s Selection) SelectFinanced(v string) Selection {
	if s.financed == v {
		s.financed = ""
	} else {
		s.financed = v
	}

	return s
}

// ClearFinanced unsets the financed category.
func (s Selection) ClearFinanced() Selection {
	s.financed = ""
	return s
}

// Clear resets a single facet group.
func (s Selection) Clear(f pathway.Facet) Selection {
	if f == pathway.FacetFinanced {
		return s.ClearFinanced()
	}

	return s.withGroup(f, nil)
}

// ClearAll returns the empty selection.
func (s Selection) ClearAll() Selection {
	return Selection{}
}

// HasFilters reports whether any facet has a selection.
func (s Selection) HasFilters() bool {
	return len(s.actors) > 0 || len(s.conditions) > 0 || len(s.incentives) > 0 ||
		len(s.barriers) > 0 || s.financed != ""
}

// Active lists every selected value, multi-value facets first in group order,
// then the financed category.
func (s Selection) Active() []ActiveValue {
	var out []ActiveValue

	for _, f := range pathway.MultiFacets {
		for _, v := range s.group(f) {
			out = append(out, ActiveValue{Facet: f, Value: v})
		}
	}

	if s.financed != "" {
		out = append(out, ActiveValue{Facet: pathway.FacetFinanced, Value: s.financed})
	}

	return out
}

// Equal reports whether two selections hold the same values, ignoring the
// order in which values were added.
func (s Selection) Equal(o Selection) bool {
	if s.financed != o.financed {
		return false
	}

	for _, f := range pathway.MultiFacets {
		a, b := s.group(f), o.group(f)
		if len(a) != len(b) {
			return false
		}

		for _, v := range a {
			if indexOf(b, v) < 0 {
				return false
			}
		}
	}

	return true
}

func (s Selection) group(f pathway.Facet) []string {
	switch f {
	case pathway.FacetActor:
		return s.actors
	case pathway.FacetCondition:
		return s.conditions
	case pathway.FacetIncentive:
		return s.incentives
	case pathway.FacetBarrier:
		return s.barriers
	default:
		return nil
	}
}

func (s Selection) withGroup(f pathway.Facet, vals []string) Selection {
	if len(vals) == 0 {
		vals = nil
	}

	switch f {
	case pathway.FacetActor:
		s.actors = vals
	case pathway.FacetCondition:
		s.conditions = vals
	case pathway.FacetIncentive:
		s.incentives = vals
	case pathway.FacetBarrier:
		s.barriers = vals
	}

	return s
}

func indexOf(vals []string, v string) int {
	for i, x := range vals {
		if x == v {
			return i
		}
	}

	return -1
}

func clone(vals []string) []string {
	if len(vals) == 0 {
		return nil
	}

	out := make([]string, len(vals))
	copy(out, vals)

	return out
}
