package pathway

import "fmt"

// Facet identifies one filterable dimension of a Pathway.
type Facet int

const (
	// FacetActor filters on the private sector actor types.
	FacetActor Facet = iota
	// FacetCondition filters on enabling conditions.
	FacetCondition
	// FacetIncentive filters on incentives for the private actor.
	FacetIncentive
	// FacetBarrier filters on barriers to address.
	FacetBarrier
	// FacetFinanced filters on the single financed category.
	FacetFinanced
)

// MultiFacets are the facets whose selection is a set.
var MultiFacets = []Facet{FacetActor, FacetCondition, FacetIncentive, FacetBarrier}

// Facets lists every facet in the order the explorer presents them.
var Facets = []Facet{FacetActor, FacetFinanced, FacetCondition, FacetIncentive, FacetBarrier}

// String returns the short name used on the command line.
func (f Facet) String() string {
	switch f {
	case FacetActor:
		return "actor"
	case FacetCondition:
		return "condition"
	case FacetIncentive:
		return "incentive"
	case FacetBarrier:
		return "barrier"
	case FacetFinanced:
		return "financed"
	default:
		return "unknown"
	}
}

// Label returns the heading shown above the facet's chips.
func (f Facet) Label() string {
	switch f {
	case FacetActor:
		return "Private Sector Actor"
	case FacetCondition:
		return "Enabling Conditions"
	case FacetIncentive:
		return "Incentives for Private Actor"
	case FacetBarrier:
		return "Barriers to Address"
	case FacetFinanced:
		return "What is Being Financed"
	default:
		return "Unknown"
	}
}

// Description returns the helper text shown under the label, if any.
func (f Facet) Description() string {
	switch f {
	case FacetActor:
		return "Who is deploying capital"
	case FacetCondition:
		return "Conditions present in your context"
	case FacetFinanced:
		return "Select one"
	default:
		return ""
	}
}

// Single reports whether the facet holds at most one selected value.
func (f Facet) Single() bool {
	return f == FacetFinanced
}

// ParseFacet maps a command-line facet name to a Facet.
func ParseFacet(s string) (Facet, error) {
	switch s {
	case "actor", "actors":
		return FacetActor, nil
	case "condition", "conditions", "enablingConditions":
		return FacetCondition, nil
	case "incentive", "incentives":
		return FacetIncentive, nil
	case "barrier", "barriers":
		return FacetBarrier, nil
	case "financed":
		return FacetFinanced, nil
	default:
		return 0, fmt.Errorf("unknown facet %q: must be one of actor, condition, incentive, barrier, financed", s)
	}
}
