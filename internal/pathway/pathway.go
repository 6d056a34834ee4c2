// Package pathway defines the Pathway record, the normalization rules that
// turn raw spreadsheet rows into records, and the facet taxonomies used to
// drive filter options.
package pathway

// Column names expected in the header row of the source CSV.
const (
	ColumnID                 = "id"
	ColumnName               = "name"
	ColumnActors             = "actors"
	ColumnEnablingConditions = "enablingConditions"
	ColumnIncentives         = "incentives"
	ColumnBarriers           = "barriers"
	ColumnFinanced           = "financed"
	ColumnSummary            = "summary"
	ColumnExamples           = "examples"
)

// Columns lists every column the loader looks up, in display order.
var Columns = []string{
	ColumnID,
	ColumnName,
	ColumnActors,
	ColumnEnablingConditions,
	ColumnIncentives,
	ColumnBarriers,
	ColumnFinanced,
	ColumnSummary,
	ColumnExamples,
}

// Pathway is one financing-strategy record. Values are produced once by the
// loader and treated as immutable afterwards.
type Pathway struct {
	ID                 int      `json:"id" yaml:"id"`
	Name               string   `json:"name" yaml:"name"`
	Actors             []string `json:"actors" yaml:"actors"`
	EnablingConditions []string `json:"enablingConditions" yaml:"enablingConditions"`
	Incentives         []string `json:"incentives" yaml:"incentives"`
	Barriers           []string `json:"barriers" yaml:"barriers"`
	Financed           string   `json:"financed" yaml:"financed"`
	Summary            string   `json:"summary" yaml:"summary"`
	Examples           string   `json:"examples" yaml:"examples"`
}

// Valid reports whether the record has a positive id and a non-empty name.
// Rows failing this check are template or sparse rows and get dropped.
func (p Pathway) Valid() bool {
	return p.ID > 0 && p.Name != ""
}

// Values returns the record's values for a multi-value facet. For
// FacetFinanced it returns a one-element slice, or nil when unset.
func (p Pathway) Values(f Facet) []string {
	switch f {
	case FacetActor:
		return p.Actors
	case FacetCondition:
		return p.EnablingConditions
	case FacetIncentive:
		return p.Incentives
	case FacetBarrier:
		return p.Barriers
	case FacetFinanced:
		if p.Financed == "" {
			return nil
		}

		return []string{p.Financed}
	default:
		return nil
	}
}

// Has reports whether the record carries value v in facet f.
func (p Pathway) Has(f Facet, v string) bool {
	for _, x := range p.Values(f) {
		if x == v {
			return true
		}
	}

	return false
}
