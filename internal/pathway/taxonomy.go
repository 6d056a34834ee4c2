package pathway

// Taxonomy holds the ordered list of allowed values for each facet. The
// lists drive which filter options exist and their display order. Records
// are never validated against them.
type Taxonomy struct {
	Actors             []string `json:"actors" yaml:"actors"`
	EnablingConditions []string `json:"enablingConditions" yaml:"enablingConditions"`
	Incentives         []string `json:"incentives" yaml:"incentives"`
	Barriers           []string `json:"barriers" yaml:"barriers"`
	Financed           []string `json:"financed" yaml:"financed"`
}

// DefaultTaxonomy returns the built-in taxonomy. Each call returns fresh
// slices so callers cannot mutate the defaults.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		Actors: []string{
			"Financial institutions",
			"Extractive & infrastructure",
			"Tourism & hospitality",
			"Corporations (voluntary)",
			"Impact investors",
			"Other partners",
		},
		EnablingConditions: []string{
			"Government political will",
			"Legal conservation framework",
			"Revenue retention mechanism",
			"Long-term tenure security",
			"Verified ecological baseline",
			"Enforcement & monitoring capacity",
			"Corporate nature-positive targets",
			"De-risking instruments available",
			"Market demand / site visitation",
			"Functioning governance structure",
		},
		Incentives: []string{
			"Regulatory compliance",
			"Reputational / brand benefit",
			"Financial return",
			"Risk reduction",
			"Nature-positive / ESG targets",
			"Long-term resource security",
			"Exclusive access rights",
			"Conservation mission",
		},
		Barriers: []string{
			"Weak enforcement / governance",
			"Revenue leakage to treasury",
			"High transaction costs",
			"Limited scale / accessibility",
			"No financial return",
			"Immature standards / market",
			"Annual funding cycle",
			"Restricted to visible activities",
			"Single revenue stream risk",
			"Additionality concerns",
		},
		Financed: []string{
			"Full management stack",
			"Operations",
			"Restoration",
			"Monitoring & technology",
			"Business development",
		},
	}
}

// Values returns the ordered options for facet f.
func (t Taxonomy) Values(f Facet) []string {
	switch f {
	case FacetActor:
		return t.Actors
	case FacetCondition:
		return t.EnablingConditions
	case FacetIncentive:
		return t.Incentives
	case FacetBarrier:
		return t.Barriers
	case FacetFinanced:
		return t.Financed
	default:
		return nil
	}
}

// Known reports whether v is one of the taxonomy values for facet f.
func (t Taxonomy) Known(f Facet, v string) bool {
	for _, x := range t.Values(f) {
		if x == v {
			return true
		}
	}

	return false
}

// Unknown returns the values carried by records for facet f that the
// taxonomy does not list, in first-seen order. Sheet editors may add values
// before the taxonomy catches up; those are kept, just not highlighted.
func (t Taxonomy) Unknown(f Facet, records []Pathway) []string {
	seen := make(map[string]bool)

	var out []string

	for _, p := range records {
		for _, v := range p.Values(f) {
			if seen[v] || t.Known(f, v) {
				continue
			}

			seen[v] = true
			out = append(out, v)
		}
	}

	return out
}
