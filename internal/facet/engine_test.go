package facet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pathways/internal/pathway"
)

const (
	impact  = "Impact investors"
	tourism = "Tourism & hospitality"
)

func fixture() []pathway.Pathway {
	return []pathway.Pathway{
		{
			ID: 1, Name: "Blue bonds",
			Actors:             []string{"Financial institutions", impact},
			EnablingConditions: []string{"Government political will"},
			Incentives:         []string{"Financial return"},
			Barriers:           []string{"High transaction costs"},
			Financed:           "Full management stack",
		},
		{
			ID: 2, Name: "Dive fees",
			Actors:             []string{tourism},
			EnablingConditions: []string{"Revenue retention mechanism", "Market demand / site visitation"},
			Incentives:         []string{"Long-term resource security"},
			Barriers:           []string{"Revenue leakage to treasury"},
			Financed:           "Operations",
		},
		{
			ID: 3, Name: "Mangrove credits",
			Actors:             []string{"Corporations (voluntary)", impact},
			EnablingConditions: []string{"Verified ecological baseline"},
			Incentives:         []string{"Nature-positive / ESG targets", "Financial return"},
			Barriers:           []string{"Immature standards / market", "Additionality concerns"},
			Financed:           "Restoration",
		},
		{
			ID: 4, Name: "Unknown actor pilot",
			Actors:   []string{"Philanthropies"},
			Financed: "",
		},
	}
}

// ---------------------------------------------------------------------------
// Scenarios
// ---------------------------------------------------------------------------

func TestMatch_ActorScenario(t *testing.T) {
	records := []pathway.Pathway{
		{ID: 1, Name: "A", Actors: []string{impact}},
		{ID: 2, Name: "B", Actors: []string{tourism}},
		{ID: 3, Name: "C", Actors: []string{impact, tourism}},
	}

	sel := Selection{}.Toggle(pathway.FacetActor, impact)
	res := Match(records, sel)

	assert.Equal(t, []bool{true, false, true}, res.Matches)
	assert.Equal(t, 2, res.Count)
}

func TestMatch_VacuousSelection(t *testing.T) {
	records := fixture()
	res := Match(records, Selection{})

	require.Len(t, res.Matches, len(records))

	for i, m := range res.Matches {
		assert.True(t, m, "record %d should match the empty selection", i)
	}

	assert.Equal(t, len(records), res.Count)
}

func TestMatch_EmptyRecords(t *testing.T) {
	res := Match(nil, Selection{}.Toggle(pathway.FacetActor, impact))
	assert.Empty(t, res.Matches)
	assert.Equal(t, 0, res.Count)
}

func TestMatch_OrWithinGroup(t *testing.T) {
	sel := Selection{}.
		Toggle(pathway.FacetActor, impact).
		Toggle(pathway.FacetActor, tourism)

	res := Match(fixture(), sel)
	assert.Equal(t, []bool{true, true, true, false}, res.Matches)
}

func TestMatch_AndAcrossGroups(t *testing.T) {
	sel := Selection{}.
		Toggle(pathway.FacetActor, impact).
		Toggle(pathway.FacetIncentive, "Nature-positive / ESG targets")

	res := Match(fixture(), sel)
	assert.Equal(t, []bool{false, false, true, false}, res.Matches)
	assert.Equal(t, 1, res.Count)
}

func TestMatch_FinancedExact(t *testing.T) {
	res := Match(fixture(), Selection{}.SelectFinanced("Operations"))
	assert.Equal(t, []bool{false, true, false, false}, res.Matches)

	// Case-sensitive, no normalization.
	res = Match(fixture(), Selection{}.SelectFinanced("operations"))
	assert.Equal(t, 0, res.Count)
}

func TestMatch_UnknownValuesFilterable(t *testing.T) {
	res := Match(fixture(), Selection{}.Toggle(pathway.FacetActor, "Philanthropies"))
	assert.Equal(t, []bool{false, false, false, true}, res.Matches)
}

func TestMatch_AllGroups(t *testing.T) {
	sel := NewSelection(
		[]string{impact},
		[]string{"Government political will"},
		[]string{"Financial return"},
		[]string{"High transaction costs"},
		"Full management stack",
	)

	res := Match(fixture(), sel)
	assert.Equal(t, []bool{true, false, false, false}, res.Matches)
}

// ---------------------------------------------------------------------------
// Properties
// ---------------------------------------------------------------------------

func TestMatch_Deterministic(t *testing.T) {
	records := fixture()
	sel := Selection{}.Toggle(pathway.FacetBarrier, "Revenue leakage to treasury")

	first := Match(records, sel)
	for range 5 {
		assert.Equal(t, first, Match(records, sel))
	}
}

func TestMatch_DoesNotMutateInputs(t *testing.T) {
	records := fixture()
	before := fixture()
	sel := Selection{}.Toggle(pathway.FacetActor, impact)

	_ = Match(records, sel)

	assert.Equal(t, before, records)
	assert.Equal(t, []string{impact}, sel.Selected(pathway.FacetActor))
}

func TestMatch_Monotonic(t *testing.T) {
	records := fixture()
	tax := pathway.DefaultTaxonomy()

	// Start from a few non-empty selections and add each taxonomy value in turn.
	bases := []Selection{
		{},
		Selection{}.Toggle(pathway.FacetActor, impact),
		Selection{}.Toggle(pathway.FacetCondition, "Verified ecological baseline"),
		Selection{}.SelectFinanced("Restoration"),
	}

	for _, base := range bases {
		before := Match(records, base)

		for _, f := range pathway.MultiFacets {
			if len(base.Selected(f)) == 0 {
				// Activating a group may narrow arbitrarily; still never widen.
				for _, v := range tax.Values(f) {
					assertNarrowed(t, before, Match(records, base.Toggle(f, v)))
				}

				continue
			}

			// Adding to an active group can only narrow or preserve relative
			// to the group being inactive, and never widens the vacuous match.
			for _, v := range tax.Values(f) {
				if base.Contains(f, v) {
					continue
				}

				after := Match(records, base.Toggle(f, v))
				assertNarrowed(t, Match(records, base.Clear(f)), after)
			}
		}
	}
}

func assertNarrowed(t *testing.T, before, after Result) {
	t.Helper()

	require.Len(t, after.Matches, len(before.Matches))

	for i := range after.Matches {
		if after.Matches[i] {
			assert.True(t, before.Matches[i], "record %d matched after but not before", i)
		}
	}

	assert.LessOrEqual(t, after.Count, before.Count)
}

// ---------------------------------------------------------------------------
// Compile / Chain / Visible
// ---------------------------------------------------------------------------

func TestCompile_OneClausePerActiveGroup(t *testing.T) {
	assert.Empty(t, Compile(Selection{}).Clauses())

	sel := Selection{}.
		Toggle(pathway.FacetActor, impact).
		Toggle(pathway.FacetActor, tourism).
		Toggle(pathway.FacetBarrier, "High transaction costs").
		SelectFinanced("Operations")

	clauses := Compile(sel).Clauses()
	require.Len(t, clauses, 3)
	assert.Equal(t, AnyOf{Facet: pathway.FacetActor, Values: []string{impact, tourism}}, clauses[0])
	assert.Equal(t, AnyOf{Facet: pathway.FacetBarrier, Values: []string{"High transaction costs"}}, clauses[1])
	assert.Equal(t, Equals{Value: "Operations"}, clauses[2])
	assert.Equal(t, `financed == "Operations"`, clauses[2].String())
}

func TestVisible(t *testing.T) {
	records := fixture()
	res := Match(records, Selection{}.Toggle(pathway.FacetActor, impact))

	vis := Visible(records, res)
	require.Len(t, vis, 2)
	assert.Equal(t, 1, vis[0].ID)
	assert.Equal(t, 3, vis[1].ID)
}
