package facet

import (
	"fmt"

	"github.com/hupe1980/pathways/internal/pathway"
)

// Clause is one active facet constraint. Clauses are stateless and must not
// retain the records they inspect.
type Clause interface {
	// Matches reports whether p satisfies the clause.
	Matches(p pathway.Pathway) bool
	// String describes the clause for diagnostics.
	String() string
}

// AnyOf matches records carrying at least one of Values in Facet.
type AnyOf struct {
	Facet  pathway.Facet
	Values []string
}

// Matches implements Clause.
func (c AnyOf) Matches(p pathway.Pathway) bool {
	for _, v := range c.Values {
		if p.Has(c.Facet, v) {
			return true
		}
	}

	return false
}

func (c AnyOf) String() string {
	return fmt.Sprintf("%s in %q", c.Facet, c.Values)
}

// Equals matches records whose financed category is exactly Value.
type Equals struct {
	Value string
}

// Matches implements Clause.
func (c Equals) Matches(p pathway.Pathway) bool {
	return p.Financed == c.Value
}

func (c Equals) String() string {
	return fmt.Sprintf("financed == %q", c.Value)
}

// Chain ANDs its clauses. The empty chain matches everything.
type Chain struct {
	clauses []Clause
}

// NewChain creates a chain from the given clauses.
func NewChain(clauses ...Clause) *Chain {
	return &Chain{clauses: clauses}
}

// Matches reports whether p satisfies every clause.
func (c *Chain) Matches(p pathway.Pathway) bool {
	for _, cl := range c.clauses {
		if !cl.Matches(p) {
			return false
		}
	}

	return true
}

// Clauses returns the chain's clauses in evaluation order.
func (c *Chain) Clauses() []Clause {
	return c.clauses
}

// Compile turns a selection into a clause chain holding one clause per
// active group.
func Compile(sel Selection) *Chain {
	var clauses []Clause

	for _, f := range pathway.MultiFacets {
		if vals := sel.group(f); len(vals) > 0 {
			clauses = append(clauses, AnyOf{Facet: f, Values: clone(vals)})
		}
	}

	if v, ok := sel.Financed(); ok {
		clauses = append(clauses, Equals{Value: v})
	}

	return NewChain(clauses...)
}

// Result is the outcome of matching a record list against a selection.
type Result struct {
	// Matches is parallel to the input records.
	Matches []bool
	// Count is the number of true entries in Matches.
	Count int
}

// Match evaluates sel against every record. It is pure: the same records and
// selection always yield the same result.
func Match(records []pathway.Pathway, sel Selection) Result {
	chain := Compile(sel)
	r := Result{Matches: make([]bool, len(records))}

	for i, p := range records {
		if chain.Matches(p) {
			r.Matches[i] = true
			r.Count++
		}
	}

	return r
}

// Visible returns the records flagged in res, preserving order. res must
// have been computed from records.
func Visible(records []pathway.Pathway, res Result) []pathway.Pathway {
	out := make([]pathway.Pathway, 0, res.Count)

	for i, p := range records {
		if i < len(res.Matches) && res.Matches[i] {
			out = append(out, p)
		}
	}

	return out
}
