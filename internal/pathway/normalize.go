package pathway

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// invisibleReplacer strips zero-width characters and byte order marks that
// spreadsheet exports scatter through cells, and folds typographic quotes
// into their ASCII forms.
var invisibleReplacer = strings.NewReplacer(
	"\u200b", "",
	"\u200c", "",
	"\u200d", "",
	"\ufeff", "",
	"\u201c", `"`,
	"\u201d", `"`,
	"\u201e", `"`,
	"\u201f", `"`,
	"\u2033", `"`,
	"\u2018", "'",
	"\u2019", "'",
	"\u201a", "'",
	"\u201b", "'",
)

// Clean removes invisible characters and normalizes smart quotes.
func Clean(s string) string {
	return invisibleReplacer.Replace(s)
}

// Norm trims s and collapses every run of internal whitespace to a single
// space.
func Norm(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitCell splits a semicolon-delimited cell into trimmed, non-empty values.
// Order is preserved and duplicates are kept.
func SplitCell(s string) []string {
	s = Clean(s)
	if strings.TrimSpace(s) == "" {
		return []string{}
	}

	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// NormalizeKey normalizes a header key so that incidental padding and
// invisible characters do not prevent column lookup.
func NormalizeKey(k string) string {
	return Norm(Clean(k))
}

// canonicalColumns maps a folded column name to its canonical spelling.
var canonicalColumns = func() map[string]string {
	m := make(map[string]string, len(Columns))
	for _, c := range Columns {
		m[foldKey(c)] = c
	}

	return m
}()

// foldKey lowercases k and drops spaces so that "Enabling Conditions" and
// "enablingconditions" fold to the same key.
func foldKey(k string) string {
	return strings.ToLower(strings.ReplaceAll(k, " ", ""))
}

// CanonicalColumn resolves a raw header key to one of Columns. Keys that do
// not resolve are returned normalized but otherwise unchanged.
func CanonicalColumn(k string) string {
	k = NormalizeKey(k)
	if c, ok := canonicalColumns[foldKey(k)]; ok {
		return c
	}

	return k
}

// NormalizeRow returns a copy of row keyed by canonical column names. When
// several raw keys resolve to the same column, an exact spelling wins over
// drifted ones; among drifted ones the lexically last raw key wins.
func NormalizeRow(row map[string]string) map[string]string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	out := make(map[string]string, len(row))
	exact := make(map[string]bool, len(row))

	for _, k := range keys {
		c := CanonicalColumn(k)
		if exact[c] {
			continue
		}

		out[c] = row[k]
		exact[c] = k == c
	}

	return out
}

// ParseID converts a raw id cell to an integer. Cells that are empty, not
// numeric, not integral, or outside the 32-bit range yield 0, which fails
// the positive-id check.
func ParseID(s string) int {
	s = Norm(Clean(s))
	if s == "" {
		return 0
	}

	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		return int(n)
	}

	// Spreadsheet exports occasionally render whole numbers as "3.0".
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0
	}

	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0
	}

	return int(f)
}

// FromRow maps a raw CSV row (header key to cell) to a Pathway. Keys are
// normalized before lookup. The result is not vetted; callers check Valid.
func FromRow(row map[string]string) Pathway {
	r := NormalizeRow(row)

	return Pathway{
		ID:                 ParseID(r[ColumnID]),
		Name:               Norm(Clean(r[ColumnName])),
		Actors:             SplitCell(r[ColumnActors]),
		EnablingConditions: SplitCell(r[ColumnEnablingConditions]),
		Incentives:         SplitCell(r[ColumnIncentives]),
		Barriers:           SplitCell(r[ColumnBarriers]),
		Financed:           Norm(r[ColumnFinanced]),
		Summary:            Norm(r[ColumnSummary]),
		Examples:           Norm(r[ColumnExamples]),
	}
}
