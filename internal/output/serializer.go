package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/pathways/internal/pathway"
)

// Formatter renders a Listing.
type Formatter interface {
	// Format returns the rendered bytes, terminated by a newline.
	Format(l *Listing) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc func(l *Listing) ([]byte, error)

// Format calls f(l).
func (f FormatterFunc) Format(l *Listing) ([]byte, error) {
	return f(l)
}

// document is the serialized shape of a Listing. Field order is the key
// order in YAML and JSON output.
type document struct {
	Source      string           `json:"source,omitempty" yaml:"source,omitempty"`
	LastUpdated string           `json:"lastUpdated,omitempty" yaml:"lastUpdated,omitempty"`
	Total       int              `json:"total" yaml:"total"`
	Count       int              `json:"count" yaml:"count"`
	Filters     *filters         `json:"filters,omitempty" yaml:"filters,omitempty"`
	Pathways    []documentRecord `json:"pathways" yaml:"pathways"`
}

type filters struct {
	Actors             []string `json:"actors,omitempty" yaml:"actors,omitempty"`
	EnablingConditions []string `json:"enablingConditions,omitempty" yaml:"enablingConditions,omitempty"`
	Incentives         []string `json:"incentives,omitempty" yaml:"incentives,omitempty"`
	Barriers           []string `json:"barriers,omitempty" yaml:"barriers,omitempty"`
	Financed           string   `json:"financed,omitempty" yaml:"financed,omitempty"`
}

type documentRecord struct {
	pathway.Pathway `yaml:",inline"`
	Match           *bool `json:"match,omitempty" yaml:"match,omitempty"`
}

func toDocument(l *Listing) document {
	doc := document{
		Source:   l.Source,
		Total:    l.Total,
		Count:    l.Count,
		Pathways: make([]documentRecord, 0, len(l.Items)),
	}

	if !l.LastUpdated.IsZero() {
		doc.LastUpdated = l.LastUpdated.UTC().Format(time.RFC3339)
	}

	if l.Selection.HasFilters() {
		fin, _ := l.Selection.Financed()
		doc.Filters = &filters{
			Actors:             l.Selection.Selected(pathway.FacetActor),
			EnablingConditions: l.Selection.Selected(pathway.FacetCondition),
			Incentives:         l.Selection.Selected(pathway.FacetIncentive),
			Barriers:           l.Selection.Selected(pathway.FacetBarrier),
			Financed:           fin,
		}
	}

	for _, it := range l.Items {
		rec := documentRecord{Pathway: it.Pathway}
		if l.ShowMatch {
			m := it.Match
			rec.Match = &m
		}

		doc.Pathways = append(doc.Pathways, rec)
	}

	return doc
}

// SerializeYAML renders l as YAML with two-space indentation.
func SerializeYAML(l *Listing) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(toDocument(l)); err != nil {
		return nil, fmt.Errorf("serializing YAML: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("serializing YAML: %w", err)
	}

	return buf.Bytes(), nil
}

// SerializeJSON renders l as indented JSON.
func SerializeJSON(l *Listing) ([]byte, error) {
	b, err := json.MarshalIndent(toDocument(l), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing JSON: %w", err)
	}

	return append(b, '\n'), nil
}

// SerializeTable renders the summary line followed by an aligned table of
// id, name, actors, and financed category.
func SerializeTable(l *Listing) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(l.Summary())
	buf.WriteByte('\n')

	if active := l.Selection.Active(); len(active) > 0 {
		vals := make([]string, 0, len(active))
		for _, a := range active {
			vals = append(vals, a.Value)
		}

		fmt.Fprintf(&buf, "Filters: %s\n", strings.Join(vals, ", "))
	}

	if len(l.Items) == 0 {
		if l.Empty() {
			buf.WriteString("\nNo pathways match these filters\nTry removing some filters to broaden the search\n")
		}

		return buf.Bytes(), nil
	}

	buf.WriteByte('\n')

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	header := "ID\tNAME\tACTORS\tFINANCED"
	if l.ShowMatch {
		header += "\tMATCH"
	}

	_, _ = fmt.Fprintln(tw, header)

	for _, it := range l.Items {
		row := strings.Join([]string{
			strconv.Itoa(it.ID),
			it.Name,
			orDash(strings.Join(it.Actors, "; ")),
			orDash(it.Financed),
		}, "\t")

		if l.ShowMatch {
			row += "\t" + yesNo(it.Match)
		}

		_, _ = fmt.Fprintln(tw, row)
	}

	if err := tw.Flush(); err != nil {
		return nil, fmt.Errorf("writing table: %w", err)
	}

	return buf.Bytes(), nil
}

// SerializeMarkdown renders a markdown report with one section per record.
func SerializeMarkdown(l *Listing) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Private Capital Pathway Explorer\n\n")
	fmt.Fprintf(&buf, "**%s**", l.Summary())

	if !l.LastUpdated.IsZero() {
		fmt.Fprintf(&buf, " · loaded %s", l.LastUpdated.UTC().Format(time.RFC3339))
	}

	buf.WriteString("\n\n")

	if active := l.Selection.Active(); len(active) > 0 {
		buf.WriteString("Filters:\n\n")

		for _, a := range active {
			fmt.Fprintf(&buf, "- %s: %s\n", a.Facet.Label(), a.Value)
		}

		buf.WriteByte('\n')
	}

	if l.Empty() {
		buf.WriteString("_No pathways match these filters. Try removing some filters to broaden the search._\n")
		return buf.Bytes(), nil
	}

	for _, it := range l.Items {
		title := fmt.Sprintf("## %d. %s", it.ID, it.Name)
		if l.ShowMatch && !it.Match {
			title += " _(no match)_"
		}

		buf.WriteString(title + "\n\n")

		if len(it.Actors) > 0 {
			fmt.Fprintf(&buf, "**Actors:** %s  \n", strings.Join(it.Actors, ", "))
		}

		if it.Financed != "" {
			fmt.Fprintf(&buf, "**Financed:** %s\n", it.Financed)
		}

		buf.WriteByte('\n')

		if it.Summary != "" {
			buf.WriteString(it.Summary + "\n\n")
		}

		writeMarkdownList(&buf, "Enabling Conditions", it.EnablingConditions)
		writeMarkdownList(&buf, "Incentives", it.Incentives)
		writeMarkdownList(&buf, "Barriers", it.Barriers)

		if it.Examples != "" {
			fmt.Fprintf(&buf, "**Examples:** %s\n\n", it.Examples)
		}
	}

	return buf.Bytes(), nil
}

func writeMarkdownList(buf *bytes.Buffer, heading string, values []string) {
	if len(values) == 0 {
		return
	}

	fmt.Fprintf(buf, "**%s**\n\n", heading)

	for _, v := range values {
		fmt.Fprintf(buf, "- %s\n", v)
	}

	buf.WriteByte('\n')
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
