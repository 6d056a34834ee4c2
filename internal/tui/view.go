package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hupe1980/pathways/internal/loader"
	"github.com/hupe1980/pathways/internal/pathway"
)

// View renders the current screen.
func (m Model) View() string {
	switch m.status {
	case loader.StatusLoading, loader.StatusIdle:
		return m.renderHeader() + "\n\n" + m.spinner.View() + " " + m.styles.SpinnerText.Render(LoadingText) + "\n"
	case loader.StatusUnconfigured:
		return m.renderHeader() + "\n\n" + m.renderSetup() + "\n" + m.help.View(m.keys)
	case loader.StatusFetchError, loader.StatusParseError:
		return m.renderHeader() + "\n\n" + m.renderError() + "\n" + m.help.View(m.keys)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTop(),
		m.viewport.View(),
		m.renderBottom(),
	)
}

func (m Model) renderHeader() string {
	var b strings.Builder

	b.WriteString(m.styles.Eyebrow.Render(strings.ToUpper(Eyebrow)) + "\n")
	b.WriteString(m.styles.Title.Render(Title) + "\n")
	b.WriteString(m.styles.Subtitle.Render(wrap(Subtitle, m.width)))

	return b.String()
}

func (m Model) renderSetup() string {
	var b strings.Builder

	b.WriteString(m.styles.SetupTitle.Render(SetupTitle) + "\n\n")
	b.WriteString(wrap(SetupIntro, m.width) + "\n\n")
	b.WriteString(m.styles.FieldLabel.Render(SetupSteps) + "\n")

	for i, s := range Steps {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, s)
	}

	b.WriteString("\n" + m.styles.FieldLabel.Render(HeaderTitle) + "\n")
	b.WriteString("  " + m.styles.Code.Render(RequiredHeaders()) + "\n")
	b.WriteString(m.styles.Muted.Render(wrap(HeaderHint, m.width)) + "\n")

	return b.String()
}

func (m Model) renderError() string {
	var b strings.Builder

	b.WriteString(m.styles.ErrorTitle.Render(ErrorTitle) + "\n\n")
	b.WriteString(m.styles.ErrorText.Render(wrap(ErrorText(m.status.ErrorTag()), m.width)) + "\n")

	if m.result != nil && m.result.Err != nil {
		b.WriteString("\n" + m.styles.Muted.Render(wrap(m.result.Err.Error(), m.width)) + "\n")
	}

	b.WriteString("\n" + m.styles.Muted.Render("Press r to retry.") + "\n")

	return b.String()
}

func (m Model) renderTop() string {
	parts := []string{m.renderHeader(), ""}

	for i, f := range pathway.Facets {
		parts = append(parts, m.renderGroup(i, f))
	}

	if legend := m.renderLegend(); legend != "" {
		parts = append(parts, "", legend)
	}

	parts = append(parts, "", m.renderSummary())

	return strings.Join(parts, "\n")
}

func (m Model) renderGroup(i int, f pathway.Facet) string {
	focused := i == m.group

	label := m.styles.GroupLabel.Render(strings.ToUpper(f.Label()))
	if focused {
		label = m.styles.GroupFocused.Render(strings.ToUpper(f.Label()))
	}

	if desc := f.Description(); desc != "" {
		label += " " + m.styles.Muted.Render(desc)
	}

	mark := "✓ "
	if f.Single() {
		mark = "● "
	}

	values := m.taxonomy.Values(f)
	chips := make([]string, 0, len(values))

	for j, v := range values {
		text := v
		if m.sel.Contains(f, v) {
			text = mark + v
		}

		switch {
		case focused && j == m.chip:
			chips = append(chips, m.styles.ChipCursor.Render(text))
		case m.sel.Contains(f, v):
			chips = append(chips, m.styles.ChipSelected.Render(text))
		default:
			chips = append(chips, m.styles.Chip.Render(text))
		}
	}

	return label + "\n" + flow(chips, m.width)
}

// renderLegend keys the card colours. It is omitted without colour.
func (m Model) renderLegend() string {
	if m.styles.NoColor {
		return ""
	}

	actors := []string{m.styles.GroupLabel.Render(strings.ToUpper(ActorKeyTitle))}
	for _, a := range m.taxonomy.Actors {
		actors = append(actors, m.styles.ActorKey(a))
	}

	financed := []string{m.styles.GroupLabel.Render(strings.ToUpper(FinancedKeyTitle))}
	for _, c := range m.taxonomy.Financed {
		financed = append(financed, m.styles.Financed(c))
	}

	return flow(actors, m.width) + "\n" + flow(financed, m.width)
}

func (m Model) renderSummary() string {
	line := m.styles.Summary.Render(strconv.Itoa(m.match.Count)) +
		fmt.Sprintf(" of %d pathways", len(m.records))

	if !m.sel.HasFilters() {
		return line
	}

	line += " matching"

	active := m.sel.Active()
	pills := make([]string, 0, len(active))

	for _, a := range active {
		pills = append(pills, m.styles.Pill.Render(a.Value+" ×"))
	}

	return line + "\n" + flow(pills, m.width)
}

func (m Model) renderBottom() string {
	var footer string
	if m.result != nil && !m.result.LastUpdated.IsZero() {
		footer = "Data loaded · " + m.result.LastUpdated.Format("15:04:05") + " · r refresh"
	}

	return m.styles.Footer.Render(footer) + "\n" + m.help.View(m.keys)
}

// renderCards renders the result list and reports the line span of the
// card under the cursor.
func (m Model) renderCards() (content string, start, end int) {
	if m.match.Count == 0 {
		msg := m.styles.Summary.Render(NoMatchTitle) + "\n" + m.styles.Muted.Render(NoMatchHint)
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, msg), 0, 0
	}

	var (
		b    strings.Builder
		line int
	)

	width := max(m.width-2, 20)

	for i, p := range m.records {
		matched := i < len(m.match.Matches) && m.match.Matches[i]
		card := m.renderCard(p, i, matched, width)
		h := lipgloss.Height(card)

		if i == m.cursor {
			start, end = line, line+h
		}

		b.WriteString(card + "\n")
		line += h
	}

	return b.String(), start, end
}

func (m Model) renderCard(p pathway.Pathway, i int, matched bool, width int) string {
	open := m.expanded[i]

	marker := "▼"
	if open {
		marker = "▲"
	}

	inner := width - 4

	var b strings.Builder

	fmt.Fprintf(&b, "%s %s %s\n", m.styles.CardTitle.Render("#"+strconv.Itoa(p.ID)), m.styles.CardTitle.Render(p.Name), marker)

	tags := make([]string, 0, len(p.Actors)+1)
	for _, a := range p.Actors {
		tags = append(tags, m.styles.Actor(a))
	}

	if p.Financed != "" {
		tags = append(tags, m.styles.Financed(p.Financed))
	}

	b.WriteString(flow(tags, inner))

	if open {
		b.WriteString("\n\n" + wrap(p.Summary, inner))

		for _, f := range []pathway.Facet{pathway.FacetCondition, pathway.FacetIncentive, pathway.FacetBarrier} {
			b.WriteString("\n\n" + m.styles.FieldLabel.Render(f.Label()))

			for _, v := range p.Values(f) {
				b.WriteString("\n  • " + v)
			}
		}

		if p.Examples != "" {
			b.WriteString("\n\n" + m.styles.FieldLabel.Render("Examples") + "\n" + wrap(p.Examples, inner))
		}
	}

	style := m.styles.Card
	switch {
	case !matched:
		style = m.styles.CardDimmed
	case i == m.cursor:
		style = m.styles.CardCursor
	}

	if !matched && i == m.cursor {
		style = style.Border(lipgloss.ThickBorder())
	}

	return style.Width(width).Render(b.String())
}

// syncViewport resizes the result viewport to the space left by the filter
// panel and keeps the highlighted card in view.
func (m *Model) syncViewport() {
	if m.status != loader.StatusOK {
		return
	}

	used := lipgloss.Height(m.renderTop()) + lipgloss.Height(m.renderBottom())

	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-used, 3)

	content, start, end := m.renderCards()
	m.viewport.SetContent(content)

	switch {
	case start < m.viewport.YOffset:
		m.viewport.SetYOffset(start)
	case end > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(end - m.viewport.Height)
	}
}

// flow lays out items left to right, wrapping to width.
func flow(items []string, width int) string {
	if width <= 0 {
		return strings.Join(items, " ")
	}

	var (
		lines []string
		cur   string
	)

	for _, it := range items {
		switch {
		case cur == "":
			cur = it
		case lipgloss.Width(cur)+1+lipgloss.Width(it) > width:
			lines = append(lines, cur)
			cur = it
		default:
			cur += " " + it
		}
	}

	if cur != "" {
		lines = append(lines, cur)
	}

	return strings.Join(lines, "\n")
}

// wrap word-wraps plain text to width.
func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}

	return lipgloss.NewStyle().Width(width).Render(s)
}
