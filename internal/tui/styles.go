package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hupe1980/pathways/internal/pathway"
)

// Palette of the explorer.
var (
	Ocean     = lipgloss.Color("#0D3D45")
	Teal      = lipgloss.Color("#1A7A85")
	TealLight = lipgloss.Color("#E3F4F6")
	Green     = lipgloss.Color("#1B6B3A")
	Amber     = lipgloss.Color("#C47F00")
	Red       = lipgloss.Color("#8B1A1A")
	Grey      = lipgloss.Color("#6B7B7D")
	White     = lipgloss.Color("#FFFFFF")
)

// Styles holds the lipgloss styles used by the browser.
type Styles struct {
	NoColor bool

	Eyebrow  lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	GroupLabel   lipgloss.Style
	GroupFocused lipgloss.Style
	Chip         lipgloss.Style
	ChipSelected lipgloss.Style
	ChipCursor   lipgloss.Style

	Summary lipgloss.Style
	Pill    lipgloss.Style

	Card        lipgloss.Style
	CardCursor  lipgloss.Style
	CardDimmed  lipgloss.Style
	CardTitle   lipgloss.Style
	FieldLabel  lipgloss.Style
	Muted       lipgloss.Style
	ErrorTitle  lipgloss.Style
	ErrorText   lipgloss.Style
	SetupTitle  lipgloss.Style
	Code        lipgloss.Style
	Footer      lipgloss.Style
	SpinnerText lipgloss.Style
}

// NewStyles builds the style set. With noColor every style renders plain
// text apart from bold and faint attributes.
func NewStyles(noColor bool) Styles {
	s := Styles{NoColor: noColor}

	s.Eyebrow = lipgloss.NewStyle().Bold(true)
	s.Title = lipgloss.NewStyle().Bold(true)
	s.Subtitle = lipgloss.NewStyle().Faint(true)
	s.GroupLabel = lipgloss.NewStyle().Bold(true)
	s.GroupFocused = lipgloss.NewStyle().Bold(true).Underline(true)
	s.Chip = lipgloss.NewStyle().Padding(0, 1)
	s.ChipSelected = lipgloss.NewStyle().Padding(0, 1).Bold(true)
	s.ChipCursor = lipgloss.NewStyle().Padding(0, 1).Reverse(true)
	s.Summary = lipgloss.NewStyle().Bold(true)
	s.Pill = lipgloss.NewStyle().Padding(0, 1)
	s.Card = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	s.CardCursor = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1)
	s.CardDimmed = lipgloss.NewStyle().Border(lipgloss.HiddenBorder()).Padding(0, 1).Faint(true)
	s.CardTitle = lipgloss.NewStyle().Bold(true)
	s.FieldLabel = lipgloss.NewStyle().Bold(true)
	s.Muted = lipgloss.NewStyle().Faint(true)
	s.ErrorTitle = lipgloss.NewStyle().Bold(true)
	s.ErrorText = lipgloss.NewStyle()
	s.SetupTitle = lipgloss.NewStyle().Bold(true)
	s.Code = lipgloss.NewStyle()
	s.Footer = lipgloss.NewStyle().Faint(true)
	s.SpinnerText = lipgloss.NewStyle()

	if noColor {
		return s
	}

	s.Eyebrow = s.Eyebrow.Foreground(Teal)
	s.Title = s.Title.Foreground(Ocean)
	s.Subtitle = s.Subtitle.Foreground(Grey)
	s.GroupLabel = s.GroupLabel.Foreground(Grey)
	s.GroupFocused = s.GroupFocused.Foreground(Teal)
	s.Chip = s.Chip.Foreground(Ocean).Background(TealLight)
	s.ChipSelected = s.ChipSelected.Foreground(White).Background(Teal)
	s.ChipCursor = s.ChipCursor.Foreground(Ocean)
	s.Summary = s.Summary.Foreground(Ocean)
	s.Pill = s.Pill.Foreground(White).Background(Ocean)
	s.Card = s.Card.BorderForeground(Grey)
	s.CardCursor = s.CardCursor.BorderForeground(Teal)
	s.CardTitle = s.CardTitle.Foreground(Ocean)
	s.FieldLabel = s.FieldLabel.Foreground(Teal)
	s.Muted = s.Muted.Foreground(Grey)
	s.ErrorTitle = s.ErrorTitle.Foreground(Red)
	s.ErrorText = s.ErrorText.Foreground(Red)
	s.SetupTitle = s.SetupTitle.Foreground(Amber)
	s.Code = s.Code.Foreground(Green)
	s.Footer = s.Footer.Foreground(Grey)
	s.SpinnerText = s.SpinnerText.Foreground(Teal)

	return s
}

// Actor renders an actor name in its legend colour. Unknown actors are
// rendered without colour.
func (s Styles) Actor(actor string) string {
	c, ok := pathway.ActorColor(actor)
	if s.NoColor || !ok {
		return actor
	}

	return lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(actor)
}

// ActorKey renders a legend entry: the actor's colour dot followed by its
// name.
func (s Styles) ActorKey(actor string) string {
	c, ok := pathway.ActorColor(actor)
	if s.NoColor || !ok {
		return "● " + actor
	}

	return lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("●") + " " + actor
}

// Financed renders a financed category as a badge. Unknown categories get
// the neutral badge.
func (s Styles) Financed(category string) string {
	if s.NoColor {
		return "● " + category
	}

	c, _ := pathway.FinancedColorFor(category)
	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Dot)).Render("●")
	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Text)).
		Background(lipgloss.Color(c.Background)).
		Padding(0, 1)

	return badge.Render(dot + " " + category)
}
