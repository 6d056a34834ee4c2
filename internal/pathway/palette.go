package pathway

// FinancedColor is the display colour triple for a financed category.
type FinancedColor struct {
	Background string
	Text       string
	Dot        string
}

// Fallback colours for values outside the taxonomy.
const (
	UnknownActorColor = "#999999"
	neutralBackground = "#EDF1F2"
	neutralText       = "#1C2B2D"
	neutralDot        = "#6B7B7D"
)

var actorColors = map[string]string{
	"Financial institutions":      "#1A7A85",
	"Extractive & infrastructure": "#8B4513",
	"Tourism & hospitality":       "#1B6B3A",
	"Corporations (voluntary)":    "#6B3FA0",
	"Impact investors":            "#1A5A8A",
	"Other partners":              "#888888",
}

var financedColors = map[string]FinancedColor{
	"Full management stack":   {Background: "#E3F4F6", Text: "#0D3D45", Dot: "#1A7A85"},
	"Operations":              {Background: "#E8F5EE", Text: "#1B4D2E", Dot: "#2E7D52"},
	"Restoration":             {Background: "#FFF4DC", Text: "#7A4F00", Dot: "#C47F00"},
	"Monitoring & technology": {Background: "#F0EAFB", Text: "#4A2080", Dot: "#7C4DCC"},
	"Business development":    {Background: "#FDECEA", Text: "#8B1A1A", Dot: "#CC3333"},
}

// ActorColor returns the legend colour for an actor type and whether the
// actor is recognized.
func ActorColor(actor string) (string, bool) {
	c, ok := actorColors[actor]
	if !ok {
		return UnknownActorColor, false
	}

	return c, true
}

// FinancedColorFor returns the colour triple for a financed category and
// whether the category is recognized.
func FinancedColorFor(category string) (FinancedColor, bool) {
	c, ok := financedColors[category]
	if !ok {
		return FinancedColor{Background: neutralBackground, Text: neutralText, Dot: neutralDot}, false
	}

	return c, true
}
