package tui

import (
	"fmt"
	"strings"

	"github.com/hupe1980/pathways/internal/loader"
	"github.com/hupe1980/pathways/internal/pathway"
)

// Screen copy shared with the non-interactive commands.
const (
	Eyebrow  = "STRI–WEF · Marine 30×30"
	Title    = "Private Capital Pathway Explorer"
	Subtitle = "Filter by actor type, enabling conditions, incentives, and barriers to identify pathways relevant to your context."

	LoadingText = "Loading pathway data…"

	SetupTitle  = "Connect your Google Sheet"
	SetupIntro  = "The pathway data is managed in a Google Sheet. To connect it, set source in .pathways.yaml (or PATHWAYS_SOURCE, or --source) to your published CSV URL."
	SetupSteps  = "How to get your published CSV URL"
	HeaderTitle = "Required column headers (row 1)"
	HeaderHint  = "Multi-value columns (actors, conditions, incentives, barriers): separate values with a semicolon ;"

	ErrorTitle     = "Could not load pathway data"
	FetchErrorText = "The Google Sheet could not be reached. Check that the sheet is published and the configured source is correct."
	ParseErrorText = "There was a problem parsing the sheet data. Check that your column headers match exactly and that values use semicolons as separators."

	ActorKeyTitle    = "Actor Key"
	FinancedKeyTitle = "Financed Category"

	NoMatchTitle = "No pathways match these filters"
	NoMatchHint  = "Try removing some filters to broaden the search"
)

// Steps lists the instructions for publishing the sheet.
var Steps = []string{
	"Open your Google Sheet",
	"File → Share → Publish to web",
	"Select 'Entire document' and 'Comma-separated values (.csv)'",
	"Click Publish → copy the URL",
	"Set it as source in .pathways.yaml",
}

// RequiredHeaders returns the header row the sheet must carry.
func RequiredHeaders() string {
	return strings.Join(pathway.Columns, " · ")
}

// ErrorText returns the user-facing explanation for a failed load.
func ErrorText(tag loader.ErrorTag) string {
	switch tag {
	case loader.TagFetchError:
		return FetchErrorText
	case loader.TagParseError:
		return ParseErrorText
	case loader.TagNoURL:
		return SetupIntro
	default:
		return ""
	}
}

// SetupText renders the setup instructions as plain text.
func SetupText() string {
	var b strings.Builder

	b.WriteString(SetupTitle + "\n\n")
	b.WriteString(SetupIntro + "\n\n")
	b.WriteString(SetupSteps + ":\n")

	for i, s := range Steps {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, s)
	}

	b.WriteString("\n" + HeaderTitle + ":\n  " + RequiredHeaders() + "\n")
	b.WriteString(HeaderHint + "\n")

	return b.String()
}
