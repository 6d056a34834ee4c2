// Package tui implements the interactive pathway browser: a header, the
// facet chip panel, the "N of M pathways" summary with active-filter pills,
// and the list of pathway cards. Non-matching cards stay visible but dimmed.
//
// The model owns all mutable state. Loads run as a single tea.Cmd and every
// selection change happens synchronously in Update.
package tui
