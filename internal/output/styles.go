package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// colorCyan is used for identifiable nouns: module addresses, file paths, mnemonics.
	colorCyan = lipgloss.Color("14")

	// colorGreen is used for the "written" descriptor status (bright, high-visibility).
	colorGreen = lipgloss.Color("82")

	// colorYellow is used for the "skipped" descriptor status (medium visibility).
	colorYellow = lipgloss.Color("220")

	// colorBoldRed is used for the "failed" descriptor status (matches ERROR level).
	colorBoldRed = lipgloss.Color("204")

	// colorGreenCheck is used for the completion checkmark (✔).
	colorGreenCheck = lipgloss.Color("10")

	// colorDimGray is used for borders and other structural chrome.
	colorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (module addresses, file paths, mnemonics).
	StyleNoun = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleAction styles action verbs (discovering, building, writing).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (scope prefixes, separators, timestamps).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Descriptor emission status constants.
const (
	StatusWritten  = "written"
	StatusUpToDate = "up-to-date"
	StatusSkipped  = "skipped"
	StatusFailed   = "failed"
)

// statusStyle returns the lipgloss style for a given emission status string.
// Unknown statuses return an unstyled default.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case StatusWritten:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case StatusUpToDate:
		return lipgloss.NewStyle().Faint(true)
	case StatusSkipped:
		return lipgloss.NewStyle().Foreground(colorYellow)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(colorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minModuleColumnWidth is the minimum width for the module address column
// before the status suffix. This ensures status words align consistently.
const minModuleColumnWidth = 40

// FormatModuleLine renders a module address with a right-aligned, color-coded
// emission status suffix.
//
// Format: m:<address>  <status>
// The root module (empty address) renders as m:<root>.
//
// The "m:" prefix is dim, the address is cyan, and the status uses statusStyle.
func FormatModuleLine(address, status string) string {
	if address == "" {
		address = "<root>"
	}

	// Calculate padding for right-alignment
	padding := minModuleColumnWidth - len(address)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render("m:")
	styledAddress := StyleNoun.Render(address)
	styledStatus := statusStyle(status).Render(status)

	return prefix + styledAddress + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(colorGreenCheck).Render("✔")
	return check + " " + msg
}

// minVetLabelWidth is the minimum width for vet check labels before the
// detail column.
const minVetLabelWidth = 28

// FormatVetCheck renders a green checkmark, a label, and an optional
// column-aligned dim detail.
func FormatVetCheck(label, detail string) string {
	check := lipgloss.NewStyle().Foreground(colorGreenCheck).Render("✔")
	if detail == "" {
		return check + " " + label
	}

	padding := minVetLabelWidth - len(label)
	if padding < 2 {
		padding = 2
	}

	return check + " " + label + strings.Repeat(" ", padding) + StyleDim.Render(detail)
}

// FormatSummary renders a bold summary line of emission counts.
func FormatSummary(written, upToDate, skipped, failed int) string {
	parts := []string{fmt.Sprintf("%d written", written)}
	if upToDate > 0 {
		parts = append(parts, fmt.Sprintf("%d up-to-date", upToDate))
	}
	if skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", skipped))
	}
	if failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", failed))
	}
	return StyleSummary.Render(strings.Join(parts, ", "))
}
