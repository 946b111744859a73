package output

import "github.com/charmbracelet/lipgloss"

// Color palette. Single source of truth for every color the CLI renders;
// commands must use these instead of raw ANSI codes.
var (
	// ColorCyan highlights names and identifiers.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen marks success and passing checks.
	ColorGreen = lipgloss.Color("10")

	// ColorYellow marks warnings.
	ColorYellow = lipgloss.Color("220")

	// ColorRed marks errors and failing checks.
	ColorRed = lipgloss.Color("196")

	// ColorGray renders secondary detail text.
	ColorGray = lipgloss.Color("240")

	// ColorBlue renders informational markers.
	ColorBlue = lipgloss.Color("39")
)

// Semantic styles shared across commands.
var (
	// StyleName renders template and file names.
	StyleName = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleSuccess renders passing results.
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleWarning renders warning lines.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleError renders error lines.
	StyleError = lipgloss.NewStyle().Foreground(ColorRed)

	// StyleInfo renders informational lines.
	StyleInfo = lipgloss.NewStyle().Foreground(ColorBlue)

	// StyleDim renders secondary detail such as paths and counts.
	StyleDim = lipgloss.NewStyle().Foreground(ColorGray)

	// StyleHeader renders section headers in command output.
	StyleHeader = lipgloss.NewStyle().Bold(true)
)

// FormatCheckmark returns msg prefixed with a green check mark.
func FormatCheckmark(msg string) string {
	return StyleSuccess.Render("✔") + " " + msg
}

// FormatCrossmark returns msg prefixed with a red cross mark.
func FormatCrossmark(msg string) string {
	return StyleError.Render("✘") + " " + msg
}

// FormatError returns a validation error line.
func FormatError(msg string) string {
	return StyleError.Render("  ✘ " + msg)
}

// FormatWarning returns a validation warning line.
func FormatWarning(msg string) string {
	return StyleWarning.Render("  ⚠ " + msg)
}

// FormatInfo returns a validation info line.
func FormatInfo(msg string) string {
	return StyleInfo.Render("  ℹ " + msg)
}
