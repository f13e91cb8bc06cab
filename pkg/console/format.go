// Package console provides styled message formatting for CLI output.
//
// Findings and errors are kept as plain text throughout the lint engine;
// styling is applied only here, at the presentation boundary, so the lint
// packages stay testable without terminal concerns.
package console

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/condaforge/recipe-lint/pkg/styles"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(styles.ColorError)
	warningStyle = lipgloss.NewStyle().Foreground(styles.ColorWarning)
	successStyle = lipgloss.NewStyle().Foreground(styles.ColorSuccess)
	infoStyle    = lipgloss.NewStyle().Foreground(styles.ColorInfo)
	verboseStyle = lipgloss.NewStyle().Foreground(styles.ColorMuted)
)

// FormatErrorMessage formats an error message with an ✗ marker.
func FormatErrorMessage(message string) string {
	return errorStyle.Render("✗ " + message)
}

// FormatWarningMessage formats a warning message with a ⚠ marker.
func FormatWarningMessage(message string) string {
	return warningStyle.Render("⚠ " + message)
}

// FormatSuccessMessage formats a success message with a ✓ marker.
func FormatSuccessMessage(message string) string {
	return successStyle.Render("✓ " + message)
}

// FormatInfoMessage formats an informational message with an ℹ marker.
func FormatInfoMessage(message string) string {
	return infoStyle.Render("ℹ " + message)
}

// FormatVerboseMessage formats a low-priority diagnostic message.
func FormatVerboseMessage(message string) string {
	return verboseStyle.Render(message)
}
