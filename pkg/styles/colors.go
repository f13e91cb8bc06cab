// Package styles defines the shared lipgloss color palette for console output.
package styles

import "github.com/charmbracelet/lipgloss"

// Adaptive colors keep messages readable on both light and dark terminals.
var (
	ColorError   = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#5FD700"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#005FAF", Dark: "#5FAFFF"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#8A8A8A"}
)
