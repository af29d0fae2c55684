package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors adapt to light and dark terminal backgrounds
var (
	SuccessColor = lipgloss.AdaptiveColor{
		Light: "#28A745",
		Dark:  "#4CDD76",
	}

	WarningColor = lipgloss.AdaptiveColor{
		Light: "#B8860B",
		Dark:  "#FFD54F",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545",
		Dark:  "#FF6B7D",
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D",
		Dark:  "#ADB5BD",
	}

	ProfileColor = lipgloss.AdaptiveColor{
		Light: "#007ACC",
		Dark:  "#3D9EFF",
	}
)

// Styles is the set of styles a Console renders with.
type Styles struct {
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Profile lipgloss.Style
}

// NewStyles binds the palette to renderer.
func NewStyles(renderer *lipgloss.Renderer) Styles {
	return Styles{
		Success: renderer.NewStyle().Foreground(SuccessColor).Bold(true),
		Warning: renderer.NewStyle().Foreground(WarningColor).Bold(true),
		Error:   renderer.NewStyle().Foreground(ErrorColor).Bold(true),
		Muted:   renderer.NewStyle().Foreground(MutedColor),
		Profile: renderer.NewStyle().Foreground(ProfileColor).Bold(true),
	}
}
