package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Primary colors
	ColorPrimary = lipgloss.Color("#F59E0B") // Amber
	ColorAccent  = lipgloss.Color("#FB923C") // Orange

	// Status colors
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorError   = lipgloss.Color("#EF4444") // Red

	// UI colors
	ColorBorder     = lipgloss.Color("#6B7280") // Gray
	ColorBackground = lipgloss.Color("#1F2937") // Dark gray
	ColorText       = lipgloss.Color("#F9FAFB") // Almost white
	ColorTextMuted  = lipgloss.Color("#9CA3AF") // Gray
)

type Theme struct {
	PanelBorder lipgloss.Border

	HeaderStyle    lipgloss.Style
	CaptionStyle   lipgloss.Style
	CounterStyle   lipgloss.Style
	MutedTextStyle lipgloss.Style

	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style
	HelpStyle    lipgloss.Style
}

func DefaultTheme() *Theme {
	return &Theme{
		PanelBorder: lipgloss.RoundedBorder(),

		HeaderStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBackground).
			Background(ColorPrimary).
			Padding(0, 1),

		CaptionStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText),

		CounterStyle: lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true),

		MutedTextStyle: lipgloss.NewStyle().
			Foreground(ColorTextMuted),

		ErrorStyle: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),

		SuccessStyle: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),

		HelpStyle: lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true),
	}
}

const (
	IconSun   = "☀"
	IconCheck = "✓"
	IconCross = "✗"
)

func ErrorText(text string, theme *Theme) string {
	return theme.ErrorStyle.Render(IconCross + " " + text)
}

func KeyHelp(key, description string, theme *Theme) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1).
		Background(ColorBackground)

	return keyStyle.Render(key) + " " + theme.MutedTextStyle.Render(description)
}
