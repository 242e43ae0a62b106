package tui

import "github.com/charmbracelet/lipgloss"

// One Dark Pro color palette
var (
	ColorFgPrimary = lipgloss.Color("#ABB2BF")
	ColorFgMuted   = lipgloss.Color("#636B78")
	ColorFgComment = lipgloss.Color("#5C6370")

	ColorRed     = lipgloss.Color("#E06C75")
	ColorGreen   = lipgloss.Color("#98C379")
	ColorYellow  = lipgloss.Color("#E5C07B")
	ColorBlue    = lipgloss.Color("#61AFEF")
	ColorMagenta = lipgloss.Color("#C678DD")
	ColorCyan    = lipgloss.Color("#56B6C2")

	ColorBorder = lipgloss.Color("#3F4451")
)

// Component styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta).
			Bold(true).
			PaddingLeft(1)

	// Diagram panel
	DiagramStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Foreground(ColorFgPrimary).
			Padding(0, 1)

	WaterStyle = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Background(ColorBlue)

	LevelsStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted).
			PaddingLeft(1)

	// Input styles
	InputPromptStyle = lipgloss.NewStyle().
				Foreground(ColorGreen).
				PaddingLeft(1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			PaddingLeft(1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true).
			PaddingLeft(1)

	FarewellStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			PaddingLeft(1)

	HelpPanelStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			MarginTop(1)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorFgComment)
)
