package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// DebugPanel keeps a rolling log of moves and rejected inputs
type DebugPanel struct {
	enabled bool
	lines   []string
	buffer  int // max lines kept
	now     func() time.Time
}

// NewDebugPanel creates a new debug panel
func NewDebugPanel(enabled bool) DebugPanel {
	return DebugPanel{
		enabled: enabled,
		buffer:  50,
		now:     time.Now,
	}
}

func (d *DebugPanel) IsEnabled() bool {
	return d.enabled
}

// AddEvent records an event, e.g. "[pour] 8 -> 5 (5L)"
func (d *DebugPanel) AddEvent(eventType string, details string) {
	if !d.enabled {
		return
	}
	line := "[" + eventType + "]"
	if details != "" {
		line += " " + details
	}
	d.lines = append(d.lines, d.now().Format("15:04:05")+" "+line)
	if len(d.lines) > d.buffer {
		d.lines = d.lines[len(d.lines)-d.buffer:]
	}
}

// Lines returns the current debug lines
func (d *DebugPanel) Lines() []string {
	return d.lines
}

// Render renders the most recent lines that fit in height
func (d *DebugPanel) Render(width, height int) string {
	if !d.enabled {
		return ""
	}

	title := lipgloss.NewStyle().
		Foreground(ColorYellow).
		Bold(true).
		Render("DEBUG")

	contentHeight := max(height-4, 1)
	start := max(len(d.lines)-contentHeight, 0)

	maxLen := max(width-4, 10)
	var lines []string
	for _, line := range d.lines[start:] {
		if len(line) > maxLen {
			line = line[:maxLen-3] + "..."
		}
		lines = append(lines, line)
	}
	for len(lines) < contentHeight {
		lines = append(lines, "")
	}

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorYellow).
		Padding(0, 1).
		Render(title + "\n" + strings.Join(lines, "\n"))
}
