package statusbar

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/asciiart/internal/types"
	"github.com/riordanpawley/asciiart/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode   types.Mode
	info   string
	width  int
	styles *styles.Styles
}

// New creates a new StatusBar with the given mode, width, and styles.
// info is shown after the hints, e.g. the loaded image name.
func New(mode types.Mode, info string, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		info:   info,
		width:  width,
		styles: styles,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	modeBadge := sb.styles.StatusMode.Render(" " + sb.mode.String() + " ")

	parts := []string{modeBadge}
	separator := sb.styles.StatusHint.Render(" │ ")

	if hints := GetHints(sb.mode); hints != "" {
		parts = append(parts, separator, sb.styles.StatusHint.Render(hints))
	}
	if sb.info != "" {
		parts = append(parts, separator, sb.info)
	}

	// Truncate rather than wrap; the bar is always one line
	inner := max(sb.width-sb.styles.StatusBar.GetHorizontalFrameSize(), 1)
	content := lipgloss.NewStyle().MaxWidth(inner).Render(lipgloss.JoinHorizontal(lipgloss.Left, parts...))
	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
