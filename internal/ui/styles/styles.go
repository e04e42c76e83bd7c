package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/asciiart/internal/types"
)

// Styles holds all the UI styles
type Styles struct {
	// Panels
	Panel        lipgloss.Style
	PanelFocused lipgloss.Style
	PanelTitle   lipgloss.Style

	// Controls
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Value        lipgloss.Style
	SliderFill   lipgloss.Style
	SliderEmpty  lipgloss.Style

	// Output
	Output      lipgloss.Style
	Placeholder lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style

	// Toasts
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		PanelFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Padding(0, 1),

		PanelTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		Label: lipgloss.NewStyle().
			Foreground(Subtext0),

		LabelFocused: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		Value: lipgloss.NewStyle().
			Foreground(Yellow),

		SliderFill: lipgloss.NewStyle().
			Foreground(Mauve),

		SliderEmpty: lipgloss.NewStyle().
			Foreground(Surface2),

		Output: lipgloss.NewStyle().
			Foreground(Text),

		Placeholder: lipgloss.NewStyle().
			Foreground(Overlay0).
			Italic(true),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),
	}
}

// Toast returns the style for a toast variant.
// Hidden toasts (entering or fading) render faint.
func (s *Styles) Toast(variant types.Variant, shown bool) lipgloss.Style {
	style := s.ToastSuccess
	if variant == types.VariantFailure {
		style = s.ToastError
	}
	if !shown {
		style = style.Faint(true).BorderForeground(Surface2)
	}
	return style
}
