package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/asciiart/internal/domain"
	"github.com/riordanpawley/asciiart/internal/i18n"
)

const sliderCells = 20

func (m Model) mainHeight() int {
	return max(m.height-toastHeight-statusHeight, 3)
}

// control is one labelled row of the controls panel
type control struct {
	focus Focus
	label string
	value string
}

func (m Model) renderControls() string {
	preset := domain.Presets[m.presetIdx]
	presetValue := preset.Name
	if !preset.Custom {
		presetValue += "  " + preset.Charset
	}

	check := "[ ]"
	if m.opts.Invert {
		check = "[x]"
	}

	controls := []control{
		{FocusImage, i18n.LabelImage, m.imageValue()},
		{FocusWidth, i18n.LabelWidth,
			m.slider(domain.WidthRange, float64(m.opts.Width), fmt.Sprintf("%d", m.opts.Width))},
		{FocusPreset, i18n.LabelPreset, m.styles.Value.Render("‹ " + presetValue + " ›")},
	}
	if preset.Custom {
		controls = append(controls, control{FocusCustom, i18n.LabelCustom, m.customInput.View()})
	}
	controls = append(controls,
		control{FocusInvert, i18n.LabelInvert, m.styles.Value.Render(check)},
		control{FocusContrast, i18n.LabelContrast,
			m.slider(domain.ContrastRange, m.opts.Contrast, fmt.Sprintf("%.2f", m.opts.Contrast))},
		control{FocusVerticalScale, i18n.LabelVerticalScale,
			m.slider(domain.VerticalScaleRange, m.opts.VerticalScale, fmt.Sprintf("%.2f", m.opts.VerticalScale))},
	)

	title := m.styles.PanelTitle.Render("ASCII Art Maker")
	innerW, innerH := controlsWidth-4, m.mainHeight()-2

	// Blank lines between controls only when everything fits
	gap := "\n"
	if lipgloss.Height(title)+3*len(controls)-1 > innerH {
		gap = ""
	}

	rows := make([]string, 0, len(controls))
	for _, c := range controls {
		rows = append(rows, m.renderControl(c)+gap)
	}
	body := lipgloss.JoinVertical(lipgloss.Left, title, strings.TrimSuffix(strings.Join(rows, "\n"), "\n"))

	return m.styles.PanelFocused.
		Width(controlsWidth - 2).
		Height(innerH).
		Render(clip(body, innerW, innerH))
}

func (m Model) renderControl(c control) string {
	labelStyle := m.styles.Label
	marker := "  "
	if m.focus == c.focus {
		labelStyle = m.styles.LabelFocused
		marker = "▸ "
	}
	return labelStyle.Render(marker+m.printer.T(c.label)) + "\n  " + c.value
}

// clip truncates s to at most w columns and h lines
func clip(s string, w, h int) string {
	return lipgloss.NewStyle().MaxWidth(max(w, 1)).MaxHeight(max(h, 1)).Render(s)
}

func (m Model) imageValue() string {
	if m.mode == ModeInput && m.focus == FocusImage {
		return m.pathInput.View()
	}
	if m.imagePath == "" {
		return m.styles.Placeholder.Render("(press o to open)")
	}
	return m.styles.Value.Render(m.imagePath)
}

// slider renders a bar for v within r followed by its label
func (m Model) slider(r domain.Range, v float64, label string) string {
	filled := int((v-r.Min)/(r.Max-r.Min)*sliderCells + 0.5)
	filled = max(0, min(sliderCells, filled))

	bar := m.styles.SliderFill.Render(strings.Repeat("━", filled)) +
		m.styles.SliderEmpty.Render(strings.Repeat("─", sliderCells-filled))
	return bar + " " + m.styles.Value.Render(label)
}

func (m Model) renderOutput() string {
	w := max(m.width-controlsWidth, 4)

	title := m.styles.PanelTitle.Render(m.printer.T(i18n.LabelOutput))
	body := m.styles.Output.Render(m.viewport.View())
	if m.output == "" {
		body = m.styles.Placeholder.Render("(press g to generate)")
	}

	innerH := m.mainHeight() - 2
	return m.styles.Panel.
		Width(w - 2).
		Height(innerH).
		Render(clip(lipgloss.JoinVertical(lipgloss.Left, title, body), w-4, innerH))
}
