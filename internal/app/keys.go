package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/asciiart/internal/domain"
	"github.com/riordanpawley/asciiart/internal/ui/help"
)

// Focus identifies the control that receives adjustments
type Focus int

const (
	FocusImage Focus = iota
	FocusWidth
	FocusPreset
	FocusCustom
	FocusInvert
	FocusContrast
	FocusVerticalScale
	focusCount
)

// handleKey processes keys in normal mode
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "?":
		if m.help == nil {
			m.help = help.New(m.width, m.height-statusHeight, "dark")
		}
		m.mode = ModeHelp
		return m, nil

	case "tab", "j", "down":
		m.moveFocus(1)
		return m, nil

	case "shift+tab", "k", "up":
		m.moveFocus(-1)
		return m, nil

	case "h", "left":
		m.adjust(-1)
		return m, nil

	case "l", "right":
		m.adjust(1)
		return m, nil

	case "enter":
		if m.focus == FocusImage || m.focus == FocusCustom {
			cmd := m.startInput()
			return m, cmd
		}
		return m, m.generateCmd()

	case "o":
		m.focus = FocusImage
		cmd := m.startInput()
		return m, cmd

	case "g":
		return m, m.generateCmd()

	case "i":
		m.opts.Invert = !m.opts.Invert
		return m, nil

	case "p":
		m.cyclePreset(1)
		return m, nil

	case "c", "y":
		return m, m.copyWithFeedback(m.output)

	case "pgdown", "pgup", "ctrl+d", "ctrl+u":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleInputKey processes keys while a text field is being edited
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.focus == FocusImage {
			m.pathInput.SetValue(m.imagePath)
		}
		m.stopInput()
		return m, nil

	case "enter":
		m.stopInput()
		if m.focus == FocusImage {
			path := strings.TrimSpace(m.pathInput.Value())
			if path == "" {
				return m, nil
			}
			return m, m.loadImageCmd(path)
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == FocusImage {
		m.pathInput, cmd = m.pathInput.Update(msg)
	} else {
		m.customInput, cmd = m.customInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) startInput() tea.Cmd {
	m.mode = ModeInput
	if m.focus == FocusImage {
		return m.pathInput.Focus()
	}
	return m.customInput.Focus()
}

func (m *Model) stopInput() {
	m.mode = ModeNormal
	m.pathInput.Blur()
	m.customInput.Blur()
}

// moveFocus cycles focus, skipping the custom charset unless it is selected
func (m *Model) moveFocus(dir int) {
	next := m.focus
	for {
		next = (next + Focus(dir) + focusCount) % focusCount
		if next != FocusCustom || domain.Presets[m.presetIdx].Custom {
			break
		}
	}
	m.focus = next
}

// adjust nudges the focused control by dir steps
func (m *Model) adjust(dir int) {
	switch m.focus {
	case FocusWidth:
		m.opts.Width = int(domain.WidthRange.Nudge(float64(m.opts.Width), dir))
	case FocusPreset:
		m.cyclePreset(dir)
	case FocusInvert:
		m.opts.Invert = !m.opts.Invert
	case FocusContrast:
		m.opts.Contrast = domain.ContrastRange.Nudge(m.opts.Contrast, dir)
	case FocusVerticalScale:
		m.opts.VerticalScale = domain.VerticalScaleRange.Nudge(m.opts.VerticalScale, dir)
	}
}

func (m *Model) cyclePreset(dir int) {
	n := len(domain.Presets)
	m.presetIdx = (m.presetIdx + dir + n) % n
}
