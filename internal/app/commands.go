package app

import (
	"image"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/asciiart/internal/ascii"
	"github.com/riordanpawley/asciiart/internal/domain"
	"github.com/riordanpawley/asciiart/internal/i18n"
)

type imageLoadedMsg struct {
	id   uint64
	path string
	img  image.Image
	err  error
}

type generatedMsg struct {
	id   uint64
	text string
}

// loadImageCmd starts a load that supersedes any load still in flight
func (m Model) loadImageCmd(path string) tea.Cmd {
	m.seq.load++
	id := m.seq.load
	loader := m.loader
	return func() tea.Msg {
		img, err := loader.Load(path)
		return imageLoadedMsg{id: id, path: path, img: img, err: err}
	}
}

// generateCmd converts the current image with the current options.
// Failures become output text rather than errors.
func (m Model) generateCmd() tea.Cmd {
	m.seq.generate++
	id := m.seq.generate
	img := m.img
	opts := m.currentOptions()
	printer := m.printer
	logger := m.logger

	return func() tea.Msg {
		if img == nil {
			return generatedMsg{id: id, text: printer.T(i18n.NoImage)}
		}
		art, err := ascii.Convert(img, opts)
		if err != nil {
			logger.Warn("conversion failed", "error", err)
			return generatedMsg{id: id, text: printer.T(i18n.GenerateError, err)}
		}
		logger.Debug("generated ascii art", "width", opts.Width, "bytes", len(art))
		return generatedMsg{id: id, text: art}
	}
}

// currentOptions returns the options with the selected charset applied
func (m Model) currentOptions() domain.Options {
	opts := m.opts
	preset := domain.Presets[m.presetIdx]
	if preset.Custom {
		opts.Charset = m.customInput.Value()
	} else {
		opts.Charset = preset.Charset
	}
	return opts
}
