// Package app contains the main application model and TEA implementation.
package app

import (
	"image"
	"log/slog"
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/asciiart/internal/config"
	"github.com/riordanpawley/asciiart/internal/domain"
	"github.com/riordanpawley/asciiart/internal/i18n"
	"github.com/riordanpawley/asciiart/internal/services/clipboard"
	"github.com/riordanpawley/asciiart/internal/services/imageio"
	"github.com/riordanpawley/asciiart/internal/types"
	"github.com/riordanpawley/asciiart/internal/ui/help"
	"github.com/riordanpawley/asciiart/internal/ui/statusbar"
	"github.com/riordanpawley/asciiart/internal/ui/styles"
	"github.com/riordanpawley/asciiart/internal/ui/toast"
)

// Re-export Mode type and constants for convenience
type Mode = types.Mode

const (
	ModeNormal = types.ModeNormal
	ModeInput  = types.ModeInput
	ModeHelp   = types.ModeHelp
)

// Layout constants
const (
	controlsWidth = 46
	toastHeight   = 3
	statusHeight  = 1
)

// Services holds the collaborators the model depends on
type Services struct {
	Clipboard clipboard.Writer
	Loader    *imageio.Loader
	Watcher   *imageio.Watcher // optional
	Logger    *slog.Logger
}

// requestSeq numbers async loads and conversions. Only the result of the
// most recent request of each kind is applied.
type requestSeq struct {
	load     uint64
	generate uint64
}

// Model is the main application state
type Model struct {
	// Conversion settings
	opts      domain.Options
	presetIdx int

	// Source image
	imagePath string
	img       image.Image

	// Output
	output   string
	viewport viewport.Model

	// Controls
	focus       Focus
	mode        Mode
	pathInput   textinput.Model
	customInput textinput.Model

	// Overlays
	toast *toast.Model
	help  *help.Model

	// Terminal size
	width  int
	height int

	styles  *styles.Styles
	printer *i18n.Printer
	config  *config.Config

	// Shared across model copies so async results can be matched to
	// the latest request
	seq *requestSeq

	copier  *clipboard.Copier
	loader  *imageio.Loader
	watcher *imageio.Watcher

	logger *slog.Logger
}

// New creates a new application model with the given config and services.
// imagePath may be empty; the user can open an image from the TUI.
func New(cfg *config.Config, imagePath string, svc Services) Model {
	logger := svc.Logger
	if logger == nil {
		logger = slog.Default()
	}
	writer := svc.Clipboard
	if writer == nil {
		writer = clipboard.System{}
	}
	loader := svc.Loader
	if loader == nil {
		loader = imageio.NewLoader(logger)
	}

	st := styles.New()
	printer := i18n.NewPrinter(cfg.Locale)
	opts := cfg.Render.Options()

	pathInput := textinput.New()
	pathInput.Placeholder = "path/to/image.png"
	pathInput.SetValue(imagePath)
	pathInput.CharLimit = 1024

	presetIdx := domain.PresetIndex(opts.Charset)
	customInput := textinput.New()
	customInput.Placeholder = domain.DefaultCharset
	customInput.CharLimit = 256
	if domain.Presets[presetIdx].Custom {
		customInput.SetValue(opts.Charset)
	}

	return Model{
		opts:        opts,
		presetIdx:   presetIdx,
		imagePath:   imagePath,
		viewport:    viewport.New(0, 0),
		focus:       FocusImage,
		mode:        ModeNormal,
		pathInput:   pathInput,
		customInput: customInput,
		toast:       toast.New(st, cfg.Toast.Visible(), cfg.Toast.Fade()),
		styles:      st,
		printer:     printer,
		config:      cfg,
		seq:         &requestSeq{},
		copier:      clipboard.NewCopier(writer, printer, logger),
		loader:      loader,
		watcher:     svc.Watcher,
		logger:      logger,
	}
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.imagePath != "" {
		cmds = append(cmds, m.loadImageCmd(m.imagePath))
	}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.Wait())
	}
	return tea.Batch(cmds...)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeHelp:
			return m, m.help.Update(msg)
		case ModeInput:
			return m.handleInputKey(msg)
		default:
			return m.handleKey(msg)
		}

	case help.CloseMsg:
		m.mode = ModeNormal
		return m, nil

	case toast.FrameMsg, toast.FadeMsg, toast.RemoveMsg:
		return m, m.toast.Update(msg)

	case clipboard.CopiedMsg:
		return m, m.copier.HandleCopied(msg, m.toast)

	case imageLoadedMsg:
		return m.handleImageLoaded(msg)

	case generatedMsg:
		if msg.id != m.seq.generate {
			m.logger.Debug("dropping stale conversion", "id", msg.id, "latest", m.seq.generate)
			return m, nil
		}
		m.setOutput(msg.text)
		return m, nil

	case imageio.ChangedMsg:
		if m.watcher == nil {
			return m, nil
		}
		m.logger.Debug("image changed on disk", "path", msg.Path)
		cmds := []tea.Cmd{m.watcher.Wait()}
		if m.imagePath != "" {
			cmds = append(cmds, m.loadImageCmd(m.imagePath))
		}
		return m, tea.Batch(cmds...)
	}

	// Cursor blink and other component messages
	var cmd tea.Cmd
	switch m.mode {
	case ModeHelp:
		cmd = m.help.Update(msg)
	case ModeInput:
		if m.focus == FocusImage {
			m.pathInput, cmd = m.pathInput.Update(msg)
		} else {
			m.customInput, cmd = m.customInput.Update(msg)
		}
	}
	return m, cmd
}

// copyWithFeedback copies text and reports the outcome as a toast.
// Unsupported or empty copies show their failure toast before returning.
func (m Model) copyWithFeedback(text string) tea.Cmd {
	return m.copier.CopyWithFeedback(text, m.toast)
}

func (m Model) handleImageLoaded(msg imageLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.id != m.seq.load {
		m.logger.Debug("dropping stale image load", "path", msg.path, "id", msg.id, "latest", m.seq.load)
		return m, nil
	}

	if msg.err != nil {
		m.logger.Warn("failed to load image", "path", msg.path, "error", msg.err)
		// Conversions of the previous image must not replace the error
		m.seq.generate++
		m.img = nil
		m.setOutput(m.printer.T(i18n.GenerateError, msg.err))
		return m, nil
	}

	m.imagePath = msg.path
	m.img = msg.img
	if m.watcher != nil {
		if err := m.watcher.Watch(msg.path); err != nil {
			m.logger.Warn("failed to watch image", "path", msg.path, "error", err)
		}
	}
	return m, m.generateCmd()
}

// setOutput replaces the output text and scrolls to the top
func (m *Model) setOutput(text string) {
	m.output = text
	m.viewport.SetContent(text)
	m.viewport.GotoTop()
}

// resize lays out the viewport and help screen for the terminal size
func (m *Model) resize() {
	w, h := m.outputSize()
	m.viewport.Width = w
	m.viewport.Height = h
	m.viewport.SetContent(m.output)
	if m.help != nil {
		m.help.SetSize(m.width, m.height-statusHeight)
	}
}

// outputSize returns the inner size of the output panel
func (m Model) outputSize() (int, int) {
	// borders (2) + padding (2)
	w := m.width - controlsWidth - 4
	// borders (2) + title with margin (2)
	h := m.height - toastHeight - statusHeight - 4
	return max(w, 1), max(h, 1)
}

// View renders the application
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.mode == ModeHelp && m.help != nil {
		sb := statusbar.New(m.mode, "", m.width, m.styles)
		return lipgloss.JoinVertical(lipgloss.Left, m.help.View(), sb.Render())
	}

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, m.renderControls(), m.renderOutput())

	toastView := clip(lipgloss.Place(m.width, toastHeight, lipgloss.Right, lipgloss.Bottom, m.toast.View(m.width)), m.width, toastHeight)

	info := ""
	if m.imagePath != "" {
		info = filepath.Base(m.imagePath)
	}
	sb := statusbar.New(m.mode, info, m.width, m.styles)

	return lipgloss.JoinVertical(lipgloss.Left, mainView, toastView, sb.Render())
}
