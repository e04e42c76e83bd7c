// Package clipboard copies text to the system clipboard and reports the
// outcome as a toast. Copy failures never reach the caller.
package clipboard

import (
	"log/slog"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/asciiart/internal/domain"
	"github.com/riordanpawley/asciiart/internal/i18n"
	"github.com/riordanpawley/asciiart/internal/types"
)

// Writer is a clipboard backend
type Writer interface {
	// Supported reports whether the host exposes a writable clipboard
	Supported() bool
	WriteAll(text string) error
}

// System writes to the OS clipboard
type System struct{}

// Supported reports whether atotto/clipboard found a usable backend
func (System) Supported() bool {
	return !clipboard.Unsupported
}

// WriteAll writes text to the OS clipboard
func (System) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Notifier displays a toast
type Notifier interface {
	Show(text string, variant types.Variant) tea.Cmd
}

// CopiedMsg reports the result of an asynchronous clipboard write
type CopiedMsg struct {
	Err error
}

// Copier copies text and turns every outcome into user feedback
type Copier struct {
	writer  Writer
	printer *i18n.Printer
	logger  *slog.Logger
}

// NewCopier creates a new Copier
func NewCopier(writer Writer, printer *i18n.Printer, logger *slog.Logger) *Copier {
	return &Copier{
		writer:  writer,
		printer: printer,
		logger:  logger,
	}
}

// CopyWithFeedback starts a copy of text. It returns immediately.
//
// When the clipboard is unavailable or text is empty, the failure toast is
// shown before returning and no write is issued. Otherwise the returned
// command performs the write and yields a CopiedMsg, which HandleCopied
// turns into a success or failure toast.
func (c *Copier) CopyWithFeedback(text string, n Notifier) tea.Cmd {
	if err := c.check(text); err != nil {
		c.logger.Debug("copy not attempted", "reason", err)
		return n.Show(c.printer.T(i18n.ClipboardUnsupported), types.VariantFailure)
	}

	return func() tea.Msg {
		return CopiedMsg{Err: c.write(text)}
	}
}

// HandleCopied shows the toast for a finished write
func (c *Copier) HandleCopied(msg CopiedMsg, n Notifier) tea.Cmd {
	feedback := c.feedback(msg.Err)
	return n.Show(feedback.Text, feedback.Variant)
}

// Copy writes text synchronously and returns the feedback message.
// Used where there is no toast surface, such as the CLI.
func (c *Copier) Copy(text string) types.ToastMessage {
	if err := c.check(text); err != nil {
		c.logger.Debug("copy not attempted", "reason", err)
		return types.ToastMessage{Text: c.printer.T(i18n.ClipboardUnsupported), Variant: types.VariantFailure}
	}
	return c.feedback(c.write(text))
}

func (c *Copier) check(text string) error {
	if !c.writer.Supported() {
		return domain.ErrClipboardUnsupported
	}
	if text == "" {
		return domain.ErrEmptyText
	}
	return nil
}

func (c *Copier) write(text string) error {
	if err := c.writer.WriteAll(text); err != nil {
		err = &domain.ClipboardError{Op: "write", Err: err}
		c.logger.Warn("clipboard write failed", "error", err)
		return err
	}
	c.logger.Debug("copied to clipboard", "bytes", len(text))
	return nil
}

func (c *Copier) feedback(err error) types.ToastMessage {
	if err != nil {
		return types.ToastMessage{Text: c.printer.T(i18n.CopyFailed), Variant: types.VariantFailure}
	}
	return types.ToastMessage{Text: c.printer.T(i18n.Copied), Variant: types.VariantSuccess}
}
