// Package help renders the keybinding reference as markdown.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// CloseMsg signals that the help screen should be closed
type CloseMsg struct{}

// KeyBinding represents a single keybinding entry
type KeyBinding struct {
	Key         string
	Description string
}

// Bindings is the keybinding reference shown in the help screen
var Bindings = []KeyBinding{
	{"tab / shift+tab, j / k", "Move between fields"},
	{"h / l, ← / →", "Adjust the focused field"},
	{"o", "Edit the image path"},
	{"enter", "Edit a text field, or generate"},
	{"g", "Generate ASCII art"},
	{"i", "Invert light/dark"},
	{"p", "Next charset preset"},
	{"c / y", "Copy the output to the clipboard"},
	{"?", "Toggle this help"},
	{"q / ctrl+c", "Quit"},
}

const intro = `# ASCII Art Maker

Turns an image into **ASCII art** drawn only with characters.

1. Open an image with ` + "`o`" + `
2. Adjust width, charset, contrast and scale
3. Press ` + "`g`" + ` and the art appears on the right

Copy the result with ` + "`c`" + ` and paste it into an editor or chat.
`

// Markdown returns the help document
func Markdown() string {
	var b strings.Builder
	b.WriteString(intro)
	b.WriteString("\n## Keys\n\n| Key | Action |\n|---|---|\n")
	for _, kb := range Bindings {
		b.WriteString("| `" + kb.Key + "` | " + kb.Description + " |\n")
	}
	return b.String()
}

// Model is a scrollable help screen
type Model struct {
	viewport viewport.Model
	width    int
	style    string
}

// New creates a help screen sized to the terminal.
// style is a glamour standard style name ("dark", "light", "notty").
func New(width, height int, style string) *Model {
	m := &Model{viewport: viewport.New(width, height), style: style}
	m.SetSize(width, height)
	return m
}

// SetSize re-renders the document for a new terminal size
func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	if width != m.width || m.viewport.TotalLineCount() == 0 {
		m.width = width
		m.viewport.SetContent(Render(width, m.style))
	}
}

// Update handles scrolling and closing
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q", "?":
			return func() tea.Msg { return CloseMsg{} }
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// View renders the help screen
func (m *Model) View() string {
	return m.viewport.View()
}

// Render renders the help markdown for the given width and glamour style.
// Falls back to the raw markdown if rendering fails.
func Render(width int, style string) string {
	md := Markdown()

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		return md
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
