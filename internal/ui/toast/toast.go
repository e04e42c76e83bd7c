// Package toast implements a single auto-dismissing notification.
//
// At most one toast exists. Showing a new toast replaces the current one
// immediately; timers belonging to a replaced toast still fire but are
// ignored because they carry an older generation id.
//
// Lifecycle: Absent -> Entering -> Visible -> Fading -> Absent.
package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/asciiart/internal/types"
	"github.com/riordanpawley/asciiart/internal/ui/styles"
)

// Default lifecycle timings
const (
	DefaultVisible = 2000 * time.Millisecond
	DefaultFade    = 250 * time.Millisecond

	// FrameDelay is one render frame; the toast is inserted hidden and
	// shown on the next frame so the first paint is the hidden state.
	FrameDelay = time.Second / 60

	maxWidth = 60
)

// State is the lifecycle state of the toast slot
type State int

const (
	StateAbsent State = iota
	StateEntering
	StateVisible
	StateFading
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateEntering:
		return "entering"
	case StateVisible:
		return "visible"
	case StateFading:
		return "fading"
	default:
		return "unknown"
	}
}

// FrameMsg marks the frame after insertion
type FrameMsg struct{ ID uint64 }

// FadeMsg marks the end of the visible period
type FadeMsg struct{ ID uint64 }

// RemoveMsg marks the end of the fade
type RemoveMsg struct{ ID uint64 }

// Scheduler delivers the message built by fn after d. tea.Tick satisfies it.
type Scheduler func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Model owns the toast slot
type Model struct {
	current *types.ToastMessage
	state   State
	gen     uint64

	visible  time.Duration
	fade     time.Duration
	schedule Scheduler

	styles *styles.Styles
}

// New creates an empty toast slot. Non-positive durations use the defaults.
func New(st *styles.Styles, visible, fade time.Duration) *Model {
	if visible <= 0 {
		visible = DefaultVisible
	}
	if fade <= 0 {
		fade = DefaultFade
	}
	return &Model{
		visible:  visible,
		fade:     fade,
		schedule: tea.Tick,
		styles:   st,
	}
}

// SetScheduler replaces the timer source
func (m *Model) SetScheduler(s Scheduler) {
	m.schedule = s
}

// Show replaces any current toast with a new one and starts its lifecycle
func (m *Model) Show(text string, variant types.Variant) tea.Cmd {
	m.gen++
	id := m.gen
	m.current = &types.ToastMessage{Text: text, Variant: variant}
	m.state = StateEntering

	return tea.Batch(
		m.schedule(FrameDelay, func(time.Time) tea.Msg { return FrameMsg{ID: id} }),
		m.schedule(m.visible, func(time.Time) tea.Msg { return FadeMsg{ID: id} }),
	)
}

// Update advances the lifecycle. Messages for replaced toasts are dropped.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case FrameMsg:
		if msg.ID == m.gen && m.state == StateEntering {
			m.state = StateVisible
		}

	case FadeMsg:
		if msg.ID != m.gen || m.state == StateAbsent {
			return nil
		}
		m.state = StateFading
		id := msg.ID
		return m.schedule(m.fade, func(time.Time) tea.Msg { return RemoveMsg{ID: id} })

	case RemoveMsg:
		if msg.ID == m.gen {
			m.current = nil
			m.state = StateAbsent
		}
	}
	return nil
}

// State returns the current lifecycle state
func (m *Model) State() State {
	return m.state
}

// Current returns the toast being displayed, if any
func (m *Model) Current() (types.ToastMessage, bool) {
	if m.current == nil {
		return types.ToastMessage{}, false
	}
	return *m.current, true
}

// View renders the toast for a terminal of the given width.
// Returns empty string if no toast is present.
func (m *Model) View(width int) string {
	if m.current == nil {
		return ""
	}

	// Fit the text on one line when the terminal allows it
	style := m.styles.Toast(m.current.Variant, m.state == StateVisible)
	toastWidth := lipgloss.Width(m.current.Text) + style.GetHorizontalPadding()
	toastWidth = max(1, min(toastWidth, maxWidth, width-style.GetHorizontalBorderSize()))

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Right).
		Render(style.Width(toastWidth).Render(m.current.Text))
}
