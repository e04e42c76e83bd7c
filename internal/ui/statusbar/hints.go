package statusbar

import "github.com/riordanpawley/asciiart/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeNormal:
		return "tab/j/k: field  h/l: adjust  g: generate  c: copy  o: open  ?: help  q: quit"
	case types.ModeInput:
		return "Type to edit  Enter: confirm  Esc: cancel"
	case types.ModeHelp:
		return "j/k: scroll  Esc/?: close"
	default:
		return ""
	}
}
