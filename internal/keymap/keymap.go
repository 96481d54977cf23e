package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "session", "volume"
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Session
	{ActionBegin, []string{"enter", "s"}, "Start", "session"},
	{ActionEnd, []string{"esc"}, "Stop", "session"},
	{ActionNext, []string{"right", "l"}, "Next clip", "session"},
	{ActionPrevious, []string{"left", "h"}, "Previous clip", "session"},

	// Volume
	{ActionVolumeUp, []string{"up", "k", "+"}, "Volume up", "volume"},
	{ActionVolumeDown, []string{"down", "j", "-"}, "Volume down", "volume"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Lookup returns the binding for action.
func Lookup(action Action) (Binding, bool) {
	for _, kb := range All {
		if kb.Action == action {
			return kb, true
		}
	}
	return Binding{}, false
}

// Key converts b to a bubbles key binding for the help view.
func (b Binding) Key() key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(helpKeys(b.Keys), b.Description),
	)
}

// Help adapts the bindings to bubbles/help.
type Help struct{}

// ShortHelp shows the session keys and quit.
func (Help) ShortHelp() []key.Binding {
	return keys(ActionBegin, ActionEnd, ActionNext, ActionPrevious, ActionHelp, ActionQuit)
}

// FullHelp shows every binding, one column per context.
func (Help) FullHelp() [][]key.Binding {
	var cols [][]key.Binding
	for _, ctx := range []string{"session", "volume", "global"} {
		var col []key.Binding
		for _, b := range ByContext(ctx) {
			col = append(col, b.Key())
		}
		cols = append(cols, col)
	}
	return cols
}

func keys(actions ...Action) []key.Binding {
	out := make([]key.Binding, 0, len(actions))
	for _, a := range actions {
		if b, ok := Lookup(a); ok {
			out = append(out, b.Key())
		}
	}
	return out
}

var keySymbols = map[string]string{
	"left":  "←",
	"right": "→",
	"up":    "↑",
	"down":  "↓",
}

func helpKeys(ks []string) string {
	out := ""
	for i, k := range ks {
		if i > 0 {
			out += "/"
		}
		if s, ok := keySymbols[k]; ok {
			k = s
		}
		out += k
	}
	return out
}
