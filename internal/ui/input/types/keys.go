package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings of normal mode. It drives both key matching
// and the help views.
type KeyMap struct {
	Next     key.Binding
	Advance  key.Binding
	Previous key.Binding
	First    key.Binding
	Last     key.Binding
	Scroll   key.Binding
	GoTo     key.Binding
	Menu     key.Binding
	Search   key.Binding
	Match    key.Binding
	Notes    key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:     key.NewBinding(key.WithKeys("right", "l", " ", "pgdown"), key.WithHelp("→/space", "next")),
		Advance:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next/restart")),
		Previous: key.NewBinding(key.WithKeys("left", "h", "pgup", "backspace"), key.WithHelp("←", "previous")),
		First:    key.NewBinding(key.WithKeys("home", "esc"), key.WithHelp("home/gg", "first")),
		Last:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "last")),
		Scroll:   key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		GoTo:     key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "go to slide")),
		Menu:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Match:    key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n/N", "next/prev match")),
		Notes:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "speaker notes")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp is the footer line
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.Menu, k.GoTo, k.Help, k.Quit}
}

// FullHelp is the help page, one column per group
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Advance, k.Previous, k.First, k.Last, k.Scroll},
		{k.GoTo, k.Menu, k.Search, k.Match},
		{k.Notes, k.Reload, k.Help, k.Quit},
	}
}
