package views

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all application key bindings. Pages run right to left, so
// the left arrow turns forward.
type KeyMap struct {
	// Lists
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding

	// Page turning
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding

	// Reader
	SwitchBook key.Binding
	Spread     key.Binding
	Rotate     key.Binding
	Bookmark   key.Binding
	Note       key.Binding
	ToggleUI   key.Binding
	ZoomIn     key.Binding
	ZoomOut    key.Binding
	ZoomReset  key.Binding

	// Panels
	Search    key.Binding
	JuzIndex  key.Binding
	Bookmarks key.Binding
	Delete    key.Binding
	Tab       key.Binding
	Save      key.Binding

	// General
	Escape    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
}

// Keys is the active key map.
var Keys = DefaultKeyMap()

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "select"),
		),
		Next: key.NewBinding(
			key.WithKeys("left", "h", "n", " ", "pgdown"),
			key.WithHelp("←/n", "next page"),
		),
		Prev: key.NewBinding(
			key.WithKeys("right", "l", "p", "pgup"),
			key.WithHelp("→/p", "previous page"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first page"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last page"),
		),
		SwitchBook: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "other book"),
		),
		Spread: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "single/two pages"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rotate"),
		),
		Bookmark: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bookmark"),
		),
		Note: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "note"),
		),
		ToggleUI: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "hide/show bars"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "zoom out"),
		),
		ZoomReset: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "reset zoom"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		JuzIndex: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "juz index"),
		),
		Bookmarks: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "bookmarks & notes"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next field"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "save"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit/back"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("^c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// HelpSections groups bindings for the help overlay.
func (k KeyMap) HelpSections() []HelpSection {
	return []HelpSection{
		{"Reading", []key.Binding{k.Next, k.Prev, k.First, k.Last, k.SwitchBook}},
		{"Page", []key.Binding{k.Spread, k.Rotate, k.ZoomIn, k.ZoomOut, k.ZoomReset, k.ToggleUI}},
		{"Marks", []key.Binding{k.Bookmark, k.Note, k.Bookmarks}},
		{"Find", []key.Binding{k.Search, k.JuzIndex}},
		{"General", []key.Binding{k.Escape, k.Quit, k.Help}},
	}
}

// HelpSection is a titled group of bindings.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}
