package app

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	pageUp    key.Binding
	pageDown  key.Binding
	home      key.Binding
	end       key.Binding
	enter     key.Binding
	back      key.Binding
	quit      key.Binding
	add       key.Binding
	remove    key.Binding
	edit      key.Binding
	songs     key.Binding
	toPrint   key.Binding
	search    key.Binding
	noLink    key.Binding
	copyLink  key.Binding
	nextTab   key.Binding
	prevTab   key.Binding
	viewMode  key.Binding
	toggle    key.Binding
	backspace key.Binding
	confirm   key.Binding
	cancel    key.Binding

	forceQuit      key.Binding
	editFromSearch key.Binding
	noLinkShortcut key.Binding
}

// pageStep is how far PageUp and PageDown move a list cursor.
const pageStep = 5

func newKeyMap() keyMap {
	return keyMap{
		up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		pageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		pageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		end: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		add: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "add"),
		),
		remove: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "remove"),
		),
		edit: key.NewBinding(
			key.WithKeys("e", "E"),
			key.WithHelp("e", "edit"),
		),
		songs: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "song manager"),
		),
		toPrint: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "to print"),
		),
		search: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "search"),
		),
		noLink: key.NewBinding(
			key.WithKeys("l", "L"),
			key.WithHelp("l", "toggle no-link"),
		),
		copyLink: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy link"),
		),
		nextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next binder"),
		),
		prevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous binder"),
		),
		viewMode: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "t", "T"),
			key.WithHelp("tab", "toggle view"),
		),
		toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "toggle"),
		),
		backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete"),
		),
		confirm: key.NewBinding(
			key.WithKeys("y", "Y", "enter"),
			key.WithHelp("y", "confirm"),
		),
		cancel: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "cancel"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		editFromSearch: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "edit song"),
		),
		noLinkShortcut: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "toggle no-link"),
		),
	}
}

func hint(keys, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys), key.WithHelp(keys, desc))
}

// footerHelp implements help.KeyMap for the hints under the status line.
type footerHelp []key.Binding

func (f footerHelp) ShortHelp() []key.Binding  { return f }
func (f footerHelp) FullHelp() [][]key.Binding { return [][]key.Binding{f} }

// footerKeys returns the hints for the active screen and mode.
func (a *App) footerKeys() footerHelp {
	if _, ok := a.mode.(selectingSongMode); ok {
		return footerHelp{
			hint("[↑↓]", "Navigate"),
			hint("[Space]", "Toggle"),
			hint("[Enter]", "Add Selected"),
			hint("[Esc]", "Cancel"),
		}
	}

	switch s := a.screen.(type) {
	case *toPrintScreen:
		if !s.directorFound {
			return footerHelp{hint("[p]", "Back"), hint("[q]", "Quit")}
		}
		return footerHelp{
			hint("[Space]", "Toggle"),
			hint("[Tab]", "Toggle View"),
			hint("[↑↓]", "Navigate"),
			hint("[PgUp/PgDn]", "Page"),
			hint("[p]", "Back"),
			hint("[q]", "Quit"),
		}
	case *songManagerScreen:
		return footerHelp{
			hint("[↑↓]", "Select"),
			hint("[Enter]", "Open Link"),
			hint("[y]", "Copy Link"),
			hint("[f]", "Search"),
			hint("[l]", "Toggle No-Link"),
			hint("[+]", "Add"),
			hint("[-]", "Delete"),
			hint("[e]", "Edit"),
			hint("[p]", "To Print"),
			hint("[s]", "Binders"),
			hint("[q]", "Quit"),
		}
	case *songScreen:
		return footerHelp{
			hint("[↑↓]", "Select"),
			hint("[Enter]", "Open Link"),
			hint("[y]", "Copy Link"),
			hint("[f]", "Search"),
			hint("[+]", "Add"),
			hint("[-]", "Remove"),
			hint("[e]", "Edit"),
			hint("[Tab]", "Next Binder"),
			hint("[s]", "Song Manager"),
			hint("[p]", "To Print"),
			hint("[Esc]", "Back"),
			hint("[q]", "Quit"),
		}
	default:
		return footerHelp{
			hint("[←↑↓→]", "Move"),
			hint("[Enter]", "Open"),
			hint("[+]", "Add"),
			hint("[-]", "Remove"),
			hint("[e]", "Edit"),
			hint("[s]", "Song Manager"),
			hint("[p]", "To Print"),
			hint("[q]", "Quit"),
		}
	}
}
