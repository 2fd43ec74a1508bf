package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// searchState is a live filter over the list of the screen it started on.
type searchState struct {
	target Screen
	query  string
}

func listFor(s Screen) *songList {
	switch s := s.(type) {
	case *songScreen:
		return &s.list
	case *songManagerScreen:
		return &s.list
	}
	return nil
}

func (a *App) handleSearch(msg tea.KeyMsg, m searchingMode) Mode {
	if m.search.target != a.screen {
		return normalMode{}
	}
	l := listFor(a.screen)
	if l == nil {
		return normalMode{}
	}

	if a.navigateList(msg, l) {
		return m
	}

	switch {
	case key.Matches(msg, a.keys.back):
		l.setQuery("")
		return normalMode{}
	case key.Matches(msg, a.keys.enter):
		if song, ok := l.current(); ok {
			a.openLink(song)
		}
		return m
	case key.Matches(msg, a.keys.backspace):
		m.search.query = dropLastRune(m.search.query)
	default:
		runes := typedRunes(msg)
		if len(runes) == 0 {
			return m
		}
		m.search.query += string(runes)
	}

	l.setQuery(m.search.query)
	return m
}
