package app

import (
	"strings"

	"github.com/Paintersrp/binders/internal/library"
)

// Screen is one of the four top-level views. The set is closed.
type Screen interface {
	screen()
}

type bindersScreen struct{}

// songScreen lists the songs linked to one binder.
type songScreen struct {
	binder library.Binder
	list   songList
}

// songManagerScreen lists every song in the library.
type songManagerScreen struct {
	list songList
}

func (bindersScreen) screen()      {}
func (*songScreen) screen()        {}
func (*songManagerScreen) screen() {}
func (*toPrintScreen) screen()     {}

func newSongScreen(b library.Binder, songs []library.Song) *songScreen {
	s := &songScreen{binder: b}
	s.list.setSongs(songs)
	return s
}

func newSongManagerScreen(songs []library.Song) *songManagerScreen {
	s := &songManagerScreen{}
	s.list.setSongs(songs)
	return s
}

// songList owns a copy of the songs a screen shows, the filtered view, and
// the selection into that view.
type songList struct {
	songs    []library.Song
	filtered []library.Song
	query    string
	noLink   bool
	selected int
}

func (l *songList) setSongs(songs []library.Song) {
	l.songs = songs
	l.apply()
}

// setQuery filters by a case-insensitive substring of title or composer. A
// blank query shows everything.
func (l *songList) setQuery(q string) {
	l.query = q
	l.apply()
}

// toggleNoLink restricts the list to songs without a link, on top of any
// query, and returns the new state.
func (l *songList) toggleNoLink() bool {
	l.noLink = !l.noLink
	l.apply()
	return l.noLink
}

func (l *songList) hasQuery() bool {
	return strings.TrimSpace(l.query) != ""
}

func (l *songList) apply() {
	filtered := make([]library.Song, 0, len(l.songs))
	for _, s := range l.songs {
		if l.hasQuery() && !s.Matches(l.query) {
			continue
		}
		if l.noLink && s.HasLink() {
			continue
		}
		filtered = append(filtered, s)
	}
	l.filtered = filtered
	l.clampSelection()
}

func (l *songList) clampSelection() {
	if len(l.filtered) == 0 {
		l.selected = 0
		return
	}
	if l.selected >= len(l.filtered) {
		l.selected = len(l.filtered) - 1
	}
}

func (l *songList) current() (library.Song, bool) {
	if l.selected < 0 || l.selected >= len(l.filtered) {
		return library.Song{}, false
	}
	return l.filtered[l.selected], true
}

func (l *songList) move(offset int) {
	if len(l.filtered) == 0 {
		return
	}
	l.selected = clamp(l.selected+offset, 0, len(l.filtered)-1)
}

func (l *songList) selectFirst() {
	if len(l.filtered) > 0 {
		l.selected = 0
	}
}

func (l *songList) selectLast() {
	if len(l.filtered) > 0 {
		l.selected = len(l.filtered) - 1
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
