package app

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/binders/internal/library"
	"github.com/Paintersrp/binders/internal/store"
)

var (
	keyEnter     = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc       = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab       = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab  = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyBackspace = tea.KeyMsg{Type: tea.KeyBackspace}
	keyUp        = tea.KeyMsg{Type: tea.KeyUp}
	keyDown      = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft      = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight     = tea.KeyMsg{Type: tea.KeyRight}
	keySpace     = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

type fakeOpener struct {
	opened []string
	err    error
}

func (f *fakeOpener) Open(target string) error {
	f.opened = append(f.opened, target)
	return f.err
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "binders.sqlite"), nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func newTestApp(t *testing.T, gw Gateway) (*App, *fakeOpener) {
	t.Helper()

	open := &fakeOpener{}
	a, err := New(context.Background(), gw, open)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	a.SetSize(120, 40)
	return a, open
}

func mustBinder(t *testing.T, st *store.Store, number int64, label string) library.Binder {
	t.Helper()

	b, err := st.CreateBinder(context.Background(), number, label)
	if err != nil {
		t.Fatalf("create binder %d: %v", number, err)
	}
	return b
}

func mustSong(t *testing.T, st *store.Store, title, composer, link string) library.Song {
	t.Helper()

	s, err := st.CreateSong(context.Background(), title, composer, link)
	if err != nil {
		t.Fatalf("create song %q: %v", title, err)
	}
	return s
}

func mustLink(t *testing.T, st *store.Store, b library.Binder, songs ...library.Song) {
	t.Helper()

	for _, s := range songs {
		if err := st.LinkSong(context.Background(), b.ID, s.ID); err != nil {
			t.Fatalf("link song %d to binder %d: %v", s.ID, b.ID, err)
		}
	}
}

// press feeds keys to the controller and reports whether the last one asked
// to quit.
func press(a *App, keys ...tea.KeyMsg) bool {
	var quit bool
	for _, k := range keys {
		quit = a.HandleKey(k)
	}
	return quit
}

func typeText(a *App, text string) {
	for _, r := range text {
		if r == ' ' {
			a.HandleKey(keySpace)
			continue
		}
		a.HandleKey(runeKey(r))
	}
}

func binderSongs(t *testing.T, st *store.Store, b library.Binder) []library.Song {
	t.Helper()

	songs, err := st.ListBinderSongs(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("list binder songs: %v", err)
	}
	return songs
}
