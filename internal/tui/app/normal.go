package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/binders/internal/library"
)

func (a *App) handleNormal(msg tea.KeyMsg) (Mode, bool) {
	switch s := a.screen.(type) {
	case *songScreen:
		return a.handleSongsNormal(msg, s)
	case *songManagerScreen:
		return a.handleManagerNormal(msg, s)
	case *toPrintScreen:
		return a.handleToPrintNormal(msg, s)
	default:
		return a.handleBindersNormal(msg)
	}
}

func (a *App) handleBindersNormal(msg tea.KeyMsg) (Mode, bool) {
	switch {
	case key.Matches(msg, a.keys.quit), key.Matches(msg, a.keys.back):
		return normalMode{}, true
	case key.Matches(msg, a.keys.left):
		a.moveGrid(-1)
	case key.Matches(msg, a.keys.right):
		a.moveGrid(1)
	case key.Matches(msg, a.keys.up):
		a.moveGrid(-GridColumns)
	case key.Matches(msg, a.keys.down):
		a.moveGrid(GridColumns)
	case key.Matches(msg, a.keys.home):
		if len(a.binders) > 0 {
			a.selected = 0
		}
	case key.Matches(msg, a.keys.end):
		if len(a.binders) > 0 {
			a.selected = len(a.binders) - 1
		}
	case key.Matches(msg, a.keys.enter):
		b, ok := a.currentBinder()
		if !ok {
			a.setError("No binder selected.")
			break
		}
		if err := a.openBinder(b); err != nil {
			a.fail("open binder", err, "binder", b.ID)
		}
	case key.Matches(msg, a.keys.add):
		a.clearStatus()
		return addingBinderMode{form: newBinderForm(library.NextNumber(a.binders))}, false
	case key.Matches(msg, a.keys.remove):
		b, ok := a.currentBinder()
		if !ok {
			a.setError("No binder selected to remove.")
			break
		}
		return confirmBinderDeleteMode{binder: b}, false
	case key.Matches(msg, a.keys.edit):
		b, ok := a.currentBinder()
		if !ok {
			a.setError("No binder selected to edit.")
			break
		}
		return editingBinderMode{id: b.ID, form: binderFormFrom(b)}, false
	case key.Matches(msg, a.keys.songs):
		a.clearStatus()
		if err := a.openSongManager(); err != nil {
			a.fail("open song manager", err)
		}
	case key.Matches(msg, a.keys.toPrint):
		a.clearStatus()
		if err := a.openToPrint(); err != nil {
			a.fail("open to print", err)
		}
	}
	return normalMode{}, false
}

// navigateList applies the shared list movement keys and reports whether
// msg was one of them.
func (a *App) navigateList(msg tea.KeyMsg, l *songList) bool {
	switch {
	case key.Matches(msg, a.keys.up):
		l.move(-1)
	case key.Matches(msg, a.keys.down):
		l.move(1)
	case key.Matches(msg, a.keys.pageUp):
		l.move(-pageStep)
	case key.Matches(msg, a.keys.pageDown):
		l.move(pageStep)
	case key.Matches(msg, a.keys.home):
		l.selectFirst()
	case key.Matches(msg, a.keys.end):
		l.selectLast()
	default:
		return false
	}
	return true
}

func (a *App) startSearch(l *songList) Mode {
	search := &searchState{target: a.screen, query: l.query}
	return searchingMode{search: search}
}

func (a *App) handleSongsNormal(msg tea.KeyMsg, s *songScreen) (Mode, bool) {
	if a.navigateList(msg, &s.list) {
		return normalMode{}, false
	}

	switch {
	case key.Matches(msg, a.keys.quit):
		return normalMode{}, true
	case key.Matches(msg, a.keys.back):
		a.clearStatus()
		a.screen = bindersScreen{}
	case key.Matches(msg, a.keys.nextTab):
		if err := a.openRelativeBinder(1); err != nil {
			a.fail("open binder", err)
		}
	case key.Matches(msg, a.keys.prevTab):
		if err := a.openRelativeBinder(-1); err != nil {
			a.fail("open binder", err)
		}
	case key.Matches(msg, a.keys.enter):
		if song, ok := s.list.current(); ok {
			a.openLink(song)
		}
	case key.Matches(msg, a.keys.copyLink):
		if song, ok := s.list.current(); ok {
			a.copySongLink(song)
		}
	case key.Matches(msg, a.keys.search):
		return a.startSearch(&s.list), false
	case key.Matches(msg, a.keys.add):
		p, err := loadPicker(a.ctx, a.gw, s.binder.ID)
		if err != nil {
			a.fail("load songs", err, "binder", s.binder.ID)
			break
		}
		if p.len() == 1 {
			return creatingSongMode{binderID: s.binder.ID, form: &songForm{}}, false
		}
		return selectingSongMode{picker: p}, false
	case key.Matches(msg, a.keys.remove):
		song, ok := s.list.current()
		if !ok {
			a.setError("No song selected to remove.")
			break
		}
		return confirmSongRemoveMode{binderID: s.binder.ID, song: song}, false
	case key.Matches(msg, a.keys.edit):
		song, ok := s.list.current()
		if !ok {
			a.setError("No song selected to edit.")
			break
		}
		return editingSongMode{id: song.ID, form: songFormFrom(song)}, false
	case key.Matches(msg, a.keys.songs):
		if err := a.openSongManager(); err != nil {
			a.fail("open song manager", err)
		}
	case key.Matches(msg, a.keys.toPrint):
		if err := a.openToPrint(); err != nil {
			a.fail("open to print", err)
		}
	}
	return normalMode{}, false
}

func (a *App) handleManagerNormal(msg tea.KeyMsg, s *songManagerScreen) (Mode, bool) {
	if a.navigateList(msg, &s.list) {
		return normalMode{}, false
	}

	switch {
	case key.Matches(msg, a.keys.quit):
		return normalMode{}, true
	case key.Matches(msg, a.keys.back), key.Matches(msg, a.keys.songs):
		a.clearStatus()
		a.screen = bindersScreen{}
	case key.Matches(msg, a.keys.noLink):
		a.setNoLinkStatus(s.list.toggleNoLink())
	case key.Matches(msg, a.keys.enter):
		if song, ok := s.list.current(); ok {
			a.openLink(song)
		}
	case key.Matches(msg, a.keys.copyLink):
		if song, ok := s.list.current(); ok {
			a.copySongLink(song)
		}
	case key.Matches(msg, a.keys.search):
		return a.startSearch(&s.list), false
	case key.Matches(msg, a.keys.add):
		return creatingSongMode{form: &songForm{}}, false
	case key.Matches(msg, a.keys.remove):
		song, ok := s.list.current()
		if !ok {
			a.setError("No song selected to delete.")
			break
		}
		return confirmSongDeleteMode{song: song}, false
	case key.Matches(msg, a.keys.edit):
		song, ok := s.list.current()
		if !ok {
			a.setError("No song selected to edit.")
			break
		}
		return editingSongMode{id: song.ID, form: songFormFrom(song)}, false
	case key.Matches(msg, a.keys.toPrint):
		a.clearStatus()
		if err := a.openToPrint(); err != nil {
			a.fail("open to print", err)
		}
	}
	return normalMode{}, false
}

func (a *App) handleToPrintNormal(msg tea.KeyMsg, s *toPrintScreen) (Mode, bool) {
	switch {
	case key.Matches(msg, a.keys.quit):
		if s.hasPendingChanges() {
			return confirmToPrintExitMode{confirm: newExitConfirm(true)}, false
		}
		return normalMode{}, true
	case key.Matches(msg, a.keys.back), key.Matches(msg, a.keys.toPrint):
		if s.hasPendingChanges() {
			return confirmToPrintExitMode{confirm: newExitConfirm(false)}, false
		}
		a.clearStatus()
		a.screen = bindersScreen{}
	case key.Matches(msg, a.keys.viewMode):
		s.toggleView()
	case key.Matches(msg, a.keys.toggle):
		if checked, ok := s.toggleCurrent(); ok {
			if checked {
				a.setInfo("Marked song as added.")
			} else {
				a.setInfo("Song unchecked.")
			}
		}
	case key.Matches(msg, a.keys.enter):
		if song, ok := s.currentSong(); ok {
			a.openLink(song)
		}
	case key.Matches(msg, a.keys.up):
		s.move(-1)
	case key.Matches(msg, a.keys.down):
		s.move(1)
	case key.Matches(msg, a.keys.pageUp):
		s.move(-pageStep)
	case key.Matches(msg, a.keys.pageDown):
		s.move(pageStep)
	case key.Matches(msg, a.keys.home):
		s.selectFirst()
	case key.Matches(msg, a.keys.end):
		s.selectLast()
	}
	return normalMode{}, false
}
