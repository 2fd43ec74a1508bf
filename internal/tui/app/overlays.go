package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/binders/internal/library"
)

// typedRunes returns the printable input carried by msg, if any.
func typedRunes(msg tea.KeyMsg) []rune {
	if msg.Alt {
		return nil
	}
	switch msg.Type {
	case tea.KeyRunes:
		return msg.Runes
	case tea.KeySpace:
		return []rune{' '}
	}
	return nil
}

// formKey classifies a key inside a text form. Forms only react to a few
// bindings; everything else printable is text.
type formKey int

const (
	formNone formKey = iota
	formCancel
	formNext
	formPrevious
	formBackspace
	formSubmit
	formText
)

func (a *App) classifyFormKey(msg tea.KeyMsg) formKey {
	switch {
	case key.Matches(msg, a.keys.back):
		return formCancel
	case key.Matches(msg, a.keys.nextTab):
		return formNext
	case key.Matches(msg, a.keys.prevTab):
		return formPrevious
	case key.Matches(msg, a.keys.backspace):
		return formBackspace
	case key.Matches(msg, a.keys.enter):
		return formSubmit
	case len(typedRunes(msg)) > 0:
		return formText
	}
	return formNone
}

// editBinderForm applies the editing keys shared by both binder forms and
// returns the classified key so the caller can handle cancel and submit.
func (a *App) editBinderForm(msg tea.KeyMsg, f *binderForm) formKey {
	k := a.classifyFormKey(msg)
	switch k {
	case formNext, formPrevious:
		f.toggleField()
	case formBackspace:
		f.backspace()
	case formText:
		for _, r := range typedRunes(msg) {
			if f.insert(r) {
				f.err = ""
			}
		}
	}
	return k
}

func (a *App) rejectBinderForm(f *binderForm, err error) {
	f.err = surfaceError(err)
	a.setError(f.err)
}

func (a *App) handleAddBinder(msg tea.KeyMsg, m addingBinderMode) Mode {
	switch a.editBinderForm(msg, m.form) {
	case formCancel:
		a.setInfo("Add binder cancelled.")
		return normalMode{}
	case formSubmit:
		in, err := m.form.parse()
		if err != nil {
			a.rejectBinderForm(m.form, err)
			return m
		}
		b, err := a.gw.CreateBinder(a.ctx, in.Number, in.Label)
		if err != nil {
			a.logger.Warn("create binder failed", "number", in.Number, "err", err)
			a.rejectBinderForm(m.form, err)
			return m
		}
		if a.refreshAfterWrite(func() error { return a.reloadBinders(b.ID) }) {
			a.setInfo(fmt.Sprintf("Added %s.", b.Heading()))
		}
		return normalMode{}
	}
	return m
}

func (a *App) handleEditBinder(msg tea.KeyMsg, m editingBinderMode) Mode {
	switch a.editBinderForm(msg, m.form) {
	case formCancel:
		a.setInfo("Edit cancelled.")
		return normalMode{}
	case formSubmit:
		in, err := m.form.parse()
		if err != nil {
			a.rejectBinderForm(m.form, err)
			return m
		}
		if err := a.gw.UpdateBinder(a.ctx, m.id, in.Number, in.Label); err != nil {
			a.logger.Warn("update binder failed", "binder", m.id, "err", err)
			a.rejectBinderForm(m.form, err)
			return m
		}

		updated := library.Binder{ID: m.id, Number: in.Number, Label: in.Label}
		if s, ok := a.screen.(*songScreen); ok && s.binder.ID == m.id {
			s.binder = updated
		}
		if a.refreshAfterWrite(func() error { return a.reloadBinders(m.id) }) {
			a.setInfo(fmt.Sprintf("Updated %s.", updated.Heading()))
		}
		return normalMode{}
	}
	return m
}

func (a *App) handleConfirmBinderDelete(msg tea.KeyMsg, m confirmBinderDeleteMode) Mode {
	switch {
	case key.Matches(msg, a.keys.cancel):
		a.setInfo("Deletion cancelled.")
		return normalMode{}
	case key.Matches(msg, a.keys.confirm):
		if err := a.gw.DeleteBinder(a.ctx, m.binder.ID); err != nil {
			a.fail("delete binder", err, "binder", m.binder.ID)
			return m
		}
		a.screen = bindersScreen{}
		if a.refreshAfterWrite(func() error { return a.reloadBinders(0) }) {
			a.setInfo(fmt.Sprintf("Deleted %s.", m.binder.Heading()))
		}
		return normalMode{}
	}
	return m
}

// editSongForm applies the non-submitting keys shared by both song forms
// and keeps the composer suggestion current. It returns the classified key
// and, for Esc, whether the key was spent dismissing a suggestion.
func (a *App) editSongForm(msg tea.KeyMsg, f *songForm) (formKey, bool) {
	k := a.classifyFormKey(msg)
	switch k {
	case formCancel:
		return k, f.cancelAutocomplete()
	case formNext:
		if f.hasActiveSuggestion() {
			f.acceptSuggestion()
		} else {
			f.nextField()
		}
	case formPrevious:
		f.previousField()
	case formBackspace:
		f.backspace()
	case formText:
		for _, r := range typedRunes(msg) {
			if f.insert(r) {
				f.err = ""
			}
		}
	default:
		return k, false
	}
	f.updateSuggestion(a.composers)
	return k, true
}

func (a *App) rejectSongForm(f *songForm, err error) {
	f.err = surfaceError(err)
	a.setError(f.err)
}

func (a *App) handleEditSong(msg tea.KeyMsg, m editingSongMode) Mode {
	k, handled := a.editSongForm(msg, m.form)
	switch k {
	case formCancel:
		if handled {
			return m
		}
		a.setInfo("Edit cancelled.")
		return a.restoreSearch()
	case formSubmit:
		in, err := m.form.parse()
		if err != nil {
			a.rejectSongForm(m.form, err)
			return m
		}
		if err := a.gw.UpdateSong(a.ctx, m.id, in.Title, in.Composer, in.Link); err != nil {
			a.logger.Warn("update song failed", "song", m.id, "err", err)
			a.rejectSongForm(m.form, err)
			return m
		}
		if a.refreshAfterWrite(a.refreshSongScreen, a.refreshSongManager) {
			a.setInfo("Song updated.")
		}
		return a.restoreSearch()
	}
	return m
}

func (a *App) handleCreateSong(msg tea.KeyMsg, m creatingSongMode) Mode {
	k, handled := a.editSongForm(msg, m.form)
	switch k {
	case formCancel:
		if handled {
			return m
		}
		a.setInfo("Song creation cancelled.")
		return normalMode{}
	case formSubmit:
		in, err := m.form.parse()
		if err != nil {
			a.rejectSongForm(m.form, err)
			return m
		}
		song, err := a.gw.CreateSong(a.ctx, in.Title, in.Composer, in.Link)
		if err != nil {
			a.logger.Warn("create song failed", "err", err)
			a.rejectSongForm(m.form, err)
			return m
		}

		if m.binderID == 0 {
			if a.refreshAfterWrite(a.refreshSongManager) {
				a.setInfo("Song created.")
			}
			return normalMode{}
		}

		// The song exists from here on, so a failed link must not leave the
		// form open for a second create.
		if err := a.gw.LinkSong(a.ctx, m.binderID, song.ID); err != nil {
			a.fail("link song", err, "binder", m.binderID, "song", song.ID)
			a.refreshAfterWrite(a.refreshSongManager)
			return normalMode{}
		}
		if a.refreshAfterWrite(a.refreshSongScreen, a.refreshSongManager) {
			a.setInfo("Song created and added.")
		}
		return normalMode{}
	}
	return m
}

func (a *App) handleConfirmSongRemove(msg tea.KeyMsg, m confirmSongRemoveMode) Mode {
	switch {
	case key.Matches(msg, a.keys.cancel):
		a.setInfo("Removal cancelled.")
		return normalMode{}
	case key.Matches(msg, a.keys.confirm):
		if err := a.gw.UnlinkSong(a.ctx, m.binderID, m.song.ID); err != nil {
			a.fail("remove song", err, "binder", m.binderID, "song", m.song.ID)
			return m
		}
		if a.refreshAfterWrite(a.refreshSongScreen) {
			a.setInfo("Song removed from binder.")
		}
		return normalMode{}
	}
	return m
}

func (a *App) handleConfirmSongDelete(msg tea.KeyMsg, m confirmSongDeleteMode) Mode {
	switch {
	case key.Matches(msg, a.keys.cancel):
		a.setInfo("Deletion cancelled.")
		return normalMode{}
	case key.Matches(msg, a.keys.confirm):
		if err := a.gw.DeleteSong(a.ctx, m.song.ID); err != nil {
			a.fail("delete song", err, "song", m.song.ID)
			return m
		}
		if a.refreshAfterWrite(a.refreshSongManager, a.refreshSongScreen) {
			a.setInfo("Song deleted.")
		}
		return normalMode{}
	}
	return m
}

func (a *App) handleSelectSong(msg tea.KeyMsg, m selectingSongMode) Mode {
	p := m.picker
	switch {
	case key.Matches(msg, a.keys.back):
		return normalMode{}
	case key.Matches(msg, a.keys.up):
		p.move(-1)
	case key.Matches(msg, a.keys.down):
		p.move(1)
	case key.Matches(msg, a.keys.pageUp):
		p.move(-pageStep)
	case key.Matches(msg, a.keys.pageDown):
		p.move(pageStep)
	case key.Matches(msg, a.keys.home):
		p.selectFirst()
	case key.Matches(msg, a.keys.end):
		p.selectLast()
	case key.Matches(msg, a.keys.toggle):
		p.toggleCurrent()
	case key.Matches(msg, a.keys.enter):
		if checked := p.checkedSongs(); len(checked) > 0 {
			return a.linkCheckedSongs(m, checked)
		}

		item, ok := p.current()
		if !ok {
			return m
		}
		if item.create {
			return creatingSongMode{binderID: p.binderID, form: &songForm{}}
		}
		if err := a.gw.LinkSong(a.ctx, p.binderID, item.song.ID); err != nil {
			a.fail("add song", err, "binder", p.binderID, "song", item.song.ID)
			return m
		}
		if a.refreshAfterWrite(a.refreshSongScreen) {
			a.setInfo("Song added to binder.")
		}
		return normalMode{}
	}
	return m
}

// linkCheckedSongs links the checked songs in list order and stops at the
// first failure. Songs linked before the failure stay linked.
func (a *App) linkCheckedSongs(m selectingSongMode, songs []library.Song) Mode {
	binderID := m.picker.binderID
	added := 0
	for _, s := range songs {
		if err := a.gw.LinkSong(a.ctx, binderID, s.ID); err != nil {
			msg := a.fail("add songs", err, "binder", binderID, "song", s.ID)
			if added == 0 {
				return m
			}
			a.refreshAfterWrite(a.refreshSongScreen)
			a.setError(msg)
			return normalMode{}
		}
		added++
	}

	if a.refreshAfterWrite(a.refreshSongScreen) {
		if added == 1 {
			a.setInfo("Song added to binder.")
		} else {
			a.setInfo(fmt.Sprintf("Added %d songs to binder.", added))
		}
	}
	return normalMode{}
}

func (a *App) handleConfirmToPrintExit(msg tea.KeyMsg, m confirmToPrintExitMode) (Mode, bool) {
	c := m.confirm
	switch {
	case key.Matches(msg, a.keys.back):
		return normalMode{}, false
	case key.Matches(msg, a.keys.left), key.Matches(msg, a.keys.up):
		c.previous()
	case key.Matches(msg, a.keys.right), key.Matches(msg, a.keys.down), key.Matches(msg, a.keys.nextTab):
		c.next()
	case key.Matches(msg, a.keys.enter):
		switch c.choice {
		case exitApply:
			if err := a.applyToPrint(); err != nil {
				return m, false
			}
		case exitDiscard:
			if !c.quit {
				a.setInfo("Discarded pending changes.")
			}
		case exitCancel:
			return normalMode{}, false
		}
		if c.quit {
			return normalMode{}, true
		}
		a.screen = bindersScreen{}
		return normalMode{}, false
	}
	return m, false
}

// applyToPrint links every checked to-print row. On failure the error is
// shown and the rows stay pending; linking is idempotent so a retry only
// adds what is still missing.
func (a *App) applyToPrint() error {
	s, ok := a.screen.(*toPrintScreen)
	if !ok {
		return nil
	}

	pending := s.pendingAssignments()
	if len(pending) == 0 {
		a.setInfo("No changes to apply.")
		return nil
	}

	for _, p := range pending {
		if err := a.gw.LinkSong(a.ctx, p.BinderID, p.SongID); err != nil {
			a.fail("apply to print", err, "binder", p.BinderID, "song", p.SongID)
			return err
		}
	}

	a.refreshAfterWrite(a.refreshSongManager, a.refreshSongScreen)
	suffix := "s"
	if len(pending) == 1 {
		suffix = ""
	}
	a.setInfo(fmt.Sprintf("Applied %d song%s.", len(pending), suffix))
	return nil
}
