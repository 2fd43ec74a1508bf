package app

import "github.com/Paintersrp/binders/internal/library"

// Mode is the interaction state layered over the active screen. Exactly one
// mode is active; normalMode means no overlay.
type Mode interface {
	mode()
}

type normalMode struct{}

type addingBinderMode struct {
	form *binderForm
}

type editingBinderMode struct {
	id   int64
	form *binderForm
}

type confirmBinderDeleteMode struct {
	binder library.Binder
}

type editingSongMode struct {
	id   int64
	form *songForm
}

type confirmSongRemoveMode struct {
	binderID int64
	song     library.Song
}

type selectingSongMode struct {
	picker *picker
}

type confirmSongDeleteMode struct {
	song library.Song
}

// creatingSongMode links the new song to binderID when it is non-zero.
type creatingSongMode struct {
	binderID int64
	form     *songForm
}

type confirmToPrintExitMode struct {
	confirm *exitConfirm
}

type searchingMode struct {
	search *searchState
}

func (normalMode) mode()              {}
func (addingBinderMode) mode()        {}
func (editingBinderMode) mode()       {}
func (confirmBinderDeleteMode) mode() {}
func (editingSongMode) mode()         {}
func (confirmSongRemoveMode) mode()   {}
func (selectingSongMode) mode()       {}
func (confirmSongDeleteMode) mode()   {}
func (creatingSongMode) mode()        {}
func (confirmToPrintExitMode) mode()  {}
func (searchingMode) mode()           {}
