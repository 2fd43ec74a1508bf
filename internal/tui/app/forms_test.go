package app

import (
	"testing"

	"github.com/Paintersrp/binders/internal/library"
	"github.com/Paintersrp/binders/internal/report"
)

func TestSongFormSuggestionIgnoresExactMatch(t *testing.T) {
	f := &songForm{active: songComposerField, composer: "bach"}
	f.updateSuggestion([]string{"Bach", "Bachmann"})
	if f.suggestion != "" {
		t.Fatalf("expected no suggestion for a complete name, got %q", f.suggestion)
	}

	f.composer = "bachm"
	f.updateSuggestion([]string{"Bach", "Bachmann"})
	if f.suggestion != "Bachmann" {
		t.Fatalf("expected Bachmann, got %q", f.suggestion)
	}
}

func TestSongFormFieldCycle(t *testing.T) {
	f := &songForm{}
	f.previousField()
	if f.active != songLinkField {
		t.Fatalf("expected link field, got %d", f.active)
	}
	f.nextField()
	if f.active != songTitleField {
		t.Fatalf("expected title field, got %d", f.active)
	}
}

func TestDropLastRuneHandlesMultibyte(t *testing.T) {
	if got := dropLastRune("Fauré"); got != "Faur" {
		t.Fatalf("unexpected result %q", got)
	}
	if got := dropLastRune(""); got != "" {
		t.Fatalf("unexpected result %q", got)
	}
}

func TestBinderFormFromExisting(t *testing.T) {
	f := binderFormFrom(library.Binder{ID: 4, Number: 12, Label: "Tenors"})
	in, err := f.parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if in.Number != 12 || in.Label != "Tenors" {
		t.Fatalf("unexpected input %#v", in)
	}
}

func TestExitConfirmCycles(t *testing.T) {
	c := newExitConfirm(false)
	c.previous()
	if c.choice != exitCancel {
		t.Fatalf("expected cancel, got %d", c.choice)
	}
	c.next()
	if c.choice != exitApply {
		t.Fatalf("expected apply, got %d", c.choice)
	}
	if c.labels()[0] != "Apply & Leave" {
		t.Fatalf("unexpected label %q", c.labels()[0])
	}
}

func TestToPrintScrollFollowsCursor(t *testing.T) {
	director := make([]library.Song, 0, 10)
	for i := int64(1); i <= 10; i++ {
		director = append(director, library.Song{ID: i, Title: string(rune('A' + i))})
	}
	r := report.Build(director, []report.Holding{{Binder: library.Binder{ID: 2, Number: 1, Label: "Sopranos"}}})

	s := newToPrintScreen(r, true)
	if len(s.binderRows) != 11 {
		t.Fatalf("expected 11 rows, got %d", len(s.binderRows))
	}

	s.move(6)
	if s.selected != 6 || s.scroll != 3 {
		t.Fatalf("expected cursor 6 scroll 3, got %d and %d", s.selected, s.scroll)
	}
	s.selectLast()
	if s.selected != 10 || s.scroll != 7 {
		t.Fatalf("expected cursor 10 scroll 7, got %d and %d", s.selected, s.scroll)
	}
	s.toggleView()
	if s.view != printBySong || s.selected != 0 || s.scroll != 0 {
		t.Fatalf("expected reset cursor in by-song view")
	}
	if got, ok := s.currentSong(); !ok || got.ID != 1 {
		t.Fatalf("expected first needed song, got %#v", got)
	}
}
