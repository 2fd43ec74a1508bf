package tui

import (
	"testing"

	"github.com/Paintersrp/binders/internal/opener"
	"github.com/Paintersrp/binders/internal/state/statetest"
	"github.com/Paintersrp/binders/internal/tui/app"
)

func TestRefusesWithoutTerminal(t *testing.T) {
	s := statetest.New(t)

	origTerm := isTerminal
	isTerminal = func() bool { return false }
	t.Cleanup(func() { isTerminal = origTerm })

	_, err := statetest.Execute(t, NewCmdTUI(s))
	if err != errNotTerminal {
		t.Fatalf("expected errNotTerminal, got %v", err)
	}
}

func TestStartsAppOnTerminal(t *testing.T) {
	s := statetest.New(t)
	s.Opener = opener.New("")

	origTerm, origRun := isTerminal, runApp
	isTerminal = func() bool { return true }
	var started *app.App
	runApp = func(a *app.App) error {
		started = a
		return nil
	}
	t.Cleanup(func() {
		isTerminal = origTerm
		runApp = origRun
	})

	if _, err := statetest.Execute(t, NewCmdTUI(s)); err != nil {
		t.Fatalf("run: %v", err)
	}
	if started == nil {
		t.Fatal("expected the app to be started")
	}
	if started.Screen() == nil {
		t.Fatal("expected an initial screen")
	}
}
