package fzf

import (
	"errors"
	"strings"
	"testing"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/Paintersrp/binders/internal/library"
)

var songs = []library.Song{
	{ID: 1, Title: "Ave Maria", Composer: "Schubert", Link: "https://example.com/ave"},
	{ID: 2, Title: "Gloria"},
}

func TestRunReturnsPickedSong(t *testing.T) {
	f := NewSongFinder(songs, "Pick a song")

	var labels []string
	f.find = func(s []library.Song, label func(int) string, opts ...fuzzyfinder.Option) (int, error) {
		for i := range s {
			labels = append(labels, label(i))
		}
		return 1, nil
	}

	got, err := f.Run("glo")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got.ID != 2 {
		t.Fatalf("expected Gloria, got %#v", got)
	}
	if labels[0] != "Ave Maria - Schubert" || labels[1] != "Gloria [No link]" {
		t.Fatalf("unexpected labels %v", labels)
	}
}

func TestRunAbortIsNoSelection(t *testing.T) {
	f := NewSongFinder(songs, "")
	f.find = func(s []library.Song, label func(int) string, opts ...fuzzyfinder.Option) (int, error) {
		return -1, fuzzyfinder.ErrAbort
	}

	if _, err := f.Run(""); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
}

func TestRunWithoutSongs(t *testing.T) {
	if _, err := NewSongFinder(nil, "").Run(""); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
}

func TestPreviewMarkdown(t *testing.T) {
	md := previewMarkdown(songs[1])
	for _, want := range []string{"# Gloria", "**Composer:** Unknown composer", "does not have a link"} {
		if !strings.Contains(md, want) {
			t.Fatalf("expected %q in preview:\n%s", want, md)
		}
	}
}
