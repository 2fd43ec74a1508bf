package fzf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"

	"github.com/Paintersrp/binders/internal/library"
)

// ErrNoSelection is returned when the finder is closed without a pick.
var ErrNoSelection = errors.New("no song selected")

// SongFinder fuzzy-selects a song by title and composer, previewing the
// selected song's details.
type SongFinder struct {
	Header string
	songs  []library.Song

	// find is swapped out in tests.
	find func(songs []library.Song, label func(int) string, opts ...fuzzyfinder.Option) (int, error)
}

func NewSongFinder(songs []library.Song, header string) *SongFinder {
	return &SongFinder{
		Header: header,
		songs:  songs,
		find: func(songs []library.Song, label func(int) string, opts ...fuzzyfinder.Option) (int, error) {
			return fuzzyfinder.Find(songs, label, opts...)
		},
	}
}

func (f *SongFinder) Run(query string) (library.Song, error) {
	if len(f.songs) == 0 {
		return library.Song{}, ErrNoSelection
	}

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderPreview),
	}
	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}
	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	idx, err := f.find(f.songs, f.label, options...)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return library.Song{}, ErrNoSelection
		}
		return library.Song{}, fmt.Errorf("error selecting song: %w", err)
	}
	if idx < 0 || idx >= len(f.songs) {
		return library.Song{}, ErrNoSelection
	}
	return f.songs[idx], nil
}

func (f *SongFinder) label(i int) string {
	s := f.songs[i]
	if s.HasLink() {
		return s.DisplayTitle()
	}
	return s.DisplayTitle() + " [No link]"
}

func previewMarkdown(s library.Song) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", s.Title)

	composer := strings.TrimSpace(s.Composer)
	if composer == "" {
		composer = "Unknown composer"
	}
	fmt.Fprintf(&b, "**Composer:** %s\n\n", composer)

	if s.HasLink() {
		fmt.Fprintf(&b, "**Link:** %s\n", strings.TrimSpace(s.Link))
	} else {
		b.WriteString("_This song does not have a link._\n")
	}
	return b.String()
}

// renderPreview colours the song details with glamour.
func (f *SongFinder) renderPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(max(w-4, 20)),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return previewMarkdown(f.songs[i])
	}

	out, err := r.Render(previewMarkdown(f.songs[i]))
	if err != nil {
		return "Error rendering preview"
	}
	return out
}
