package report

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paintersrp/binders/internal/state"
	"github.com/Paintersrp/binders/internal/state/statetest"
)

func seeded(t *testing.T) *state.State {
	t.Helper()

	s := statetest.New(t)
	ctx := context.Background()

	director, err := s.Store.CreateBinder(ctx, 0, "Director")
	require.NoError(t, err)
	_, err = s.Store.CreateBinder(ctx, 1, "Sopranos")
	require.NoError(t, err)
	song, err := s.Store.CreateSong(ctx, "Gloria", "Vivaldi", "")
	require.NoError(t, err)
	require.NoError(t, s.Store.LinkSong(ctx, director.ID, song.ID))

	return s
}

func plain(t *testing.T) {
	t.Helper()

	orig := isTerminal
	isTerminal = func() bool { return false }
	t.Cleanup(func() { isTerminal = orig })
}

func TestReportByBinder(t *testing.T) {
	s := seeded(t)
	plain(t)

	out, err := statetest.Execute(t, NewCmdReport(s))
	require.NoError(t, err)
	assert.Contains(t, out, "# To Print • By Binder")
	assert.Contains(t, out, "## Binder 01")
	assert.Contains(t, out, "- [ ] Gloria - Vivaldi")
}

func TestReportBySong(t *testing.T) {
	s := seeded(t)
	plain(t)

	out, err := statetest.Execute(t, NewCmdReport(s), "--by-song")
	require.NoError(t, err)
	assert.Contains(t, out, "| Gloria | Vivaldi | 1 |")
}

func TestReportWithoutDirector(t *testing.T) {
	s := statetest.New(t)
	plain(t)

	out, err := statetest.Execute(t, NewCmdReport(s))
	require.NoError(t, err)
	assert.Contains(t, out, "Director's binder missing")
}

func TestReportWritesHTML(t *testing.T) {
	s := seeded(t)
	path := filepath.Join(t.TempDir(), "to-print.html")

	out, err := statetest.Execute(t, NewCmdReport(s), "--by-song", "--html", path)
	require.NoError(t, err)
	assert.Equal(t, "Wrote report to "+path+".\n", out)

	page, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(page), "<td>Gloria</td>")
}

func TestRenderStylesMarkdown(t *testing.T) {
	out, err := render("# To Print\n")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, stripANSI(out), "To Print")
}

func stripANSI(s string) string {
	var b strings.Builder
	inSeq := false
	for _, r := range s {
		switch {
		case r == ansi.Marker:
			inSeq = true
		case inSeq:
			inSeq = !ansi.IsTerminator(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
