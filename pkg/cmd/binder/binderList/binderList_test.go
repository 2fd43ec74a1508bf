package binderList

import (
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paintersrp/binders/internal/state/statetest"
)

func init() {
	color.NoColor = true
}

func TestListShowsBindersWithSongCounts(t *testing.T) {
	s := statetest.New(t)
	ctx := context.Background()

	director, err := s.Store.CreateBinder(ctx, 0, "Director")
	require.NoError(t, err)
	_, err = s.Store.CreateBinder(ctx, 4, "Tenors")
	require.NoError(t, err)
	song, err := s.Store.CreateSong(ctx, "Gloria", "Vivaldi", "")
	require.NoError(t, err)
	require.NoError(t, s.Store.LinkSong(ctx, director.ID, song.ID))

	out, err := statetest.Execute(t, Command(s))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"NUMBER", "LABEL", "SONGS"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"00", "Director", "1"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"04", "Tenors", "0"}, strings.Fields(lines[2]))
}

func TestListEmpty(t *testing.T) {
	s := statetest.New(t)

	out, err := statetest.Execute(t, Command(s), "--songs=false")
	require.NoError(t, err)
	assert.Contains(t, out, "No binders yet.")
}
