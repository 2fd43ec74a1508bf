package songAdd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paintersrp/binders/internal/library"
	"github.com/Paintersrp/binders/internal/state/statetest"
)

func TestAddCreatesSong(t *testing.T) {
	s := statetest.New(t)

	out, err := statetest.Execute(t, Command(s), "  Gloria ", "--composer", "Vivaldi", "--link", "https://example.com/g")
	require.NoError(t, err)
	assert.Equal(t, "Song created: Gloria - Vivaldi (id 1).\n", out)

	song, err := s.Store.SongByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Gloria", song.Title)
	assert.Equal(t, "https://example.com/g", song.Link)
}

func TestAddRequiresTitle(t *testing.T) {
	s := statetest.New(t)

	_, err := statetest.Execute(t, Command(s), "   ")
	require.Error(t, err)
	assert.Equal(t, library.MsgSongTitleRequired, err.Error())
}
