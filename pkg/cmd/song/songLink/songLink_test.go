package songLink

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paintersrp/binders/internal/state/statetest"
	"github.com/Paintersrp/binders/pkg/prompt"
)

func TestLinkWithBinderFlag(t *testing.T) {
	s := statetest.New(t)
	ctx := context.Background()
	altos, err := s.Store.CreateBinder(ctx, 2, "Altos")
	require.NoError(t, err)
	_, err = s.Store.CreateSong(ctx, "Gloria", "", "")
	require.NoError(t, err)

	out, err := statetest.Execute(t, Command(s), "1", "--binder", "2")
	require.NoError(t, err)
	assert.Equal(t, "Added 'Gloria' to Binder 02.\n", out)

	songs, err := s.Store.ListBinderSongs(ctx, altos.ID)
	require.NoError(t, err)
	require.Len(t, songs, 1)
}

func TestLinkOffersOnlyBindersWithoutTheSong(t *testing.T) {
	s := statetest.New(t)
	ctx := context.Background()
	director, err := s.Store.CreateBinder(ctx, 0, "Director")
	require.NoError(t, err)
	tenors, err := s.Store.CreateBinder(ctx, 4, "Tenors")
	require.NoError(t, err)
	song, err := s.Store.CreateSong(ctx, "Gloria", "", "")
	require.NoError(t, err)
	require.NoError(t, s.Store.LinkSong(ctx, director.ID, song.ID))

	var offered []string
	orig := prompt.Select
	prompt.Select = func(question string, choices []string) (string, error) {
		offered = choices
		return choices[0], nil
	}
	t.Cleanup(func() { prompt.Select = orig })

	_, err = statetest.Execute(t, Command(s), "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Binder 04 (Tenors)"}, offered)

	songs, err := s.Store.ListBinderSongs(ctx, tenors.ID)
	require.NoError(t, err)
	assert.Len(t, songs, 1)
}

func TestLinkWhenEveryBinderHasSong(t *testing.T) {
	s := statetest.New(t)
	ctx := context.Background()
	director, err := s.Store.CreateBinder(ctx, 0, "Director")
	require.NoError(t, err)
	song, err := s.Store.CreateSong(ctx, "Gloria", "", "")
	require.NoError(t, err)
	require.NoError(t, s.Store.LinkSong(ctx, director.ID, song.ID))

	_, err = statetest.Execute(t, Command(s), "1")
	require.Error(t, err)
	assert.Equal(t, "every binder already holds this song", err.Error())
}
