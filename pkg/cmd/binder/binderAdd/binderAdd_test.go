package binderAdd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paintersrp/binders/internal/state/statetest"
	"github.com/Paintersrp/binders/internal/store"
)

func TestAddJoinsLabelWords(t *testing.T) {
	s := statetest.New(t)

	out, err := statetest.Execute(t, Command(s), "7", "Second", "sopranos")
	require.NoError(t, err)
	assert.Equal(t, "Added Binder 07.\n", out)

	b, err := s.Store.BinderByNumber(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Second sopranos", b.Label)
}

func TestAddRejectsBadNumber(t *testing.T) {
	s := statetest.New(t)

	_, err := statetest.Execute(t, Command(s), "seven", "Basses")
	require.Error(t, err)
}

func TestAddRejectsDuplicate(t *testing.T) {
	s := statetest.New(t)

	_, err := statetest.Execute(t, Command(s), "2", "Altos")
	require.NoError(t, err)

	_, err = statetest.Execute(t, Command(s), "2", "Altos")
	assert.ErrorIs(t, err, store.ErrDuplicate)
}
