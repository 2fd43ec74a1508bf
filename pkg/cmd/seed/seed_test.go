package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paintersrp/binders/internal/state/statetest"
)

const library = `
songs:
  - title: Gloria
    composer: Vivaldi
    link: https://example.com/gloria.pdf
  - title: Ave Maria
binders:
  - number: 0
    label: Director
    songs: ["Gloria - Vivaldi", "Ave Maria"]
  - number: 1
    label: Sopranos
    songs: ["Gloria"]
`

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "library.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSeedImportsOnce(t *testing.T) {
	s := statetest.New(t)
	path := writeFile(t, library)

	out, err := statetest.Execute(t, NewCmdSeed(s), path)
	require.NoError(t, err)
	assert.Equal(t, "Created 2 binders and 2 songs; 3 songs linked.\n", out)

	out, err = statetest.Execute(t, NewCmdSeed(s), path)
	require.NoError(t, err)
	assert.Equal(t, "Created 0 binders and 0 songs; 0 songs linked.\n", out)

	binders, err := s.Store.ListBinders(context.Background())
	require.NoError(t, err)
	assert.Len(t, binders, 2)
}

func TestSeedRejectsUnknownFields(t *testing.T) {
	s := statetest.New(t)
	path := writeFile(t, "songs:\n  - titel: Gloria\n")

	_, err := statetest.Execute(t, NewCmdSeed(s), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestSeedEmptyFile(t *testing.T) {
	s := statetest.New(t)
	path := writeFile(t, "")

	out, err := statetest.Execute(t, NewCmdSeed(s), path)
	require.NoError(t, err)
	assert.Equal(t, "Created 0 binders and 0 songs; 0 songs linked.\n", out)
}

func TestSeedMissingFile(t *testing.T) {
	s := statetest.New(t)

	_, err := statetest.Execute(t, NewCmdSeed(s), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}
