// Package statetest builds command state backed by a throwaway database.
package statetest

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/binders/internal/config"
	"github.com/Paintersrp/binders/internal/constants"
	"github.com/Paintersrp/binders/internal/logger"
	"github.com/Paintersrp/binders/internal/state"
	"github.com/Paintersrp/binders/internal/store"
)

func New(t testing.TB) *state.State {
	t.Helper()

	home := t.TempDir()
	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("create config: %v", err)
	}
	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	st, err := store.Open(filepath.Join(home, constants.DatabaseFile), nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	return &state.State{
		Home:   home,
		Config: cfg,
		Logger: logger.Discard(),
		Store:  st,
	}
}

// Execute runs cmd with args and returns what it printed.
func Execute(t testing.TB, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SilenceUsage = true
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}
