package flags

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestBinderFlag(t *testing.T) {
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	AddBinder(cmd, "binder number")
	AddYes(cmd)

	if _, set, err := HandleBinder(cmd); err != nil || set {
		t.Fatalf("expected unset binder flag, got set=%v err=%v", set, err)
	}

	if err := cmd.Flags().Parse([]string{"--binder", "0", "-y"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	number, set, err := HandleBinder(cmd)
	if err != nil || !set || number != 0 {
		t.Fatalf("expected binder 0, got %d set=%v err=%v", number, set, err)
	}
	if yes, err := HandleYes(cmd); err != nil || !yes {
		t.Fatalf("expected yes, got %v err=%v", yes, err)
	}
}
