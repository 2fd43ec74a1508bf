package backupList

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/binders/internal/backup"
	"github.com/Paintersrp/binders/internal/config"
	"github.com/Paintersrp/binders/internal/state"
	"github.com/Paintersrp/binders/internal/views"
)

type lister interface {
	List(ctx context.Context, since time.Time) ([]backup.Object, error)
}

var connect = func(ctx context.Context, cfg config.BackupConfig) (lister, error) {
	return backup.New(ctx, cfg)
}

func Command(s *state.State) *cobra.Command {
	var since string

	cmd := &cobra.Command{
		Use:     "list [--since date]",
		Aliases: []string{"ls"},
		Short:   "List uploaded backups, newest first.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, since)
		},
	}

	cmd.Flags().StringVar(&since, "since", "", "Only list backups taken on or after this date")

	return cmd
}

func run(cmd *cobra.Command, s *state.State, since string) error {
	var from time.Time
	if raw := strings.TrimSpace(since); raw != "" {
		t, err := dateparse.ParseLocal(raw)
		if err != nil {
			return fmt.Errorf("invalid --since date %q: %w", raw, err)
		}
		from = t
	}

	ctx := cmd.Context()
	client, err := connect(ctx, s.Config.Backup)
	if err != nil {
		return err
	}

	objects, err := client.List(ctx, from)
	if err != nil {
		return err
	}
	return views.Backups(cmd.OutOrStdout(), objects)
}
