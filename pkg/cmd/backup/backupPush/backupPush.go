package backupPush

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/binders/internal/backup"
	"github.com/Paintersrp/binders/internal/config"
	"github.com/Paintersrp/binders/internal/state"
)

type pusher interface {
	Push(ctx context.Context, dbPath string) (backup.Object, error)
}

var connect = func(ctx context.Context, cfg config.BackupConfig) (pusher, error) {
	return backup.New(ctx, cfg)
}

type options struct {
	bucket string
	prefix string
	save   bool
}

func Command(s *state.State) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     "push [--bucket name] [--prefix path] [--save]",
		Aliases: []string{"p"},
		Short:   "Upload a copy of the database.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, opts)
		},
	}

	cmd.Flags().StringVar(&opts.bucket, "bucket", "", "Bucket to upload to (default from config)")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "Key prefix for the backup (default from config)")
	cmd.Flags().BoolVar(&opts.save, "save", false, "Remember --bucket and --prefix in the config")

	return cmd
}

func run(cmd *cobra.Command, s *state.State, opts options) error {
	ctx := cmd.Context()

	cfg := s.Config.Backup
	if b := strings.TrimSpace(opts.bucket); b != "" {
		cfg.Bucket = b
	}
	if p := strings.TrimSpace(opts.prefix); p != "" {
		cfg.Prefix = p
	}

	if opts.save {
		if err := s.Config.SetBackupBucket(cfg.Bucket, cfg.Prefix); err != nil {
			return fmt.Errorf("failed to save backup settings: %w", err)
		}
	}

	client, err := connect(ctx, cfg)
	if err != nil {
		return err
	}

	if err := s.Store.Checkpoint(ctx); err != nil {
		return err
	}

	obj, err := client.Push(ctx, s.Store.Path())
	if err != nil {
		s.Logger.Warn("backup failed", "bucket", cfg.Bucket, "error", err)
		return err
	}

	s.Logger.Info("backup uploaded", "bucket", cfg.Bucket, "key", obj.Key, "size", obj.Size)
	fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s to %s (%d bytes).\n", obj.Key, cfg.Bucket, obj.Size)
	return nil
}
