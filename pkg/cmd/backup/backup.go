package backup

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/binders/internal/state"
	"github.com/Paintersrp/binders/pkg/cmd/backup/backupList"
	"github.com/Paintersrp/binders/pkg/cmd/backup/backupPush"
)

func NewCmdBackup(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Copy the database to S3 or list earlier copies.",
		Long: heredoc.Doc(`
			Back up the database file to an S3 bucket (or any S3-compatible
			store). Credentials come from the backup section of the config or
			from the usual AWS environment and profiles.

			Do not run a backup while the interface is open.

			Examples:
			  binders backup push --bucket choir-backups --save
			  binders backup list --since 2024-09-01
		`),
	}

	cmd.AddCommand(
		backupPush.Command(s),
		backupList.Command(s),
	)

	return cmd
}
