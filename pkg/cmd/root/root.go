package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/binders/internal/constants"
	"github.com/Paintersrp/binders/internal/state"
	"github.com/Paintersrp/binders/pkg/cmd/backup"
	"github.com/Paintersrp/binders/pkg/cmd/binder"
	"github.com/Paintersrp/binders/pkg/cmd/open"
	"github.com/Paintersrp/binders/pkg/cmd/report"
	"github.com/Paintersrp/binders/pkg/cmd/seed"
	"github.com/Paintersrp/binders/pkg/cmd/song"
	"github.com/Paintersrp/binders/pkg/cmd/tui"
)

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	var dbPath string

	cmd := &cobra.Command{
		Use:     constants.AppName,
		Version: constants.Version,
		Short:   "Keep track of which songs are in which choir binder.",
		Long: heredoc.Doc(`
			A manager for choir binders. Each binder holds a set of songs; binder 0
			is the director's binder with the master list. The To Print view shows
			which songs every other binder is still missing.

			Run without a command to open the binder manager.

			Examples:
			  binders
			  binders binder ls
			  binders song add "Ave Maria" --composer Biebl
			  binders report --by-song
		`),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.Open()
		},
		RunE: tui.NewCmdTUI(s).RunE,
	}

	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file to use instead of the configured one")
	viper.BindPFlag("database", cmd.PersistentFlags().Lookup("db"))

	cmd.PersistentFlags().StringVar(&s.ConfigPath, "config", "", "Config file (default is $HOME/.choir-binder-manager/cfg.yaml)")

	cmd.AddCommand(
		tui.NewCmdTUI(s),
		binder.NewCmdBinder(s),
		song.NewCmdSong(s),
		open.NewCmdOpen(s),
		report.NewCmdReport(s),
		seed.NewCmdSeed(s),
		backup.NewCmdBackup(s),
	)

	return cmd, nil
}
