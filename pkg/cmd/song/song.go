package song

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/binders/internal/state"
	"github.com/Paintersrp/binders/pkg/cmd/song/songAdd"
	"github.com/Paintersrp/binders/pkg/cmd/song/songLink"
	"github.com/Paintersrp/binders/pkg/cmd/song/songList"
	"github.com/Paintersrp/binders/pkg/cmd/song/songRemove"
)

func NewCmdSong(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "song",
		Aliases: []string{"s"},
		Short:   "List, add, remove, or link songs.",
		Long: heredoc.Doc(`
			Manage the song library without opening the interface. Songs are
			identified by the id shown in "binders song ls".

			Examples:
			  binders song ls --no-link
			  binders song add "Ave Maria" --composer Biebl
			  binders song link 14 --binder 3
			  binders song rm 14
		`),
	}

	cmd.AddCommand(
		songList.Command(s),
		songAdd.Command(s),
		songRemove.Command(s),
		songLink.Command(s),
	)

	return cmd
}
