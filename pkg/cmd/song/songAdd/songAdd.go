package songAdd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/binders/internal/library"
	"github.com/Paintersrp/binders/internal/state"
)

type options struct {
	composer string
	link     string
}

func Command(s *state.State) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     "add <title> [--composer name] [--link url]",
		Aliases: []string{"a"},
		Short:   "Add a song to the library.",
		Long: heredoc.Doc(`
			Add a song to the library. The song is not placed in any binder; use
			"binders song link" for that.

			Examples:
			  binders song add "Ubi Caritas" --composer Duruflé
			  binders song add Gloria --composer Vivaldi --link https://example.com/gloria.pdf
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.composer, "composer", "c", "", "Composer of the song")
	cmd.Flags().StringVarP(&opts.link, "link", "l", "", "Link to the sheet music")

	return cmd
}

func run(cmd *cobra.Command, s *state.State, title string, opts options) error {
	in, err := library.ParseSongInput(title, opts.composer, opts.link)
	if err != nil {
		return err
	}

	song, err := s.Store.CreateSong(cmd.Context(), in.Title, in.Composer, in.Link)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Song created: %s (id %d).\n", song.DisplayTitle(), song.ID)
	return nil
}
