package open

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/binders/internal/fzf"
	"github.com/Paintersrp/binders/internal/library"
	"github.com/Paintersrp/binders/internal/state"
	"github.com/Paintersrp/binders/pkg/flags"
)

var errNoLink = errors.New("this song does not have a link")

var (
	copyLink = clipboard.WriteAll
	pickSong = func(songs []library.Song, query string) (library.Song, error) {
		return fzf.NewSongFinder(songs, "Select a song to open.").Run(query)
	}
)

func NewCmdOpen(s *state.State) *cobra.Command {
	var copyOnly bool

	cmd := &cobra.Command{
		Use:     "open [query] [--copy] [--binder N]",
		Aliases: []string{"o"},
		Short:   "Fuzzy-find a song and open its link.",
		Long: heredoc.Doc(`
			Pick a song with the fuzzy finder and open its sheet music link with
			the configured opener. An optional query pre-fills the finder.

			Examples:
			  binders open
			  binders open gloria
			  binders open --binder 3 --copy
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			return run(cmd, s, query, copyOnly)
		},
	}

	cmd.Flags().BoolVarP(&copyOnly, "copy", "c", false, "Copy the link to the clipboard instead of opening it")
	flags.AddBinder(cmd, "Only offer songs in this binder")

	return cmd
}

func run(cmd *cobra.Command, s *state.State, query string, copyOnly bool) error {
	songs, err := candidates(cmd, s)
	if err != nil {
		return err
	}

	song, err := pickSong(songs, query)
	if err != nil {
		if errors.Is(err, fzf.ErrNoSelection) {
			fmt.Fprintln(cmd.OutOrStdout(), "No song selected.")
			return nil
		}
		return err
	}

	if !song.HasLink() {
		return errNoLink
	}

	if copyOnly {
		if err := copyLink(song.Link); err != nil {
			return fmt.Errorf("failed to copy link: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Copied link for %s.\n", song.DisplayTitle())
		return nil
	}

	if err := s.Opener.Open(song.Link); err != nil {
		return fmt.Errorf("failed to open link: %w", err)
	}
	s.Logger.Info("opened song link", "song_id", song.ID)
	fmt.Fprintf(cmd.OutOrStdout(), "Opened %s.\n", song.DisplayTitle())
	return nil
}

func candidates(cmd *cobra.Command, s *state.State) ([]library.Song, error) {
	ctx := cmd.Context()

	number, set, err := flags.HandleBinder(cmd)
	if err != nil {
		return nil, err
	}
	if !set {
		return s.Store.ListSongs(ctx)
	}

	b, err := s.Store.BinderByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return s.Store.ListBinderSongs(ctx, b.ID)
}
