package songList

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/binders/internal/library"
	"github.com/Paintersrp/binders/internal/state"
	"github.com/Paintersrp/binders/internal/views"
	"github.com/Paintersrp/binders/pkg/flags"
)

func Command(s *state.State) *cobra.Command {
	var noLink bool

	cmd := &cobra.Command{
		Use:     "ls [--no-link] [--binder N]",
		Aliases: []string{"list"},
		Short:   "List songs in the library or in one binder.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, noLink)
		},
	}

	cmd.Flags().BoolVar(&noLink, "no-link", false, "Only show songs without a link")
	flags.AddBinder(cmd, "Only show songs in this binder")

	return cmd
}

func run(cmd *cobra.Command, s *state.State, noLink bool) error {
	ctx := cmd.Context()

	number, set, err := flags.HandleBinder(cmd)
	if err != nil {
		return err
	}

	var songs []library.Song
	if set {
		b, err := s.Store.BinderByNumber(ctx, number)
		if err != nil {
			return err
		}
		songs, err = s.Store.ListBinderSongs(ctx, b.ID)
		if err != nil {
			return err
		}
	} else {
		songs, err = s.Store.ListSongs(ctx)
		if err != nil {
			return err
		}
	}

	if noLink {
		filtered := songs[:0]
		for _, song := range songs {
			if !song.HasLink() {
				filtered = append(filtered, song)
			}
		}
		songs = filtered
	}

	return views.Songs(cmd.OutOrStdout(), songs)
}
