package songLink

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/binders/internal/library"
	"github.com/Paintersrp/binders/internal/state"
	"github.com/Paintersrp/binders/pkg/flags"
	"github.com/Paintersrp/binders/pkg/prompt"
)

func Command(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "link <song-id> [--binder N]",
		Aliases: []string{"l"},
		Short:   "Add a song to a binder.",
		Long: heredoc.Doc(`
			Add a library song to a binder. Without --binder you pick the binder
			from a list of those that do not hold the song yet.

			Examples:
			  binders song link 14 --binder 3
			  binders song link 14
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, args[0])
		},
	}

	flags.AddBinder(cmd, "Number of the binder to add the song to")

	return cmd
}

func run(cmd *cobra.Command, s *state.State, arg string) error {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid song id %q", arg)
	}

	number, set, err := flags.HandleBinder(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	song, err := s.Store.SongByID(ctx, id)
	if err != nil {
		return err
	}

	var target library.Binder
	if set {
		target, err = s.Store.BinderByNumber(ctx, number)
		if err != nil {
			return err
		}
	} else {
		target, err = chooseBinder(cmd, s, song)
		if err != nil {
			return err
		}
	}

	if err := s.Store.LinkSong(ctx, target.ID, song.ID); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added '%s' to %s.\n", song.DisplayTitle(), target.Heading())
	return nil
}

// chooseBinder offers the binders that do not already hold song.
func chooseBinder(cmd *cobra.Command, s *state.State, song library.Song) (library.Binder, error) {
	ctx := cmd.Context()

	binders, err := s.Store.ListBinders(ctx)
	if err != nil {
		return library.Binder{}, err
	}

	choices := make([]string, 0, len(binders))
	byChoice := make(map[string]library.Binder, len(binders))
	for _, b := range binders {
		available, err := s.Store.ListAvailableSongs(ctx, b.ID)
		if err != nil {
			return library.Binder{}, err
		}
		if !contains(available, song.ID) {
			continue
		}

		choice := b.Heading()
		if b.Label != "" {
			choice += " (" + b.Label + ")"
		}
		choices = append(choices, choice)
		byChoice[choice] = b
	}

	if len(choices) == 0 {
		return library.Binder{}, errors.New("every binder already holds this song")
	}

	picked, err := prompt.Select(fmt.Sprintf("Add '%s' to which binder?", song.DisplayTitle()), choices)
	if err != nil {
		return library.Binder{}, err
	}
	return byChoice[picked], nil
}

func contains(songs []library.Song, id int64) bool {
	for _, s := range songs {
		if s.ID == id {
			return true
		}
	}
	return false
}
