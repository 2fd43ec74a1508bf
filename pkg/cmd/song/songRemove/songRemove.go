package songRemove

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/binders/internal/state"
	"github.com/Paintersrp/binders/pkg/flags"
	"github.com/Paintersrp/binders/pkg/prompt"
)

func Command(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id> [--yes]",
		Aliases: []string{"remove"},
		Short:   "Delete a song from the library and every binder.",
		Long: heredoc.Doc(`
			Delete a song permanently. It is removed from all binders.

			Examples:
			  binders song rm 14
			  binders song rm 14 --yes
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, args[0])
		},
	}

	flags.AddYes(cmd)

	return cmd
}

func run(cmd *cobra.Command, s *state.State, arg string) error {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid song id %q", arg)
	}

	yes, err := flags.HandleYes(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	song, err := s.Store.SongByID(ctx, id)
	if err != nil {
		return err
	}

	if !yes {
		ok, err := prompt.Confirm(fmt.Sprintf("Delete '%s' permanently?", song.DisplayTitle()))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled.")
			return nil
		}
	}

	if err := s.Store.DeleteSong(ctx, song.ID); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Song deleted.")
	return nil
}
