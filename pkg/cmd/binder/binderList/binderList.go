package binderList

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/binders/internal/state"
	"github.com/Paintersrp/binders/internal/views"
)

func Command(s *state.State) *cobra.Command {
	var counts bool

	cmd := &cobra.Command{
		Use:     "ls [--songs]",
		Aliases: []string{"list"},
		Short:   "List binders in number order.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, counts)
		},
	}

	cmd.Flags().BoolVar(&counts, "songs", true, "Show how many songs each binder holds")

	return cmd
}

func run(cmd *cobra.Command, s *state.State, withCounts bool) error {
	ctx := cmd.Context()

	binders, err := s.Store.ListBinders(ctx)
	if err != nil {
		return err
	}

	var counts map[int64]int
	if withCounts {
		counts = make(map[int64]int, len(binders))
		for _, b := range binders {
			songs, err := s.Store.ListBinderSongs(ctx, b.ID)
			if err != nil {
				return fmt.Errorf("failed to count songs in %s: %w", b.Heading(), err)
			}
			counts[b.ID] = len(songs)
		}
	}

	return views.Binders(cmd.OutOrStdout(), binders, counts)
}
