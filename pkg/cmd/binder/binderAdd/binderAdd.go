package binderAdd

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/binders/internal/library"
	"github.com/Paintersrp/binders/internal/state"
)

func Command(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add <number> <label...>",
		Aliases: []string{"a"},
		Short:   "Add a binder.",
		Long: heredoc.Doc(`
			Add a binder with the given number and label. Use number 0
			for the director's binder.

			Examples:
			  binders binder add 0 Director
			  binders binder add 12 "Second sopranos"
		`),
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, args[0], strings.Join(args[1:], " "))
		},
	}

	return cmd
}

func run(cmd *cobra.Command, s *state.State, number, label string) error {
	in, err := library.ParseBinderInput(number, label)
	if err != nil {
		return err
	}

	b, err := s.Store.CreateBinder(cmd.Context(), in.Number, in.Label)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s.\n", b.Heading())
	return nil
}
