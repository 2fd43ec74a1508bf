package binderRemove

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
		Use:     "rm <number> [--yes]",
		Aliases: []string{"remove"},
		Short:   "Remove a binder and its song links.",
		Long: heredoc.Doc(`
			Remove the binder with the given number. Songs stay in the library;
			only the binder's links to them are removed.

			Examples:
			  binders binder rm 12
			  binders binder rm 12 --yes
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
	number, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid binder number %q", arg)
	}

	yes, err := flags.HandleYes(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	b, err := s.Store.BinderByNumber(ctx, number)
	if err != nil {
		return err
	}

	if !yes {
		ok, err := prompt.Confirm(fmt.Sprintf("Remove %s?", b.Heading()))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled.")
			return nil
		}
	}

	if err := s.Store.DeleteBinder(ctx, b.ID); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", b.Heading())
	return nil
}
