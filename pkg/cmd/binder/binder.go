package binder

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/binders/internal/state"
	"github.com/Paintersrp/binders/pkg/cmd/binder/binderAdd"
	"github.com/Paintersrp/binders/pkg/cmd/binder/binderList"
	"github.com/Paintersrp/binders/pkg/cmd/binder/binderRemove"
)

func NewCmdBinder(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "binder",
		Aliases: []string{"b"},
		Short:   "List, add, or remove binders.",
		Long: heredoc.Doc(`
			Manage binders without opening the interface. Binder 0 is the
			director's binder and holds the master song list.

			Examples:
			  binders binder ls
			  binders binder add 3 Altos
			  binders binder rm 3
		`),
	}

	cmd.AddCommand(
		binderList.Command(s),
		binderAdd.Command(s),
		binderRemove.Command(s),
	)

	return cmd
}
