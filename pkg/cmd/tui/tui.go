package tui

import (
	"errors"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/binders/internal/state"
	"github.com/Paintersrp/binders/internal/tui/app"
)

var errNotTerminal = errors.New(
	"the binder manager needs an interactive terminal; use 'binders binder ls' or 'binders song ls' instead",
)

var (
	isTerminal = func() bool {
		return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
	}
	runApp = app.Run
)

func NewCmdTUI(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tui",
		Aliases: []string{"ui"},
		Short:   "Open the binder manager.",
		Long: heredoc.Doc(`
			Open the full-screen binder manager. Browse binders, manage their
			songs, edit the song library, and work through the To Print list.

			Press q to quit at any time outside a dialog.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s)
		},
	}

	return cmd
}

func run(cmd *cobra.Command, s *state.State) error {
	if !isTerminal() {
		return errNotTerminal
	}

	a, err := app.New(cmd.Context(), s.Store, s.Opener, app.WithLogger(s.Logger.Logger))
	if err != nil {
		return err
	}
	return runApp(a)
}
