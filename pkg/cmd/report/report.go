package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/binders/internal/report"
	"github.com/Paintersrp/binders/internal/state"
)

const wordWrap = 100

type options struct {
	bySong bool
	html   string
}

var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func NewCmdReport(s *state.State) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     "report [--by-song] [--html FILE]",
		Aliases: []string{"r", "print"},
		Short:   "Show which songs each binder is missing from the director's binder.",
		Long: heredoc.Doc(`
			Print the To Print report: every binder's songs that are in the
			director's binder but not in that binder. With --by-song the report
			lists how many copies of each song to print instead.

			With --html the report is written to a printable HTML page.

			Examples:
			  binders report
			  binders report --by-song
			  binders report --by-song --html to-print.html
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.bySong, "by-song", false, "Total the copies needed per song")
	cmd.Flags().StringVar(&opts.html, "html", "", "Write the report to this HTML file")

	return cmd
}

func run(cmd *cobra.Command, s *state.State, opts options) error {
	ctx := cmd.Context()

	binders, err := s.Store.ListBinders(ctx)
	if err != nil {
		return err
	}

	r, found, err := report.Load(ctx, s.Store, binders)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	md := report.Markdown(r, found, opts.bySong)

	if path := strings.TrimSpace(opts.html); path != "" {
		page, err := report.HTML(md, "To Print")
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, page, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote report to %s.\n", path)
		return nil
	}

	if !isTerminal() {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}

	out, err := render(md)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func render(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(wordWrap),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return out, nil
}
