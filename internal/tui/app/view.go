package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/Paintersrp/binders/internal/library"
	"github.com/Paintersrp/binders/internal/report"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	songCardHeight  = 5
	minBinderCard   = 6
	searchBarHeight = 3
)

// binderArt are the cover textures cycled across binder cards.
var binderArt = [][]string{
	{"/\\/\\/", "\\/\\/\\"},
	{"*+*+", "+*+*"},
	{"=--=", "--=="},
	{"<>><", "><<>"},
	{"..--", "--.."},
	{"oOo ", " OoO"},
	{"##  ", "  ##"},
	{"||--", "--||"},
	{"[]__", "__[]"},
	{"~~  ", "  ~~"},
	{"^v^v", "v^v^"},
	{"&&..", "..&&"},
	{"::''", "''::"},
	{"+-+-", "-+-+"},
	{"ooOO", "OOoo"},
	{"[]<>", "<>[]"},
	{"/--/", "--//"},
	{"=__=", "__=="},
	{"|..|", ".||."},
	{"x  x", "  xx"},
}

func (a *App) size() (int, int) {
	w, h := a.width, a.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// View renders the whole frame.
func (a *App) View() string {
	width, height := a.size()

	footer := a.viewFooter(width)
	bodyHeight := max(height-lipgloss.Height(footer), 1)

	var body string
	if dialog := a.viewDialog(width); dialog != "" {
		body = lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center, dialog)
	} else if m, ok := a.mode.(searchingMode); ok {
		bar := a.viewSearchBar(width, m.search)
		body = lipgloss.JoinVertical(lipgloss.Left, bar, a.viewScreen(width, max(bodyHeight-lipgloss.Height(bar), 1)))
	} else {
		body = a.viewScreen(width, bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (a *App) viewScreen(width, height int) string {
	switch s := a.screen.(type) {
	case *songScreen:
		return a.viewSongs(s, width, height)
	case *songManagerScreen:
		return a.viewManager(s, width, height)
	case *toPrintScreen:
		return a.viewToPrint(s, width, height)
	default:
		return a.viewBinders(width, height)
	}
}

func centered(width, height int, text string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text)
}

func (a *App) viewBinders(width, height int) string {
	if len(a.binders) == 0 {
		return centered(width, height, "No binders yet. Press '+' to add one.")
	}

	rows := (len(a.binders) + GridColumns - 1) / GridColumns
	visible := clamp(height/minBinderCard, 1, rows)
	cardHeight := height / visible
	cardWidth := width / GridColumns

	selectedRow := a.selected / GridColumns
	start := max(selectedRow-visible+1, 0)

	var lines []string
	for row := start; row < start+visible && row < rows; row++ {
		var cards []string
		for col := 0; col < GridColumns; col++ {
			i := row*GridColumns + col
			if i >= len(a.binders) {
				break
			}
			cards = append(cards, binderCard(a.binders[i], i, cardWidth, cardHeight, i == a.selected))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func binderCard(b library.Binder, index, width, height int, selected bool) string {
	innerWidth := max(width-2, 1)
	innerHeight := max(height-2, 2)

	style := cardStyle
	if selected {
		style = selectedCardStyle
	}

	title := cardTitleStyle.Render(truncate.String(b.Heading(), uint(innerWidth)))
	cover := coverLines(b.Label, binderArt[index%len(binderArt)], innerWidth, innerHeight-1, selected)

	content := append([]string{title}, cover...)
	return style.Width(innerWidth).Height(innerHeight).Render(strings.Join(content, "\n"))
}

// coverLines fills height rows with the repeated pattern, leaving a spacer
// and the bracketed label at the bottom.
func coverLines(label string, pattern []string, width, height int, selected bool) []string {
	if width <= 0 || height <= 0 {
		return nil
	}

	ps := patternStyle
	if selected {
		ps = selectedPatternStyle
	}

	labelLines := 1
	if height >= 2 {
		labelLines = 2
	}

	lines := make([]string, 0, height)
	for i := 0; i < height-labelLines; i++ {
		lines = append(lines, ps.Render(repeatPattern(pattern[i%len(pattern)], width)))
	}
	if height >= 2 {
		lines = append(lines, strings.Repeat(" ", width))
	}

	line := labelLine(label, width)
	if selected {
		line = cardTitleStyle.Render(line)
	}
	return append(lines, line)
}

func repeatPattern(row string, width int) string {
	if row == "" {
		return strings.Repeat(" ", width)
	}
	return strings.Repeat(row, width/len(row)+2)[:width]
}

func labelLine(label string, width int) string {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return strings.Repeat(" ", width)
	}
	decorated := truncate.String(fmt.Sprintf("[ %s ]", trimmed), uint(width))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, decorated)
}

func (a *App) viewSongs(s *songScreen, width, height int) string {
	header := panelStyle.Width(max(width-2, 1)).Render(strings.Join([]string{
		panelTitleStyle.Render("Binder Songs"),
		cardTitleStyle.Render(s.binder.Heading()) + "  •  " + s.binder.Label,
		fmt.Sprintf("%d songs linked", len(s.list.songs)),
	}, "\n"))
	rest := max(height-lipgloss.Height(header), 1)

	var list string
	if len(s.list.songs) == 0 {
		list = emptyPanel(width, rest, "", "No songs yet. Press '+' to add one.")
	} else if len(s.list.filtered) == 0 {
		list = emptyPanel(width, rest, "", "No songs match the current search.")
	} else {
		list = songCards(s.list.filtered, s.list.selected, width, rest)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, list)
}

func (a *App) viewManager(s *songManagerScreen, width, height int) string {
	var parts []string
	rest := height

	if s.list.noLink {
		indicator := panelStyle.Width(max(width-2, 1)).Render(strings.Join([]string{
			cardTitleStyle.Render("Song Manager"),
			noLinkStyle.Render("No-link filter active") +
				" - showing only songs without links (press " +
				keyStyle.Render("[l]") + " to show all)",
		}, "\n"))
		parts = append(parts, indicator)
		rest = max(rest-lipgloss.Height(indicator), 1)
	}

	switch {
	case len(s.list.songs) == 0:
		parts = append(parts, emptyPanel(width, rest, "All Songs", "No songs yet. Press '+' to add one."))
	case len(s.list.filtered) == 0:
		parts = append(parts, emptyPanel(width, rest, "All Songs", managerEmptyMessage(&s.list)))
	default:
		parts = append(parts, songCards(s.list.filtered, s.list.selected, width, rest))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func managerEmptyMessage(l *songList) string {
	switch {
	case l.noLink && l.hasQuery():
		return "No songs match the current search without links."
	case l.noLink:
		return "No songs without links yet."
	case l.hasQuery():
		return "No songs match the current search."
	}
	return "No songs to display."
}

func emptyPanel(width, height int, title, message string) string {
	innerWidth := max(width-4, 1)
	innerHeight := max(height-2, 1)

	body := centered(innerWidth, innerHeight, message)
	if title != "" {
		body = lipgloss.JoinVertical(lipgloss.Left,
			panelTitleStyle.Render(title),
			centered(innerWidth, max(innerHeight-1, 1), message))
	}
	return panelStyle.Width(innerWidth + 2).Render(body)
}

// songCards renders the window of cards that keeps the selection visible.
func songCards(songs []library.Song, selected, width, height int) string {
	capacity := max(height/songCardHeight, 1)
	start := 0
	if selected >= capacity {
		start = selected + 1 - capacity
	}
	if start+capacity > len(songs) {
		start = max(len(songs)-capacity, 0)
	}
	end := min(start+capacity, len(songs))

	innerWidth := max(width-2, 1)
	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, songCard(songs[i], i == selected, innerWidth))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func songCard(s library.Song, selected bool, width int) string {
	style := cardStyle
	title := s.Title
	if selected {
		style = selectedCardStyle
		title = pointerSelected + title
	}

	composer := strings.TrimSpace(s.Composer)
	if composer == "" {
		composer = "Unknown composer"
	}

	lines := []string{
		cardTitleStyle.Render(truncate.String(title, uint(width))),
		composerStyle.Render(truncate.String(composer, uint(width))),
	}
	if s.HasLink() {
		lines = append(lines, linkStyle.Render(truncate.String(strings.TrimSpace(s.Link), uint(width))))
	} else {
		lines = append(lines, "")
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

func (a *App) viewToPrint(s *toPrintScreen, width, height int) string {
	innerWidth := max(width-4, 1)
	innerHeight := max(height-3, 1)
	title := panelTitleStyle.Render(s.title())

	if !s.directorFound {
		body := centered(innerWidth, innerHeight, report.DirectorMissing)
		return panelStyle.Width(innerWidth + 2).Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
	}

	lines := s.lines()
	if len(lines) == 0 {
		lines = []string{report.NothingToPrint}
	}

	vp := viewport.New(innerWidth, innerHeight)
	vp.SetContent(strings.Join(lines, "\n"))
	vp.SetYOffset(s.scroll)

	return panelStyle.Width(innerWidth + 2).Render(lipgloss.JoinVertical(lipgloss.Left, title, vp.View()))
}

func (a *App) viewSearchBar(width int, s *searchState) string {
	return panelStyle.Width(max(width-2, 1)).Render("Search: " + s.query + "█")
}

func (a *App) viewFooter(width int) string {
	var statusLine string
	if a.status != nil {
		if a.status.kind == statusError {
			statusLine = errorStyle.Render(a.status.text)
		} else {
			statusLine = infoStyle.Render(a.status.text)
		}
	}

	a.help.Width = width
	return footerStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		statusLine,
		a.help.View(a.footerKeys()),
	))
}

// viewDialog renders the overlay for modes that need one, or "".
func (a *App) viewDialog(width int) string {
	dialogWidth := max(width*3/5, 30)

	switch m := a.mode.(type) {
	case addingBinderMode:
		return dialog(dialogWidth, "Add Binder", binderFormLines(m.form))
	case editingBinderMode:
		return dialog(dialogWidth, "Edit Binder", binderFormLines(m.form))
	case editingSongMode:
		return dialog(dialogWidth, "Edit Song", songFormLines(m.form))
	case creatingSongMode:
		return dialog(dialogWidth, "Create Song", songFormLines(m.form))
	case confirmBinderDeleteMode:
		return dialog(dialogWidth, "Confirm Removal", confirmLines(
			fmt.Sprintf("Remove %s (%s)?", m.binder.Heading(), m.binder.Label),
			"This will also remove any linked songs.",
		))
	case confirmSongRemoveMode:
		return dialog(dialogWidth, "Remove Song from Binder", confirmLines(
			fmt.Sprintf("Remove '%s' from this binder?", m.song.DisplayTitle()),
			"This will not delete the song from other binders.",
		))
	case confirmSongDeleteMode:
		return dialog(dialogWidth, "Delete Song", confirmLines(
			fmt.Sprintf("Delete '%s' permanently?", m.song.DisplayTitle()),
			"This will remove the song from all binders.",
		))
	case confirmToPrintExitMode:
		return dialog(dialogWidth, m.confirm.title(), exitConfirmLines(m.confirm))
	case selectingSongMode:
		_, height := a.size()
		return dialog(dialogWidth, "Add Song to Binder", pickerLines(m.picker, max(height/2, 3)))
	}
	return ""
}

func dialog(width int, title string, lines []string) string {
	content := append([]string{panelTitleStyle.Render(title), ""}, lines...)
	return dialogStyle.Width(width).Render(strings.Join(content, "\n"))
}

func fieldLine(name, value, placeholder string, active bool) string {
	style := lipgloss.NewStyle()
	display := value
	switch {
	case active:
		style = activeFieldStyle
		if value == "" {
			display = placeholder
		}
	case value == "":
		style = emptyFieldStyle
		display = placeholder
	}
	return name + ": " + style.Render(display)
}

func formFooter(err, help string) string {
	if err != "" {
		return errorStyle.Render(err)
	}
	return hintStyle.Render(help)
}

func binderFormLines(f *binderForm) []string {
	return []string{
		fieldLine("Number", f.number, requiredPlaceholder, f.active == binderNumberField),
		fieldLine("Label", f.label, requiredPlaceholder, f.active == binderLabelField),
		"",
		formFooter(f.err, "Enter to save • Tab to switch • Esc to cancel"),
	}
}

func songFormLines(f *songForm) []string {
	composer := fieldLine("Composer", f.composer, optionalPlaceholder, f.active == songComposerField)
	if f.active == songComposerField {
		composer += ghostStyle.Render(f.suggestionSuffix())
	}
	return []string{
		fieldLine("Title", f.title, requiredPlaceholder, f.active == songTitleField),
		composer,
		fieldLine("Link", f.link, optionalPlaceholder, f.active == songLinkField),
		"",
		formFooter(f.err, "Enter to save • Tab to accept/switch • Esc to cancel"),
	}
}

func confirmLines(question, detail string) []string {
	return []string{
		question,
		detail,
		"",
		hintStyle.Render("Press Y to confirm or N / Esc to cancel."),
	}
}

func exitConfirmLines(c *exitConfirm) []string {
	labels := c.labels()
	choices := make([]string, 0, len(labels))
	for i, label := range labels {
		if exitChoice(i) == c.choice {
			choices = append(choices, selectedChoiceStyle.Render(label))
		} else {
			choices = append(choices, choiceStyle.Render(label))
		}
	}
	return []string{
		c.message(),
		"",
		strings.Join(choices, "   "),
		"",
		hintStyle.Render("Use ←/→ to choose • Enter to confirm • Esc to cancel"),
	}
}

// pickerLines renders at most height items around the cursor.
func pickerLines(p *picker, height int) []string {
	start := 0
	if p.selected >= height {
		start = p.selected + 1 - height
	}
	end := min(start+height, p.len())

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		item := p.items[i]
		text := "Create a new song"
		if !item.create {
			box := "[ ]"
			if p.isChecked(i) {
				box = "[x]"
			}
			text = fmt.Sprintf("%s %s", box, item.song.DisplayTitle())
			if p.inDirector(item.song) {
				text += " ★"
			}
		}

		if i == p.selected {
			lines = append(lines, selectedChoiceStyle.Render(pointerSelected+text))
		} else {
			lines = append(lines, pointerBlank+text)
		}
	}
	return lines
}
