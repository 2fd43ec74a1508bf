package app

import "github.com/charmbracelet/lipgloss"

var (
	accent    = lipgloss.Color("11")
	subtle    = lipgloss.Color("8")
	muted     = lipgloss.Color("7")
	linkColor = lipgloss.Color("14")

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle)

	selectedCardStyle = cardStyle.Copy().
				BorderForeground(accent).
				Foreground(accent)

	cardTitleStyle = lipgloss.NewStyle().Bold(true)

	patternStyle         = lipgloss.NewStyle().Foreground(subtle)
	selectedPatternStyle = lipgloss.NewStyle().Foreground(muted)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(subtle).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(linkColor)

	composerStyle = lipgloss.NewStyle().Foreground(muted)
	linkStyle     = lipgloss.NewStyle().Foreground(linkColor)

	noLinkStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	keyStyle    = lipgloss.NewStyle().Bold(true).Foreground(linkColor)

	activeFieldStyle = lipgloss.NewStyle().Foreground(accent)
	emptyFieldStyle  = lipgloss.NewStyle().Foreground(subtle)
	ghostStyle       = lipgloss.NewStyle().Foreground(subtle)
	hintStyle        = lipgloss.NewStyle().Foreground(muted)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accent).
			Padding(1, 2)

	choiceStyle         = lipgloss.NewStyle()
	selectedChoiceStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)

	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	footerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(subtle)
)
