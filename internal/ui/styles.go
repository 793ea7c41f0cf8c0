package ui

import "github.com/charmbracelet/lipgloss"

var (
	outputPanelStyle = lipgloss.NewStyle().
				PaddingTop(1).
				PaddingBottom(0).
				PaddingLeft(2).
				PaddingRight(0)

	sidePanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingBottom(0).
			PaddingLeft(1).
			PaddingRight(1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	echoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")). // teal
			Bold(true)

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	attemptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	modalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	modalSelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	buttonSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)

	equipOccupiedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")) // occupied slot marker

	equipEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	vpadEnabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("86")).
				Bold(true)

	vpadDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("238"))

	mapBorderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")) // blocked-exit edge

	mapFaintBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("236")) // empty-cell grid line

	cityPlayerStyle = lipgloss.NewStyle().
			Reverse(true).
			Bold(true)
)
