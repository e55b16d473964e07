package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	subtle   lipgloss.Style
	prompt   lipgloss.Style
	option   lipgloss.Style
	selected lipgloss.Style
	locked   lipgloss.Style
	hidden   lipgloss.Style
	ladder   lipgloss.Style
	safe     lipgloss.Style
	current  lipgloss.Style
	panel    lipgloss.Style
	good     lipgloss.Style
	bad      lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{
			title: plain.Bold(true), subtle: plain, prompt: plain.Bold(true),
			option: plain, selected: plain.Underline(true), locked: plain.Bold(true).Underline(true),
			hidden: plain, ladder: plain, safe: plain.Bold(true), current: plain.Reverse(true),
			panel: plain.Padding(0, 1), good: plain.Bold(true), bad: plain.Bold(true),
		}
	}
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		subtle:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		prompt:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")),
		option:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		locked:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("214")),
		hidden:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		ladder:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		safe:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")),
		current:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("220")),
		panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1),
		good:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		bad:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}
