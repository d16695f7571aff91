package storefront

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	name     lipgloss.Style
	detail   lipgloss.Style
	price    lipgloss.Style
	warning  lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
	total    lipgloss.Style
	roleTag  lipgloss.Style
	redirect lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		name:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		price:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
		total:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		roleTag:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		redirect: lipgloss.NewStyle().Faint(true).Italic(true),
	}
}
