package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the board views
type Styles struct {
	Title        lipgloss.Style
	FilterBar    lipgloss.Style
	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	CardTitle    lipgloss.Style
	Muted        lipgloss.Style
	BadgeUrgent  lipgloss.Style
	BadgeSoon    lipgloss.Style
	BadgeOpen    lipgloss.Style
	Claimed      lipgloss.Style
	Banner       lipgloss.Style
	Toast        lipgloss.Style
	FormError    lipgloss.Style
	Help         lipgloss.Style
}

// DefaultStyles returns the default board styling
func DefaultStyles() Styles {
	badge := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		FilterBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		SelectedCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		CardTitle:   lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		BadgeUrgent: badge.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("160")),
		BadgeSoon:   badge.Foreground(lipgloss.Color("16")).Background(lipgloss.Color("214")),
		BadgeOpen:   badge.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("28")),
		Claimed:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("88")).
			Padding(0, 1),
		Toast: lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("28")).
			Padding(0, 1),
		FormError: lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
