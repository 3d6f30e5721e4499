package tui

import "github.com/charmbracelet/lipgloss"

// Styles collects the lipgloss styles used across the screens.
type Styles struct {
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Faint        lipgloss.Style
	Selected     lipgloss.Style
	ErrorField   lipgloss.Style
	ErrorMessage lipgloss.Style
	Category     lipgloss.Style
	DateHeader   lipgloss.Style
	Card         lipgloss.Style
	Supplemental lipgloss.Style
	Help         lipgloss.Style
	ModalBox     lipgloss.Style
	ModalChoice  lipgloss.Style
	ModalActive  lipgloss.Style
}

// DefaultStyles returns the built-in look.
func DefaultStyles() Styles {
	return Styles{
		Title:        lipgloss.NewStyle().Bold(true),
		Subtitle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Faint:        lipgloss.NewStyle().Faint(true),
		Selected:     lipgloss.NewStyle().Reverse(true),
		ErrorField:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		ErrorMessage: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Category:     lipgloss.NewStyle().Bold(true),
		DateHeader:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
		Supplemental: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Help:         lipgloss.NewStyle().Faint(true),
		ModalBox: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(1, 2),
		ModalChoice: lipgloss.NewStyle().Padding(0, 1),
		ModalActive: lipgloss.NewStyle().Padding(0, 1).Reverse(true),
	}
}
