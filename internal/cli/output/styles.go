package output

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles shared by commands.
type Styles struct {
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Bold      lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Key       lipgloss.Style
	Value     lipgloss.Style
}

func newStyles(lr *lipgloss.Renderer) *Styles {
	return &Styles{
		Header:    lr.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).MarginBottom(1),
		Subheader: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Bold:      lr.NewStyle().Bold(true),
		Muted:     lr.NewStyle().Foreground(lipgloss.Color("8")),
		Success:   lr.NewStyle().Foreground(lipgloss.Color("10")),
		Warning:   lr.NewStyle().Foreground(lipgloss.Color("11")),
		Error:     lr.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Key:       lr.NewStyle().Foreground(lipgloss.Color("8")),
		Value:     lr.NewStyle().Bold(true),
	}
}
