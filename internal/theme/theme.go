package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI chrome.
// The pixel frame carries its own colors; these cover the modal, footer,
// and status text drawn as regular cells.
type Styles struct {
	ModalBorder *lipgloss.Style
	ModalTitle  *lipgloss.Style
	ModalBody   *lipgloss.Style
	ModalHint   *lipgloss.Style
	Footer      *lipgloss.Style
	FooterKey   *lipgloss.Style
	Error       *lipgloss.Style
	Info        *lipgloss.Style
}

var defaultStyles = Styles{
	ModalBorder: ptr(
		lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(1, 2),
	),
	ModalTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	ModalBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	ModalHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FooterKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
