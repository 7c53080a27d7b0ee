package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title           lipgloss.Style
	Dim             lipgloss.Style
	Progress        lipgloss.Style
	Status          lipgloss.Style
	StatusError     lipgloss.Style
	Prompt          lipgloss.Style
	Help            lipgloss.Style
	Main            lipgloss.Style
	Faded           lipgloss.Style
	MenuBox         lipgloss.Style
	MenuItem        lipgloss.Style
	MenuCurrent     lipgloss.Style
	MenuCursor      lipgloss.Style
	Match           lipgloss.Style
	Control         lipgloss.Style
	ControlActive   lipgloss.Style
	ControlDisabled lipgloss.Style
	Notes           lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:      lipgloss.NewStyle().Faint(true),
		Progress: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:        lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(0, 1),
		Faded: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		MenuBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		MenuItem:    lipgloss.NewStyle(),
		MenuCurrent: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		MenuCursor:  lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Match:       lipgloss.NewStyle().Foreground(lipgloss.Color("226")), // search hit
		Control: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")),
		ControlActive: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("99")),
		ControlDisabled: lipgloss.NewStyle().
			Padding(0, 1).
			Faint(true),
		Notes: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
	}
}
