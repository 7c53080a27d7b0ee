package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"podium/internal/domain"
	"podium/internal/ui/input/types"
)

var helpSections = []string{"Navigation", "Jump & Search", "Other"}

// menuBindings document the keys of menu mode
var menuBindings = []key.Binding{
	key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "move the cursor")),
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "show the highlighted slide")),
	key.NewBinding(key.WithKeys("esc", "m"), key.WithHelp("esc/m", "close the menu")),
}

// HelpRenderer builds the pages shown in the pager
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
	notes   lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		key:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		notes: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

// RenderHelp lists every binding of keys, one section per help column
func (r *HelpRenderer) RenderHelp(keys types.KeyMap) string {
	var help strings.Builder

	help.WriteString(r.title.Render("Podium Help"))
	help.WriteString("\n")

	for i, group := range keys.FullHelp() {
		name := "More"
		if i < len(helpSections) {
			name = helpSections[i]
		}
		help.WriteString(r.section.Render(name))
		help.WriteString("\n")
		for _, b := range group {
			help.WriteString(r.line(b))
		}
	}

	help.WriteString("\n")
	help.WriteString(r.section.Render("Menu"))
	help.WriteString("\n")
	for _, b := range menuBindings {
		help.WriteString(r.line(b))
	}

	return strings.TrimSuffix(help.String(), "\n")
}

func (r *HelpRenderer) line(b key.Binding) string {
	h := b.Help()
	pad := 12 - lipgloss.Width(h.Key)
	if pad < 1 {
		pad = 1
	}
	return "  " + r.key.Render(h.Key) + strings.Repeat(" ", pad) + " " + r.desc.Render(h.Desc) + "\n"
}

// RenderNotes builds the speaker notes page for slide index of deck
func (r *HelpRenderer) RenderNotes(deck *domain.Deck, index int) string {
	if deck == nil || index < 0 || index >= deck.Len() {
		return ""
	}
	slide := deck.Slides[index]

	var b strings.Builder
	b.WriteString(r.title.Render(fmt.Sprintf("%d / %d  %s", index+1, deck.Len(), slide.Label())))
	b.WriteString("\n")
	b.WriteString(r.notes.Render(slide.Notes))
	b.WriteString("\n")

	if index+1 < deck.Len() {
		b.WriteString(r.section.Render("Up next: " + deck.Slides[index+1].Label()))
		b.WriteString("\n")
	}
	return b.String()
}
