package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"podium/internal/navigation"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	DeckTitle     string
	SlideTitle    string
	Body          string // slide text, already sized to the body area
	Controls      navigation.Controls
	ShowProgress  bool
	ShowControls  bool
	Menu          *MenuState // nil when the menu is closed
	Prompt        string
	TextInput     string
	SearchQuery   string
	MatchPos      int // 0-based, -1 when there is no match
	MatchCount    int
	StatusMessage string
	StatusIsError bool
	HelpModel     help.Model
	Keys          help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles   *Styles
	progress progress.Model
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{
		styles:   NewStyles(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
}

// Styles exposes the style set
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// BodySize returns the area left for the slide once the header, progress
// bar, controls, bottom line and an open menu are taken out.
func BodySize(width, height int, menuOpen, showProgress, showControls bool) (int, int) {
	h := height - 2 // header and bottom line
	if showProgress {
		h--
	}
	if showControls {
		h--
	}
	w := width - 2 // main padding
	if menuOpen {
		w -= MenuWidth + 1
	}
	return max(w, 1), max(h, 1)
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80
	}
	inner := width - 2

	var rows []string
	rows = append(rows, r.renderHeader(state, inner))
	if state.ShowProgress {
		rows = append(rows, r.renderProgress(state.Controls, inner))
	}

	bodyW, bodyH := BodySize(width, state.Height, state.Menu != nil, state.ShowProgress, state.ShowControls)
	body := lipgloss.NewStyle().Width(bodyW).Render(fitHeight(state.Body, bodyH))
	if state.Menu != nil {
		menu := *state.Menu
		menu.Height = bodyH
		body = lipgloss.JoinHorizontal(lipgloss.Top, r.renderMenu(menu), " ", body)
	}
	rows = append(rows, fitHeight(body, bodyH))

	if state.ShowControls {
		rows = append(rows, r.renderControls(state.Controls, inner))
	}
	rows = append(rows, r.renderBottom(state, inner))

	return r.styles.Main.MaxHeight(state.Height).Render(strings.Join(rows, "\n"))
}

func (r *Renderer) renderHeader(state ViewState, width int) string {
	left := r.styles.Title.Render(state.DeckTitle)
	if state.SlideTitle != "" && state.SlideTitle != state.DeckTitle {
		left += r.styles.Dim.Render("  " + state.SlideTitle)
	}

	right := r.styles.Progress.Render(state.Controls.Progress())
	if state.SearchQuery != "" {
		right = r.renderSearchInfo(state) + "  " + right
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}

func (r *Renderer) renderSearchInfo(state ViewState) string {
	if state.MatchCount == 0 {
		return r.styles.StatusError.Render("/" + state.SearchQuery + " (no match)")
	}
	return r.styles.Match.Render(fmt.Sprintf("/%s %d/%d", state.SearchQuery, state.MatchPos+1, state.MatchCount))
}

func (r *Renderer) renderProgress(c navigation.Controls, width int) string {
	percent := 0.0
	if c.Total > 1 {
		percent = float64(c.Current) / float64(c.Total-1)
	} else if c.Total == 1 {
		percent = 1
	}
	r.progress.Width = width
	return r.progress.ViewAs(percent)
}

// renderControls draws the retreat button, the counter and the advance
// button. On the last slide the advance button becomes Restart.
func (r *Renderer) renderControls(c navigation.Controls, width int) string {
	prev := r.styles.Control.Render(navigation.PrevLabel)
	if c.RetreatDisabled {
		prev = r.styles.ControlDisabled.Render(navigation.PrevLabel)
	}
	next := r.styles.Control.Render(c.AdvanceLabel)
	if c.OnLastSlide() {
		next = r.styles.ControlActive.Render(c.AdvanceLabel)
	}
	counter := r.styles.Progress.Render(c.Progress())

	bar := lipgloss.JoinHorizontal(lipgloss.Center, prev, "   ", counter, "   ", next)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, bar)
}

// renderBottom shows, in order of priority, the text prompt, the status
// message or the short help.
func (r *Renderer) renderBottom(state ViewState, width int) string {
	switch {
	case state.Prompt != "":
		return r.styles.Prompt.Render(state.Prompt) + state.TextInput
	case state.StatusMessage != "":
		if state.StatusIsError {
			return r.styles.StatusError.Render(state.StatusMessage)
		}
		return r.styles.Status.Render(state.StatusMessage)
	case state.Keys != nil:
		h := state.HelpModel
		h.Width = width
		return h.View(state.Keys)
	}
	return ""
}
