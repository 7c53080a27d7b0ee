package modes

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"podium/internal/navigation"
	"podium/internal/ui/input/types"
)

// ggTimeout is how long a first 'g' waits for the second
const ggTimeout = 500 * time.Millisecond

type NormalMode struct {
	keys        types.KeyMap
	lastKeyWasG bool
	lastGTime   time.Time
	now         func() time.Time
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys, now: time.Now}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	m.lastKeyWasG = false
	return nil
}

func navigate(kind navigation.Kind) []types.Action {
	return []types.Action{types.NavigateAction{Command: navigation.Command{Kind: kind}}}
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	s := msg.String()

	if s == "g" {
		if m.lastKeyWasG && m.now().Sub(m.lastGTime) < ggTimeout {
			m.lastKeyWasG = false
			return navigate(navigation.KindFirst), true
		}
		m.lastKeyWasG = true
		m.lastGTime = m.now()
		return nil, true
	}
	// Any other key cancels the 'g' prefix
	m.lastKeyWasG = false

	switch {
	case msg.Type == tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true

	case key.Matches(msg, m.keys.Next):
		return navigate(navigation.KindNext), true
	case key.Matches(msg, m.keys.Advance):
		return navigate(navigation.KindAdvance), true
	case key.Matches(msg, m.keys.Previous):
		return navigate(navigation.KindPrevious), true
	case key.Matches(msg, m.keys.First):
		return navigate(navigation.KindFirst), true
	case key.Matches(msg, m.keys.Last):
		return navigate(navigation.KindLast), true
	}

	switch s {
	case "up", "k":
		return []types.Action{types.ScrollAction{Lines: -1}}, true
	case "down", "j":
		return []types.Action{types.ScrollAction{Lines: 1}}, true
	case "ctrl+u":
		return []types.Action{types.ScrollAction{Lines: -10}}, true
	case "ctrl+d":
		return []types.Action{types.ScrollAction{Lines: 10}}, true

	case "n":
		if ctx.SearchQuery() != "" {
			return []types.Action{types.SearchNavigateAction{Direction: "next"}}, true
		}
		return nil, true
	case "N":
		if ctx.SearchQuery() != "" {
			return []types.Action{types.SearchNavigateAction{Direction: "prev"}}, true
		}
		return nil, true
	}

	switch {
	case key.Matches(msg, m.keys.GoTo):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGoTo}}, true
	case key.Matches(msg, m.keys.Menu):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeMenu}}, true
	case key.Matches(msg, m.keys.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
	case key.Matches(msg, m.keys.Notes):
		if ctx.HasNotes() {
			return []types.Action{types.ShowNotesAction{}}, true
		}
		return nil, true
	case key.Matches(msg, m.keys.Reload):
		return []types.Action{types.ReloadAction{}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ShowHelpAction{}}, true
	}

	return nil, false
}
