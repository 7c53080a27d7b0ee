package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"podium/internal/navigation"
	"podium/internal/ui/input/types"
)

// MenuMode moves a cursor over the slide list. Enter jumps to the
// highlighted slide and closes the menu.
type MenuMode struct{}

func NewMenuMode() *MenuMode {
	return &MenuMode{}
}

func (m *MenuMode) Name() string {
	return "menu"
}

func (m *MenuMode) Enter(ctx types.Context) []types.Action {
	// Start the cursor on the slide being shown
	return []types.Action{types.MenuMoveAction{Delta: ctx.CurrentIndex() - ctx.MenuCursor()}}
}

func (m *MenuMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *MenuMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	case "esc", "m":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "up", "k":
		return []types.Action{types.MenuMoveAction{Delta: -1}}, true
	case "down", "j":
		return []types.Action{types.MenuMoveAction{Delta: 1}}, true
	case "home", "g":
		return []types.Action{types.MenuMoveAction{Delta: -ctx.MenuCursor()}}, true
	case "end", "G":
		return []types.Action{types.MenuMoveAction{Delta: ctx.TotalSlides() - 1 - ctx.MenuCursor()}}, true
	case "enter", " ":
		return []types.Action{
			types.NavigateAction{Command: navigation.GoTo(ctx.MenuCursor())},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return nil, true
}
