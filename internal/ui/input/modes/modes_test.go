package modes

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podium/internal/navigation"
	"podium/internal/ui/input/types"
)

type fakeContext struct {
	current, total, cursor int
	query                  string
	notes                  bool
}

func (c fakeContext) CurrentIndex() int   { return c.current }
func (c fakeContext) TotalSlides() int    { return c.total }
func (c fakeContext) MenuCursor() int     { return c.cursor }
func (c fakeContext) SearchQuery() string { return c.query }
func (c fakeContext) HasNotes() bool      { return c.notes }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func navKind(t *testing.T, actions []types.Action) navigation.Kind {
	t.Helper()
	require.Len(t, actions, 1)
	nav, ok := actions[0].(types.NavigateAction)
	require.True(t, ok, "expected a navigate action, got %T", actions[0])
	return nav.Command.Kind
}

func TestNormalModeNavigation(t *testing.T) {
	m := NewNormalMode(types.DefaultKeyMap())
	ctx := fakeContext{total: 5}

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want navigation.Kind
	}{
		{"right", tea.KeyMsg{Type: tea.KeyRight}, navigation.KindNext},
		{"l", runes("l"), navigation.KindNext},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, navigation.KindNext},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, navigation.KindAdvance},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, navigation.KindPrevious},
		{"h", runes("h"), navigation.KindPrevious},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, navigation.KindFirst},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, navigation.KindFirst},
		{"end", tea.KeyMsg{Type: tea.KeyEnd}, navigation.KindLast},
		{"G", runes("G"), navigation.KindLast},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions, consumed := m.HandleKey(tt.msg, ctx)
			assert.True(t, consumed)
			assert.Equal(t, tt.want, navKind(t, actions))
		})
	}
}

func TestNormalModeDoubleG(t *testing.T) {
	m := NewNormalMode(types.DefaultKeyMap())
	now := time.Unix(0, 0)
	m.now = func() time.Time { return now }
	ctx := fakeContext{total: 5}

	actions, consumed := m.HandleKey(runes("g"), ctx)
	assert.True(t, consumed)
	assert.Empty(t, actions)

	now = now.Add(100 * time.Millisecond)
	actions, _ = m.HandleKey(runes("g"), ctx)
	assert.Equal(t, navigation.KindFirst, navKind(t, actions))

	// Too slow: the second g starts a new prefix
	m.HandleKey(runes("g"), ctx)
	now = now.Add(time.Second)
	actions, _ = m.HandleKey(runes("g"), ctx)
	assert.Empty(t, actions)

	// Another key in between cancels the prefix
	m.HandleKey(runes("j"), ctx)
	actions, _ = m.HandleKey(runes("g"), ctx)
	assert.Empty(t, actions)
}

func TestNormalModeScroll(t *testing.T) {
	m := NewNormalMode(types.DefaultKeyMap())
	ctx := fakeContext{total: 2}

	actions, _ := m.HandleKey(runes("j"), ctx)
	assert.Equal(t, []types.Action{types.ScrollAction{Lines: 1}}, actions)
	actions, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyUp}, ctx)
	assert.Equal(t, []types.Action{types.ScrollAction{Lines: -1}}, actions)
	actions, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlD}, ctx)
	assert.Equal(t, []types.Action{types.ScrollAction{Lines: 10}}, actions)
}

func TestNormalModeConditionalKeys(t *testing.T) {
	m := NewNormalMode(types.DefaultKeyMap())

	actions, consumed := m.HandleKey(runes("n"), fakeContext{})
	assert.True(t, consumed)
	assert.Empty(t, actions)

	actions, _ = m.HandleKey(runes("N"), fakeContext{query: "vox"})
	assert.Equal(t, []types.Action{types.SearchNavigateAction{Direction: "prev"}}, actions)

	actions, _ = m.HandleKey(runes("s"), fakeContext{})
	assert.Empty(t, actions)

	actions, _ = m.HandleKey(runes("s"), fakeContext{notes: true})
	assert.Equal(t, []types.Action{types.ShowNotesAction{}}, actions)
}

func TestNormalModeModesAndQuit(t *testing.T) {
	m := NewNormalMode(types.DefaultKeyMap())
	ctx := fakeContext{total: 3}

	actions, _ := m.HandleKey(runes(":"), ctx)
	assert.Equal(t, []types.Action{types.ChangeModeAction{Mode: types.ModeGoTo}}, actions)
	actions, _ = m.HandleKey(runes("/"), ctx)
	assert.Equal(t, []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, actions)
	actions, _ = m.HandleKey(runes("m"), ctx)
	assert.Equal(t, []types.Action{types.ChangeModeAction{Mode: types.ModeMenu}}, actions)
	actions, _ = m.HandleKey(runes("q"), ctx)
	assert.Equal(t, []types.Action{types.QuitAction{}}, actions)
	actions, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, ctx)
	assert.Equal(t, []types.Action{types.QuitAction{Force: true}}, actions)

	actions, consumed := m.HandleKey(runes("z"), ctx)
	assert.False(t, consumed)
	assert.Nil(t, actions)
}

func TestMenuMode(t *testing.T) {
	m := NewMenuMode()
	ctx := fakeContext{current: 3, total: 6, cursor: 1}

	assert.Equal(t, []types.Action{types.MenuMoveAction{Delta: 2}}, m.Enter(ctx))

	actions, _ := m.HandleKey(runes("j"), ctx)
	assert.Equal(t, []types.Action{types.MenuMoveAction{Delta: 1}}, actions)
	actions, _ = m.HandleKey(runes("g"), ctx)
	assert.Equal(t, []types.Action{types.MenuMoveAction{Delta: -1}}, actions)
	actions, _ = m.HandleKey(runes("G"), ctx)
	assert.Equal(t, []types.Action{types.MenuMoveAction{Delta: 4}}, actions)

	actions, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	require.Len(t, actions, 2)
	assert.Equal(t, types.NavigateAction{Command: navigation.GoTo(1)}, actions[0])
	assert.Equal(t, types.ChangeModeAction{Mode: types.ModeNormal}, actions[1])

	actions, _ = m.HandleKey(runes("m"), ctx)
	assert.Equal(t, []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, actions)

	// Everything else is swallowed while the menu is open
	actions, consumed := m.HandleKey(runes("x"), ctx)
	assert.True(t, consumed)
	assert.Nil(t, actions)
}

func TestTextInputModeSubmitAndCancel(t *testing.T) {
	ti := textinput.New()
	m := NewGoToMode(&ti)
	ctx := fakeContext{total: 3}

	assert.Equal(t, "Go to slide: ", m.Prompt())
	m.Enter(ctx)
	ti.SetValue(" 2 ")

	actions, consumed := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.True(t, consumed)
	require.Len(t, actions, 2)
	assert.Equal(t, types.SubmitTextAction{Text: "2", Mode: types.ModeGoTo}, actions[0])

	actions, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{
		types.CancelTextAction{},
		types.ChangeModeAction{Mode: types.ModeNormal},
	}, actions)

	_, consumed = m.HandleKey(runes("7"), ctx)
	assert.False(t, consumed)
}

func TestGoToModeOnlyTakesDigits(t *testing.T) {
	ti := textinput.New()
	m := NewGoToMode(&ti)
	ctx := fakeContext{total: 3}

	for _, msg := range []tea.KeyMsg{runes("x"), runes("1a"), {Type: tea.KeySpace, Runes: []rune(" ")}} {
		actions, consumed := m.HandleKey(msg, ctx)
		assert.True(t, consumed, "%q should be swallowed", msg.String())
		assert.Nil(t, actions)
	}

	// Editing keys still reach the input
	_, consumed := m.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace}, ctx)
	assert.False(t, consumed)
}

func TestSearchModeTakesAnyText(t *testing.T) {
	ti := textinput.New()
	m := NewSearchMode(&ti)

	assert.Equal(t, "/", m.Prompt())
	_, consumed := m.HandleKey(runes("x"), fakeContext{})
	assert.False(t, consumed)
	_, consumed = m.HandleKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, fakeContext{})
	assert.False(t, consumed)
}
