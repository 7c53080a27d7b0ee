package modes

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"podium/internal/ui/input/types"
)

// TextInputMode is the shared line editor behind the go-to and search
// prompts. Printable keys go to the text input unless accept rejects them.
type TextInputMode struct {
	mode      types.Mode
	name      string
	prompt    string
	textInput *textinput.Model
	accept    func(rune) bool // nil accepts everything
}

func NewTextInputMode(mode types.Mode, name, prompt string, ti *textinput.Model) TextInputMode {
	return TextInputMode{
		mode:      mode,
		name:      name,
		prompt:    prompt,
		textInput: ti,
	}
}

func (m TextInputMode) Name() string {
	return m.name
}

// Prompt is the label the view draws before the input
func (m TextInputMode) Prompt() string {
	return m.prompt
}

func (m TextInputMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Reset()
		m.textInput.Focus()
		m.textInput.Prompt = "" // drawn by the view
	}
	return nil
}

func (m TextInputMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
		m.textInput.Reset()
	}
	return nil
}

func (m TextInputMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		return []types.Action{
			types.CancelTextAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "enter":
		text := ""
		if m.textInput != nil {
			text = strings.TrimSpace(m.textInput.Value())
		}
		return []types.Action{
			types.SubmitTextAction{Text: text, Mode: m.mode},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	if (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) && !m.accepts(msg.Runes) {
		// Swallowed so the input never holds text the mode cannot use
		return nil, true
	}
	// Editing keys and accepted text go to the shared input
	return nil, false
}

func (m TextInputMode) accepts(runes []rune) bool {
	if m.accept == nil {
		return true
	}
	for _, r := range runes {
		if !m.accept(r) {
			return false
		}
	}
	return true
}
