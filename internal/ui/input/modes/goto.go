package modes

import (
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"

	"podium/internal/ui/input/types"
)

// GoToMode reads a 1-based slide number. Only digits reach the input.
type GoToMode struct {
	TextInputMode
}

func NewGoToMode(ti *textinput.Model) *GoToMode {
	base := NewTextInputMode(types.ModeGoTo, "goto", "Go to slide: ", ti)
	base.accept = unicode.IsDigit
	return &GoToMode{TextInputMode: base}
}
