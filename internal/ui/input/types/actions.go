package types

import "podium/internal/navigation"

// NavigateAction forwards a command to the slide navigator
type NavigateAction struct {
	Command navigation.Command
}

func (a NavigateAction) Type() string { return "navigate" }

// ScrollAction scrolls the active slide by Lines (negative is up)
type ScrollAction struct {
	Lines int
}

func (a ScrollAction) Type() string { return "scroll" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Menu actions
type MenuMoveAction struct {
	Delta int
}

func (a MenuMoveAction) Type() string { return "menu_move" }

type SearchNavigateAction struct {
	Direction string // "next" or "prev"
}

func (a SearchNavigateAction) Type() string { return "search_navigate" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type ShowNotesAction struct{}

func (a ShowNotesAction) Type() string { return "show_notes" }

type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
