package navigation

import "errors"

// ErrEmptyDeck is returned when a navigator is built for zero slides.
var ErrEmptyDeck = errors.New("navigation: deck has no slides")

// State holds all navigation-related state
type State struct {
	Current int
	Total   int
}

// Kind identifies an inbound navigation trigger
type Kind string

const (
	KindGoTo     Kind = "goto"
	KindNext     Kind = "next"
	KindPrevious Kind = "previous"
	KindFirst    Kind = "first"
	KindLast     Kind = "last"
	KindAdvance  Kind = "advance" // next, or restart on the last slide
	KindRestart  Kind = "restart"
)

// Command is a typed inbound trigger. Index is only read for KindGoTo.
type Command struct {
	Kind  Kind
	Index int
}

// GoTo returns a command that jumps to index.
func GoTo(index int) Command { return Command{Kind: KindGoTo, Index: index} }

// Observer receives transition notifications, in the order they are
// declared, after every successful transition.
type Observer interface {
	SlideChanged(index int)
	SlideEntered(index int)
	ScrollReset(index int)
}

// ObserverFuncs adapts plain functions to an Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnChanged func(index int)
	OnEntered func(index int)
	OnScroll  func(index int)
}

func (o ObserverFuncs) SlideChanged(index int) {
	if o.OnChanged != nil {
		o.OnChanged(index)
	}
}

func (o ObserverFuncs) SlideEntered(index int) {
	if o.OnEntered != nil {
		o.OnEntered(index)
	}
}

func (o ObserverFuncs) ScrollReset(index int) {
	if o.OnScroll != nil {
		o.OnScroll(index)
	}
}
