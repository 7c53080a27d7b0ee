package state

import (
	"podium/internal/domain"
)

// Phase is where the slide transition currently is
type Phase int

const (
	PhaseIdle     Phase = iota // resting on a slide
	PhaseFading                // outgoing slide still on screen
	PhaseAnimating             // incoming slide playing its effect
)

// AppState contains all the application state
type AppState struct {
	// Deck data
	Deck *domain.Deck

	// Terminal
	Width  int
	Height int

	// Transition state. Seq grows on every slide change so stale ticks
	// from an earlier transition can be told apart.
	Phase    Phase
	Outgoing string // rendered text of the slide being left
	Seq      int

	// Menu
	MenuOpen   bool
	MenuCursor int

	// Search state
	SearchQuery string
	SearchIndex int // position in the match list, -1 if none

	// Status line
	StatusMessage string
	StatusIsError bool
}

// NewAppState creates a new application state
func NewAppState(deck *domain.Deck) *AppState {
	return &AppState{
		Deck:        deck,
		Width:       80,
		Height:      24,
		SearchIndex: -1,
	}
}

// SetDeck swaps the deck, clamping the menu cursor into the new range
func (s *AppState) SetDeck(deck *domain.Deck) {
	s.Deck = deck
	s.MoveMenuCursor(0)
}

// MoveMenuCursor shifts the cursor by delta and keeps it on a slide
func (s *AppState) MoveMenuCursor(delta int) {
	n := s.Deck.Len()
	if n == 0 {
		s.MenuCursor = 0
		return
	}
	c := s.MenuCursor + delta
	if c < 0 {
		c = 0
	}
	if c >= n {
		c = n - 1
	}
	s.MenuCursor = c
}

// BeginTransition records the outgoing slide and returns the new sequence number
func (s *AppState) BeginTransition(outgoing string) int {
	s.Seq++
	s.Outgoing = outgoing
	s.Phase = PhaseFading
	return s.Seq
}

// EndFade clears the outgoing slide once the fade tick for seq arrives.
// It returns false for a tick from a superseded transition.
func (s *AppState) EndFade(seq int) bool {
	if seq != s.Seq || s.Phase != PhaseFading {
		return false
	}
	s.Outgoing = ""
	s.Phase = PhaseAnimating
	return true
}

// SetStatus shows a message in the status line
func (s *AppState) SetStatus(msg string, isError bool) {
	s.StatusMessage = msg
	s.StatusIsError = isError
}

// ClearStatus empties the status line
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}
