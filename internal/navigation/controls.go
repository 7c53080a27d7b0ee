package navigation

import "fmt"

const (
	NextLabel    = "Next ›"
	RestartLabel = "Restart ↻"
	PrevLabel    = "‹ Prev"
)

// Controls is the derived state of the presentation controls. It is
// recomputed from the service on demand and never stored.
type Controls struct {
	Current         int
	Total           int
	RetreatDisabled bool
	AdvanceLabel    string
	AdvanceCommand  Kind
}

// Progress renders the 1-based "N / total" counter
func (c Controls) Progress() string {
	return fmt.Sprintf("%d / %d", c.Current+1, c.Total)
}

// OnLastSlide reports whether the advance control restarts the deck
func (c Controls) OnLastSlide() bool {
	return c.AdvanceCommand == KindRestart
}

// Controls derives the control state for the current slide
func (s *Service) Controls() Controls {
	c := Controls{
		Current:         s.state.Current,
		Total:           s.state.Total,
		RetreatDisabled: s.state.Current == 0,
		AdvanceLabel:    NextLabel,
		AdvanceCommand:  KindNext,
	}
	if s.state.Current == s.state.Total-1 {
		c.AdvanceLabel = RestartLabel
		c.AdvanceCommand = KindRestart
	}
	return c
}
