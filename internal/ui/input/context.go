package input

import (
	"podium/internal/navigation"
	"podium/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State     *state.AppState
	Navigator *navigation.Service
}

// CurrentIndex returns the slide being shown
func (c *ModelContext) CurrentIndex() int {
	if c.Navigator == nil {
		return 0
	}
	return c.Navigator.CurrentIndex()
}

// TotalSlides returns the deck length
func (c *ModelContext) TotalSlides() int {
	if c.Navigator == nil {
		return 0
	}
	return c.Navigator.TotalSlides()
}

// MenuCursor returns the highlighted menu row
func (c *ModelContext) MenuCursor() int {
	return c.State.MenuCursor
}

// SearchQuery returns the active search query
func (c *ModelContext) SearchQuery() string {
	return c.State.SearchQuery
}

// HasNotes reports whether the current slide carries speaker notes
func (c *ModelContext) HasNotes() bool {
	if c.State.Deck == nil {
		return false
	}
	i := c.CurrentIndex()
	if i < 0 || i >= len(c.State.Deck.Slides) {
		return false
	}
	return c.State.Deck.Slides[i].Notes != ""
}
