package handlers

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"podium/internal/domain"
	"podium/internal/eventbus"
	"podium/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state     *state.AppState
	logger    *zap.Logger
	applyDeck func(*domain.Deck)
}

// NewEventHandler creates a new event handler. applyDeck installs a
// freshly loaded deck in the model.
func NewEventHandler(appState *state.AppState, logger *zap.Logger, applyDeck func(*domain.Deck)) *EventHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventHandler{
		state:     appState,
		logger:    logger,
		applyDeck: applyDeck,
	}
}

// HandleEvent processes a domain event and reports whether the status
// line changed
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) bool {
	switch e := event.(type) {
	case eventbus.DeckReloadedEvent:
		if e.Deck == nil {
			return false
		}
		h.applyDeck(e.Deck)
		h.state.SetStatus(fmt.Sprintf("Reloaded %s (%d slides)", filepath.Base(e.Deck.Path), e.Deck.Len()), false)
		return true

	case eventbus.ErrorEvent:
		// The deck on screen stays as it was
		h.logger.Warn("deck error", zap.String("message", e.Message), zap.Error(e.Err))
		msg := e.Message
		if e.Err != nil {
			msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		h.state.SetStatus("Error: "+msg, true)
		return true

	case eventbus.WatchStartedEvent:
		h.state.SetStatus("Watching "+filepath.Base(e.Path)+" for changes", false)
		return true
	}
	return false
}
