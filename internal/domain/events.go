package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDeckLoaded      EventType = "DeckLoaded"
	EventDeckReloaded    EventType = "DeckReloaded"
	EventReloadRequested EventType = "ReloadRequested"
	EventError           EventType = "Error"
	EventSlideChanged    EventType = "SlideChanged"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventWatchStarted    EventType = "WatchStarted"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DeckLoadedEvent is emitted once the initial deck is parsed
type DeckLoadedEvent struct {
	Deck *Deck
}

func (e DeckLoadedEvent) Type() EventType { return EventDeckLoaded }

// DeckReloadedEvent is emitted when the deck file changed on disk and
// parsed cleanly
type DeckReloadedEvent struct {
	Deck *Deck
}

func (e DeckReloadedEvent) Type() EventType { return EventDeckReloaded }

// ReloadRequestedEvent asks the watcher to reparse the deck now
type ReloadRequestedEvent struct{}

func (e ReloadRequestedEvent) Type() EventType { return EventReloadRequested }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// SlideChangedEvent mirrors a navigator transition for subscribers outside
// the UI goroutine
type SlideChangedEvent struct {
	Index int
	Total int
	Title string
}

func (e SlideChangedEvent) Type() EventType { return EventSlideChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path  string
	Theme string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// WatchStartedEvent is emitted when the deck watcher is running
type WatchStartedEvent struct {
	Path string
}

func (e WatchStartedEvent) Type() EventType { return EventWatchStarted }
