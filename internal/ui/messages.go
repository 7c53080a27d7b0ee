package ui

import (
	"podium/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// fadeMsg ends the cross-fade of transition seq
type fadeMsg struct {
	seq int
}

// frameMsg advances the entry animation of transition seq
type frameMsg struct {
	seq int
}

// clearStatusMsg empties the status line
type clearStatusMsg struct{}

// pagerClosedMsg is sent when the external pager returns
type pagerClosedMsg struct {
	err error
}
