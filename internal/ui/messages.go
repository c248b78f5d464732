package ui

import (
	"wayfind/internal/domain"
	"wayfind/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// venueMsg contains the result of the initial venue load
type venueMsg struct {
	venue *domain.Venue
	err   error
}

// routeResultMsg contains the result of an origin choice / route request
type routeResultMsg struct {
	err error
}

// pagerClosedMsg is sent when the external pager exits
type pagerClosedMsg struct {
	err error
}
