package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"wayfind/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventVenueLoaded         = domain.EventVenueLoaded
	EventFloorChanged        = domain.EventFloorChanged
	EventStoreSelected       = domain.EventStoreSelected
	EventSelectionCleared    = domain.EventSelectionCleared
	EventRouteRequested      = domain.EventRouteRequested
	EventRouteComputed       = domain.EventRouteComputed
	EventRouteFailed         = domain.EventRouteFailed
	EventNavigationStarted   = domain.EventNavigationStarted
	EventNavigationAdvanced  = domain.EventNavigationAdvanced
	EventNavigationArrived   = domain.EventNavigationArrived
	EventNavigationCancelled = domain.EventNavigationCancelled
	EventConfigLoaded        = domain.EventConfigLoaded
	EventConfigSaved         = domain.EventConfigSaved
	EventError               = domain.EventError
)

// Re-export domain event types
type VenueLoadedEvent = domain.VenueLoadedEvent
type FloorChangedEvent = domain.FloorChangedEvent
type StoreSelectedEvent = domain.StoreSelectedEvent
type SelectionClearedEvent = domain.SelectionClearedEvent
type RouteRequestedEvent = domain.RouteRequestedEvent
type RouteComputedEvent = domain.RouteComputedEvent
type RouteFailedEvent = domain.RouteFailedEvent
type NavigationStartedEvent = domain.NavigationStartedEvent
type NavigationAdvancedEvent = domain.NavigationAdvancedEvent
type NavigationArrivedEvent = domain.NavigationArrivedEvent
type NavigationCancelledEvent = domain.NavigationCancelledEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

// registration pairs a handler with an ID so it can be unsubscribed later
type registration struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	nextID    uint64
	handlers  map[EventType][]registration
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]registration),
		eventChan: make(chan DomainEvent, 1000),
		quit:      make(chan struct{}),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	// Skip logging for high-frequency events
	switch event.Type() {
	case EventNavigationAdvanced:
		// Stepping happens on every keypress, too noisy to log
	default:
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	select {
	case b.eventChan <- event:
		// Event sent successfully
	default:
		// Channel full, log and drop
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		handlers := b.handlers[eventType]
		for i, reg := range handlers {
			if reg.id == id {
				b.handlers[eventType] = append(handlers[:i], handlers[i+1:]...)
				break
			}
		}
	}
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			handlers := b.handlers[event.Type()]
			// Copy so handlers can subscribe/unsubscribe without racing us
			handlersCopy := make([]EventHandler, 0, len(handlers))
			for _, reg := range handlers {
				handlersCopy = append(handlersCopy, reg.handler)
			}
			b.mu.RUnlock()

			for _, handler := range handlersCopy {
				// Call handler in a goroutine to avoid blocking
				go func(h EventHandler, eventType EventType) {
					defer func() {
						if r := recover(); r != nil {
							log.Printf("Event handler panic for %s: %v\nStack: %s", eventType, r, debug.Stack())
						}
					}()
					h(event)
				}(handler, event.Type())
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
					// Discard event
				default:
					return
				}
			}
		}
	}
}
