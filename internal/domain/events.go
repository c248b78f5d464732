package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventVenueLoaded          EventType = "VenueLoaded"
	EventFloorChanged         EventType = "FloorChanged"
	EventStoreSelected        EventType = "StoreSelected"
	EventSelectionCleared     EventType = "SelectionCleared"
	EventRouteRequested       EventType = "RouteRequested"
	EventRouteComputed        EventType = "RouteComputed"
	EventRouteFailed          EventType = "RouteFailed"
	EventNavigationStarted    EventType = "NavigationStarted"
	EventNavigationAdvanced   EventType = "NavigationAdvanced"
	EventNavigationArrived    EventType = "NavigationArrived"
	EventNavigationCancelled  EventType = "NavigationCancelled"
	EventConfigLoaded         EventType = "ConfigLoaded"
	EventConfigSaved          EventType = "ConfigSaved"
	EventError                EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// VenueLoadedEvent is emitted when the provider dataset finishes loading
type VenueLoadedEvent struct {
	VenueID    string
	VenueName  string
	FloorCount int
	SpaceCount int
}

func (e VenueLoadedEvent) Type() EventType { return EventVenueLoaded }

// FloorChangedEvent is emitted when the current floor changes
type FloorChangedEvent struct {
	FloorID   string
	FloorName string
}

func (e FloorChangedEvent) Type() EventType { return EventFloorChanged }

// StoreSelectedEvent is emitted when a store becomes the current selection
type StoreSelectedEvent struct {
	Store Store
}

func (e StoreSelectedEvent) Type() EventType { return EventStoreSelected }

// SelectionClearedEvent is emitted when the selection is cleared
type SelectionClearedEvent struct {
	Previous Store
}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// RouteRequestedEvent is emitted when a route computation starts
type RouteRequestedEvent struct {
	RequestID   string
	Origin      Store
	Destination Store
}

func (e RouteRequestedEvent) Type() EventType { return EventRouteRequested }

// RouteComputedEvent is emitted when a route computation succeeds
type RouteComputedEvent struct {
	RequestID string
	Route     *Route
}

func (e RouteComputedEvent) Type() EventType { return EventRouteComputed }

// RouteFailedEvent is emitted when the provider cannot find a walkable path
type RouteFailedEvent struct {
	RequestID   string
	Origin      Store
	Destination Store
	Err         error
}

func (e RouteFailedEvent) Type() EventType { return EventRouteFailed }

// NavigationStartedEvent is emitted when instruction stepping begins
type NavigationStartedEvent struct {
	SessionID   string
	Origin      Store
	Destination Store
	Steps       int
}

func (e NavigationStartedEvent) Type() EventType { return EventNavigationStarted }

// NavigationAdvancedEvent is emitted when the instruction cursor moves
type NavigationAdvancedEvent struct {
	SessionID     string
	Cursor        int
	CameraBearing float64 // degrees toward the next instruction
}

func (e NavigationAdvancedEvent) Type() EventType { return EventNavigationAdvanced }

// NavigationArrivedEvent is emitted when the session completes
type NavigationArrivedEvent struct {
	SessionID       string
	DestinationName string
}

func (e NavigationArrivedEvent) Type() EventType { return EventNavigationArrived }

// NavigationCancelledEvent is emitted when an active session is discarded
type NavigationCancelledEvent struct {
	SessionID string
}

func (e NavigationCancelledEvent) Type() EventType { return EventNavigationCancelled }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
