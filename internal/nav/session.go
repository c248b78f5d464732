package nav

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"wayfind/internal/domain"
	"wayfind/internal/mapdata"
)

// State is the navigation session state
type State int

const (
	StateIdle State = iota
	StateAwaitingOrigin
	StateRouteComputed
	StateStepping
	StateArrived
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingOrigin:
		return "awaiting-origin"
	case StateRouteComputed:
		return "route-computed"
	case StateStepping:
		return "stepping"
	case StateArrived:
		return "arrived"
	default:
		return "unknown"
	}
}

// Router computes routes; satisfied by mapdata.Service and raw providers
type Router interface {
	ComputeRoute(ctx context.Context, origin, destination domain.Store) (*domain.Route, error)
}

var (
	// ErrSuperseded is returned to a ChooseOrigin caller whose request
	// lost to a newer one (or to a cancel) while it was in flight.
	ErrSuperseded = errors.New("route request superseded")

	// ErrNoRoute mirrors the provider's no-path result
	ErrNoRoute = mapdata.ErrNoRoute
)

// Session is the turn-by-turn navigation state machine:
//
//	Idle -> AwaitingOrigin -> RouteComputed -> Stepping -> Arrived
//
// with Cancel returning to Idle from any non-Idle state. Route
// computation is the only suspension point; overlapping ChooseOrigin
// calls follow a last-request-wins policy enforced with a generation
// counter, so a stale result can never overwrite a newer one.
type Session struct {
	mu        sync.Mutex
	router    Router
	presenter mapdata.Presenter // may be nil
	pathStyle mapdata.PathStyle
	notify    func(domain.DomainEvent)

	id            string
	state         State
	origin        *domain.Store
	destination   *domain.Store
	route         *domain.Route
	cursor        int
	cameraBearing float64
	gen           uint64
}

// NewSession creates an idle session. presenter and notify may be nil.
func NewSession(router Router, presenter mapdata.Presenter, notify func(domain.DomainEvent)) *Session {
	return &Session{
		router:    router,
		presenter: presenter,
		pathStyle: mapdata.DefaultPathStyle(),
		notify:    notify,
	}
}

// State returns the current state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Cursor returns the current instruction index
func (s *Session) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Route returns the computed route, nil before RouteComputed
func (s *Session) Route() *domain.Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.route
}

// CameraBearing returns the planar bearing, in degrees, the camera
// should face while stepping.
func (s *Session) CameraBearing() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cameraBearing
}

// Current returns the instruction under the cursor while a route exists
func (s *Session) Current() (domain.Instruction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.route == nil || s.cursor >= len(s.route.Instructions) {
		return domain.Instruction{}, false
	}
	return s.route.Instructions[s.cursor], true
}

// Destination returns the chosen destination, if any
func (s *Session) Destination() (domain.Store, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destination == nil {
		return domain.Store{}, false
	}
	return *s.destination, true
}

// ChooseDestination fixes the destination and starts waiting for an
// origin. Valid only from Idle; an active session must be cancelled
// before a new destination is chosen.
func (s *Session) ChooseDestination(store domain.Store) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateIdle {
		return fmt.Errorf("choose destination: invalid in state %s", s.state)
	}
	s.id = uuid.NewString()
	s.destination = &store
	s.state = StateAwaitingOrigin
	return nil
}

// ChooseOrigin sets the walking origin and requests a route from the
// provider. The call blocks until the provider answers. If a newer
// ChooseOrigin (or a Cancel) happens while this one is in flight, the
// stale result is discarded and ErrSuperseded returned. A provider
// failure leaves the session in AwaitingOrigin and is surfaced as
// ErrNoRoute; it is never retried here.
func (s *Session) ChooseOrigin(ctx context.Context, store domain.Store) error {
	s.mu.Lock()
	if s.state != StateAwaitingOrigin {
		s.mu.Unlock()
		return fmt.Errorf("choose origin: invalid in state %s", s.state)
	}
	dest := *s.destination
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	route, err := s.router.ComputeRoute(ctx, store, dest)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || s.state != StateAwaitingOrigin {
		// A newer request or a cancel won the race
		return ErrSuperseded
	}
	if err != nil {
		return fmt.Errorf("no route available: %w", err)
	}
	if route == nil {
		return fmt.Errorf("no route available: %w", ErrNoRoute)
	}

	s.origin = &store
	s.route = route
	s.cursor = 0
	s.state = StateRouteComputed
	return nil
}

// Begin starts instruction stepping. The current instruction becomes
// the departure instruction.
func (s *Session) Begin() error {
	s.mu.Lock()
	if s.state != StateRouteComputed {
		s.mu.Unlock()
		return fmt.Errorf("begin: invalid in state %s", s.state)
	}
	s.state = StateStepping
	s.cursor = 0
	route := s.route
	steps := len(route.Instructions)
	if steps > 1 {
		s.cameraBearing = PlanarBearing(route.Instructions[0].Point, route.Instructions[1].Point)
	}
	id := s.id
	origin := *s.origin
	dest := *s.destination
	s.mu.Unlock()

	if s.presenter != nil {
		if err := s.presenter.DrawPath(route, s.pathStyle); err != nil {
			log.Printf("Session: draw path failed: %v", err)
		}
	}
	if s.notify != nil {
		s.notify(domain.NavigationStartedEvent{
			SessionID:   id,
			Origin:      origin,
			Destination: dest,
			Steps:       steps,
		})
	}
	return nil
}

// Next advances the cursor by one instruction. Stepping onto the final
// (arrival) instruction completes the session. A no-op outside Stepping.
func (s *Session) Next() {
	s.mu.Lock()
	if s.state != StateStepping {
		s.mu.Unlock()
		return
	}

	instructions := s.route.Instructions
	last := len(instructions) - 1

	if s.cursor >= last {
		// Single-instruction route; nothing left to walk
		s.state = StateArrived
		s.finishLocked()
		return
	}

	s.cursor++
	prev := instructions[s.cursor-1].Point
	cur := instructions[s.cursor].Point

	if s.cursor == last {
		s.state = StateArrived
		s.finishLocked()
		return
	}

	// Orient the camera toward the following instruction
	s.cameraBearing = PlanarBearing(cur, instructions[s.cursor+1].Point)
	id := s.id
	cursor := s.cursor
	bearing := s.cameraBearing
	s.mu.Unlock()

	if s.presenter != nil {
		if err := s.presenter.HighlightPathSection(prev, cur, s.pathStyle); err != nil {
			log.Printf("Session: highlight path section failed: %v", err)
		}
	}
	if s.notify != nil {
		s.notify(domain.NavigationAdvancedEvent{SessionID: id, Cursor: cursor, CameraBearing: bearing})
	}
}

// finishLocked completes the session; called with the mutex held and
// releases it.
func (s *Session) finishLocked() {
	id := s.id
	destName := s.destination.Name
	s.mu.Unlock()

	if s.notify != nil {
		s.notify(domain.NavigationArrivedEvent{SessionID: id, DestinationName: destName})
	}
}

// Prev steps the cursor back by one instruction. Stepping back to the
// departure clears any partial-path highlight instead of redrawing it.
// A no-op outside Stepping.
func (s *Session) Prev() {
	s.mu.Lock()
	if s.state != StateStepping || s.cursor == 0 {
		s.mu.Unlock()
		return
	}

	s.cursor--
	instructions := s.route.Instructions
	if s.cursor+1 < len(instructions) {
		s.cameraBearing = PlanarBearing(instructions[s.cursor].Point, instructions[s.cursor+1].Point)
	}
	id := s.id
	cursor := s.cursor
	bearing := s.cameraBearing
	route := s.route
	var prevPt, curPt = instructions[maxInt(cursor-1, 0)].Point, instructions[cursor].Point
	s.mu.Unlock()

	if s.presenter != nil {
		if cursor == 0 {
			// Back at the departure: drop the partial highlight, keep the base path
			if err := s.presenter.ClearPath(); err != nil {
				log.Printf("Session: clear path failed: %v", err)
			}
			if err := s.presenter.DrawPath(route, s.pathStyle); err != nil {
				log.Printf("Session: draw path failed: %v", err)
			}
		} else {
			if err := s.presenter.HighlightPathSection(prevPt, curPt, s.pathStyle); err != nil {
				log.Printf("Session: highlight path section failed: %v", err)
			}
		}
	}
	if s.notify != nil {
		s.notify(domain.NavigationAdvancedEvent{SessionID: id, Cursor: cursor, CameraBearing: bearing})
	}
}

// Cancel discards the session from any state and returns to Idle. Any
// in-flight route request is invalidated; its result will be dropped
// when it resolves. A no-op when already Idle.
func (s *Session) Cancel() {
	s.mu.Lock()
	s.gen++ // invalidate in-flight route requests
	if s.state == StateIdle {
		s.mu.Unlock()
		return
	}
	id := s.id
	s.state = StateIdle
	s.origin = nil
	s.destination = nil
	s.route = nil
	s.cursor = 0
	s.cameraBearing = 0
	s.mu.Unlock()

	if s.presenter != nil {
		if err := s.presenter.ClearPath(); err != nil {
			log.Printf("Session: clear path failed: %v", err)
		}
	}
	if s.notify != nil {
		s.notify(domain.NavigationCancelledEvent{SessionID: id})
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
