package mapdata

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"wayfind/internal/domain"
	"wayfind/internal/eventbus"
)

// Service wraps a Provider with timeouts, logging and event publication.
// Route computation is the only operation the rest of the application
// ever waits on; everything else the provider does is fire-and-forget.
type Service struct {
	provider Provider
	bus      eventbus.EventBus

	loadTimeout  time.Duration
	routeTimeout time.Duration
}

// NewService creates a map data service around the given provider
func NewService(provider Provider, bus eventbus.EventBus) *Service {
	return &Service{
		provider:     provider,
		bus:          bus,
		loadTimeout:  30 * time.Second,
		routeTimeout: 15 * time.Second,
	}
}

// LoadVenue loads the venue dataset and announces it on the bus
func (s *Service) LoadVenue(ctx context.Context) (*domain.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, s.loadTimeout)
	defer cancel()

	venue, err := s.provider.LoadVenue(ctx)
	if err != nil {
		log.Printf("MapService: venue load failed: %v", err)
		if s.bus != nil {
			s.bus.Publish(eventbus.ErrorEvent{Message: "failed to load venue", Err: err})
		}
		return nil, fmt.Errorf("loading venue: %w", err)
	}

	log.Printf("MapService: loaded venue %q (%d floors, %d spaces)", venue.Name, len(venue.Floors), len(venue.Spaces))
	if s.bus != nil {
		s.bus.Publish(eventbus.VenueLoadedEvent{
			VenueID:    venue.ID,
			VenueName:  venue.Name,
			FloorCount: len(venue.Floors),
			SpaceCount: len(venue.Spaces),
		})
	}
	return venue, nil
}

// ComputeRoute asks the provider for a route and publishes the outcome.
// A failed computation is surfaced to the caller, never retried here.
func (s *Service) ComputeRoute(ctx context.Context, origin, destination domain.Store) (*domain.Route, error) {
	ctx, cancel := context.WithTimeout(ctx, s.routeTimeout)
	defer cancel()

	requestID := uuid.NewString()
	if s.bus != nil {
		s.bus.Publish(eventbus.RouteRequestedEvent{
			RequestID:   requestID,
			Origin:      origin,
			Destination: destination,
		})
	}

	route, err := s.provider.ComputeRoute(ctx, origin, destination)
	if err != nil || route == nil {
		if err == nil {
			err = ErrNoRoute
		}
		log.Printf("MapService: no route %s -> %s: %v", origin.Name, destination.Name, err)
		if s.bus != nil {
			s.bus.Publish(eventbus.RouteFailedEvent{
				RequestID:   requestID,
				Origin:      origin,
				Destination: destination,
				Err:         err,
			})
		}
		return nil, err
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.RouteComputedEvent{RequestID: requestID, Route: route})
	}
	return route, nil
}
