package mapdata

import (
	"context"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"wayfind/internal/domain"
)

// DemoProvider is an offline Provider with a small built-in two-floor
// venue, so the kiosk runs without SDK credentials. Routes are synthetic
// L-shaped walks via a fixed escalator; they exist to drive the
// navigation UI, not to model real pathfinding.
type DemoProvider struct {
	venue *domain.Venue
}

// Demo venue geometry. Offsets are in degrees; at this latitude 0.0001
// degrees is roughly 10 meters.
var (
	demoBase = orb.Point{-79.3800, 43.6400}

	// Escalator landing, same footprint on both floors
	demoEscalator = demoPoint(0.0004, 0.0003)
)

func demoPoint(dLon, dLat float64) orb.Point {
	return orb.Point{demoBase.Lon() + dLon, demoBase.Lat() + dLat}
}

// NewDemoProvider creates the demo provider
func NewDemoProvider() *DemoProvider {
	return &DemoProvider{venue: buildDemoVenue()}
}

// LoadVenue returns the built-in demo venue
func (p *DemoProvider) LoadVenue(ctx context.Context) (*domain.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.venue, nil
}

// ComputeRoute synthesizes an L-shaped route between two stores,
// inserting an escalator connection when they sit on different floors.
func (p *DemoProvider) ComputeRoute(ctx context.Context, origin, destination domain.Store) (*domain.Route, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if origin.ID == destination.ID {
		return nil, fmt.Errorf("origin equals destination: %w", ErrNoRoute)
	}
	// Spaces without a mapped position are unreachable islands
	if isZeroPoint(origin.Location) || isZeroPoint(destination.Location) {
		return nil, ErrNoRoute
	}

	var instructions []domain.Instruction

	if origin.FloorID == destination.FloorID {
		instructions = appendLeg(instructions, origin.Location, destination.Location, true)
	} else {
		instructions = appendLeg(instructions, origin.Location, demoEscalator, true)
		instructions = append(instructions,
			domain.Instruction{
				Kind:           domain.InstructionTakeConnection,
				Point:          demoEscalator,
				FromFloorID:    origin.FloorID,
				ToFloorID:      destination.FloorID,
				ConnectionType: "escalator",
				Direction:      p.connectionDirection(origin.FloorID, destination.FloorID),
			},
			domain.Instruction{
				Kind:        domain.InstructionExitConnection,
				Point:       demoEscalator,
				FromFloorID: origin.FloorID,
				ToFloorID:   destination.FloorID,
			},
		)
		instructions = appendLeg(instructions, demoEscalator, destination.Location, false)
	}

	instructions = append(instructions, domain.Instruction{
		Kind:  domain.InstructionArrival,
		Point: destination.Location,
	})

	total := 0.0
	for _, in := range instructions {
		total += in.DistanceMeters
	}

	return &domain.Route{
		Origin:         origin,
		Destination:    destination,
		Instructions:   instructions,
		DistanceMeters: total,
	}, nil
}

func (p *DemoProvider) connectionDirection(fromFloorID, toFloorID string) string {
	from, okFrom := p.venue.FloorByID(fromFloorID)
	to, okTo := p.venue.FloorByID(toFloorID)
	if !okFrom || !okTo {
		return ""
	}
	if to.Elevation > from.Elevation {
		return "up"
	}
	return "down"
}

// appendLeg adds the instructions for a single-floor walk from a to b:
// a departure (or continue) along the first segment and, when the walk
// bends, a turn at the corner.
func appendLeg(instructions []domain.Instruction, a, b orb.Point, departing bool) []domain.Instruction {
	corner := orb.Point{b.Lon(), a.Lat()}

	straight := nearlyEqual(a.Lon(), b.Lon()) || nearlyEqual(a.Lat(), b.Lat())
	firstKind := domain.InstructionContinue
	if departing {
		firstKind = domain.InstructionDeparture
	}

	if straight {
		return append(instructions, domain.Instruction{
			Kind:           firstKind,
			Point:          a,
			DistanceMeters: geo.Distance(a, b),
		})
	}

	bearing := domain.BearingRight
	if crossProduct(a, corner, b) > 0 {
		bearing = domain.BearingLeft
	}

	return append(instructions,
		domain.Instruction{
			Kind:           firstKind,
			Point:          a,
			DistanceMeters: geo.Distance(a, corner),
		},
		domain.Instruction{
			Kind:           domain.InstructionTurn,
			Bearing:        bearing,
			Point:          corner,
			DistanceMeters: geo.Distance(corner, b),
		},
	)
}

// crossProduct of the walk directions a->b and b->c; positive means the
// walk bends counterclockwise (a left turn) in planar lon/lat space.
func crossProduct(a, b, c orb.Point) float64 {
	return (b.Lon()-a.Lon())*(c.Lat()-b.Lat()) - (b.Lat()-a.Lat())*(c.Lon()-b.Lon())
}

func nearlyEqual(x, y float64) bool {
	return math.Abs(x-y) < 1e-9
}

func isZeroPoint(p orb.Point) bool {
	return p.Lon() == 0 && p.Lat() == 0
}

func buildDemoVenue() *domain.Venue {
	return &domain.Venue{
		ID:   "demo",
		Name: "Riverside Galleria",
		Floors: []domain.Floor{
			{ID: "ground", Name: "Ground Floor", ShortName: "G", Elevation: 0},
			{ID: "level1", Name: "Level 1", ShortName: "1", Elevation: 1},
		},
		Spaces: []domain.Store{
			{
				ID: "north-entrance", Name: "North Entrance", FloorID: "ground",
				Location: demoPoint(0, 0),
			},
			{
				ID: "acme-shoes", Name: "Acme Shoes", FloorID: "ground",
				Location: demoPoint(0.0002, 0.0001),
				Details: domain.StoreDetails{
					Description: "Footwear for the whole family.",
					Hours:       "10:00-21:00",
					Phone:       "555-0101",
					ImageCount:  3,
				},
			},
			{
				ID: "tech-world", Name: "Tech World Electronics", FloorID: "ground",
				Location: demoPoint(0.0006, 0.0001),
				Details: domain.StoreDetails{
					Description: "Phones, laptops and accessories.",
					Hours:       "10:00-21:00",
					Website:     "https://techworld.example",
					ImageCount:  5,
				},
			},
			{
				ID: "bloom-pharmacy", Name: "Bloom Pharmacy", FloorID: "ground",
				Location: demoPoint(0.0002, 0.0005),
				Details:  domain.StoreDetails{Hours: "09:00-22:00", Phone: "555-0102"},
			},
			{
				ID: "daily-grind", Name: "Daily Grind Cafe", FloorID: "ground",
				Location: demoPoint(0.0006, 0.0005),
				Details:  domain.StoreDetails{Description: "Espresso bar and bakery.", Hours: "08:00-20:00"},
			},
			{
				ID: "washroom-west", Name: "Washroom West", FloorID: "ground",
				Location: demoPoint(0.0001, 0.0004),
			},
			{
				ID: "corridor-a", Name: "Corridor A", FloorID: "ground",
				Location: demoPoint(0.0003, 0.0003),
			},
			{
				ID: "popup-kiosk", Name: "Pop-up Kiosk", FloorID: "ground",
				// No mapped position: routing to it must fail
			},
			{
				ID: "cinema-plaza", Name: "Cinema Plaza", FloorID: "level1",
				Location: demoPoint(0.0002, 0.0002),
				Details:  domain.StoreDetails{Description: "Eight screens, daily matinees.", Hours: "11:00-23:30"},
			},
			{
				ID: "home-hearth", Name: "Home & Hearth Furniture", FloorID: "level1",
				Location: demoPoint(0.0007, 0.0002),
			},
			{
				ID: "page-turner", Name: "Page Turner Books", FloorID: "level1",
				Location: demoPoint(0.0002, 0.0006),
				Details:  domain.StoreDetails{Hours: "10:00-21:00", Website: "https://pageturner.example"},
			},
			{
				ID: "vista-restaurant", Name: "Vista Restaurant", FloorID: "level1",
				Location: demoPoint(0.0007, 0.0006),
				Details:  domain.StoreDetails{Description: "Rooftop dining.", Hours: "12:00-23:00", Phone: "555-0103"},
			},
		},
	}
}
