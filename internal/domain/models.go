package domain

import "github.com/paulmach/orb"

// StoreID uniquely identifies a store within a loaded venue.
type StoreID string

// Store represents a named point of interest inside the venue
type Store struct {
	ID         StoreID
	Name       string
	FloorID    string
	Categories []string // category tags, e.g. "Food & Dining"
	Location   orb.Point // lon/lat
	Details    StoreDetails
}

// StoreDetails holds the optional rich content for a store, normalized
// once at ingestion. The upstream SDK exposes the same concept under
// several duck-typed shapes (images, gallery, picture); everything is
// folded into this single type.
type StoreDetails struct {
	Description string
	Hours       string
	Phone       string
	Website     string
	ImageCount  int
}

// Floor represents one level of the venue
type Floor struct {
	ID        string
	Name      string
	ShortName string
	Elevation int // ordering, lowest first
}

// Venue is the raw dataset returned by a map data provider
type Venue struct {
	ID     string
	Name   string
	Floors []Floor
	Spaces []Store // all spaces, retail or not
}

// FloorByID returns the floor with the given ID, if present
func (v *Venue) FloorByID(id string) (Floor, bool) {
	for _, f := range v.Floors {
		if f.ID == id {
			return f, true
		}
	}
	return Floor{}, false
}

// InstructionKind is the type tag of a route instruction
type InstructionKind int

const (
	InstructionDeparture InstructionKind = iota
	InstructionArrival
	InstructionTakeConnection
	InstructionExitConnection
	InstructionTurn
	InstructionContinue
)

// String returns the human name of the kind
func (k InstructionKind) String() string {
	switch k {
	case InstructionDeparture:
		return "departure"
	case InstructionArrival:
		return "arrival"
	case InstructionTakeConnection:
		return "take-connection"
	case InstructionExitConnection:
		return "exit-connection"
	case InstructionTurn:
		return "turn"
	default:
		return "continue"
	}
}

// TurnBearing is the optional direction hint attached to an instruction
type TurnBearing int

const (
	BearingNone TurnBearing = iota
	BearingLeft
	BearingRight
	BearingSlightLeft
	BearingSlightRight
)

// String returns the bearing as lower-case text; BearingNone reads as
// "ahead" so a missing bearing never produces an empty description.
func (b TurnBearing) String() string {
	switch b {
	case BearingLeft:
		return "left"
	case BearingRight:
		return "right"
	case BearingSlightLeft:
		return "slight left"
	case BearingSlightRight:
		return "slight right"
	default:
		return "ahead"
	}
}

// Instruction is one step of a provider-computed route
type Instruction struct {
	Kind           InstructionKind
	Bearing        TurnBearing // BearingNone when not applicable
	DistanceMeters float64
	Point          orb.Point
	FromFloorID    string // set for connection instructions
	ToFloorID      string
	ConnectionType string // "elevator", "escalator", "stairs"
	Direction      string // "up" or "down" for connections, "" otherwise
}

// Route is the provider-computed path between two stores
type Route struct {
	Origin         Store
	Destination    Store
	Instructions   []Instruction
	DistanceMeters float64
}
