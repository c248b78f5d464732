package nav

import (
	"fmt"
	"strings"

	"wayfind/internal/domain"
)

// Describe renders one instruction as a human-readable line. The
// mapping is total: every instruction kind produces text, and missing
// optional fields degrade gracefully (a missing bearing reads as
// "ahead", a missing connection type as "connection").
func Describe(in domain.Instruction, originName, destinationName string) string {
	switch in.Kind {
	case domain.InstructionDeparture:
		return fmt.Sprintf("Start at %s", originName)
	case domain.InstructionArrival:
		return fmt.Sprintf("Arrive at %s", destinationName)
	case domain.InstructionTakeConnection:
		conn := in.ConnectionType
		if conn == "" {
			conn = "connection"
		}
		if in.Direction == "" {
			return fmt.Sprintf("Take %s", conn)
		}
		return fmt.Sprintf("Take %s %s", conn, in.Direction)
	case domain.InstructionExitConnection:
		return "Exit and continue"
	case domain.InstructionTurn:
		return fmt.Sprintf("Turn %s (%.0fm)", in.Bearing, in.DistanceMeters)
	default:
		return fmt.Sprintf("Continue %.0fm", in.DistanceMeters)
	}
}

// DescribeRoute renders the full turn-by-turn sheet for a route
func DescribeRoute(route *domain.Route) string {
	if route == nil {
		return ""
	}
	var b strings.Builder
	for i, in := range route.Instructions {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, Describe(in, route.Origin.Name, route.Destination.Name))
	}
	fmt.Fprintf(&b, "\nTotal distance: %.0fm\n", route.DistanceMeters)
	return b.String()
}
