package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfind/internal/domain"
)

func TestDescribeCoversEveryKind(t *testing.T) {
	tests := []struct {
		name string
		in   domain.Instruction
		want string
	}{
		{
			name: "departure",
			in:   domain.Instruction{Kind: domain.InstructionDeparture},
			want: "Start at Acme Shoes",
		},
		{
			name: "arrival",
			in:   domain.Instruction{Kind: domain.InstructionArrival},
			want: "Arrive at Cinema Plaza",
		},
		{
			name: "take connection",
			in: domain.Instruction{
				Kind:           domain.InstructionTakeConnection,
				ConnectionType: "escalator",
				Direction:      "up",
			},
			want: "Take escalator up",
		},
		{
			name: "take connection without direction",
			in: domain.Instruction{
				Kind:           domain.InstructionTakeConnection,
				ConnectionType: "elevator",
			},
			want: "Take elevator",
		},
		{
			name: "take connection without type",
			in:   domain.Instruction{Kind: domain.InstructionTakeConnection, Direction: "down"},
			want: "Take connection down",
		},
		{
			name: "exit connection",
			in:   domain.Instruction{Kind: domain.InstructionExitConnection},
			want: "Exit and continue",
		},
		{
			name: "turn right",
			in:   domain.Instruction{Kind: domain.InstructionTurn, Bearing: domain.BearingRight, DistanceMeters: 12},
			want: "Turn right (12m)",
		},
		{
			name: "turn slight left",
			in:   domain.Instruction{Kind: domain.InstructionTurn, Bearing: domain.BearingSlightLeft, DistanceMeters: 7},
			want: "Turn slight left (7m)",
		},
		{
			name: "turn without bearing",
			in:   domain.Instruction{Kind: domain.InstructionTurn, DistanceMeters: 5},
			want: "Turn ahead (5m)",
		},
		{
			name: "continue",
			in:   domain.Instruction{Kind: domain.InstructionContinue, DistanceMeters: 30},
			want: "Continue 30m",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.in, "Acme Shoes", "Cinema Plaza"))
		})
	}
}

func TestDescribeRoute(t *testing.T) {
	route := &domain.Route{
		Origin:      storeA,
		Destination: storeC,
		Instructions: []domain.Instruction{
			{Kind: domain.InstructionDeparture, DistanceMeters: 20},
			{Kind: domain.InstructionTurn, Bearing: domain.BearingLeft, DistanceMeters: 15},
			{Kind: domain.InstructionArrival},
		},
		DistanceMeters: 35,
	}

	sheet := DescribeRoute(route)
	require.Contains(t, sheet, " 1. Start at Acme Shoes")
	require.Contains(t, sheet, " 2. Turn left (15m)")
	require.Contains(t, sheet, " 3. Arrive at Cinema Plaza")
	require.Contains(t, sheet, "Total distance: 35m")
}

func TestDescribeRouteNil(t *testing.T) {
	assert.Empty(t, DescribeRoute(nil))
}
