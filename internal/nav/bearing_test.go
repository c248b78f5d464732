package nav

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestPlanarBearing(t *testing.T) {
	origin := orb.Point{-79.38, 43.64}

	tests := []struct {
		name string
		to   orb.Point
		want float64
	}{
		{"north", orb.Point{-79.38, 43.65}, 0},
		{"east", orb.Point{-79.37, 43.64}, 90},
		{"south", orb.Point{-79.38, 43.63}, 180},
		{"west", orb.Point{-79.39, 43.64}, 270},
		{"northeast", orb.Point{-79.37, 43.65}, 45},
		{"southwest", orb.Point{-79.39, 43.63}, 225},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PlanarBearing(origin, tt.to), 1e-9)
		})
	}
}

func TestPlanarBearingNormalized(t *testing.T) {
	origin := orb.Point{0, 0}
	for _, to := range []orb.Point{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}, {0, 1}, {-1, 0}} {
		b := PlanarBearing(origin, to)
		assert.GreaterOrEqual(t, b, 0.0)
		assert.Less(t, b, 360.0)
	}
}
