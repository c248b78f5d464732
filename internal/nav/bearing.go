package nav

import (
	"math"

	"github.com/paulmach/orb"
)

// PlanarBearing returns the bearing from one point toward another as
// atan2(Δlongitude, Δlatitude) in degrees, normalized to [0, 360).
// 0 is north, 90 east. This is a planar approximation, fine at indoor
// scale where meridian convergence is negligible.
func PlanarBearing(from, to orb.Point) float64 {
	deg := math.Atan2(to.Lon()-from.Lon(), to.Lat()-from.Lat()) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}
