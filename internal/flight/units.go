package flight

import (
	"math"
)

// Conversion factors
const (
	MPS_PER_KNOT    = 0.5144  // Meters per second per knot
	METERS_PER_NM   = 1852.0  // Meters per nautical mile
	FEET_PER_METER  = 3.28084 // Feet per meter
	SECONDS_PER_MIN = 60.0
)

// KnotsToMPS converts knots to meters per second
func KnotsToMPS(knots float64) float64 {
	return knots * MPS_PER_KNOT
}

// MetersToNM converts meters to nautical miles
func MetersToNM(meters float64) float64 {
	return meters / METERS_PER_NM
}

// FeetToMeters converts feet to meters
func FeetToMeters(feet float64) float64 {
	return feet / FEET_PER_METER
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Degrees converts radians to degrees
func Degrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// NormalizeDegrees folds any angle into [0, 360)
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	// -0 and values that round up to 360 both land on 0
	if deg >= 360.0 || deg == 0 {
		return 0
	}
	return deg
}

// BearingToRunway returns the map bearing in degrees from the aircraft to the
// center of the runway block, 0 = north (up the map), 90 = east.
func BearingToRunway(s State) float64 {
	cx := float64(s.DestX) + 1.0
	cy := float64(s.DestY) + 1.0
	dx := cx - s.MapX
	dy := s.MapY - cy // map y grows southward
	if math.Abs(dx) < 1e-9 && math.Abs(dy) < 1e-9 {
		return 0
	}
	return NormalizeDegrees(Degrees(math.Atan2(dx, dy)))
}

// TilesToRunway returns the straight-line distance from the aircraft to the
// runway center, in tiles
func TilesToRunway(s State) float64 {
	return math.Hypot(float64(s.DestX)+1.0-s.MapX, float64(s.DestY)+1.0-s.MapY)
}
