// Package statics checks load-bearing members against Euler–Bernoulli
// deflection limits.
//
// The engine walks a part list, recognizes structural classes by their
// load-path data, superposes the closed-form deflection cases and attaches
// a pass/fail result to each member. It never fails: parts it does not
// recognize pass through untouched.
package statics

import "math"

// Standard gravity, m/s².
const gravity = 9.81

// GroundSnowLoad returns the characteristic ground snow load in N/m² for
// a site altitude in meters, with a 0.65 kN/m² floor for low-lying sites.
func GroundSnowLoad(altitude float64) float64 {
	z := (altitude + 140) / 760
	sk := 0.19 + 0.91*z*z
	return math.Max(0.65, sk) * 1000
}

// RoofSnowLoad projects the ground snow load onto a pitched roof. The
// shape factor is 0.8 up to 30°, falls linearly to zero at 70° and stays
// zero above (snow slides off).
func RoofSnowLoad(altitude, pitchDeg float64) float64 {
	return GroundSnowLoad(altitude) * shapeFactor(pitchDeg)
}

func shapeFactor(pitchDeg float64) float64 {
	switch {
	case pitchDeg <= 30:
		return 0.8
	case pitchDeg >= 70:
		return 0
	default:
		return 0.8 * (70 - pitchDeg) / 40
	}
}

// selfWeight returns the distributed self-weight of a member in N/m.
func selfWeight(area, density float64) float64 {
	return area * density * gravity
}
