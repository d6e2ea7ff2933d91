package geometry

import (
	"math"

	"github.com/spacerabbit99982/abbund/pkg/drawing"
)

// Brace describes a diagonal brace fitted into a rectangular bay, mitered
// at both ends against perpendicular framing of its own thickness. The
// zero value is the degenerate result: no brace, never an error, since
// bracing is reinforcement rather than primary structure.
type Brace struct {
	Angle       float64 // fitting angle from horizontal, degrees
	CutAngle    float64 // saw angle from vertical, degrees (90 − Angle)
	OuterLength float64 // corner-to-corner length, m
	Polygon     []drawing.Point
}

// IsZero reports whether the solve degenerated.
func (b Brace) IsZero() bool {
	return b.OuterLength <= 0
}

// SolveBrace fits a brace of thickness d into a bay of height h and width
// b. With C = h²+b² and E = h²−d², the fitting angle from horizontal is
//
//	α = asin((b·d + √(b²d² + C·E)) / C)
//
// clamped into the valid asin domain. Bays too small for the brace, or a
// negative discriminant, return the zero Brace.
func SolveBrace(h, b, d float64) Brace {
	if h <= d || b <= 0 || d <= 0 {
		return Brace{}
	}

	c := h*h + b*b
	e := h*h - d*d
	disc := b*b*d*d + c*e
	if disc < 0 || c == 0 {
		return Brace{}
	}

	sinA := clamp((b*d+math.Sqrt(disc))/c, -1, 1)
	alpha := math.Asin(sinA)
	if sinA <= 0 {
		return Brace{}
	}

	outer := h / sinA
	cut := math.Pi/2 - alpha

	// Parallelogram profile, member axis along x. Both miters are cut at
	// the same angle, so the end faces are parallel.
	shift := d * math.Tan(cut)
	poly := []drawing.Point{
		{X: 0, Y: 0},
		{X: outer, Y: 0},
		{X: outer - shift, Y: d},
		{X: -shift, Y: d},
	}

	return Brace{
		Angle:       alpha * 180 / math.Pi,
		CutAngle:    cut * 180 / math.Pi,
		OuterLength: outer,
		Polygon:     poly,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
