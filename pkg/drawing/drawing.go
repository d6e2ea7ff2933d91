// Package drawing holds the 2D cut-profile model attached to parts.
//
// An [Info] is pure presentation data: a closed polygon describing the
// part's profile in its own local frame, the extrusion depth, and optional
// dimension/marker/reference overlays. It has no behavior beyond bounding
// box maintenance; rendering and export layers consume it as plain data.
package drawing

import "math"

// Epsilon below which two polygon points are considered identical.
const Epsilon = 1e-6

// Point is a 2D coordinate in the part's local drawing frame, in meters.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Dist returns the euclidean distance to q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Norm returns the unit vector in p's direction, or the zero point for a
// zero vector.
func (p Point) Norm() Point {
	l := math.Hypot(p.X, p.Y)
	if l < Epsilon {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Info is the complete cut profile of one part: a closed polygon, the
// extrusion depth orthogonal to the profile plane, and annotation overlays.
// The bounding box is always the tight bound of Points; overlays share the
// polygon's coordinate frame.
type Info struct {
	Points []Point `json:"points"`
	BBox   Rect    `json:"bbox"`
	Depth  float64 `json:"depth"`

	Dimensions     []Dimension     `json:"dimensions,omitempty"`
	Markers        []Marker        `json:"markers,omitempty"`
	ReferenceLines []ReferenceLine `json:"reference_lines,omitempty"`
}

// NewInfo builds an Info from a polygon walk, dropping consecutive
// near-identical points and computing the bounding box. The closing edge
// back to the first point is implicit; a trailing duplicate of the first
// point is removed.
func NewInfo(points []Point, depth float64) *Info {
	pts := Dedup(points, Epsilon)
	return &Info{
		Points: pts,
		BBox:   BoundingBox(pts),
		Depth:  depth,
	}
}

// Dedup removes consecutive points closer than eps, including a trailing
// point that duplicates the first.
func Dedup(points []Point, eps float64) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if len(out) > 0 && p.Dist(out[len(out)-1]) < eps {
			continue
		}
		out = append(out, p)
	}
	if len(out) > 1 && out[0].Dist(out[len(out)-1]) < eps {
		out = out[:len(out)-1]
	}
	return out
}

// BoundingBox returns the tight axis-aligned bound of the given points.
func BoundingBox(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{points[0].X, points[0].Y, points[0].X, points[0].Y}
	for _, p := range points[1:] {
		r.MinX = math.Min(r.MinX, p.X)
		r.MinY = math.Min(r.MinY, p.Y)
		r.MaxX = math.Max(r.MaxX, p.X)
		r.MaxY = math.Max(r.MaxY, p.Y)
	}
	return r
}
