package drawing

import (
	"fmt"
	"math"
)

// Annotator expresses key points of a profile in a drawing-local frame and
// emits pre-labelled dimension overlays. The local frame is rotated so its
// x-axis runs along the part's top edge; this is the only geometry the
// annotator performs, everything else is labelling.
type Annotator struct {
	origin   Point
	cos, sin float64
}

// NewAnnotator returns an annotator whose local frame has the given origin
// and whose x-axis points from origin towards topEdge. A degenerate top
// edge leaves the frame unrotated.
func NewAnnotator(origin, topEdge Point) *Annotator {
	d := topEdge.Sub(origin)
	l := math.Hypot(d.X, d.Y)
	if l < Epsilon {
		return &Annotator{origin: origin, cos: 1, sin: 0}
	}
	return &Annotator{origin: origin, cos: d.X / l, sin: d.Y / l}
}

// Local transforms a point from the polygon frame into the annotator's
// local frame.
func (a *Annotator) Local(p Point) Point {
	d := p.Sub(a.origin)
	return Point{
		X: d.X*a.cos + d.Y*a.sin,
		Y: -d.X*a.sin + d.Y*a.cos,
	}
}

// LocalDir rotates a direction vector into the local frame without
// translating it.
func (a *Annotator) LocalDir(v Point) Point {
	return Point{
		X: v.X*a.cos + v.Y*a.sin,
		Y: -v.X*a.sin + v.Y*a.cos,
	}
}

// Horizontal measures the horizontal distance between two key points.
// The offset places the dimension line above (positive) or below the
// measured segment.
func (a *Annotator) Horizontal(from, to Point, offset float64) Dimension {
	f, t := a.Local(from), a.Local(to)
	return Dimension{
		Kind:   KindLinearHorizontal,
		From:   f,
		To:     t,
		Offset: offset,
		Label:  FormatCm(math.Abs(t.X - f.X)),
	}
}

// Vertical measures the vertical distance between two key points.
func (a *Annotator) Vertical(from, to Point, offset float64) Dimension {
	f, t := a.Local(from), a.Local(to)
	return Dimension{
		Kind:   KindLinearVertical,
		From:   f,
		To:     t,
		Offset: offset,
		Label:  FormatCm(math.Abs(t.Y - f.Y)),
	}
}

// Aligned measures the straight-line distance between two key points,
// with the dimension line offset perpendicular to the segment. Used for
// slope-parallel cuts.
func (a *Annotator) Aligned(from, to Point, offset float64) Dimension {
	f, t := a.Local(from), a.Local(to)
	return Dimension{
		Kind:   KindLinearAligned,
		From:   f,
		To:     t,
		Offset: offset,
		Label:  FormatCm(f.Dist(t)),
	}
}

// Angular draws an arc of the given radius at a corner, spanning the
// smaller angle between two unit directions leaving that corner. The label
// carries the pre-computed cut angle, not the measured sweep, so callers
// annotate the nominal saw setting (pitch, 90°−pitch, 90°).
func (a *Annotator) Angular(corner, dir1, dir2 Point, radius, angleDeg float64) Dimension {
	return Dimension{
		Kind:   KindAngular,
		Center: a.Local(corner),
		From:   a.LocalDir(dir1).Norm(),
		To:     a.LocalDir(dir2).Norm(),
		Radius: radius,
		Label:  FormatDeg(angleDeg),
	}
}

// Reference emits a reference line between two key points.
func (a *Annotator) Reference(from, to Point, label string) ReferenceLine {
	return ReferenceLine{From: a.Local(from), To: a.Local(to), Label: label}
}

// Mark emits a labelled point marker.
func (a *Annotator) Mark(at Point, label string) Marker {
	return Marker{At: a.Local(at), Label: label}
}

// Sweep returns the smaller angle between two directions in degrees.
// Renderers use it to draw angular arcs; the dimension label itself stays
// the nominal value passed to [Annotator.Angular].
func Sweep(dir1, dir2 Point) float64 {
	a1 := math.Atan2(dir1.Y, dir1.X)
	a2 := math.Atan2(dir2.Y, dir2.X)
	d := math.Abs(a2 - a1)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d * 180 / math.Pi
}

// FormatCm renders a length in meters as a centimeter label with one
// decimal, the convention used throughout part descriptions.
func FormatCm(meters float64) string {
	return fmt.Sprintf("%.1fcm", meters*100)
}

// FormatDeg renders an angle label with one decimal, dropping a trailing
// ".0" for whole angles.
func FormatDeg(deg float64) string {
	if math.Abs(deg-math.Round(deg)) < 0.05 {
		return fmt.Sprintf("%.0f°", deg)
	}
	return fmt.Sprintf("%.1f°", deg)
}
