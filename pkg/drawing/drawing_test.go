package drawing

import (
	"math"
	"testing"
)

func TestNewInfo(t *testing.T) {
	pts := []Point{
		{0, 0},
		{0, 0.0000001}, // below epsilon, dropped
		{4, 0},
		{4, 1},
		{0, 1},
		{0, 0}, // closing duplicate, dropped
	}

	info := NewInfo(pts, 0.08)

	if len(info.Points) != 4 {
		t.Fatalf("got %d points, want 4: %v", len(info.Points), info.Points)
	}
	want := Rect{0, 0, 4, 1}
	if info.BBox != want {
		t.Errorf("BBox = %+v, want %+v", info.BBox, want)
	}
	if info.BBox.Width() != 4 || info.BBox.Height() != 1 {
		t.Errorf("extents = %v x %v", info.BBox.Width(), info.BBox.Height())
	}
	if info.Depth != 0.08 {
		t.Errorf("Depth = %v", info.Depth)
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	if got := BoundingBox(nil); got != (Rect{}) {
		t.Errorf("BoundingBox(nil) = %+v", got)
	}
}

func TestAnnotatorLocalFrame(t *testing.T) {
	// Top edge rises at 45°; the local frame must rotate it flat.
	a := NewAnnotator(Point{1, 1}, Point{2, 2})

	got := a.Local(Point{2, 2})
	want := Point{math.Sqrt2, 0}
	if got.Dist(want) > 1e-9 {
		t.Errorf("Local() = %+v, want %+v", got, want)
	}

	// A point perpendicular-left of the edge lands on the local y-axis.
	got = a.Local(Point{0, 2})
	if math.Abs(got.X) > 1e-9 || math.Abs(got.Y-math.Sqrt2) > 1e-9 {
		t.Errorf("Local() = %+v, want (0, sqrt2)", got)
	}
}

func TestLinearDimensions(t *testing.T) {
	a := NewAnnotator(Point{}, Point{1, 0})

	d := a.Horizontal(Point{0.5, 0}, Point{3.0, 0}, 0.2)
	if d.Kind != KindLinearHorizontal {
		t.Errorf("Kind = %v", d.Kind)
	}
	if d.Label != "250.0cm" {
		t.Errorf("Label = %q, want 250.0cm", d.Label)
	}
	if d.Offset != 0.2 {
		t.Errorf("Offset = %v", d.Offset)
	}

	d = a.Vertical(Point{0, 0}, Point{0, 0.163}, -0.1)
	if d.Kind != KindLinearVertical || d.Label != "16.3cm" {
		t.Errorf("vertical = %+v", d)
	}

	d = a.Aligned(Point{0, 0}, Point{3, 4}, 0.1)
	if d.Kind != KindLinearAligned || d.Label != "500.0cm" {
		t.Errorf("aligned = %+v", d)
	}
}

func TestAngular(t *testing.T) {
	a := NewAnnotator(Point{}, Point{1, 0})

	d := a.Angular(Point{1, 1}, Point{1, 0}, Point{0, 1}, 0.15, 65)
	if d.Kind != KindAngular {
		t.Errorf("Kind = %v", d.Kind)
	}
	if d.Label != "65°" {
		t.Errorf("Label = %q, want 65°", d.Label)
	}
	if d.Radius != 0.15 {
		t.Errorf("Radius = %v", d.Radius)
	}
	if got := Sweep(d.From, d.To); math.Abs(got-90) > 1e-9 {
		t.Errorf("Sweep = %v, want 90", got)
	}
}

func TestSweepSmallerAngle(t *testing.T) {
	// Directions 350° apart must report the 10° arc.
	d1 := Point{1, 0}
	d2 := Point{math.Cos(-10 * math.Pi / 180), math.Sin(-10 * math.Pi / 180)}
	if got := Sweep(d1, d2); math.Abs(got-10) > 1e-9 {
		t.Errorf("Sweep = %v, want 10", got)
	}
}

func TestFormatDeg(t *testing.T) {
	tests := []struct {
		deg  float64
		want string
	}{
		{90, "90°"},
		{25, "25°"},
		{65.0001, "65°"},
		{23.5, "23.5°"},
	}
	for _, tt := range tests {
		if got := FormatDeg(tt.deg); got != tt.want {
			t.Errorf("FormatDeg(%v) = %q, want %q", tt.deg, got, tt.want)
		}
	}
}
