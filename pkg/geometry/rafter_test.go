package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacerabbit99982/abbund/pkg/drawing"
)

func gableSpec() RafterSpec {
	return RafterSpec{
		HalfSpan:     2.5,
		Overhang:     0.5,
		PitchRad:     25 * math.Pi / 180,
		PlateTop:     2.5,
		PlateWidth:   0.12,
		PlateHeight:  0.16,
		RafterWidth:  0.08,
		RafterHeight: 0.16,
		RidgeWidth:   0.12,
	}
}

func TestGableRafterProfile(t *testing.T) {
	s := gableSpec()
	p := GableRafter(s)
	require.NotNil(t, p.Info)

	// Closed simple walk: ridge plumb, tail plumb, birdsmouth, ridge notch.
	assert.Len(t, p.Info.Points, 9)

	tan := math.Tan(s.PitchRad)
	cos := math.Cos(s.PitchRad)
	xi := s.HalfSpan - s.PlateWidth

	// Seat inner corner sits exactly on the plate top.
	assertContains(t, p.Info.Points, drawing.Point{X: xi, Y: s.PlateTop})

	// Birdsmouth plumb face is exactly as deep as the plate.
	xhb := xi + s.PlateHeight/tan
	assertContains(t, p.Info.Points, drawing.Point{X: xhb, Y: s.PlateTop})
	assertContains(t, p.Info.Points, drawing.Point{X: xhb, Y: s.PlateTop - s.PlateHeight})

	// Ridge notch is a third of the rafter height deep.
	underAtRidge := s.PlateTop - tan*(s.RidgeWidth/2-xi)
	assertContains(t, p.Info.Points, drawing.Point{X: s.RidgeWidth / 2, Y: underAtRidge})
	assertContains(t, p.Info.Points, drawing.Point{X: s.RidgeWidth / 2, Y: underAtRidge + s.RafterHeight/3})

	// Length is the ridge-top to tail-bottom diagonal.
	ridgeTop := p.Info.Points[0]
	xt := s.HalfSpan + s.Overhang
	tailBottom := drawing.Point{X: xt, Y: s.PlateTop - tan*(xt-xi)}
	assert.InDelta(t, ridgeTop.Dist(tailBottom), p.Length, 1e-9)

	// Top edge is slope-parallel and offset by height/cos(pitch).
	tailTop := p.Info.Points[1]
	slope := (tailTop.Y - ridgeTop.Y) / (tailTop.X - ridgeTop.X)
	assert.InDelta(t, -tan, slope, 1e-9)
	underAtZero := s.PlateTop + tan*xi
	assert.InDelta(t, underAtZero+s.RafterHeight/cos, ridgeTop.Y, 1e-9)

	// The walk closes on the ridge-notch inner corner.
	last := p.Info.Points[len(p.Info.Points)-1]
	assert.InDelta(t, 0, last.X, 1e-9)
	assert.InDelta(t, underAtRidge+s.RafterHeight/3, last.Y, 1e-9)

	assert.NotEmpty(t, p.Info.Dimensions)
	assert.NotEmpty(t, p.Info.ReferenceLines)
}

func TestGableRafterPurlinNotch(t *testing.T) {
	s := gableSpec()
	s.PurlinInner = s.HalfSpan / 2

	p := GableRafter(s)
	// Three extra notch points over the plain profile.
	assert.Len(t, p.Info.Points, 12)

	tan := math.Tan(s.PitchRad)
	xi := s.HalfSpan - s.PlateWidth
	under := s.PlateTop - tan*(s.PurlinInner-xi)
	assertContains(t, p.Info.Points, drawing.Point{X: s.PurlinInner, Y: under})
}

func TestShedRafterProfile(t *testing.T) {
	s := gableSpec()
	s.HalfSpan = 4.0 // full width for shed
	s.PitchRad = 30 * math.Pi / 180
	s.PlateTop = 2.5 + 4.0*math.Tan(s.PitchRad)

	p := ShedRafter(s)
	require.NotNil(t, p.Info)

	// Two birdsmouths: ten-point walk.
	assert.Len(t, p.Info.Points, 10)
	assert.Greater(t, p.Length, s.HalfSpan+2*s.Overhang-0.01)
	assert.Len(t, p.Info.Markers, 2)
}

func TestShedRafterShallowPitch(t *testing.T) {
	// At 12° the plumb faces would land beyond the tails; both notches
	// run out the ends instead and the walk stays simple.
	s := gableSpec()
	s.HalfSpan = 4.0
	s.PitchRad = 12 * math.Pi / 180
	s.PlateTop = 2.5 + 4.0*math.Tan(s.PitchRad)

	p := ShedRafter(s)
	assert.Len(t, p.Info.Points, 7)

	seen := map[drawing.Point]bool{}
	for _, pt := range p.Info.Points {
		require.False(t, seen[pt], "duplicate point %+v", pt)
		seen[pt] = true
	}
}

func TestFlatRafterIsRectangle(t *testing.T) {
	s := gableSpec()
	s.PitchRad = 0
	s.HalfSpan = 4.0

	p := GableRafter(s)
	assert.Len(t, p.Info.Points, 4)
	assert.InDelta(t, 5.0, p.Length, 1e-9)
	assert.InDelta(t, s.RafterHeight, p.Info.BBox.Height(), 1e-9)
}

func assertContains(t *testing.T, pts []drawing.Point, want drawing.Point) {
	t.Helper()
	for _, p := range pts {
		if p.Dist(want) < 1e-9 {
			return
		}
	}
	t.Errorf("polygon %v missing point %+v", pts, want)
}
