package geometry

import (
	"math"

	"github.com/spacerabbit99982/abbund/pkg/drawing"
)

// RafterSpec carries everything needed to derive one rafter's cut profile.
// Horizontal coordinates run from the ridge centerline (gable) or the high
// wall's outer face (shed) towards the eaves; elevations are absolute.
type RafterSpec struct {
	HalfSpan float64 // ridge centerline to wall outer face (gable) or wall-to-wall width (shed)
	Overhang float64
	PitchRad float64

	PlateTop    float64 // plate top elevation at the eaves-side wall
	PlateWidth  float64
	PlateHeight float64

	RafterWidth  float64
	RafterHeight float64

	RidgeWidth float64 // gable only

	// PurlinInner is the horizontal distance from the ridge centerline to
	// the middle purlin's uphill face. Zero means no purlin notch.
	PurlinInner float64
}

// RafterProfile is a rafter's finished cut profile with key measures.
type RafterProfile struct {
	Info     *drawing.Info
	Length   float64 // ridge top corner to tail bottom corner
	SeatSpan float64 // horizontal run between supports
}

// GableRafter builds the profile of one gable-roof rafter: plumb cut at
// the ridge, a ridge notch one third of the rafter height deep seating on
// the ridge beam, an optional identical notch at the middle purlin, a
// birdsmouth over the wall plate (seat flush with plate top, plumb face as
// deep as the plate) and a plumb tail cut at the overhang end.
func GableRafter(s RafterSpec) RafterProfile {
	if s.PitchRad < 1e-9 {
		return flatRafter(s)
	}
	tan := math.Tan(s.PitchRad)
	cos := math.Cos(s.PitchRad)

	// Underside slope line, anchored so it touches the plate top at the
	// plate's inner edge.
	xi := s.HalfSpan - s.PlateWidth
	under := func(x float64) float64 { return s.PlateTop - tan*(x-xi) }
	top := func(x float64) float64 { return under(x) + s.RafterHeight/cos }

	xt := s.HalfSpan + s.Overhang
	xhb := math.Min(xi+s.PlateHeight/tan, xt)

	notch := s.RafterHeight / 3
	xno := s.RidgeWidth / 2
	ridgeSeat := under(xno) + notch

	ridgeTop := drawing.Point{X: 0, Y: top(0)}
	tailTop := drawing.Point{X: xt, Y: top(xt)}
	tailBottom := drawing.Point{X: xt, Y: under(xt)}
	heelBottom := drawing.Point{X: xhb, Y: under(xhb)}
	heelTop := drawing.Point{X: xhb, Y: s.PlateTop}
	seatInner := drawing.Point{X: xi, Y: s.PlateTop}

	pts := []drawing.Point{ridgeTop, tailTop, tailBottom, heelBottom, heelTop, seatInner}

	if s.PurlinInner > xno && s.PurlinInner < xi {
		xph := s.PurlinInner + notch/tan
		pts = append(pts,
			drawing.Point{X: xph, Y: under(xph)},
			drawing.Point{X: xph, Y: under(xph) + notch},
			drawing.Point{X: s.PurlinInner, Y: under(s.PurlinInner)},
		)
	}

	pts = append(pts,
		drawing.Point{X: xno, Y: under(xno)},
		drawing.Point{X: xno, Y: ridgeSeat},
		drawing.Point{X: 0, Y: ridgeSeat},
	)

	info := drawing.NewInfo(pts, s.RafterWidth)
	annotateRafter(info, s, ridgeTop, tailTop, tailBottom, heelTop, heelBottom, seatInner)

	return RafterProfile{
		Info:     info,
		Length:   ridgeTop.Dist(tailBottom),
		SeatSpan: xi - xno,
	}
}

// ShedRafter builds a shed-roof rafter: one linear slope between a high
// and a low wall plate, with a birdsmouth over each and plumb tail cuts at
// both overhang ends. HalfSpan is taken as the outer-face to outer-face
// wall distance.
func ShedRafter(s RafterSpec) RafterProfile {
	if s.PitchRad < 1e-9 {
		return flatRafter(s)
	}
	tan := math.Tan(s.PitchRad)
	cos := math.Cos(s.PitchRad)

	// x runs from the high wall outer face towards the low wall. The
	// underside touches the high plate top at that wall's inner edge.
	xhiIn := s.PlateWidth
	xloIn := s.HalfSpan - s.PlateWidth
	under := func(x float64) float64 { return s.PlateTop - tan*(x-xhiIn) }
	top := func(x float64) float64 { return under(x) + s.RafterHeight/cos }

	xHighTail := -s.Overhang
	xLowTail := s.HalfSpan + s.Overhang

	loTop := under(xloIn)
	xloHb := math.Min(xloIn+s.PlateHeight/tan, xLowTail)
	xhiHb := math.Max(xhiIn-s.PlateHeight/tan, xHighTail)

	highTop := drawing.Point{X: xHighTail, Y: top(xHighTail)}
	lowTop := drawing.Point{X: xLowTail, Y: top(xLowTail)}
	lowTailBottom := drawing.Point{X: xLowTail, Y: under(xLowTail)}

	pts := []drawing.Point{highTop, lowTop, lowTailBottom}

	// A shallow pitch can push a birdsmouth's plumb face past the tail
	// end; the notch then runs out the end and the face is the tail cut.
	if xloHb < xLowTail {
		pts = append(pts, drawing.Point{X: xloHb, Y: under(xloHb)})
	}
	pts = append(pts,
		drawing.Point{X: xloHb, Y: loTop},
		drawing.Point{X: xloIn, Y: loTop},
		drawing.Point{X: xhiIn, Y: s.PlateTop},
		drawing.Point{X: xhiHb, Y: s.PlateTop},
	)
	if xhiHb > xHighTail {
		pts = append(pts,
			drawing.Point{X: xhiHb, Y: under(xhiHb)},
			drawing.Point{X: xHighTail, Y: under(xHighTail)},
		)
	}

	info := drawing.NewInfo(pts, s.RafterWidth)

	a := drawing.NewAnnotator(highTop, lowTop)
	pitchDeg := s.PitchRad * 180 / math.Pi
	info.Dimensions = append(info.Dimensions,
		a.Aligned(highTop, lowTop, 0.2),
		a.Aligned(highTop, drawing.Point{X: xhiIn, Y: s.PlateTop}, -0.3),
		a.Angular(lowTailBottom, drawing.Point{X: 0, Y: 1}, drawing.Point{X: -1, Y: tan}, 0.15, 90-pitchDeg),
	)
	info.Markers = append(info.Markers,
		a.Mark(drawing.Point{X: xhiIn, Y: s.PlateTop}, "Pfette hoch"),
		a.Mark(drawing.Point{X: xloIn, Y: loTop}, "Pfette tief"),
	)

	return RafterProfile{
		Info:     info,
		Length:   highTop.Dist(lowTailBottom),
		SeatSpan: xloIn - xhiIn,
	}
}

// flatRafter degrades to a plain rectangular joist spanning the full run
// plus both overhangs.
func flatRafter(s RafterSpec) RafterProfile {
	l := s.HalfSpan + 2*s.Overhang
	pts := []drawing.Point{
		{X: 0, Y: s.RafterHeight},
		{X: l, Y: s.RafterHeight},
		{X: l, Y: 0},
		{X: 0, Y: 0},
	}
	info := drawing.NewInfo(pts, s.RafterWidth)
	a := drawing.NewAnnotator(pts[3], pts[2])
	info.Dimensions = append(info.Dimensions,
		a.Horizontal(pts[3], pts[2], -0.2),
		a.Vertical(pts[3], pts[0], -0.15),
	)
	return RafterProfile{
		Info:     info,
		Length:   l,
		SeatSpan: s.HalfSpan - 2*s.PlateWidth,
	}
}

// annotateRafter attaches the standard dimension set to a gable rafter
// profile: overall length along the slope, seat location, the plumb and
// seat cut angles, the heel right angle and a plumb reference line through
// the heel.
func annotateRafter(info *drawing.Info, s RafterSpec, ridgeTop, tailTop, tailBottom, heelTop, heelBottom, seatInner drawing.Point) {
	a := drawing.NewAnnotator(ridgeTop, tailTop)
	pitchDeg := s.PitchRad * 180 / math.Pi
	tan := math.Tan(s.PitchRad)

	downSlope := drawing.Point{X: 1, Y: -tan}
	upSlope := drawing.Point{X: -1, Y: tan}
	plumbDown := drawing.Point{X: 0, Y: -1}
	plumbUp := drawing.Point{X: 0, Y: 1}
	level := drawing.Point{X: -1, Y: 0}

	info.Dimensions = append(info.Dimensions,
		a.Aligned(ridgeTop, tailTop, 0.2),
		a.Aligned(ridgeTop, heelTop, -0.35),
		a.Angular(tailBottom, plumbUp, upSlope, 0.15, 90-pitchDeg),
		a.Angular(heelTop, level, plumbDown, 0.1, 90),
		a.Angular(seatInner, drawing.Point{X: 1, Y: 0}, downSlope, 0.12, pitchDeg),
	)
	info.ReferenceLines = append(info.ReferenceLines,
		a.Reference(heelBottom, drawing.Point{X: heelTop.X, Y: heelTop.Y + s.RafterHeight}, "Lot"),
	)
}
