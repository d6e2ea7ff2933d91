package geometry

import (
	"math"

	"github.com/spacerabbit99982/abbund/pkg/drawing"
	"github.com/spacerabbit99982/abbund/pkg/errors"
	"github.com/spacerabbit99982/abbund/pkg/frame"
	"github.com/spacerabbit99982/abbund/pkg/parts"
)

// buildWalls produces the wall members of both long walls plus the tie
// beams spanning between them: sills, posts, studs, top plates, diagonal
// corner braces and Zangen. Wall heights may differ per side (shed roofs).
func buildWalls(p frame.Parameters, o Options, heightA, heightB float64) ([]*parts.Part, error) {
	cs := p.Sections

	if p.Depth < 2*cs.Post.Width {
		return nil, errors.New(errors.ErrCodeInvalidConstruction,
			"wall run %.2fm is shorter than two %.0fcm corner posts", p.Depth, cs.Post.Width*100)
	}
	if p.Width < 2*cs.Post.Width {
		return nil, errors.New(errors.ErrCodeInvalidConstruction,
			"building width %.2fm is shorter than two %.0fcm corner posts", p.Width, cs.Post.Width*100)
	}

	var out []*parts.Part

	// Sills around the full perimeter.
	out = append(out,
		rectPart(parts.ClassSill, cs.Beam, p.Depth, 2, nil),
		rectPart(parts.ClassSill, cs.Beam, p.Width, 2, nil),
	)

	// Top plates. Each plate spans post to post and collects half the
	// eaves-side roof load.
	plateSpan := p.Depth / float64(cs.PostsPerSide+1)
	plateTrib := (p.Width/2 + p.Overhang) / 2
	if p.Roof != frame.RoofGable {
		plateTrib = (p.Width + 2*p.Overhang) / 4
	}
	out = append(out, rectPart(parts.ClassTopPlate, cs.Beam, p.Depth, 2, &parts.StructuralInfo{
		Class:     parts.ClassTopPlate,
		Span:      plateSpan,
		Tributary: plateTrib,
		Pitch:     p.Pitch,
		Section:   cs.Beam,
	}))

	// Posts: two corners plus the intermediate ones per wall. Differing
	// wall heights key into separate entries; equal ones merge.
	for _, h := range []float64{heightA, heightB} {
		out = append(out, rectPart(parts.ClassPost, cs.Post, h, 2+cs.PostsPerSide, nil))
	}

	// Studs fill the bays between posts.
	for _, h := range []float64{heightA, heightB} {
		studH := h - 2*cs.Beam.Height
		if studH <= 0 {
			continue
		}
		positions := Positions(p.Depth, cs.Stud.Width, o.StudSpacing)
		n := len(positions) - (2 + cs.PostsPerSide)
		if n <= 0 {
			continue
		}
		out = append(out, rectPart(parts.ClassStud, cs.Stud, studH, n, nil))
	}

	// Diagonal braces in the four corner bays. A bay too small for a
	// brace is silently skipped.
	braceBay := firstBay(p.Depth, cs.Stud.Width, o.StudSpacing)
	braceH := math.Min(heightA, heightB) - 2*cs.Beam.Height
	if b := SolveBrace(braceH, braceBay, cs.Brace.Width); !b.IsZero() {
		out = append(out, bracePart(b, cs.Brace, 4))
	}

	// Zangen span the building width at every post station.
	tieQty := cs.PostsPerSide + 2
	tie := rectPart(parts.ClassTie, cs.Tie, p.Width, tieQty, &parts.StructuralInfo{
		Class:   parts.ClassTie,
		Span:    p.Width,
		Section: cs.Tie,
	})
	if cs.UseKingPosts {
		// Each tie carries a king post relaying a share of the ridge load.
		tie.Structural.PointArea = (p.Width / 4) * (p.Depth / float64(tieQty))
	}
	out = append(out, tie)

	if cs.UseKingPosts && p.Roof == frame.RoofGable {
		rise := math.Tan(p.PitchRad()) * (p.Width / 2)
		kingH := rise - cs.Beam.Height - cs.Tie.Height
		if kingH > 0 {
			out = append(out, rectPart(parts.ClassKingPost, cs.Post, kingH, tieQty, nil))
		}
	}

	return out, nil
}

// rectPart builds a part with a plain rectangular profile, its standard
// description and a length-based identity key.
func rectPart(class parts.Class, sec frame.CrossSection, length float64, qty int, st *parts.StructuralInfo) *parts.Part {
	pts := []drawing.Point{
		{X: 0, Y: 0},
		{X: length, Y: 0},
		{X: length, Y: sec.Height},
		{X: 0, Y: sec.Height},
	}
	info := drawing.NewInfo(pts, sec.Width)
	a := drawing.NewAnnotator(pts[0], pts[1])
	info.Dimensions = append(info.Dimensions,
		a.Horizontal(pts[0], pts[1], -0.15),
		a.Vertical(pts[1], pts[2], 0.1),
	)

	return &parts.Part{
		Key:         parts.Key(class, length),
		Class:       class,
		Quantity:    qty,
		Description: parts.Describe(class, sec, length),
		Length:      length,
		Drawing:     info,
		Structural:  st,
	}
}

// bracePart wraps a solved brace into a part with its parallelogram
// profile and cut-angle annotations.
func bracePart(b Brace, sec frame.CrossSection, qty int) *parts.Part {
	info := drawing.NewInfo(b.Polygon, sec.Height)

	a := drawing.NewAnnotator(b.Polygon[0], b.Polygon[1])
	cutDir := b.Polygon[2].Sub(b.Polygon[1]).Norm()
	info.Dimensions = append(info.Dimensions,
		a.Aligned(b.Polygon[0], b.Polygon[1], -0.1),
		a.Angular(b.Polygon[1], drawing.Point{X: -1, Y: 0}, cutDir, 0.08, b.CutAngle),
	)

	return &parts.Part{
		Key:         parts.Key(parts.ClassBrace, b.OuterLength),
		Class:       parts.ClassBrace,
		Quantity:    qty,
		Description: parts.Describe(parts.ClassBrace, sec, b.OuterLength),
		Length:      b.OuterLength,
		Drawing:     info,
	}
}

// firstBay returns the clear width of the first layout bay.
func firstBay(length, thickness, spacing float64) float64 {
	sp := Spacings(Positions(length, thickness, spacing))
	if len(sp) == 0 {
		return 0
	}
	return sp[0] - thickness
}
