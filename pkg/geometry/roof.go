package geometry

import (
	"math"

	"github.com/spacerabbit99982/abbund/pkg/frame"
	"github.com/spacerabbit99982/abbund/pkg/parts"
)

// buildRoof produces rafters, purlins and batten rows for the configured
// roof type. Wall plate parts come from the wall builder; this adds the
// members above the plates.
func buildRoof(p frame.Parameters, o Options) []*parts.Part {
	switch p.Roof {
	case frame.RoofGable:
		return buildGableRoof(p, o)
	default:
		return buildShedRoof(p, o)
	}
}

func buildGableRoof(p frame.Parameters, o Options) []*parts.Part {
	cs := p.Sections
	cosP := math.Cos(p.PitchRad())
	halfSpan := p.Width / 2

	spec := RafterSpec{
		HalfSpan:     halfSpan,
		Overhang:     p.Overhang,
		PitchRad:     p.PitchRad(),
		PlateTop:     p.WallHeight,
		PlateWidth:   cs.Beam.Width,
		PlateHeight:  cs.Beam.Height,
		RafterWidth:  cs.Rafter.Width,
		RafterHeight: cs.Rafter.Height,
		RidgeWidth:   cs.Beam.Width,
	}
	if cs.UseMiddlePurlin {
		spec.PurlinInner = halfSpan / 2
	}
	profile := GableRafter(spec)

	positions := Positions(p.Depth, cs.Rafter.Width, o.RafterSpacing)
	pairQty := len(positions)

	// The structural span is the sloped distance between supports; a
	// middle purlin halves it.
	span := profile.SeatSpan / cosP
	if cs.UseMiddlePurlin {
		span /= 2
	}
	rafter := &parts.Part{
		Key:         parts.Key(parts.ClassRafter, profile.Length),
		Class:       parts.ClassRafter,
		Quantity:    2 * pairQty,
		Description: parts.Describe(parts.ClassRafter, cs.Rafter, profile.Length),
		Length:      profile.Length,
		Drawing:     profile.Info,
		Structural: &parts.StructuralInfo{
			Class:      parts.ClassRafter,
			Span:       span,
			Cantilever: p.Overhang / cosP,
			Tributary:  o.RafterSpacing,
			Pitch:      p.Pitch,
			Section:    cs.Rafter,
		},
	}

	out := []*parts.Part{rafter}

	// Ridge beam, cantilevered past the gable walls by the overhang.
	ridgeLen := p.Depth + 2*p.Overhang
	ridgeSpan := p.Depth
	if cs.UseKingPosts {
		ridgeSpan = p.Depth / float64(cs.PostsPerSide+1)
	}
	out = append(out, rectPart(parts.ClassRidge, cs.Beam, ridgeLen, 1, &parts.StructuralInfo{
		Class:      parts.ClassRidge,
		Span:       ridgeSpan,
		Cantilever: p.Overhang,
		Tributary:  p.Width / 4,
		Pitch:      p.Pitch,
		Section:    cs.Beam,
	}))

	if cs.UseMiddlePurlin {
		purlinLen := p.Depth + 2*p.Overhang
		out = append(out, middlePurlinPart(p, purlinLen))
	}

	slope := halfSpan/cosP + p.Overhang/cosP
	out = append(out, battenPart(p, o, slope, 2, len(positions)))

	return out
}

func buildShedRoof(p frame.Parameters, o Options) []*parts.Part {
	cs := p.Sections
	cosP := math.Cos(p.PitchRad())

	spec := RafterSpec{
		HalfSpan:     p.Width,
		Overhang:     p.Overhang,
		PitchRad:     p.PitchRad(),
		PlateTop:     p.WallHeight + math.Tan(p.PitchRad())*p.Width,
		PlateWidth:   cs.Beam.Width,
		PlateHeight:  cs.Beam.Height,
		RafterWidth:  cs.Rafter.Width,
		RafterHeight: cs.Rafter.Height,
	}
	profile := ShedRafter(spec)

	positions := Positions(p.Depth, cs.Rafter.Width, o.RafterSpacing)

	rafter := &parts.Part{
		Key:         parts.Key(parts.ClassRafter, profile.Length),
		Class:       parts.ClassRafter,
		Quantity:    len(positions),
		Description: parts.Describe(parts.ClassRafter, cs.Rafter, profile.Length),
		Length:      profile.Length,
		Drawing:     profile.Info,
		Structural: &parts.StructuralInfo{
			Class:      parts.ClassRafter,
			Span:       profile.SeatSpan / cosP,
			Cantilever: p.Overhang / cosP,
			Tributary:  o.RafterSpacing,
			Pitch:      p.Pitch,
			Section:    cs.Rafter,
		},
	}

	out := []*parts.Part{rafter}

	slope := p.Width/cosP + 2*p.Overhang/cosP
	out = append(out, battenPart(p, o, slope, 1, len(positions)))

	return out
}

// middlePurlinPart builds one middle purlin per roof side.
func middlePurlinPart(p frame.Parameters, length float64) *parts.Part {
	cs := p.Sections
	return rectPart(parts.ClassMiddlePurlin, cs.MiddlePurlin, length, 2, &parts.StructuralInfo{
		Class:      parts.ClassMiddlePurlin,
		Span:       p.Depth / float64(cs.PostsPerSide+1),
		Cantilever: p.Overhang,
		Tributary:  p.Width / 4,
		Pitch:      p.Pitch,
		Section:    cs.MiddlePurlin,
	})
}

// battenPart emits one stock part collecting every batten row as required
// cut lengths. Rows longer than the stock are split at rafter stations so
// joints land on a rafter.
func battenPart(p frame.Parameters, o Options, slopeLen float64, sides, rafterCount int) *parts.Part {
	cs := p.Sections
	rows := int(slopeLen/o.BattenSpacing) + 1
	rowLen := p.Depth + 2*p.Overhang

	var cuts []float64
	for i := 0; i < rows*sides; i++ {
		cuts = append(cuts, splitRow(rowLen, o.StockLength, o.RafterSpacing)...)
	}

	return &parts.Part{
		Key:         string(parts.ClassBatten),
		Class:       parts.ClassBatten,
		Quantity:    1,
		Description: "Dachlatte " + cs.Batten.Label(),
		Cuts:        cuts,
	}
}

// splitRow breaks a batten row into stock-length segments, snapping each
// joint back to a whole number of rafter spacings.
func splitRow(rowLen, stock, spacing float64) []float64 {
	if rowLen <= stock || spacing <= 0 {
		return []float64{rowLen}
	}
	seg := math.Floor(stock/spacing) * spacing
	if seg <= 0 {
		return []float64{rowLen}
	}
	var out []float64
	for rowLen > stock {
		out = append(out, seg)
		rowLen -= seg
	}
	return append(out, rowLen)
}
