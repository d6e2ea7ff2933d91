package statics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacerabbit99982/abbund/pkg/frame"
	"github.com/spacerabbit99982/abbund/pkg/parts"
)

func TestUniformDeflectionReference(t *testing.T) {
	// Simply supported 4m span, q = 500 N/m, 8x16cm section, E = 11 GPa.
	sec := frame.CrossSection{Width: 0.08, Height: 0.16}
	i := sec.MomentOfInertia()

	w := UniformDeflection(500, 4, 11e9, i)
	want := 5 * 500 * math.Pow(4, 4) / (384 * 11e9 * i)
	assert.InDelta(t, want, w, 1e-12)
	assert.True(t, w <= 4.0/300, "reference case must pass L/300")
}

func TestDeflectionFormulas(t *testing.T) {
	const e, i = 11e9, 2.7306e-5

	assert.InDelta(t, 1000*27/(48*e*i), PointDeflection(1000, 3, e, i), 1e-15)
	assert.InDelta(t, 400*math.Pow(1.5, 4)/(8*e*i), CantileverDeflection(400, 1.5, e, i), 1e-15)
	assert.Zero(t, UniformDeflection(500, 4, 0, i))
	assert.Zero(t, PointDeflection(500, 4, e, 0))
}

func TestGroundSnowLoad(t *testing.T) {
	// The floor applies at low altitudes.
	assert.InDelta(t, 650, GroundSnowLoad(0), 1e-9)

	// Above the floor the load grows with altitude.
	at800 := GroundSnowLoad(800)
	want := (0.19 + 0.91*math.Pow((800+140)/760.0, 2)) * 1000
	assert.InDelta(t, want, at800, 1e-9)
	assert.Greater(t, GroundSnowLoad(1200), at800)
}

func TestRoofSnowLoadShapeFactor(t *testing.T) {
	flat := RoofSnowLoad(400, 0)
	assert.InDelta(t, flat, RoofSnowLoad(400, 30), 1e-9, "constant up to 30°")
	assert.Less(t, RoofSnowLoad(400, 45), flat)
	assert.Zero(t, RoofSnowLoad(400, 70))
	assert.Zero(t, RoofSnowLoad(400, 80))
}

func structuralPart(class parts.Class, st parts.StructuralInfo) *parts.Part {
	st.Class = class
	return &parts.Part{
		Key:        parts.Key(class, st.Span),
		Class:      class,
		Quantity:   1,
		Structural: &st,
	}
}

func TestEvaluateAttachesResults(t *testing.T) {
	sec := frame.CrossSection{Width: 0.08, Height: 0.16}
	list := parts.NewList()
	rafter := structuralPart(parts.ClassRafter, parts.StructuralInfo{
		Span:      2.2,
		Tributary: 0.8,
		Pitch:     25,
		Section:   sec,
	})
	plain := &parts.Part{Key: "strebe-1", Class: parts.ClassBrace, Quantity: 4}
	list.Insert(rafter)
	list.Insert(plain)

	rep := Evaluate(list, 400, Options{})

	assert.Equal(t, 1, rep.Checked)
	assert.Greater(t, rep.SnowLoad, 0.0)
	assert.Equal(t, rep.SnowLoad+DefaultDeadLoad, rep.CombinedLoad)

	require.NotNil(t, rafter.Statics)
	assert.Equal(t, 2.2, rafter.Statics.Span)
	assert.InDelta(t, 2.2/300, rafter.Statics.Allowed, 1e-12)
	assert.Greater(t, rafter.Statics.UniformLoad, 0.0)
	assert.Equal(t, rafter.Statics.Passed, rafter.Statics.Deflection <= rafter.Statics.Allowed)

	// Unrecognized parts pass through untouched.
	assert.Nil(t, plain.Statics)
}

func TestEvaluatePointLoadSuperposition(t *testing.T) {
	sec := frame.CrossSection{Width: 0.10, Height: 0.18}
	list := parts.NewList()
	tie := structuralPart(parts.ClassTie, parts.StructuralInfo{
		Span:      5,
		PointArea: 4.0,
		Section:   sec,
	})
	list.Insert(tie)

	Evaluate(list, 400, Options{})

	require.NotNil(t, tie.Statics)
	assert.Greater(t, tie.Statics.PointLoad, 0.0)
	assert.Contains(t, tie.Statics.Formula, "48")
	assert.Contains(t, tie.Statics.Description, "Einzellast")
}

func TestEvaluateCantileverGoverns(t *testing.T) {
	sec := frame.CrossSection{Width: 0.12, Height: 0.16}
	list := parts.NewList()
	// Tiny inner span, long overhang: the cantilever check must govern.
	plate := structuralPart(parts.ClassTopPlate, parts.StructuralInfo{
		Span:       0.5,
		Cantilever: 2.0,
		Tributary:  1.5,
		Section:    sec,
	})
	list.Insert(plate)

	Evaluate(list, 400, Options{})

	require.NotNil(t, plate.Statics)
	assert.Equal(t, 2.0, plate.Statics.Span, "cantilever result reports its own length")
	assert.Equal(t, parts.SupportCantilever, plate.Statics.Support)
	assert.Contains(t, plate.Statics.Description, "Kragarm")
	assert.InDelta(t, 2.0/150, plate.Statics.Allowed, 1e-12)
}

func TestEvaluateCollectsFailures(t *testing.T) {
	thin := frame.CrossSection{Width: 0.04, Height: 0.06}
	list := parts.NewList()
	weak := structuralPart(parts.ClassRafter, parts.StructuralInfo{
		Span:      4,
		Tributary: 0.8,
		Section:   thin,
	})
	list.Insert(weak)

	rep := Evaluate(list, 400, Options{})

	require.Len(t, rep.Failed, 1)
	assert.False(t, weak.Statics.Passed)
	assert.Greater(t, weak.Statics.Utilization(), 1.0)
}

func TestEvaluateFreshResults(t *testing.T) {
	sec := frame.CrossSection{Width: 0.08, Height: 0.16}
	list := parts.NewList()
	rafter := structuralPart(parts.ClassRafter, parts.StructuralInfo{
		Span: 2.2, Tributary: 0.8, Section: sec,
	})
	list.Insert(rafter)

	Evaluate(list, 400, Options{})
	first := rafter.Statics
	Evaluate(list, 400, Options{})

	assert.NotSame(t, first, rafter.Statics, "each pass attaches a fresh result")
}
