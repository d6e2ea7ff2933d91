package statics

import (
	"fmt"

	"github.com/spacerabbit99982/abbund/pkg/errors"
	"github.com/spacerabbit99982/abbund/pkg/parts"
)

// Default material and limit constants: softwood grade C24.
const (
	DefaultElasticModulus = 11e9  // Pa
	DefaultDensity        = 470.0 // kg/m³
	DefaultDeadLoad       = 700.0 // roof covering, N/m²

	DefaultSpanDivisor       = 300.0 // allowed = span/300
	DefaultCantileverDivisor = 150.0 // allowed = cantilever/150
)

// Options configures the engine's material grade and deflection limits.
// The zero value is usable after ValidateAndSetDefaults.
type Options struct {
	ElasticModulus    float64 // Pa
	Density           float64 // kg/m³
	DeadLoad          float64 // N/m² roof area
	SpanDivisor       float64
	CantileverDivisor float64
}

// ValidateAndSetDefaults fills unset fields and rejects negative values.
func (o *Options) ValidateAndSetDefaults() error {
	if o.ElasticModulus < 0 || o.Density < 0 || o.DeadLoad < 0 ||
		o.SpanDivisor < 0 || o.CantileverDivisor < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "statics options must not be negative")
	}
	if o.ElasticModulus == 0 {
		o.ElasticModulus = DefaultElasticModulus
	}
	if o.Density == 0 {
		o.Density = DefaultDensity
	}
	if o.DeadLoad == 0 {
		o.DeadLoad = DefaultDeadLoad
	}
	if o.SpanDivisor == 0 {
		o.SpanDivisor = DefaultSpanDivisor
	}
	if o.CantileverDivisor == 0 {
		o.CantileverDivisor = DefaultCantileverDivisor
	}
	return nil
}

// Report summarizes one engine pass.
type Report struct {
	SnowLoad     float64 // N/m² on the roof
	CombinedLoad float64 // snow + dead, N/m²
	Checked      int
	Failed       []*parts.Part
}

// Evaluate runs the deflection check over every part carrying structural
// info, attaching a fresh StaticsResult to each. Parts without structural
// info are left untouched. The pass never returns an error; infeasible
// members simply fail their check.
func Evaluate(list *parts.List, altitude float64, opts Options) Report {
	// The engine never fails; unusable options fall back to defaults.
	if err := opts.ValidateAndSetDefaults(); err != nil {
		opts = Options{}
		_ = opts.ValidateAndSetDefaults()
	}

	var rep Report
	for _, p := range list.All() {
		st := p.Structural
		if st == nil || st.Span <= 0 {
			continue
		}

		snow := RoofSnowLoad(altitude, st.Pitch)
		area := snow + opts.DeadLoad
		if rep.Checked == 0 {
			rep.SnowLoad = snow
			rep.CombinedLoad = area
		}

		q := area*st.Tributary + selfWeight(st.Section.Area(), opts.Density)
		point := area * st.PointArea
		e := opts.ElasticModulus
		i := st.Section.MomentOfInertia()

		span := &parts.StaticsResult{
			Support:         parts.SupportSimple,
			Span:            st.Span,
			UniformLoad:     q,
			PointLoad:       point,
			Deflection:      UniformDeflection(q, st.Span, e, i) + PointDeflection(point, st.Span, e, i),
			Allowed:         st.Span / opts.SpanDivisor,
			MomentOfInertia: i,
			ElasticModulus:  e,
			Formula:         "w = 5·q·L⁴/(384·E·I)",
			Description:     fmt.Sprintf("Einfeldträger, Gleichlast q=%.0f N/m", q),
		}
		if point > 0 {
			span.Formula += " + P·L³/(48·E·I)"
			span.Description = fmt.Sprintf("Einfeldträger, Gleichlast q=%.0f N/m, Einzellast P=%.0f N", q, point)
		}

		result := span
		if st.Cantilever > 0 {
			cant := &parts.StaticsResult{
				Support:         parts.SupportCantilever,
				Span:            st.Cantilever,
				UniformLoad:     q,
				Deflection:      CantileverDeflection(q, st.Cantilever, e, i),
				Allowed:         st.Cantilever / opts.CantileverDivisor,
				MomentOfInertia: i,
				ElasticModulus:  e,
				Formula:         "w = q·L⁴/(8·E·I)",
				Description:     fmt.Sprintf("Kragarm, Gleichlast q=%.0f N/m", q),
			}
			// The higher utilization governs, strictly: ties resolve to
			// the inner span.
			if cant.Utilization() > span.Utilization() {
				result = cant
			}
		}

		result.Passed = result.Deflection <= result.Allowed
		p.Statics = result

		rep.Checked++
		if !result.Passed {
			rep.Failed = append(rep.Failed, p)
		}
	}
	return rep
}
