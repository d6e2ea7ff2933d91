package geometry

import (
	"math"

	"github.com/spacerabbit99982/abbund/pkg/errors"
	"github.com/spacerabbit99982/abbund/pkg/frame"
	"github.com/spacerabbit99982/abbund/pkg/parts"
)

// Default layout spacings and stock, in meters.
const (
	DefaultStudSpacing   = 0.625
	DefaultRafterSpacing = 0.8
	DefaultBattenSpacing = 0.35
	DefaultStockLength   = 5.0
)

// Options configures the kernel's layout spacings. The zero value is
// usable after ValidateAndSetDefaults.
type Options struct {
	StudSpacing   float64
	RafterSpacing float64
	BattenSpacing float64
	StockLength   float64 // batten stock, for row splitting
}

// ValidateAndSetDefaults fills unset fields with defaults and rejects
// negative spacings.
func (o *Options) ValidateAndSetDefaults() error {
	if o.StudSpacing < 0 || o.RafterSpacing < 0 || o.BattenSpacing < 0 || o.StockLength < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "layout spacings must not be negative")
	}
	if o.StudSpacing == 0 {
		o.StudSpacing = DefaultStudSpacing
	}
	if o.RafterSpacing == 0 {
		o.RafterSpacing = DefaultRafterSpacing
	}
	if o.BattenSpacing == 0 {
		o.BattenSpacing = DefaultBattenSpacing
	}
	if o.StockLength == 0 {
		o.StockLength = DefaultStockLength
	}
	return nil
}

// Generate maps frame parameters to a complete part list. It is pure and
// deterministic: the same input always yields the same list, and every
// call builds a fresh list. Degenerate optional members are skipped;
// impossible spans return an INVALID_CONSTRUCTION error.
func Generate(p frame.Parameters, opts Options) (*parts.List, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	heightA, heightB := wallHeights(p)

	wall, err := buildWalls(p, opts, heightA, heightB)
	if err != nil {
		return nil, err
	}

	list := parts.NewList()
	for _, part := range wall {
		list.Insert(part)
	}
	for _, part := range buildRoof(p, opts) {
		list.Insert(part)
	}
	return list, nil
}

// wallHeights returns the two long-wall heights. Gable and flat roofs have
// equal walls; a shed roof raises one side by the rise over the width.
func wallHeights(p frame.Parameters) (float64, float64) {
	if p.Roof != frame.RoofShed {
		return p.WallHeight, p.WallHeight
	}
	return p.WallHeight + p.Width*math.Tan(p.PitchRad()), p.WallHeight
}
