// Package parts holds the bill-of-parts model produced by the geometry
// kernel and enriched by the statics engine and cutting optimizer.
//
// Parts merge by identity key: the key encodes the part class plus the
// rounded critical dimension, so geometrically identical members collapse
// into one entry with a summed quantity. A [List] is built fresh on every
// search iteration and never shared across iterations.
package parts

import (
	"fmt"
	"strings"

	"github.com/spacerabbit99982/abbund/pkg/cutting"
	"github.com/spacerabbit99982/abbund/pkg/drawing"
	"github.com/spacerabbit99982/abbund/pkg/frame"
)

// Class names a part family. The German carpentry terms double as the key
// prefix and as the class tag the statics engine dispatches on.
type Class string

// Part classes.
const (
	ClassRafter       Class = "sparren"
	ClassPost         Class = "pfosten"
	ClassStud         Class = "staender"
	ClassSill         Class = "schwelle"
	ClassTopPlate     Class = "rahm"
	ClassTie          Class = "zange"
	ClassBrace        Class = "strebe"
	ClassBatten       Class = "dachlatte"
	ClassRidge        Class = "firstpfette"
	ClassMiddlePurlin Class = "mittelpfette"
	ClassKingPost     Class = "firststiel"
)

// SupportKind selects the deflection model for a structural member.
type SupportKind string

// Support kinds.
const (
	SupportSimple     SupportKind = "simple"     // simply supported span
	SupportCantilever SupportKind = "cantilever" // tip of an overhang
)

// StructuralInfo carries the load-path data the geometry kernel knows and
// the statics engine needs: the clear span between supports, an optional
// cantilever, the tributary width collecting roof load, and an optional
// concentrated load from a supported post. Parts without structural info
// are skipped by the statics engine.
type StructuralInfo struct {
	Class      Class
	Span       float64 // clear span between supports, m
	Cantilever float64 // cantilever beyond the last support, m
	Tributary  float64 // load collection width, m
	PointArea  float64 // roof area landing as a concentrated midspan load, m²
	Pitch      float64 // roof pitch in degrees, for load projection

	Section frame.CrossSection
}

// StaticsResult is the outcome of one deflection check. It is created
// fresh by every statics pass and immutable once attached to a part.
type StaticsResult struct {
	Support         SupportKind `json:"support"`
	Span            float64     `json:"span"`         // m
	UniformLoad     float64     `json:"uniform_load"` // N/m
	PointLoad       float64     `json:"point_load,omitempty"`
	Deflection      float64     `json:"deflection"` // m
	Allowed         float64     `json:"allowed"`    // m
	Passed          bool        `json:"passed"`
	MomentOfInertia float64     `json:"moment_of_inertia"` // m⁴
	ElasticModulus  float64     `json:"elastic_modulus"`   // Pa
	Formula         string      `json:"formula"`
	Description     string      `json:"description"`
}

// Utilization returns deflection/allowed, the ratio the search loop ranks
// failures by. Zero allowance reports zero.
func (r *StaticsResult) Utilization() float64 {
	if r.Allowed <= 0 {
		return 0
	}
	return r.Deflection / r.Allowed
}

// Part is one line of the bill of parts.
type Part struct {
	Key         string        `json:"key"`
	Class       Class         `json:"class"`
	Quantity    int           `json:"quantity"`
	Description string        `json:"description"`
	Length      float64       `json:"length"` // m, zero for batten stock parts
	Drawing     *drawing.Info `json:"drawing,omitempty"`

	Statics *StaticsResult `json:"statics,omitempty"`
	Cutting *cutting.Plan  `json:"cutting,omitempty"`

	Structural *StructuralInfo `json:"-"`

	// Cuts lists required cut lengths for stock-bought parts (battens).
	// The cutting optimizer consumes them after the search converges.
	Cuts []float64 `json:"-"`
}

// Key builds a part identity key from a class and the critical dimension
// in meters, rounded to millimeters so float noise cannot split identical
// parts into separate entries.
func Key(class Class, critical float64) string {
	return fmt.Sprintf("%s-%.0f", class, critical*1000)
}

// Describe formats the standard part description: class label, section in
// centimeters and the length, e.g. "Sparren 8x16cm, Länge: 412.3cm".
func Describe(class Class, section frame.CrossSection, length float64) string {
	return fmt.Sprintf("%s %s, Länge: %s",
		displayName(class), section.Label(), drawing.FormatCm(length))
}

func displayName(class Class) string {
	if class == "" {
		return "Teil"
	}
	s := string(class)
	return strings.ToUpper(s[:1]) + s[1:]
}

// List is an ordered, key-merged collection of parts.
type List struct {
	order []string
	byKey map[string]*Part
}

// NewList returns an empty part list.
func NewList() *List {
	return &List{byKey: make(map[string]*Part)}
}

// Insert adds a part, merging quantities when the key already exists.
// The first insertion wins for all non-quantity fields.
func (l *List) Insert(p *Part) {
	if existing, ok := l.byKey[p.Key]; ok {
		existing.Quantity += p.Quantity
		return
	}
	l.byKey[p.Key] = p
	l.order = append(l.order, p.Key)
}

// Get returns the part with the given key, or nil.
func (l *List) Get(key string) *Part {
	return l.byKey[key]
}

// All returns the parts in insertion order. The slice is freshly
// allocated; the parts themselves are shared.
func (l *List) All() []*Part {
	out := make([]*Part, 0, len(l.order))
	for _, k := range l.order {
		out = append(out, l.byKey[k])
	}
	return out
}

// Len returns the number of distinct part entries.
func (l *List) Len() int {
	return len(l.order)
}

// TotalQuantity returns the summed quantity over all entries.
func (l *List) TotalQuantity() int {
	var n int
	for _, k := range l.order {
		n += l.byKey[k].Quantity
	}
	return n
}
