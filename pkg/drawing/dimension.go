package drawing

// DimensionKind discriminates the dimension variants. Linear kinds measure
// between two endpoints with a perpendicular offset for the dimension line;
// the angular kind draws an arc between two directions around a corner.
type DimensionKind string

// Dimension kinds.
const (
	KindLinearHorizontal DimensionKind = "linear_horizontal"
	KindLinearVertical   DimensionKind = "linear_vertical"
	KindLinearAligned    DimensionKind = "linear_aligned"
	KindAngular          DimensionKind = "angular"
)

// Dimension is one dimension overlay. Which fields are meaningful depends
// on Kind:
//
//   - linear kinds use From, To, Offset and Label. The offset is the
//     perpendicular distance of the dimension line from the measured
//     segment; positive offsets sit above/right of it.
//   - angular uses Center, From, To (unit direction vectors from Center),
//     Radius and Label. The arc spans the smaller angle between the two
//     directions.
//
// Labels are pre-formatted; consumers never re-derive them.
type Dimension struct {
	Kind   DimensionKind `json:"kind"`
	From   Point         `json:"from"`
	To     Point         `json:"to"`
	Offset float64       `json:"offset,omitempty"`
	Label  string        `json:"label"`

	Center Point   `json:"center,omitempty"`
	Radius float64 `json:"radius,omitempty"`
}

// Marker labels a single semantic point of the profile, e.g. the position
// of a purlin seat on a rafter.
type Marker struct {
	At    Point  `json:"at"`
	Label string `json:"label"`
}

// ReferenceLine is an auxiliary construction line drawn across the profile,
// e.g. the plumb line through a birdsmouth heel.
type ReferenceLine struct {
	From  Point  `json:"from"`
	To    Point  `json:"to"`
	Label string `json:"label,omitempty"`
}
