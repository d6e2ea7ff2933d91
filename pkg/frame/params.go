// Package frame defines the immutable input model for plan generation.
//
// A [Parameters] value describes one building candidate: outer dimensions,
// roof shape and the set of standard cross-sections for every member family.
// Parameters are never mutated in place. The dimension search copies them
// with [Parameters.WithSections] on every iteration, so concurrent candidates
// can never alias each other's state.
package frame

import (
	"fmt"
	"math"

	"github.com/spacerabbit99982/abbund/pkg/errors"
)

// RoofType selects the roof construction the geometry kernel generates.
type RoofType string

// Supported roof types.
const (
	RoofGable RoofType = "gable" // two symmetric slopes meeting at a ridge
	RoofShed  RoofType = "shed"  // single slope between a high and a low wall
	RoofFlat  RoofType = "flat"  // shed construction with zero pitch
)

// ValidRoofTypes is the set of supported roof types.
var ValidRoofTypes = map[RoofType]bool{
	RoofGable: true,
	RoofShed:  true,
	RoofFlat:  true,
}

// CrossSection is a rectangular timber cross-section in meters.
// Width is the horizontal dimension as the member is installed,
// Height the vertical (load-bearing) dimension.
type CrossSection struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// Area returns the section area in m².
func (c CrossSection) Area() float64 {
	return c.Width * c.Height
}

// MomentOfInertia returns the second moment of area about the strong axis
// in m⁴ (width·height³/12 for rectangular sections).
func (c CrossSection) MomentOfInertia() float64 {
	return c.Width * c.Height * c.Height * c.Height / 12.0
}

// Slenderness returns the height/width ratio. Zero-width sections return +Inf.
func (c CrossSection) Slenderness() float64 {
	if c.Width <= 0 {
		return math.Inf(1)
	}
	return c.Height / c.Width
}

// IsZero reports whether the section has no usable dimensions.
func (c CrossSection) IsZero() bool {
	return c.Width <= 0 || c.Height <= 0
}

// Label formats the section as "BxHcm" with centimeter values, the notation
// used in part descriptions (and re-parsed by the summary derivation).
func (c CrossSection) Label() string {
	return fmt.Sprintf("%gx%gcm", roundCm(c.Width), roundCm(c.Height))
}

// roundCm converts meters to centimeters rounded to one decimal.
func roundCm(m float64) float64 {
	return math.Round(m*1000) / 10
}

// CrossSections carries the standard section for every member family plus
// the structural configuration flags the advisory service proposes.
type CrossSections struct {
	Post   CrossSection `json:"post" toml:"post"`
	Beam   CrossSection `json:"beam" toml:"beam"` // plates, purlins, ring beams
	Rafter CrossSection `json:"rafter" toml:"rafter"`
	Brace  CrossSection `json:"brace" toml:"brace"`
	Batten CrossSection `json:"batten" toml:"batten"`
	Stud   CrossSection `json:"stud" toml:"stud"`
	Tie    CrossSection `json:"tie" toml:"tie"` // tie beams / ceiling joists

	// MiddlePurlin is only meaningful when UseMiddlePurlin is set.
	MiddlePurlin    CrossSection `json:"middle_purlin" toml:"middle_purlin"`
	UseMiddlePurlin bool         `json:"use_middle_purlin" toml:"use_middle_purlin"`
	UseKingPosts    bool         `json:"use_king_posts" toml:"use_king_posts"`

	// PostsPerSide is the number of intermediate posts per long wall,
	// corner posts not included.
	PostsPerSide int `json:"posts_per_side" toml:"posts_per_side"`
}

// Parameters is the complete, immutable input of one geometry iteration.
// All lengths are meters, the pitch is in degrees, the altitude in meters
// above sea level.
type Parameters struct {
	Width      float64  `json:"width"`       // outer width (gable side)
	Depth      float64  `json:"depth"`       // outer depth (eaves side)
	WallHeight float64  `json:"wall_height"` // top of wall plate above sill
	Roof       RoofType `json:"roof"`
	Pitch      float64  `json:"pitch"`    // degrees from horizontal
	Overhang   float64  `json:"overhang"` // horizontal eaves overhang
	Altitude   float64  `json:"altitude"` // site altitude for snow load

	Sections CrossSections `json:"sections"`
}

// WithSections returns a copy of p with the given cross-sections.
// The receiver is left untouched; this is the only way the dimension
// search derives the next candidate.
func (p Parameters) WithSections(cs CrossSections) Parameters {
	p.Sections = cs
	return p
}

// PitchRad returns the roof pitch in radians. Flat roofs report zero
// regardless of the stored pitch value.
func (p Parameters) PitchRad() float64 {
	if p.Roof == RoofFlat {
		return 0
	}
	return p.Pitch * math.Pi / 180
}

// Validate checks that the parameters describe a physically buildable frame.
// It returns an INVALID_INPUT or INVALID_ROOF_TYPE error describing the first
// violation found.
func (p Parameters) Validate() error {
	if !ValidRoofTypes[p.Roof] {
		return errors.New(errors.ErrCodeInvalidRoofType, "unknown roof type %q (must be gable, shed or flat)", p.Roof)
	}
	if p.Width <= 0 || p.Depth <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "footprint %.2fm x %.2fm must be positive", p.Width, p.Depth)
	}
	if p.WallHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "wall height %.2fm must be positive", p.WallHeight)
	}
	if p.Roof != RoofFlat && (p.Pitch <= 0 || p.Pitch >= 75) {
		return errors.New(errors.ErrCodeInvalidInput, "roof pitch %.1f° out of range (0°, 75°)", p.Pitch)
	}
	if p.Overhang < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "overhang %.2fm must not be negative", p.Overhang)
	}
	if p.Altitude < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "altitude %.0fm must not be negative", p.Altitude)
	}
	if p.Sections.PostsPerSide < 0 {
		return errors.New(errors.ErrCodeInvalidSection, "posts per side must not be negative")
	}
	for _, s := range []struct {
		name string
		cs   CrossSection
	}{
		{"post", p.Sections.Post},
		{"beam", p.Sections.Beam},
		{"rafter", p.Sections.Rafter},
		{"stud", p.Sections.Stud},
		{"tie", p.Sections.Tie},
	} {
		if s.cs.IsZero() {
			return errors.New(errors.ErrCodeInvalidSection, "%s cross-section is missing", s.name)
		}
	}
	if p.Sections.UseMiddlePurlin && p.Sections.MiddlePurlin.IsZero() {
		return errors.New(errors.ErrCodeInvalidSection, "middle purlin enabled but cross-section is missing")
	}
	return nil
}
