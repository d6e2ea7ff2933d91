package frame

import (
	"strconv"
	"strings"
)

// UserInput is the raw, untrusted user request as it arrives from a form or
// CLI flags. All fields are strings; absent or non-numeric values fall back
// to documented defaults during parsing.
type UserInput struct {
	Width      string `json:"width"`
	Depth      string `json:"depth"`
	WallHeight string `json:"wall_height"`
	Roof       string `json:"roof"`
	Pitch      string `json:"pitch"`
	Overhang   string `json:"overhang"`
	Altitude   string `json:"altitude"`
}

// Fallback defaults applied by [ParseInput] when a field is absent or not
// parseable as a number. Lengths in meters, pitch in degrees.
const (
	DefaultWidth      = 5.0
	DefaultDepth      = 7.0
	DefaultWallHeight = 2.5
	DefaultPitch      = 25.0
	DefaultShedPitch  = 12.0
	DefaultOverhang   = 0.5
	DefaultAltitude   = 400.0
)

// ParseInput converts raw user input into Parameters, substituting defaults
// for missing or malformed fields. Cross-sections are not populated here;
// they come from the advisory suggestion (see [Suggestion.Apply]).
//
// Decimal commas are accepted alongside decimal points, since the input
// typically originates from German-locale forms.
func ParseInput(in UserInput) Parameters {
	roof := parseRoof(in.Roof)

	pitchDefault := DefaultPitch
	if roof == RoofShed {
		pitchDefault = DefaultShedPitch
	}
	pitch := parseFloat(in.Pitch, pitchDefault)
	if roof == RoofFlat {
		pitch = 0
	}

	return Parameters{
		Width:      parseFloat(in.Width, DefaultWidth),
		Depth:      parseFloat(in.Depth, DefaultDepth),
		WallHeight: parseFloat(in.WallHeight, DefaultWallHeight),
		Roof:       roof,
		Pitch:      pitch,
		Overhang:   parseFloat(in.Overhang, DefaultOverhang),
		Altitude:   parseFloat(in.Altitude, DefaultAltitude),
	}
}

// parseFloat parses s as a float, tolerating a decimal comma and surrounding
// whitespace. Non-positive parses keep the value (range checks happen in
// Validate); unparseable input falls back to def.
func parseFloat(s string, def float64) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

// parseRoof maps user roof names (including the German forms) onto RoofType,
// defaulting to a gable roof.
func parseRoof(s string) RoofType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shed", "pult", "pultdach":
		return RoofShed
	case "flat", "flach", "flachdach":
		return RoofFlat
	case "", "gable", "sattel", "satteldach":
		return RoofGable
	default:
		return RoofGable
	}
}
