// Package geometry is the deterministic kernel mapping frame parameters to
// a part list.
//
// Everything here is pure computation: the kernel builds wall and roof
// members with their cut profiles, joinery and load-path data, and merges
// them into a [parts.List]. Degenerate features (a brace bay too small to
// fit a brace) yield empty results and continue; physically impossible
// spans abort with an INVALID_CONSTRUCTION error.
package geometry

// Positions lays out member centerlines along a run of the given length.
//
// The layout is greedy-then-snap: the first centerline sits at half the
// member thickness, subsequent ones follow at the target spacing while
// they stay at least half a spacing short of the far end, and the last is
// snapped to exactly thickness/2 before the end. The final bay absorbs the
// remainder, so spacings are uniform except possibly the last. Runs
// shorter than two thicknesses get exactly the two end members.
func Positions(length, thickness, spacing float64) []float64 {
	first := thickness / 2
	last := length - thickness/2
	if length < 2*thickness {
		return []float64{first, last}
	}

	pos := []float64{first}
	for spacing > 0 {
		next := pos[len(pos)-1] + spacing
		if next > last-spacing/2 {
			break
		}
		pos = append(pos, next)
	}
	return append(pos, last)
}

// Spacings returns the distances between consecutive positions.
func Spacings(positions []float64) []float64 {
	if len(positions) < 2 {
		return nil
	}
	out := make([]float64, len(positions)-1)
	for i := 1; i < len(positions); i++ {
		out[i-1] = positions[i] - positions[i-1]
	}
	return out
}
