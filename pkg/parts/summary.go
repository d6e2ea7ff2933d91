package parts

import (
	"regexp"
	"strconv"
	"strings"
)

// SummaryInfo aggregates the whole plan: timber volume and weight over all
// parts, plus the governing area loads the statics engine worked with.
type SummaryInfo struct {
	TotalVolume  float64 `json:"total_volume"`  // m³
	TotalWeight  float64 `json:"total_weight"`  // kg
	SnowLoad     float64 `json:"snow_load"`     // N/m²
	CombinedLoad float64 `json:"combined_load"` // N/m²
	PartCount    int     `json:"part_count"`    // total pieces
}

// sectionRe matches the "BxHcm" section notation in part descriptions,
// lengthRe the "Länge: Lcm" suffix. Both tolerate a decimal comma.
var (
	sectionRe = regexp.MustCompile(`(\d+(?:[.,]\d+)?)x(\d+(?:[.,]\d+)?)cm`)
	lengthRe  = regexp.MustCompile(`Länge:\s*(\d+(?:[.,]\d+)?)cm`)
)

// Summarize derives the plan summary by re-parsing each part's description
// for its nominal section and length. Parts that carry a cutting plan
// instead of a length (battens) contribute stock length times stock count.
// Unparseable descriptions contribute nothing rather than failing.
func Summarize(list *List, density, snowLoad, combinedLoad float64) SummaryInfo {
	s := SummaryInfo{SnowLoad: snowLoad, CombinedLoad: combinedLoad}

	for _, p := range list.All() {
		s.PartCount += p.Quantity

		w, h, ok := parseSection(p.Description)
		if !ok {
			continue
		}

		var length float64
		switch {
		case p.Cutting != nil:
			length = p.Cutting.StockLength * float64(p.Cutting.StockCount())
		default:
			l, ok := parseLength(p.Description)
			if !ok {
				continue
			}
			length = l
		}
		s.TotalVolume += w * h * length * float64(p.Quantity)
	}

	s.TotalWeight = s.TotalVolume * density
	return s
}

// parseSection extracts the cross-section from a description, returning
// meters.
func parseSection(desc string) (w, h float64, ok bool) {
	m := sectionRe.FindStringSubmatch(desc)
	if m == nil {
		return 0, 0, false
	}
	w = cmToM(m[1])
	h = cmToM(m[2])
	return w, h, w > 0 && h > 0
}

// parseLength extracts the part length from a description, in meters.
func parseLength(desc string) (float64, bool) {
	m := lengthRe.FindStringSubmatch(desc)
	if m == nil {
		return 0, false
	}
	l := cmToM(m[1])
	return l, l > 0
}

func cmToM(s string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0
	}
	return v / 100
}
