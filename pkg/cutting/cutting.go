// Package cutting packs required cut lengths onto stock timber.
//
// The optimizer is a best-fit-decreasing heuristic: cuts are sorted
// descending and each cut goes into the open bin with the least remaining
// capacity that still takes it. The result is feasible and compact, not
// provably optimal, which is fine for ordering battens.
package cutting

import (
	"math"
	"sort"

	"github.com/spacerabbit99982/abbund/pkg/errors"
)

// Bin is one piece of stock with the cuts assigned to it. Identical cut
// patterns are merged, with Count recording the repetition.
type Bin struct {
	Cuts  []float64 `json:"cuts"` // sorted descending, meters
	Count int       `json:"count"`
}

// Used returns the total cut length in the bin, kerf not included.
func (b Bin) Used() float64 {
	var sum float64
	for _, c := range b.Cuts {
		sum += c
	}
	return sum
}

// Plan is a complete stock-cutting plan for one part family.
type Plan struct {
	StockLength float64 `json:"stock_length"`
	Kerf        float64 `json:"kerf"`
	Bins        []Bin   `json:"bins"`

	// Rejected lists cuts longer than the stock length. They are reported
	// rather than placed; the rest of the plan stays valid.
	Rejected []float64 `json:"rejected,omitempty"`
}

// StockCount returns the number of stock pieces to order.
func (p *Plan) StockCount() int {
	var n int
	for _, b := range p.Bins {
		n += b.Count
	}
	return n
}

// TotalCutLength returns the summed length of all placed cuts.
func (p *Plan) TotalCutLength() float64 {
	var sum float64
	for _, b := range p.Bins {
		sum += b.Used() * float64(b.Count)
	}
	return sum
}

// Waste returns the total offcut length across all stock pieces.
func (p *Plan) Waste() float64 {
	return p.StockLength*float64(p.StockCount()) - p.TotalCutLength()
}

// Optimize partitions the required cuts onto stock of the given length.
// Every cut consumes its length plus one saw kerf. Cuts that cannot fit a
// fresh stock piece are collected in Plan.Rejected and additionally
// reported through the returned error (code CUT_TOO_LONG); the plan itself
// is always usable.
func Optimize(cuts []float64, stockLength, kerf float64) (*Plan, error) {
	plan := &Plan{StockLength: stockLength, Kerf: kerf}
	if stockLength <= 0 {
		return plan, errors.New(errors.ErrCodeInvalidInput, "stock length %.2fm must be positive", stockLength)
	}

	sorted := make([]float64, len(cuts))
	copy(sorted, cuts)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	var bins []*openBin

	for _, cut := range sorted {
		if cut <= 0 {
			continue
		}
		if cut > stockLength {
			plan.Rejected = append(plan.Rejected, cut)
			continue
		}

		need := cut + kerf
		best := -1
		for i, b := range bins {
			if b.remaining < need {
				continue
			}
			if best == -1 || b.remaining < bins[best].remaining {
				best = i
			}
		}
		if best == -1 {
			bins = append(bins, &openBin{cuts: []float64{cut}, remaining: stockLength - need})
			continue
		}
		bins[best].cuts = append(bins[best].cuts, cut)
		bins[best].remaining -= need
	}

	plan.Bins = group(bins)

	if len(plan.Rejected) > 0 {
		return plan, errors.New(errors.ErrCodeCutTooLong,
			"%d cut(s) exceed the %.2fm stock length (longest %.2fm)",
			len(plan.Rejected), stockLength, maxOf(plan.Rejected))
	}
	return plan, nil
}

type openBin struct {
	cuts      []float64
	remaining float64
}

// group merges bins whose sorted cut patterns are identical within a
// millimeter, keeping a repetition count.
func group(raw []*openBin) []Bin {
	var out []Bin
	for _, b := range raw {
		cuts := make([]float64, len(b.cuts))
		copy(cuts, b.cuts)
		sort.Sort(sort.Reverse(sort.Float64Slice(cuts)))

		merged := false
		for i := range out {
			if samePattern(out[i].Cuts, cuts) {
				out[i].Count++
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, Bin{Cuts: cuts, Count: 1})
		}
	}
	return out
}

func samePattern(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-3 {
			return false
		}
	}
	return true
}

func maxOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		m = math.Max(m, v)
	}
	return m
}
