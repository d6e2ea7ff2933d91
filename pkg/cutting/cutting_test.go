package cutting

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacerabbit99982/abbund/pkg/errors"
)

func TestOptimizeTwoBins(t *testing.T) {
	plan, err := Optimize([]float64{3.0, 2.0, 2.0, 1.0}, 5.0, 0.0)
	require.NoError(t, err)

	assert.Equal(t, 2, plan.StockCount())
	for _, b := range plan.Bins {
		assert.LessOrEqual(t, b.Used(), 5.0)
	}
	assertConservation(t, plan, []float64{3.0, 2.0, 2.0, 1.0})
}

func TestOptimizeKerfConsumesCapacity(t *testing.T) {
	// Two 2.5m cuts fill 5m stock exactly, so any kerf forces a second bin.
	plan, err := Optimize([]float64{2.5, 2.5}, 5.0, 0.003)
	require.NoError(t, err)
	assert.Equal(t, 2, plan.StockCount())
}

func TestOptimizeGroupsIdenticalPatterns(t *testing.T) {
	plan, err := Optimize([]float64{4, 4, 4, 4, 4, 4}, 5.0, 0.003)
	require.NoError(t, err)

	require.Len(t, plan.Bins, 1)
	assert.Equal(t, 6, plan.Bins[0].Count)
	assert.Equal(t, []float64{4}, plan.Bins[0].Cuts)
	assert.Equal(t, 6, plan.StockCount())
}

func TestOptimizeRejectsOverlongCuts(t *testing.T) {
	plan, err := Optimize([]float64{6.0, 2.0}, 5.0, 0.0)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeCutTooLong))

	// The remaining plan is still valid.
	assert.Equal(t, []float64{6.0}, plan.Rejected)
	assert.Equal(t, 1, plan.StockCount())
	assertConservation(t, plan, []float64{2.0})
}

func TestOptimizeEmpty(t *testing.T) {
	plan, err := Optimize(nil, 5.0, 0.003)
	require.NoError(t, err)
	assert.Zero(t, plan.StockCount())
	assert.Zero(t, plan.Waste())
}

func TestOptimizeFeasibility(t *testing.T) {
	cuts := []float64{3.9, 0.4, 1.2, 2.2, 0.9, 3.1, 1.7, 2.8, 0.35, 4.6, 1.1}
	plan, err := Optimize(cuts, 5.0, 0.003)
	require.NoError(t, err)

	for _, b := range plan.Bins {
		used := b.Used() + float64(len(b.Cuts))*plan.Kerf
		assert.LessOrEqual(t, used, plan.StockLength+1e-9)
	}
	assertConservation(t, plan, cuts)
	assert.InDelta(t, plan.StockLength*float64(plan.StockCount())-plan.TotalCutLength(), plan.Waste(), 1e-9)
}

// assertConservation checks every expected cut appears exactly once across
// all bins, repetition counts included.
func assertConservation(t *testing.T, plan *Plan, want []float64) {
	t.Helper()

	var got []float64
	for _, b := range plan.Bins {
		for i := 0; i < b.Count; i++ {
			got = append(got, b.Cuts...)
		}
	}
	sort.Float64s(got)

	expected := make([]float64, len(want))
	copy(expected, want)
	sort.Float64s(expected)

	require.Len(t, got, len(expected))
	for i := range expected {
		if math.Abs(got[i]-expected[i]) > 1e-9 {
			t.Fatalf("cut multiset mismatch at %d: got %v, want %v", i, got, expected)
		}
	}
}
