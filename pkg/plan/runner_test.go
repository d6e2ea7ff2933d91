package plan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacerabbit99982/abbund/pkg/cache"
	"github.com/spacerabbit99982/abbund/pkg/config"
	"github.com/spacerabbit99982/abbund/pkg/errors"
	"github.com/spacerabbit99982/abbund/pkg/frame"
	"github.com/spacerabbit99982/abbund/pkg/parts"
)

// rafterOnlyParams is tuned so the initial geometry fails exactly the
// rafter check: short plate spans via many posts, king posts under the
// ridge, a deliberately undersized rafter section.
func rafterOnlyParams() frame.Parameters {
	p := frame.Parameters{
		Width:      6,
		Depth:      7,
		WallHeight: 2.5,
		Roof:       frame.RoofGable,
		Pitch:      25,
		Overhang:   0.5,
		Altitude:   400,
		Sections:   frame.DefaultSections(),
	}
	p.Sections.PostsPerSide = 6
	p.Sections.UseKingPosts = true
	p.Sections.Rafter = frame.CrossSection{Width: 0.06, Height: 0.08}
	return p
}

func TestSearchBumpsOnlyFailingCategory(t *testing.T) {
	r, err := NewRunner(Options{})
	require.NoError(t, err)

	p := rafterOnlyParams()
	res, err := r.ExecuteParams(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, StateConverged, res.State)
	require.Greater(t, len(res.Iters), 1, "initial rafter must fail")

	// The first iteration fails rafters only.
	for _, key := range res.Iters[0].Failed {
		assert.Contains(t, key, string(parts.ClassRafter))
	}

	final := res.Params.Sections
	assert.Greater(t, final.Rafter.Height, p.Sections.Rafter.Height)
	assert.Equal(t, p.Sections.Beam, final.Beam, "beam section must not change")
	assert.Equal(t, p.Sections.Tie, final.Tie, "tie section must not change")

	// Heights never shrink across the iteration trail.
	for i := 1; i < len(res.Iters); i++ {
		assert.GreaterOrEqual(t, res.Iters[i].Sections.Rafter.Height, res.Iters[i-1].Sections.Rafter.Height)
	}
}

func TestSearchExhausts(t *testing.T) {
	cfg := config.Default()
	cfg.Search.MaxIterations = 3
	cfg.Search.Heights = []float64{0.08} // nothing to grow into
	cfg.Search.Widths = []float64{0.06}

	r, err := NewRunner(Options{Config: cfg})
	require.NoError(t, err)

	p := rafterOnlyParams()
	p.Width = 16 // hopeless span for a capped rafter height

	res, err := r.ExecuteParams(context.Background(), p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeSearchExhausted))

	require.NotNil(t, res, "exhausted result still carries diagnostics")
	assert.Equal(t, StateExhausted, res.State)
	assert.Len(t, res.Iters, 3)
	assert.Empty(t, res.Parts)
}

func TestPostFollowsBeamWidth(t *testing.T) {
	r, err := NewRunner(Options{})
	require.NoError(t, err)

	res, err := r.ExecuteParams(context.Background(), rafterOnlyParams())
	require.NoError(t, err)

	beam := res.Params.Sections.Beam
	assert.Equal(t, frame.CrossSection{Width: beam.Width, Height: beam.Width}, res.Params.Sections.Post)
}

func TestExecuteParsesAndConsultsAdvisor(t *testing.T) {
	r, err := NewRunner(Options{})
	require.NoError(t, err)

	res, err := r.Execute(context.Background(), frame.UserInput{
		Width: "5", Depth: "7", Roof: "satteldach",
	})
	require.NoError(t, err)
	assert.Equal(t, StateConverged, res.State)
	assert.NotEmpty(t, res.Parts)
	assert.Greater(t, res.Summary.TotalVolume, 0.0)
	assert.Greater(t, res.Summary.PartCount, 0)

	// Battens got a cutting plan.
	var batten *parts.Part
	for _, p := range res.Parts {
		if p.Class == parts.ClassBatten {
			batten = p
		}
	}
	require.NotNil(t, batten)
	require.NotNil(t, batten.Cutting)
	assert.Greater(t, batten.Cutting.StockCount(), 0)
}

func TestCacheHit(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)

	r, err := NewRunner(Options{Cache: fc})
	require.NoError(t, err)

	p := rafterOnlyParams()
	first, err := r.ExecuteParams(context.Background(), p)
	require.NoError(t, err)
	assert.False(t, first.FromCache)

	second, err := r.ExecuteParams(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Summary, second.Summary)

	// A different input misses.
	p.Width = 5.5
	third, err := r.ExecuteParams(context.Background(), p)
	require.NoError(t, err)
	assert.False(t, third.FromCache)
}

func TestExecuteCancelled(t *testing.T) {
	r, err := NewRunner(Options{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = r.ExecuteParams(ctx, rafterOnlyParams())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestObserverSeesIterations(t *testing.T) {
	var seen []Iteration
	r, err := NewRunner(Options{Observer: func(it Iteration) { seen = append(seen, it) }})
	require.NoError(t, err)

	res, err := r.ExecuteParams(context.Background(), rafterOnlyParams())
	require.NoError(t, err)

	require.Len(t, seen, len(res.Iters))
	for i, it := range seen {
		assert.Equal(t, i+1, it.N)
	}
}

func TestInvalidParams(t *testing.T) {
	r, err := NewRunner(Options{})
	require.NoError(t, err)

	p := rafterOnlyParams()
	p.Roof = "mansard"
	_, err = r.ExecuteParams(context.Background(), p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidRoofType))
}
