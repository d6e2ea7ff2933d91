package plan

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/spacerabbit99982/abbund/pkg/cache"
	"github.com/spacerabbit99982/abbund/pkg/cutting"
	"github.com/spacerabbit99982/abbund/pkg/errors"
	"github.com/spacerabbit99982/abbund/pkg/frame"
	"github.com/spacerabbit99982/abbund/pkg/geometry"
	"github.com/spacerabbit99982/abbund/pkg/parts"
	"github.com/spacerabbit99982/abbund/pkg/statics"
)

// Runner executes plan runs against one configuration.
type Runner struct {
	opts Options
}

// NewRunner validates the options and returns a ready runner.
func NewRunner(opts Options) (*Runner, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return &Runner{opts: opts}, nil
}

// Execute parses raw user input, obtains the advisory starting
// configuration and runs the search.
func (r *Runner) Execute(ctx context.Context, input frame.UserInput) (*Result, error) {
	params := frame.ParseInput(input)

	suggestion, err := r.opts.Advisor.Suggest(params)
	if err != nil {
		r.opts.Logger.Warn("advisor failed, using catalogue defaults", "err", err)
		suggestion = frame.Suggestion{}
	}
	params.Sections = suggestion.Apply(frame.DefaultSections())

	return r.ExecuteParams(ctx, params)
}

// ExecuteParams runs the dimension search for fully-specified parameters.
// On exhaustion the returned error carries code SEARCH_EXHAUSTED and the
// result still holds the iteration trail and last attempted sections.
func (r *Runner) ExecuteParams(ctx context.Context, params frame.Parameters) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	key := cache.PlanKey(params, r.opts.Config)
	if res := r.fromCache(ctx, key); res != nil {
		return res, nil
	}

	cfg := r.opts.Config
	logger := r.opts.Logger

	res := &Result{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Params:    params,
		State:     StateExhausted,
	}

	cs := params.Sections
	var (
		list *parts.List
		rep  statics.Report
	)
	converged := false

	for i := 1; i <= cfg.Search.MaxIterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		candidate := params.WithSections(cs)
		var err error
		list, err = geometry.Generate(candidate, cfg.Geometry())
		if err != nil {
			return nil, err
		}
		rep = statics.Evaluate(list, candidate.Altitude, cfg.Statics())

		iter := Iteration{N: i, Sections: cs}
		for _, f := range rep.Failed {
			iter.Failed = append(iter.Failed, f.Key)
		}
		res.Iters = append(res.Iters, iter)
		if r.opts.Observer != nil {
			r.opts.Observer(iter)
		}

		if len(rep.Failed) == 0 {
			converged = true
			break
		}

		logger.Debug("iteration failed checks", "n", i, "failed", len(rep.Failed))
		cs = r.enlarge(cs, rep.Failed)
	}

	if !converged {
		res.Params = params.WithSections(cs)
		return res, exhaustedErr(cfg.Search.MaxIterations, cs)
	}
	res.State = StateConverged

	// Posts follow the beam width; regenerate once so the final list and
	// its statics reflect the rule.
	cs.Post = frame.CrossSection{Width: cs.Beam.Width, Height: cs.Beam.Width}
	params = params.WithSections(cs)
	final, err := geometry.Generate(params, cfg.Geometry())
	if err != nil {
		return nil, err
	}
	rep = statics.Evaluate(final, params.Altitude, cfg.Statics())

	r.cut(final)

	res.Params = params
	res.Parts = final.All()
	res.Summary = parts.Summarize(final, cfg.Material.Density, rep.SnowLoad, rep.CombinedLoad)

	r.toCache(ctx, key, res)
	return res, nil
}

// fromCache returns a previously stored result for the key, or nil.
func (r *Runner) fromCache(ctx context.Context, key string) *Result {
	data, hit, err := r.opts.Cache.Get(ctx, key)
	if err != nil || !hit {
		return nil
	}
	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		r.opts.Logger.Warn("dropping unreadable cache entry", "err", err)
		_ = r.opts.Cache.Delete(ctx, key)
		return nil
	}
	res.FromCache = true
	return &res
}

func (r *Runner) toCache(ctx context.Context, key string, res *Result) {
	data, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := r.opts.Cache.Set(ctx, key, data, r.opts.CacheTTL); err != nil {
		r.opts.Logger.Warn("cache write failed", "err", err)
	}
}

// cut runs the stock optimizer over every part that carries required cut
// lengths. Overlong cuts are reported and skipped, never fatal.
func (r *Runner) cut(list *parts.List) {
	cfg := r.opts.Config.Cutting
	for _, p := range list.All() {
		if len(p.Cuts) == 0 {
			continue
		}
		plan, err := cutting.Optimize(p.Cuts, cfg.StockLength, cfg.Kerf)
		if err != nil {
			if errors.Is(err, errors.ErrCodeCutTooLong) {
				r.opts.Logger.Warn("cuts exceed stock length", "part", p.Key, "rejected", len(plan.Rejected))
			} else {
				r.opts.Logger.Error("cutting optimization failed", "part", p.Key, "err", err)
				continue
			}
		}
		p.Cutting = plan
	}
}

// enlarge bumps the cross-section height of every failing category to the
// next standard height, then widens sections that became too slender.
// Categories that did not fail are left alone, and nothing ever shrinks.
func (r *Runner) enlarge(cs frame.CrossSections, failed []*parts.Part) frame.CrossSections {
	search := r.opts.Config.Search

	grow := map[parts.Class]bool{}
	for _, p := range failed {
		if p.Structural != nil {
			grow[p.Structural.Class] = true
		}
	}

	bump := func(sec frame.CrossSection) frame.CrossSection {
		sec.Height = nextAbove(search.Heights, sec.Height)
		if sec.Slenderness() > search.MaxSlenderness {
			for _, w := range search.Widths {
				if w > sec.Width && sec.Height/w <= search.MaxSlenderness {
					sec.Width = w
					break
				}
			}
		}
		return sec
	}

	if grow[parts.ClassRafter] {
		cs.Rafter = bump(cs.Rafter)
	}
	if grow[parts.ClassTopPlate] || grow[parts.ClassRidge] || grow[parts.ClassSill] {
		cs.Beam = bump(cs.Beam)
	}
	if grow[parts.ClassTie] {
		cs.Tie = bump(cs.Tie)
	}
	if grow[parts.ClassMiddlePurlin] {
		cs.MiddlePurlin = bump(cs.MiddlePurlin)
	}
	return cs
}

// nextAbove returns the first standard value strictly above v, or v when
// the list is exhausted (the search then runs out its iteration budget).
func nextAbove(standard []float64, v float64) float64 {
	for _, s := range standard {
		if s > v+1e-9 {
			return s
		}
	}
	return v
}
