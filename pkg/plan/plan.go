// Package plan orchestrates plan generation: advisory suggestion,
// dimension search over geometry and statics, cutting optimization and
// the final summary.
//
// The search is a fixed-point iteration. Every pass regenerates the full
// part list from scratch, checks every load-bearing member and enlarges
// the implicated standard cross-sections until all checks pass or the
// iteration budget runs out. Cross-sections only ever grow.
package plan

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/spacerabbit99982/abbund/pkg/cache"
	"github.com/spacerabbit99982/abbund/pkg/config"
	"github.com/spacerabbit99982/abbund/pkg/errors"
	"github.com/spacerabbit99982/abbund/pkg/frame"
	"github.com/spacerabbit99982/abbund/pkg/parts"
)

// State of the dimension search.
type State string

// Search states. Iterating is only ever observed through iteration
// callbacks; a returned result is terminal.
const (
	StateIterating State = "iterating"
	StateConverged State = "converged"
	StateExhausted State = "exhausted"
)

// Iteration describes one search pass, as reported to observers and kept
// in the result for diagnostics.
type Iteration struct {
	N        int                 `json:"n"`
	Failed   []string            `json:"failed,omitempty"` // part keys that missed their limit
	Sections frame.CrossSections `json:"sections"`
}

// Result is a finished plan run.
type Result struct {
	ID        uuid.UUID         `json:"id"`
	CreatedAt time.Time         `json:"created_at"`
	Params    frame.Parameters  `json:"params"`
	State     State             `json:"state"`
	Iters     []Iteration       `json:"iterations"`
	Parts     []*parts.Part     `json:"parts"`
	Summary   parts.SummaryInfo `json:"summary"`
	FromCache bool              `json:"-"`
}

// Options configures a Runner. The zero value is usable after
// ValidateAndSetDefaults: rule-based advisor, no cache, discarded logs.
type Options struct {
	Config   config.Config
	Advisor  frame.Advisor
	Cache    cache.Cache
	CacheTTL time.Duration
	Logger   *log.Logger

	// Observer, if set, is called after every search iteration.
	Observer func(Iteration)
}

// ValidateAndSetDefaults validates the configuration and fills unset
// collaborators with defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Config.Search.MaxIterations == 0 && len(o.Config.Search.Heights) == 0 {
		o.Config = config.Default()
	}
	if err := o.Config.Validate(); err != nil {
		return err
	}
	if o.Advisor == nil {
		o.Advisor = frame.RuleAdvisor{}
	}
	if o.Cache == nil {
		o.Cache = cache.NewNullCache()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return nil
}

// exhaustedErr builds the terminal search failure, carrying the last
// attempted cross-sections for diagnostics.
func exhaustedErr(iters int, cs frame.CrossSections) error {
	return errors.New(errors.ErrCodeSearchExhausted,
		"no passing dimensions after %d iterations (last: rafter %s, beam %s, tie %s)",
		iters, cs.Rafter.Label(), cs.Beam.Label(), cs.Tie.Label())
}
