package frame

import "math"

// Suggestion is the structural-configuration proposal obtained from an
// advisory collaborator before the dimension search starts. The search treats
// it purely as an initial candidate: every field may be overridden while
// iterating, and nothing here is authoritative.
//
// Optional fields use pointers so "no opinion" is distinguishable from an
// explicit zero.
type Suggestion struct {
	PostsPerSide    *int    `json:"postsPerSide,omitempty"`
	UseMiddlePurlin bool    `json:"useMiddlePurlin"`
	UseKingPosts    *bool   `json:"useKingPosts,omitempty"`
	BattenWidth     float64 `json:"battenWidth"`  // meters
	BattenHeight    float64 `json:"battenHeight"` // meters
}

// Advisor proposes a structural starting configuration for a building.
// Implementations may reason however they like (the production system calls
// a remote service); the plan runner only requires that the result is a
// plausible guess, since every member is numerically validated afterwards.
type Advisor interface {
	Suggest(p Parameters) (Suggestion, error)
}

// RuleAdvisor is the built-in advisor. It derives the configuration from
// simple span heuristics so the tool works without any external service.
type RuleAdvisor struct{}

// Suggest implements [Advisor].
//
// Heuristics: one intermediate post per started 4 m of wall beyond the first,
// a middle purlin once the sloped rafter run exceeds 4.5 m, king posts for
// gable buildings wider than 6 m, and 30x50 mm battens.
func (RuleAdvisor) Suggest(p Parameters) (Suggestion, error) {
	posts := int(math.Ceil(p.Depth/4.0)) - 1
	if posts < 0 {
		posts = 0
	}

	run := p.Width / 2
	if p.Roof != RoofGable {
		run = p.Width
	}
	rafterRun := run / math.Cos(p.PitchRad())

	kingPosts := p.Roof == RoofGable && p.Width > 6
	return Suggestion{
		PostsPerSide:    &posts,
		UseMiddlePurlin: rafterRun > 4.5,
		UseKingPosts:    &kingPosts,
		BattenWidth:     0.03,
		BattenHeight:    0.05,
	}, nil
}

// DefaultSections is the standard section catalogue the suggestion is applied
// on top of. Values are conventional carpentry sizes in meters; the dimension
// search enlarges them as required.
func DefaultSections() CrossSections {
	return CrossSections{
		Post:   CrossSection{Width: 0.12, Height: 0.12},
		Beam:   CrossSection{Width: 0.12, Height: 0.16},
		Rafter: CrossSection{Width: 0.08, Height: 0.16},
		Brace:  CrossSection{Width: 0.10, Height: 0.10},
		Batten: CrossSection{Width: 0.03, Height: 0.05},
		Stud:   CrossSection{Width: 0.06, Height: 0.12},
		Tie:    CrossSection{Width: 0.10, Height: 0.18},

		MiddlePurlin: CrossSection{Width: 0.12, Height: 0.16},
	}
}

// Apply merges the suggestion into a section catalogue, returning a new value.
// Unset optional fields leave the corresponding catalogue entry untouched.
func (s Suggestion) Apply(cs CrossSections) CrossSections {
	if s.PostsPerSide != nil {
		cs.PostsPerSide = *s.PostsPerSide
	}
	cs.UseMiddlePurlin = s.UseMiddlePurlin
	if s.UseKingPosts != nil {
		cs.UseKingPosts = *s.UseKingPosts
	}
	if s.BattenWidth > 0 && s.BattenHeight > 0 {
		cs.Batten = CrossSection{Width: s.BattenWidth, Height: s.BattenHeight}
	}
	return cs
}
