// Package pkg provides the core libraries for Abbund construction plan generation.
//
// # Overview
//
// Abbund turns a handful of building dimensions into a complete timber-frame
// construction plan: a bill of parts with 2D workshop drawings, deflection
// checks for every load-bearing member, and a stock-cutting plan for the
// roof battens. The pkg directory is organized by concern:
//
//  1. [frame] - Input parsing, parameter validation, cross-sections
//  2. [geometry] - Frame geometry kernel (walls, roof, joinery)
//  3. [statics] - Euler-Bernoulli deflection checks and load assembly
//  4. [plan] - Iterative dimension search orchestrating the above
//  5. [drawing], [cutting], [parts] - Supporting types and algorithms
//
// # Architecture
//
// The typical data flow through Abbund:
//
//	User input (strings, possibly with decimal commas)
//	         ↓
//	    [frame] package (parse + validate parameters)
//	         ↓
//	    [geometry] package (generate parts with drawings)
//	         ↓
//	    [statics] package (attach deflection results)
//	         ↓
//	    [plan] package (enlarge failing sections, repeat)
//	         ↓
//	    Part list + cutting plans + material summary
//
// # Quick Start
//
// Generate a plan for a 5x7m gable-roofed frame:
//
//	import (
//	    "context"
//	    "github.com/spacerabbit99982/abbund/pkg/plan"
//	    "github.com/spacerabbit99982/abbund/pkg/frame"
//	)
//
//	runner, _ := plan.NewRunner(plan.Options{})
//	res, err := runner.Execute(context.Background(), frame.UserInput{
//	    Width:    "5",
//	    Depth:    "7",
//	    RoofType: "satteldach",
//	})
//
// # Main Packages
//
// [frame] - User input parsing (decimal commas tolerated), frame parameters
// with validation, cross-sections, and the rule-based section advisor.
//
// [geometry] - The geometry kernel. Places posts and rafters along walls,
// solves brace angles against post faces, and builds each part's outline
// polygon with dimension annotations: birdsmouth seats, purlin notches,
// ridge plumb cuts.
//
// [statics] - Snow and dead load assembly plus closed-form deflection
// formulas for simply supported beams and cantilevers. Never fails a plan;
// it only attaches pass/fail results to parts it recognizes.
//
// [plan] - The dimension search. Runs generate-check-enlarge until every
// member passes its deflection limit or the section catalog is exhausted,
// then computes cutting plans and the material summary. Results are cached
// by parameter hash.
//
// [drawing] - 2D polygon and annotation types shared by all drawings:
// points, bounding boxes, linear and angular dimensions, reference lines.
//
// [cutting] - Best-fit-decreasing stock cutting with saw kerf.
//
// [parts] - The part list: classes, descriptions, keyed aggregation, and
// the material summary (volume, weight, loads).
//
// [config] - TOML configuration for material constants, spacings, stock,
// and search limits.
//
// [cache] - Content-addressed file cache for finished plans.
//
// [errors] - Structured error codes shared across packages.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/geometry/...     # Specific package
//
// [frame]: https://pkg.go.dev/github.com/spacerabbit99982/abbund/pkg/frame
// [geometry]: https://pkg.go.dev/github.com/spacerabbit99982/abbund/pkg/geometry
// [statics]: https://pkg.go.dev/github.com/spacerabbit99982/abbund/pkg/statics
// [plan]: https://pkg.go.dev/github.com/spacerabbit99982/abbund/pkg/plan
// [drawing]: https://pkg.go.dev/github.com/spacerabbit99982/abbund/pkg/drawing
// [cutting]: https://pkg.go.dev/github.com/spacerabbit99982/abbund/pkg/cutting
// [parts]: https://pkg.go.dev/github.com/spacerabbit99982/abbund/pkg/parts
// [config]: https://pkg.go.dev/github.com/spacerabbit99982/abbund/pkg/config
// [cache]: https://pkg.go.dev/github.com/spacerabbit99982/abbund/pkg/cache
// [errors]: https://pkg.go.dev/github.com/spacerabbit99982/abbund/pkg/errors
package pkg
