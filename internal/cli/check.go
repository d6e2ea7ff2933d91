package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacerabbit99982/abbund/pkg/errors"
	"github.com/spacerabbit99982/abbund/pkg/frame"
	"github.com/spacerabbit99982/abbund/pkg/statics"
)

// checkCommand creates the single-member deflection check command.
func (c *CLI) checkCommand() *cobra.Command {
	var (
		span       float64
		cantilever float64
		load       float64
		point      float64
		width      float64
		height     float64
		modulus    float64
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check one beam against its deflection limit",
		Long: `Check a single simply-supported beam (and optionally its
cantilever) against the L/300 and L/150 deflection limits, e.g.:

  abbund check --span 4 --load 500 --section 8x16`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(span, cantilever, load, point, width, height, modulus)
		},
	}

	cmd.Flags().Float64Var(&span, "span", 0, "span between supports in m (required)")
	cmd.Flags().Float64Var(&cantilever, "cantilever", 0, "cantilever length in m")
	cmd.Flags().Float64Var(&load, "load", 0, "uniform load in N/m")
	cmd.Flags().Float64Var(&point, "point", 0, "midspan point load in N")
	cmd.Flags().Float64Var(&width, "width", 8, "section width in cm")
	cmd.Flags().Float64Var(&height, "height", 16, "section height in cm")
	cmd.Flags().Float64Var(&modulus, "modulus", statics.DefaultElasticModulus, "elastic modulus in Pa")
	_ = cmd.MarkFlagRequired("span")

	return cmd
}

func (c *CLI) runCheck(span, cantilever, load, point, width, height, modulus float64) error {
	if span <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "span %.2fm must be positive", span)
	}
	sec := frame.CrossSection{Width: width / 100, Height: height / 100}
	if sec.IsZero() {
		return errors.New(errors.ErrCodeInvalidSection, "section %gx%gcm is not usable", width, height)
	}

	i := sec.MomentOfInertia()
	w := statics.UniformDeflection(load, span, modulus, i) + statics.PointDeflection(point, span, modulus, i)
	allowed := span / statics.DefaultSpanDivisor

	printInfo("Querschnitt %s, I = %.2e m⁴", sec.Label(), i)
	report("Feld", w, allowed)

	if cantilever > 0 {
		wc := statics.CantileverDeflection(load, cantilever, modulus, i)
		report("Kragarm", wc, cantilever/statics.DefaultCantileverDivisor)
	}
	return nil
}

func report(name string, deflection, allowed float64) {
	verdict := fmt.Sprintf("%s: f = %.1fmm, zulässig %.1fmm", name, deflection*1000, allowed*1000)
	if deflection <= allowed {
		printSuccess("%s", verdict)
	} else {
		printError("%s", verdict)
	}
}
