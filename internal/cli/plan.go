package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spacerabbit99982/abbund/pkg/errors"
	"github.com/spacerabbit99982/abbund/pkg/frame"
	"github.com/spacerabbit99982/abbund/pkg/plan"
)

// planCommand creates the plan command, the tool's main entry point.
func (c *CLI) planCommand() *cobra.Command {
	var (
		input      frame.UserInput
		configPath string
		output     string
		noCache    bool
		watch      bool
		statics    bool
		cuts       bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a construction plan for a building",
		Long: `Generate a complete construction plan from building parameters.

The dimension search starts from standard carpentry cross-sections and
enlarges members until every structural check passes. Dimensions may be
given with decimal comma or point; missing values fall back to defaults.

Results are cached locally, keyed by the full input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlan(cmd.Context(), input, configPath, output, noCache, watch, statics, cuts)
		},
	}

	cmd.Flags().StringVar(&input.Width, "width", "", "building width in m (default 5)")
	cmd.Flags().StringVar(&input.Depth, "depth", "", "building depth in m (default 7)")
	cmd.Flags().StringVar(&input.WallHeight, "wall-height", "", "wall height in m (default 2.5)")
	cmd.Flags().StringVar(&input.Roof, "roof", "", "roof type: satteldach, pultdach, flachdach (default satteldach)")
	cmd.Flags().StringVar(&input.Pitch, "pitch", "", "roof pitch in degrees (default 25, shed 12)")
	cmd.Flags().StringVar(&input.Overhang, "overhang", "", "eaves overhang in m (default 0.5)")
	cmd.Flags().StringVar(&input.Altitude, "altitude", "", "site altitude in m for snow load (default 400)")

	cmd.Flags().StringVar(&configPath, "config", "", "TOML configuration file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the full result as JSON to this file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&watch, "watch", false, "show the dimension search interactively")
	cmd.Flags().BoolVar(&statics, "statics", false, "print the structural check table")
	cmd.Flags().BoolVar(&cuts, "cuttings", false, "print the batten cutting plan")

	return cmd
}

func (c *CLI) runPlan(ctx context.Context, input frame.UserInput, configPath, output string, noCache, watch, statics, cuts bool) error {
	if watch {
		return c.runPlanWatch(ctx, input, configPath, noCache, output)
	}

	runner, err := c.newRunner(configPath, noCache, nil)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Searching passing dimensions...")
	spinner.Start()

	res, err := runner.Execute(ctx, input)
	if err != nil {
		spinner.StopWithError("Plan failed")
		if errors.Is(err, errors.ErrCodeSearchExhausted) && res != nil {
			printDetail("Last attempt: Sparren %s, Pfette %s",
				res.Params.Sections.Rafter.Label(), res.Params.Sections.Beam.Label())
		}
		return err
	}
	spinner.Stop()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	prog.done("Plan converged")

	printSuccess("Construction plan for %s %s",
		res.Params.Roof, fmt.Sprintf("%.1fm × %.1fm", res.Params.Width, res.Params.Depth))
	printRunStats(res)
	printNewline()
	fmt.Println(renderPartsTable(res.Parts))
	printNewline()
	fmt.Print(renderSummary(res))

	if statics {
		printNewline()
		fmt.Println(renderStaticsTable(res.Parts))
	}
	if cuts {
		printNewline()
		fmt.Print(renderCuttingTable(res.Parts))
	}

	if output != "" {
		if err := writeResultFile(res, output); err != nil {
			return err
		}
		printDetail("Written: %s", output)
	}
	return nil
}

// writeResultFile exports the full result as indented JSON.
func writeResultFile(res *plan.Result, path string) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
