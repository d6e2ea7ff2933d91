package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spacerabbit99982/abbund/pkg/cutting"
	"github.com/spacerabbit99982/abbund/pkg/errors"
	"github.com/spacerabbit99982/abbund/pkg/parts"
)

// cutCommand creates the standalone stock-cutting command.
func (c *CLI) cutCommand() *cobra.Command {
	var (
		stock float64
		kerf  float64
	)

	cmd := &cobra.Command{
		Use:   "cut <length>...",
		Short: "Pack cut lengths onto stock timber",
		Long: `Pack a list of required cut lengths onto stock timber using
best-fit-decreasing, e.g.:

  abbund cut 3.0 2.0 2.0 1.0 --stock 5.0

Lengths are in meters; decimal commas are accepted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cuts, err := parseLengths(args)
			if err != nil {
				return err
			}
			return c.runCut(cuts, stock, kerf)
		},
	}

	cmd.Flags().Float64Var(&stock, "stock", 5.0, "stock length in m")
	cmd.Flags().Float64Var(&kerf, "kerf", 0.003, "saw kerf in m")

	return cmd
}

func (c *CLI) runCut(cuts []float64, stock, kerf float64) error {
	result, err := cutting.Optimize(cuts, stock, kerf)
	if err != nil && !errors.Is(err, errors.ErrCodeCutTooLong) {
		return err
	}
	if err != nil {
		printWarning("%s", errors.UserMessage(err))
	}

	printSuccess("%d cuts on %d stock pieces", len(cuts)-len(result.Rejected), result.StockCount())
	printNewline()
	fmt.Print(renderCuttingTable([]*parts.Part{{
		Description: fmt.Sprintf("Zuschnittplan, Stangenware %.1fm", stock),
		Cutting:     result,
	}}))
	return nil
}

// parseLengths parses the length arguments, tolerating decimal commas.
func parseLengths(args []string) ([]float64, error) {
	out := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(strings.ReplaceAll(a, ",", "."), 64)
		if err != nil || v <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "invalid cut length %q", a)
		}
		out = append(out, v)
	}
	return out, nil
}
