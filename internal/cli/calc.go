package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quantikind/internal/calc"
	"github.com/mesh-intelligence/quantikind/internal/catalog"
	"github.com/mesh-intelligence/quantikind/pkg/kinds"
	"github.com/mesh-intelligence/quantikind/pkg/types"
)

// calcResult is the JSON form of calc output.
type calcResult struct {
	Expr      string  `json:"expr"`
	Kind      string  `json:"kind,omitempty"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Dimension string  `json:"dimension"`
	Result    string  `json:"result"`
}

func (a *app) newCalcCmd() *cobra.Command {
	var catalogFile string
	cmd := &cobra.Command{
		Use:   "calc <expr>",
		Short: "Evaluate an expression over kind-tagged quantities",
		Long: `Evaluate an arithmetic expression. Operands are numbers, quantities
such as "5 m" and kind-tagged values such as "radius(5 m)". A trailing
"in <unit>" converts the result.

Kinds come from the store, or from a catalog file with --catalog.

Example:
  quantikind calc 'radius(5 m) * one(2)'
  quantikind calc '1 / radius(5 m)'
  quantikind calc 'height(120 m) / 60 s in km/h'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			eval := func(reg *kinds.Registry) error {
				r, err := calc.New(reg, calc.WithLogger(a.logger)).Eval(expr)
				if err != nil {
					return err
				}
				if a.flags.jsonMode {
					out := calcResult{
						Expr:      expr,
						Value:     r.Number(),
						Unit:      r.Quantity.Unit().Symbol,
						Dimension: r.Quantity.Dimension().String(),
						Result:    r.String(),
					}
					if r.Kind != nil {
						out.Kind = r.Kind.String()
					}
					return printJSON(cmd, out)
				}
				fmt.Fprintln(cmd.OutOrStdout(), r)
				return nil
			}

			if catalogFile != "" {
				c, err := catalog.Load(catalogFile)
				if err != nil {
					return err
				}
				reg, err := c.Build(kinds.WithLogger(a.logger))
				if err != nil {
					return err
				}
				return eval(reg)
			}
			return a.withStore(func(_ types.Store, reg *kinds.Registry) error {
				return eval(reg)
			})
		},
	}
	cmd.Flags().StringVar(&catalogFile, "catalog", "", "evaluate against this catalog instead of the store")
	return cmd
}
