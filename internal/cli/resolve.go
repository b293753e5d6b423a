package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quantikind/pkg/kinds"
	"github.com/mesh-intelligence/quantikind/pkg/types"
	"github.com/mesh-intelligence/quantikind/pkg/units"
)

func (a *app) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <seed> <dimension>",
		Short: "Resolve the kind of a result computed from a seed kind",
		Long: `Resolve the kind a result of the given dimension gets when it is
computed from a value of the seed kind. Every resolution is logged and can
be listed with "quantikind history".

Example:
  quantikind resolve radius L^-1
  quantikind resolve height L/T`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dim, err := units.ParseDimension(args[1])
			if err != nil {
				return err
			}
			return a.withStore(func(s types.Store, reg *kinds.Registry) error {
				seed, err := reg.Lookup(args[0])
				if err != nil {
					return err
				}
				k, resolveErr := reg.Resolve(seed, dim)
				rec, err := resolutionRecord(seed, dim, k, resolveErr)
				if err != nil {
					return err
				}

				tbl, err := s.GetTable(types.ResolutionsTable)
				if err != nil {
					return sysErr(err)
				}
				if _, err := tbl.Set("", rec); err != nil {
					return storeErr(err)
				}
				a.logger.Debug("resolution logged", "seed", seed.Name(), "dimension", rec.Dimension, "outcome", rec.Outcome)

				if resolveErr != nil {
					return resolveErr
				}
				if a.flags.jsonMode {
					return printJSON(cmd, rec)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", k)
				return nil
			})
		},
	}
}

// resolutionRecord describes the outcome of resolving seed for dim. Only an
// ambiguity is recorded as a failure; any other error is returned.
func resolutionRecord(seed *kinds.Kind, dim units.Dimension, k *kinds.Kind, err error) (*types.ResolutionRecord, error) {
	rec := &types.ResolutionRecord{SeedID: seed.ID(), Dimension: dim.String()}
	var amb *kinds.AmbiguityError
	switch {
	case errors.As(err, &amb):
		rec.Outcome = types.OutcomeAmbiguous
		rec.Result = strings.Join(names(amb.Candidates), ", ")
	case err != nil:
		return nil, err
	case k.IsBound():
		rec.Outcome = types.OutcomeBound
		rec.Result = k.String()
	default:
		rec.Outcome = types.OutcomeDeclared
		rec.ResultID = k.ID()
		rec.Result = k.Name()
	}
	return rec, nil
}

func (a *app) newHistoryCmd() *cobra.Command {
	var seed, outcome string
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List logged resolutions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if outcome != "" && !types.ValidOutcome(outcome) {
				return fmt.Errorf("unknown outcome %q (valid: %s, %s, %s)",
					outcome, types.OutcomeDeclared, types.OutcomeBound, types.OutcomeAmbiguous)
			}
			return a.withStore(func(s types.Store, reg *kinds.Registry) error {
				filter := map[string]any{}
				if seed != "" {
					k, err := reg.Lookup(seed)
					if err != nil {
						return err
					}
					filter["seed_id"] = k.ID()
				}
				if outcome != "" {
					filter["outcome"] = outcome
				}
				if limit > 0 {
					filter["limit"] = limit
				}

				tbl, err := s.GetTable(types.ResolutionsTable)
				if err != nil {
					return sysErr(err)
				}
				rows, err := tbl.Fetch(filter)
				if err != nil {
					return storeErr(err)
				}
				if a.flags.jsonMode {
					return printJSON(cmd, rows)
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "TIME\tSEED\tDIMENSION\tOUTCOME\tRESULT")
				for _, row := range rows {
					r, ok := row.(*types.ResolutionRecord)
					if !ok {
						continue
					}
					seedName := r.SeedID
					if k, err := reg.LookupID(r.SeedID); err == nil {
						seedName = k.Name()
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
						r.CreatedAt.Local().Format(time.DateTime), seedName, r.Dimension, r.Outcome, r.Result)
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().StringVar(&seed, "seed", "", "only resolutions seeded by this kind")
	cmd.Flags().StringVar(&outcome, "outcome", "", "only resolutions with this outcome")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of entries")
	return cmd
}
