package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quantikind/pkg/kinds"
	"github.com/mesh-intelligence/quantikind/pkg/types"
	"github.com/mesh-intelligence/quantikind/pkg/units"
)

func (a *app) newKindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kind",
		Short: "Manage the stored kind hierarchy",
	}
	cmd.AddCommand(
		a.newKindAddCmd(),
		a.newKindListCmd(),
		a.newKindShowCmd(),
		a.newKindTreeCmd(),
		a.newKindDeleteCmd(),
	)
	return cmd
}

func (a *app) newKindAddCmd() *cobra.Command {
	var parent, dim, doc string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Declare a kind",
		Long: `Declare a base kind, or a specialization of an existing kind.

A specialization without --dim keeps its parent's dimension.

Example:
  quantikind kind add length --dim L
  quantikind kind add radius --parent length
  quantikind kind add rate_of_climb --parent height --dim L/T`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s types.Store, reg *kinds.Registry) error {
				k, err := declare(reg, args[0], parent, dim)
				if err != nil {
					return err
				}
				tbl, err := kindsTable(s)
				if err != nil {
					return err
				}
				rec := types.Record(k)
				rec.Doc = doc
				if _, err := tbl.Set("", rec); err != nil {
					return storeErr(err)
				}
				a.logger.Debug("kind added", "name", k.Name(), "id", k.ID())

				if a.flags.jsonMode {
					return printJSON(cmd, rec)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", describeKind(k))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&parent, "parent", "", "parent kind name")
	cmd.Flags().StringVar(&dim, "dim", "", "dimension, such as L, L/T or 1")
	cmd.Flags().StringVar(&doc, "doc", "", "one-line description")
	return cmd
}

// declare declares name into reg under the named parent.
func declare(reg *kinds.Registry, name, parentName, dimText string) (*kinds.Kind, error) {
	var parent *kinds.Kind
	if parentName != "" {
		p, err := reg.Lookup(parentName)
		if err != nil {
			return nil, err
		}
		parent = p
	}

	var dim units.Dimension
	switch {
	case dimText != "":
		d, err := units.ParseDimension(dimText)
		if err != nil {
			return nil, err
		}
		dim = d
	case parent != nil:
		dim = parent.Dimension()
	default:
		return nil, fmt.Errorf("%w: base kind %s needs --dim", types.ErrInvalidDimension, name)
	}

	if parent == nil {
		return reg.DeclareBase(name, dim)
	}
	return reg.Declare(name, parent, dim)
}

// describeKind renders "radius (L) under length".
func describeKind(k *kinds.Kind) string {
	s := fmt.Sprintf("%s (%s)", k.Name(), k.Dimension())
	if p := k.Parent(); p != nil {
		s += " under " + p.Name()
	}
	return s
}

func (a *app) newKindListCmd() *cobra.Command {
	var parent string
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(func(s types.Store, reg *kinds.Registry) error {
				filter := map[string]any{}
				if parent != "" {
					p, err := reg.Lookup(parent)
					if err != nil {
						return err
					}
					filter["parent_id"] = p.ID()
				}
				if limit > 0 {
					filter["limit"] = limit
				}
				if offset > 0 {
					filter["offset"] = offset
				}

				tbl, err := kindsTable(s)
				if err != nil {
					return err
				}
				rows, err := tbl.Fetch(filter)
				if err != nil {
					return storeErr(err)
				}
				if a.flags.jsonMode {
					return printJSON(cmd, rows)
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "NAME\tPARENT\tDIMENSION\tDOC")
				for _, row := range rows {
					rec, ok := row.(*types.KindRecord)
					if !ok {
						continue
					}
					parentName := "-"
					if p, err := reg.LookupID(rec.ParentID); err == nil {
						parentName = p.Name()
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rec.Name, parentName, rec.Dimension, rec.Doc)
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().StringVar(&parent, "parent", "", "only direct specializations of this kind")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of kinds")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of kinds to skip")
	return cmd
}

// kindDetail is the JSON form of kind show.
type kindDetail struct {
	*types.KindRecord
	Parent          string   `json:"parent,omitempty"`
	Base            string   `json:"base"`
	Ancestors       []string `json:"ancestors"`
	Children        []string `json:"children"`
	Specializations []string `json:"specializations"`
}

func (a *app) newKindShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Display a kind with its place in the hierarchy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s types.Store, reg *kinds.Registry) error {
				k, err := reg.Lookup(args[0])
				if err != nil {
					return err
				}
				tbl, err := kindsTable(s)
				if err != nil {
					return err
				}
				row, err := tbl.Get(k.ID())
				if err != nil {
					return storeErr(err)
				}
				rec, ok := row.(*types.KindRecord)
				if !ok {
					return sysErr(types.ErrInvalidData)
				}

				d := kindDetail{
					KindRecord:      rec,
					Base:            k.Base().Name(),
					Ancestors:       names(k.Ancestors()),
					Children:        names(reg.Children(k)),
					Specializations: names(reg.Specializations(k)),
				}
				if p := k.Parent(); p != nil {
					d.Parent = p.Name()
				}
				if a.flags.jsonMode {
					return printJSON(cmd, d)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "ID:         %s\n", rec.KindID)
				fmt.Fprintf(out, "Name:       %s\n", rec.Name)
				fmt.Fprintf(out, "Dimension:  %s\n", rec.Dimension)
				fmt.Fprintf(out, "Parent:     %s\n", orDash(d.Parent))
				fmt.Fprintf(out, "Base:       %s\n", d.Base)
				fmt.Fprintf(out, "Ancestors:  %s\n", orDash(strings.Join(d.Ancestors, " > ")))
				fmt.Fprintf(out, "Children:   %s\n", orDash(strings.Join(d.Children, ", ")))
				fmt.Fprintf(out, "Created:    %s\n", rec.CreatedAt.Format(time.DateTime))
				if rec.Doc != "" {
					fmt.Fprintf(out, "\n%s\n", rec.Doc)
				}
				return nil
			})
		},
	}
}

func (a *app) newKindTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree [kind]",
		Short: "Print the kind hierarchy",
		Long: `Print the hierarchy under every base kind, or under the named kind.
Dimensions are shown where a kind introduces a new one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(_ types.Store, reg *kinds.Registry) error {
				roots := reg.Bases()
				if len(args) == 1 {
					k, err := reg.Lookup(args[0])
					if err != nil {
						return err
					}
					roots = []*kinds.Kind{k}
				}

				if a.flags.jsonMode {
					nodes := make([]treeNode, len(roots))
					for i, r := range roots {
						nodes[i] = buildTree(reg, r)
					}
					return printJSON(cmd, nodes)
				}
				var b strings.Builder
				for _, r := range roots {
					writeTree(&b, reg, r, 0)
				}
				fmt.Fprint(cmd.OutOrStdout(), b.String())
				return nil
			})
		},
	}
}

// treeNode is the JSON form of kind tree.
type treeNode struct {
	Name      string     `json:"name"`
	Dimension string     `json:"dimension"`
	Children  []treeNode `json:"children,omitempty"`
}

func buildTree(reg *kinds.Registry, k *kinds.Kind) treeNode {
	n := treeNode{Name: k.Name(), Dimension: k.Dimension().String()}
	for _, c := range reg.Children(k) {
		n.Children = append(n.Children, buildTree(reg, c))
	}
	return n
}

func writeTree(b *strings.Builder, reg *kinds.Registry, k *kinds.Kind, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(k.Name())
	if p := k.Parent(); p == nil || p.Dimension() != k.Dimension() {
		fmt.Fprintf(b, " [%s]", k.Dimension())
	}
	b.WriteByte('\n')
	for _, c := range reg.Children(k) {
		writeTree(b, reg, c, depth+1)
	}
}

func (a *app) newKindDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a kind that has no specializations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s types.Store, reg *kinds.Registry) error {
				k, err := reg.Lookup(args[0])
				if err != nil {
					return err
				}
				tbl, err := kindsTable(s)
				if err != nil {
					return err
				}
				if err := tbl.Delete(k.ID()); err != nil {
					return storeErr(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", k.Name())
				return nil
			})
		},
	}
}

func names(ks []*kinds.Kind) []string {
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = k.Name()
	}
	return out
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
