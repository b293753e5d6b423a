package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quantikind/internal/catalog"
	"github.com/mesh-intelligence/quantikind/internal/codegen"
	"github.com/mesh-intelligence/quantikind/pkg/kinds"
	"github.com/mesh-intelligence/quantikind/pkg/types"
)

// errNoCatalog is returned when a command needs a catalog path and neither
// an argument nor the catalog config key names one.
var errNoCatalog = errors.New("no catalog given and config.yaml sets none")

// catalogPath returns the first argument, or the configured catalog.
func (a *app) catalogPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if p := a.config.GetString(cfgKeyCatalog); p != "" {
		return p, nil
	}
	return "", errNoCatalog
}

func (a *app) newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [catalog.yaml]",
		Short: "Merge a kind catalog into the store",
		Long: `Merge the kinds of a YAML catalog into the store. Kinds the store
already holds under the same name must have the same parent and dimension.

Without an argument the catalog named in config.yaml is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.catalogPath(args)
			if err != nil {
				return err
			}
			c, err := catalog.Load(path)
			if err != nil {
				return err
			}

			return a.withStore(func(s types.Store, reg *kinds.Registry) error {
				added, err := c.MergeInto(reg)
				if err != nil {
					return err
				}
				docs := make(map[string]string, len(c.Kinds))
				for _, e := range c.Kinds {
					docs[e.Name] = e.Doc
				}
				n, err := types.SaveRegistry(s, reg, docs)
				if err != nil {
					return storeErr(err)
				}
				a.logger.Debug("catalog imported", "path", path, "declared", len(added), "stored", n)

				if a.flags.jsonMode {
					return printJSON(cmd, map[string]any{"catalog": path, "added": names(added)})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "imported %d kinds from %s\n", len(added), path)
				return nil
			})
		},
	}
}

func (a *app) newExportCmd() *cobra.Command {
	var output, pkg, rep string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the stored kinds as a YAML catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(func(s types.Store, reg *kinds.Registry) error {
				c := catalog.FromRegistry(reg, pkg, rep)
				docs, err := docsByName(s)
				if err != nil {
					return err
				}
				for i := range c.Kinds {
					c.Kinds[i].Doc = docs[c.Kinds[i].Name]
				}

				if a.flags.jsonMode {
					return printJSON(cmd, c)
				}
				data, err := c.Marshal()
				if err != nil {
					return sysErr(err)
				}
				if output == "" {
					_, err := cmd.OutOrStdout().Write(data)
					return err
				}
				if err := os.WriteFile(output, data, 0o644); err != nil {
					return sysErr(fmt.Errorf("write catalog: %w", err))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "exported %d kinds to %s\n", len(c.Kinds), output)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().StringVar(&pkg, "package", catalog.DefaultPackage, "Go package name recorded in the catalog")
	cmd.Flags().StringVar(&rep, "rep", catalog.DefaultRep, "numeric representation recorded in the catalog")
	return cmd
}

func (a *app) newGenerateCmd() *cobra.Command {
	var output, module string
	cmd := &cobra.Command{
		Use:   "generate [catalog.yaml]",
		Short: "Generate typed Go kinds from a catalog",
		Long: `Generate one Go type per kind of a YAML catalog. Mixing kinds in
the generated code is a compile error. Generation fails when any
resolution over the catalog is ambiguous.

Without an argument the catalog named in config.yaml is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.catalogPath(args)
			if err != nil {
				return err
			}
			c, err := catalog.Load(path)
			if err != nil {
				return err
			}

			g := codegen.New(codegen.WithModulePath(module), codegen.WithLogger(a.logger))
			src, err := g.GenerateFrom(c, path)
			if err != nil {
				return err
			}
			if output == "" {
				_, err := cmd.OutOrStdout().Write(src)
				return err
			}
			if err := os.WriteFile(output, src, 0o644); err != nil {
				return sysErr(fmt.Errorf("write %s: %w", output, err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "generated %d kinds into %s\n", len(c.Kinds), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().StringVar(&module, "module", codegen.DefaultModulePath, "import path of the quantikind module")
	return cmd
}
