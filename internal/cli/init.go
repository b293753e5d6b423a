package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quantikind/pkg/kinds"
	"github.com/mesh-intelligence/quantikind/pkg/types"
)

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize quantikind storage",
		Long: "Create the configuration and data directories, write a default\n" +
			"config.yaml and seed the store with the ISQ base kinds.",
		Args: cobra.NoArgs,
		RunE: a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, _ []string) error {
	configDir, err := a.configDir()
	if err != nil {
		return sysErr(fmt.Errorf("resolve config dir: %w", err))
	}
	dataDir, err := a.dataDir()
	if err != nil {
		return sysErr(fmt.Errorf("resolve data dir: %w", err))
	}

	wrote, err := writeConfigIfMissing(configDir, dataDir)
	if err != nil {
		return sysErr(fmt.Errorf("write config: %w", err))
	}
	if wrote {
		a.logger.Debug("config written", "dir", configDir)
	}

	var count int
	err = a.withStore(func(_ types.Store, reg *kinds.Registry) error {
		count = reg.Len()
		return nil
	})
	if err != nil {
		return err
	}

	if a.flags.jsonMode {
		return printJSON(cmd, map[string]any{
			"config_dir": configDir,
			"data_dir":   dataDir,
			"kinds":      count,
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "quantikind initialized in %s (%d kinds)\n", dataDir, count)
	return nil
}
