// Package cli implements the quantikind command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/quantikind/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	verbose   bool
}

// app is the state shared by the commands of one invocation.
type app struct {
	flags  rootFlags
	config *viper.Viper
	logger *slog.Logger
}

// NewRootCmd creates the top-level "quantikind" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:   "quantikind",
		Short: "Kind-tagged quantities and kind hierarchies",
		Long: "quantikind keeps a catalog of quantity kinds, resolves the kind of\n" +
			"computed quantities and generates typed Go code from kind catalogs.",
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/"+paths.DefaultDataDirName+")")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "log debug records to stderr")

	root.AddCommand(
		newVersionCmd(),
		a.newInitCmd(),
		a.newKindCmd(),
		a.newImportCmd(),
		a.newExportCmd(),
		a.newResolveCmd(),
		a.newHistoryCmd(),
		a.newCalcCmd(),
		a.newGenerateCmd(),
	)
	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	return run(NewRootCmd(), os.Args[1:], os.Stderr)
}

func run(root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(stderr, "quantikind:", err)
	return exitCode(err)
}

// setup builds the logger and loads config.yaml before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	if a.flags.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysErr(fmt.Errorf("resolve config dir: %w", err))
	}
	a.config, err = loadConfig(configDir)
	if err != nil {
		return sysErr(err)
	}
	a.logger.Debug("config loaded", "dir", configDir, "file", a.config.ConfigFileUsed())
	return nil
}

// configDir returns the resolved configuration directory.
func (a *app) configDir() (string, error) {
	return paths.ResolveConfigDir(a.flags.configDir)
}

// dataDir returns the data directory: flag > config.yaml > env > default.
func (a *app) dataDir() (string, error) {
	return paths.ResolveDataDir(a.flags.dataDir, a.config.GetString(cfgKeyDataDir))
}

// cliError carries the exit code an error maps to.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

// sysErr marks err as a system failure: storage, filesystem or config.
func sysErr(err error) error {
	if err == nil {
		return nil
	}
	return &cliError{code: exitSysError, err: err}
}

// exitCode maps err to a process exit code. Errors not marked otherwise are
// user errors: bad arguments, unknown kinds, rejected operations.
func exitCode(err error) int {
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}
	return exitUserError
}
