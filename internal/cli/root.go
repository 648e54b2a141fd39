// Package cli implements the aacboard command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/aacboard/internal/paths"
	"github.com/mesh-intelligence/aacboard/internal/store"
	"github.com/mesh-intelligence/aacboard/pkg/types"
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
	verbose   bool
}

// app is the state shared by the commands of one invocation.
type app struct {
	flags     rootFlags
	configDir string
	cfg       types.Config
	logger    *zap.Logger
}

// NewRootCmd creates the top-level "aacboard" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "aacboard",
		Short: "An AAC board of categories and spoken items",
		Long: `aacboard manages an augmentative and alternative communication board.
The home view shows category images; selecting one enters the category,
and selecting an item inside it produces the text to speak.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $(CWD)/.aac)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/.aac-data)")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newSelectCmd(a))
	root.AddCommand(newAddCmd(a))
	root.AddCommand(newImportCmd(a))
	root.AddCommand(newExportCmd(a))
	root.AddCommand(newSessionCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// setup resolves directories, reads config.yaml, and builds the logger.
func (a *app) setup() error {
	logger, err := newLogger(a.flags.verbose)
	if err != nil {
		return systemError(fmt.Errorf("create logger: %w", err))
	}
	a.logger = logger

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return systemError(fmt.Errorf("resolve config dir: %w", err))
	}
	a.configDir = configDir

	v, err := loadConfig(configDir)
	if err != nil {
		return systemError(err)
	}

	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return systemError(fmt.Errorf("resolve data dir: %w", err))
	}

	a.cfg = types.Config{
		Backend:   v.GetString(cfgKeyBackend),
		DataDir:   dataDir,
		BoardFile: v.GetString(cfgKeyBoardFile),
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	a.logger.Debug("configuration resolved",
		zap.String("config_dir", configDir),
		zap.String("data_dir", dataDir),
		zap.String("backend", a.cfg.Backend))
	return nil
}

// openStore opens the configured store. The caller must Close it.
func (a *app) openStore() (types.Store, error) {
	s, err := store.Open(a.cfg, a.logger)
	if err != nil {
		return nil, systemError(fmt.Errorf("open store: %w", err))
	}
	return s, nil
}

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// systemError marks err as a storage or environment failure.
func systemError(err error) error {
	return &exitError{code: exitSysError, err: err}
}

// exitCode maps an error returned by a command to a process exit code.
// Errors not marked as system errors are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}
