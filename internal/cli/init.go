package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize aacboard storage",
		Long:  "Create the configuration file and data directory, then initialize the configured store.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd)
		},
	}
}

func (a *app) runInit(cmd *cobra.Command) (err error) {
	configPath := filepath.Join(a.configDir, configFileExt)
	written, err := writeConfigIfMissing(configPath, configFile{
		Backend:   a.cfg.Backend,
		DataDir:   a.cfg.DataDir,
		BoardFile: a.cfg.BoardFile,
	})
	if err != nil {
		return systemError(fmt.Errorf("write config: %w", err))
	}
	if written {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
	}

	s, err := a.openStore()
	if err != nil {
		return err
	}
	defer closeStore(s, &err)

	// Loading then saving creates the backing file without touching an
	// existing board.
	b, err := s.Load()
	if err != nil {
		return storageError("load board", err)
	}
	if err := s.Save(b); err != nil {
		return storageError("initialize storage", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Board initialized in %s (%s backend, %d categories)\n",
		a.cfg.DataDir, a.cfg.Backend, b.Len())
	return nil
}
