package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/aacboard/pkg/board"
	"github.com/mesh-intelligence/aacboard/pkg/types"
)

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the stored board with a board text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			src, err := board.LoadFrom(args[0], board.WithLogger(a.logger))
			if err != nil {
				return storageError("import", err)
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer closeStore(s, &err)

			if err := s.Save(src); err != nil {
				return storageError("save board", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d categories from %s\n", src.Len(), args[0])
			return nil
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the stored board to a board text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBoard(func(_ types.Store, b *board.Board) error {
				if err := b.SaveTo(args[0]); err != nil {
					return storageError("export", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d categories to %s\n", b.Len(), args[0])
				return nil
			})
		},
	}
}
