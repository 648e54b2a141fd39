package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/aacboard/pkg/board"
	"github.com/mesh-intelligence/aacboard/pkg/types"
)

func newSelectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "select <image>...",
		Short: "Select images starting from the home view",
		Long: `Select replays a sequence of selections starting at home. Selecting a
category image enters it; selecting an item image prints its text.

Example:
  aacboard select img/food/plate.png img/food/fries.png`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBoard(func(_ types.Store, b *board.Board) error {
				for _, imageLoc := range args {
					navigating := b.Cursor().IsHome()
					text, err := b.Select(imageLoc)
					if err != nil {
						return err
					}
					if !navigating {
						fmt.Fprintln(cmd.OutOrStdout(), text)
					}
				}
				return nil
			})
		},
	}
}
