package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/aacboard/pkg/board"
	"github.com/mesh-intelligence/aacboard/pkg/types"
)

func newAddCmd(a *app) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "add <image> <text>",
		Short: "Add a category, or an item to a category",
		Long: `Add registers a new category at home, using text as its name. With
--category it adds an item to that category, using text as the words to speak.

Example:
  aacboard add img/toys/ball.png toys
  aacboard add img/toys/car.png "red car" --category img/toys/ball.png`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBoard(func(s types.Store, b *board.Board) error {
				if category != "" {
					if _, err := b.Select(category); err != nil {
						return err
					}
				}
				if err := b.CheckAdd(args[0], args[1]); err != nil {
					return fmt.Errorf("add %q: %w", args[0], err)
				}
				b.AddItem(args[0], args[1])
				if err := s.Save(b); err != nil {
					return storageError("save board", err)
				}

				if category == "" {
					fmt.Fprintf(cmd.OutOrStdout(), "Added category %s (%s)\n", args[0], args[1])
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Added item %s to %s\n", args[0], category)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "category image to add the item to")
	return cmd
}
