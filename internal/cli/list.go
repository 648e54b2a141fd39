package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/aacboard/pkg/board"
	"github.com/mesh-intelligence/aacboard/pkg/types"
)

// listEntry is one row of list output.
type listEntry struct {
	ImageLoc string `json:"image_loc"`
	Text     string `json:"text"`
	Items    *int   `json:"items,omitempty"`
}

func newListCmd(a *app) *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "list [category]",
		Short: "List categories, or the items of a category",
		Long: `List prints the top-level category images with their names. Given a
category image, it prints that category's item images with their text.

Example:
  aacboard list
  aacboard list img/food/plate.png --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBoard(func(_ types.Store, b *board.Board) error {
				var entries []listEntry
				if len(args) == 0 {
					var err error
					if entries, err = categoryEntries(b); err != nil {
						return err
					}
				} else {
					cat, err := b.Category(args[0])
					if err != nil {
						return err
					}
					entries = itemEntries(cat)
				}
				return printEntries(cmd.OutOrStdout(), entries, jsonOutput)
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func categoryEntries(b *board.Board) ([]listEntry, error) {
	entries := make([]listEntry, 0, b.Len())
	err := b.Walk(func(imageLoc string, cat *board.Category) error {
		n := cat.Len()
		entries = append(entries, listEntry{ImageLoc: imageLoc, Text: cat.Name(), Items: &n})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return entries, nil
}

func itemEntries(cat *board.Category) []listEntry {
	locs := cat.ImageLocs()
	entries := make([]listEntry, 0, len(locs))
	for _, loc := range locs {
		text, _ := cat.Select(loc)
		entries = append(entries, listEntry{ImageLoc: loc, Text: text})
	}
	return entries
}

func printEntries(w io.Writer, entries []listEntry, jsonOutput bool) error {
	if jsonOutput {
		output, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal entries: %w", err)
		}
		fmt.Fprintln(w, string(output))
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.ImageLoc, e.Text)
	}
	return nil
}
