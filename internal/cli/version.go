package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/aacboard"
)

const modulePath = "github.com/mesh-intelligence/aacboard"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the aacboard version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "aacboard v%s\nmodule: %s\n", aacboard.Version, modulePath)
			return nil
		},
	}
}
