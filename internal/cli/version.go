package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shipyard/pkg/shipyard"
)

const modulePath = "github.com/mesh-intelligence/shipyard"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the shipyard version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "shipyard v%s\nmodule: %s\n", shipyard.Version, modulePath)
			return nil
		},
	}
}
