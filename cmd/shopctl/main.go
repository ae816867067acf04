// Command shopctl runs storefront maintenance tasks against the configured database.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "shopctl",
		Short:         "Storefront maintenance commands",
		SilenceUsage:  true,
	}

	root.AddCommand(
		newMigrateCmd(),
		newExportOrdersCmd(),
	)

	return root
}
