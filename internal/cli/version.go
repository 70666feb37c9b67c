package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strandhq/strand/internal/version"
)

func init() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build metadata",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("strand %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date)
		},
	}

	RootCmd.AddCommand(cmd)
}
