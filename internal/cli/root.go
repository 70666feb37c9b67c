// Package cli implements the strand CLI commands.
package cli

import "github.com/spf13/cobra"

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "strand",
	Short: "String analysis service",
	Long:  "strand ingests strings, derives their properties, and serves structured and natural-language filtered listings over HTTP.",
}
