// Package main is the entry point for the gutter CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "gutter",
		Short:        "gutter: dividers between the items of list, grid and staggered layouts",
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringP("config", "c", "", "path to gutter.toml (default: search up from the working directory)")

	root.AddCommand(
		renderCmd(),
		insetsCmd(),
		viewCmd(),
		snapshotCmd(),
		snapshotsCmd(),
		checkCmd(),
		initCmd(),
	)

	return root
}
