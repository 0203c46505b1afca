package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.Gutter/internal/config"
)

func addSizeFlags(cmd *cobra.Command) {
	cmd.Flags().Int("width", 0, "viewport width (0 = [view] width, else the terminal width)")
	cmd.Flags().Int("height", 0, "viewport height (0 = [view] height, else the terminal height)")
}

func sizeFlags(cmd *cobra.Command) (width, height int) {
	width, _ = cmd.Flags().GetInt("width")
	height, _ = cmd.Flags().GetInt("height")
	return width, height
}

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the decorated list",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			strict, _ := cmd.Flags().GetBool("strict")
			width, height := sizeFlags(cmd)
			return executeRender(cmd.OutOrStdout(), cmd.ErrOrStderr(), path, width, height, strict)
		},
	}
	addSizeFlags(cmd)
	cmd.Flags().Bool("strict", false, "fail when a warning is reported")
	return cmd
}

func insetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insets",
		Short: "Print the divider offsets measured for every item",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			width, height := sizeFlags(cmd)
			return executeInsets(cmd.OutOrStdout(), cmd.ErrOrStderr(), path, width, height)
		},
	}
	addSizeFlags(cmd)
	return cmd
}

func viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Preview the decorated list interactively, reloading gutter.toml on change",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			return runView(path)
		},
	}
}

func snapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Record the offsets and the rendering of the decorated list",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			output, _ := cmd.Flags().GetString("output")
			name, _ := cmd.Flags().GetString("name")
			width, height := sizeFlags(cmd)
			return executeSnapshot(cmd.OutOrStdout(), cmd.ErrOrStderr(), path, output, name, width, height)
		},
	}
	cmd.Flags().StringP("output", "o", "gutter.jsonl", "snapshot file")
	cmd.Flags().String("name", "default", "snapshot name; recording a name again replaces it")
	addSizeFlags(cmd)
	return cmd
}

func snapshotsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshots <file>",
		Short: "List the snapshots recorded in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeSnapshots(cmd.OutOrStdout(), args[0])
		},
	}
}

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Recompute a recorded snapshot and report differences",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			strict, _ := cmd.Flags().GetBool("strict")
			return executeCheck(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], name, strict)
		},
	}
	cmd.Flags().String("name", "default", "snapshot name")
	cmd.Flags().Bool("strict", false, "fail when a warning is reported")
	return cmd
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create gutter.toml in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			path, err := config.InitFile(dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}
