package main

import (
	"fmt"

	"github.com/memoato/icongen/internal/icon"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the icons that are generated",
	Long:  "Print the fixed icon table: file name, size, padding, and canvas strategy.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, s := range icon.DefaultSpecs {
			line := fmt.Sprintf("%-38s %4dpx  pad %.2f  %s", s.Name, s.Size, s.Padding, s.Strategy)
			if s.Strategy == icon.StrategyRounded {
				line += fmt.Sprintf(" (radius %.2f)", s.Radius)
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
