package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify generated icons are up to date",
	Long: "Render every icon in memory and compare it with the file on disk.\n" +
		"Exits non-zero if any icon is missing or differs from a fresh render.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator(cmd)
		if err != nil {
			return err
		}

		stale, err := g.Check()
		if err != nil {
			return err
		}
		if len(stale) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "All icons are up to date.")
			return nil
		}

		for _, s := range stale {
			reason := "stale"
			if s.Missing {
				reason = "missing"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "- %s (%s)\n", s.Path, reason)
		}
		return fmt.Errorf("%d icon(s) out of date; run icongen to regenerate", len(stale))
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
