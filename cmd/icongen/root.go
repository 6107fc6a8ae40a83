package main

import (
	"fmt"
	"path/filepath"

	"github.com/memoato/icongen/internal/config"
	"github.com/memoato/icongen/internal/icon"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "icongen",
	Short: "Generate favicon and app-icon PNGs from the project logo",
	Long: "Icongen renders public/logo.png into the favicon, Apple touch, Android and\n" +
		"maskable PWA icons. public/favicon.ico is left untouched.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator(cmd)
		if err != nil {
			return err
		}

		results, err := g.Run()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Generated:")
		for _, r := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", r.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("root", ".", "project root containing public/")
	rootCmd.PersistentFlags().String("config", "icongen.yaml", "path to config file, relative to --root")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable verbose output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves the project root and reads the optional config file.
func loadConfig(cmd *cobra.Command) (root string, cfg *config.Config, err error) {
	root, _ = cmd.Root().PersistentFlags().GetString("root")
	configPath, _ := cmd.Root().PersistentFlags().GetString("config")

	root, err = filepath.Abs(root)
	if err != nil {
		return "", nil, fmt.Errorf("determining project root: %w", err)
	}
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(root, configPath)
	}

	cfg, err = config.LoadOptional(configPath)
	if err != nil {
		return "", nil, fmt.Errorf("loading config: %w", err)
	}
	return root, cfg, nil
}

// newGenerator builds an icon.Generator from flags and configuration.
func newGenerator(cmd *cobra.Command) (*icon.Generator, error) {
	root, cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}
	verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")

	source, outputDir := cfg.Resolve(root)
	return icon.NewGenerator(icon.Options{
		SourcePath: source,
		OutputDir:  outputDir,
		Background: bg,
		Verbose:    verbose,
	}), nil
}
