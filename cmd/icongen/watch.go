package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/memoato/icongen/internal/watch"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate icons whenever the logo changes",
	Long:  "Generate all icons, then regenerate them each time the source logo or config file changes.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		configPath, _ := cmd.Root().PersistentFlags().GetString("config")
		if !filepath.IsAbs(configPath) {
			configPath = filepath.Join(root, configPath)
		}
		source, _ := cfg.Resolve(root)

		var mu sync.Mutex
		generate := func() error {
			mu.Lock()
			defer mu.Unlock()

			// Reload so config edits take effect without a restart.
			g, err := newGenerator(cmd)
			if err != nil {
				return err
			}
			start := time.Now()
			results, err := g.Run()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d icons in %s\n",
				len(results), time.Since(start).Round(time.Millisecond))
			return nil
		}

		if err := generate(); err != nil {
			return err
		}

		debounce, _ := cmd.Flags().GetDuration("debounce")
		w := watch.New([]string{source, configPath}, debounce, func() {
			log.Println("Change detected, regenerating...")
			if err := generate(); err != nil {
				log.Printf("Regeneration failed: %v", err)
			}
		})

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigCh
			fmt.Fprintln(cmd.OutOrStdout(), "\nStopping...")
			w.Stop()
		}()

		fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (Ctrl+C to stop)\n", source)
		return w.Start()
	},
}

func init() {
	watchCmd.Flags().Duration("debounce", 200*time.Millisecond, "quiet period before regenerating")
	rootCmd.AddCommand(watchCmd)
}
