package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MarkBJohnsAdmin/distribution/internal/presentation/terminal"
	"github.com/MarkBJohnsAdmin/distribution/pkg/adapters/hplot"
)

// histCmd represents the hist command
var histCmd = &cobra.Command{
	Use:   "hist",
	Short: "Run the canonical trial counts and render their histograms",
	Long: `Runs the experiment at each configured trial count (100, 1000 and
10000 by default) and renders a histogram per run, showing how the shape
of the distribution stabilizes as the trial count grows.

With --png the largest run is also written as an image chart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		seed := resolveSeed(cmd, cfg.Seed)
		pngPath, _ := cmd.Flags().GetString("png")

		sim := newSimulator(cmd, seed)

		for _, count := range cfg.Trials.Counts {
			summary, err := sim.Experiment(count, cfg.Walk.Length, cfg.Trials.Threshold)
			if err != nil {
				return err
			}

			fmt.Printf("--- %d trials (%.1f%% reached %+d) ---\n",
				summary.Trials, summary.SuccessRate, summary.Threshold)
			if err := terminal.New(os.Stdout).Render(summary.Histogram); err != nil {
				return err
			}
			fmt.Println()

			// Chart the last (largest) run when an image was requested.
			if pngPath != "" && count == cfg.Trials.Counts[len(cfg.Trials.Counts)-1] {
				opts := hplot.Options{Path: pngPath}
				if cfg.Render.Type == "hplot" {
					if err := cfg.Render.DecodeOptions(&opts); err != nil {
						return err
					}
					opts.Path = pngPath
				}
				renderer := hplot.New(opts)
				if err := renderer.Render(summary.Histogram); err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "chart written to %s\n", renderer.Path())
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(histCmd)

	histCmd.Flags().Int64P("seed", "s", 0, "Seed the coin source (0 = random)")
	histCmd.Flags().String("png", "", "Also write the largest run as an image chart")
}
