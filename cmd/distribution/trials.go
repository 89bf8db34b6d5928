package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MarkBJohnsAdmin/distribution/internal/presentation/terminal"
	"github.com/MarkBJohnsAdmin/distribution/pkg/adapters/redis"
)

// trialsCmd represents the trials command
var trialsCmd = &cobra.Command{
	Use:   "trials",
	Short: "Run repeated walks and summarize the final positions",
	Long: `Runs the walk N times over one continuously threaded coin source,
collects each run's final position, and prints the success rate against
the threshold plus a histogram of where the walks ended.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		count, _ := cmd.Flags().GetInt("count")
		length := cfg.Walk.Length
		if cmd.Flags().Changed("length") {
			length, _ = cmd.Flags().GetInt("length")
		}
		threshold := cfg.Trials.Threshold
		if cmd.Flags().Changed("threshold") {
			threshold, _ = cmd.Flags().GetInt("threshold")
		}
		seed := resolveSeed(cmd, cfg.Seed)
		jsonOut, _ := cmd.Flags().GetBool("json")
		saveAs, _ := cmd.Flags().GetString("save")
		redisAddr, _ := cmd.Flags().GetString("redis")

		sim := newSimulator(cmd, seed)
		summary, err := sim.Experiment(count, length, threshold)
		if err != nil {
			return err
		}

		if saveAs != "" {
			if redisAddr == "" {
				return fmt.Errorf("--save requires --redis")
			}
			store := redis.New(redisAddr, "", 0)
			defer store.Close()
			if err := store.Save(context.Background(), saveAs, summary); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "saved summary %q\n", saveAs)
		}

		if jsonOut {
			return json.NewEncoder(os.Stdout).Encode(summary)
		}

		fmt.Printf("trials:       %d\n", summary.Trials)
		fmt.Printf("walk length:  %d\n", summary.WalkLength)
		fmt.Printf("success rate: %.1f%% reached %+d\n", summary.SuccessRate, summary.Threshold)
		fmt.Println()
		return terminal.New(os.Stdout).Render(summary.Histogram)
	},
}

func init() {
	rootCmd.AddCommand(trialsCmd)

	trialsCmd.Flags().IntP("count", "c", 100, "Number of trials to run")
	trialsCmd.Flags().IntP("length", "l", 25, "Number of coin flips per walk")
	trialsCmd.Flags().IntP("threshold", "t", 10, "Target position for the success rate")
	trialsCmd.Flags().Int64P("seed", "s", 0, "Seed the coin source (0 = random)")
	trialsCmd.Flags().Bool("json", false, "Print the summary as JSON")
	trialsCmd.Flags().String("save", "", "Store the summary under this name")
	trialsCmd.Flags().String("redis", "", "Redis address for --save (host:port)")
}
