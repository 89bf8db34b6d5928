package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MarkBJohnsAdmin/distribution"
	"github.com/MarkBJohnsAdmin/distribution/pkg/domain"
)

// walkCmd represents the walk command
var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Generate a single random walk and print its step trace",
	Long: `Runs one walk of the configured length: each coin flip moves the
walker forward or backward (never below the start) and the post-flip
position is printed per step.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		length := cfg.Walk.Length
		if cmd.Flags().Changed("length") {
			length, _ = cmd.Flags().GetInt("length")
		}
		seed := resolveSeed(cmd, cfg.Seed)
		jsonOut, _ := cmd.Flags().GetBool("json")

		sim := newSimulator(cmd, seed)
		result, err := sim.Walk(length)
		if err != nil {
			return err
		}

		if jsonOut {
			return json.NewEncoder(os.Stdout).Encode(result)
		}

		for i, step := range result {
			marker := ">"
			if step.Outcome == domain.OutcomeBackward {
				marker = "<"
			}
			fmt.Printf("step %2d %s position %d\n", i+1, marker, step.Position)
		}
		fmt.Printf("final position: %d\n", result.Final())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(walkCmd)

	walkCmd.Flags().IntP("length", "l", 25, "Number of coin flips")
	walkCmd.Flags().Int64P("seed", "s", 0, "Seed the coin source (0 = random)")
	walkCmd.Flags().Bool("json", false, "Print the trace as JSON")
}

// resolveSeed prefers the --seed flag over the config file value.
func resolveSeed(cmd *cobra.Command, configSeed int64) int64 {
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		return seed
	}
	return configSeed
}

// newSimulator builds a Simulator for a command: seeded when requested,
// always with the CLI logger.
func newSimulator(cmd *cobra.Command, seed int64) *distribution.Simulator {
	opts := []distribution.Option{distribution.WithLogger(newLogger(cmd))}
	if seed != 0 {
		opts = append(opts, distribution.WithSeed(seed))
	}
	return distribution.New(opts...)
}
