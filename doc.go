/*
Package distribution is a small teaching library that explains what a
statistical distribution is, using a biased random walk built from coin
flips.

It implements a "generate, collect, summarize" pipeline: a walk generator
produces one step trace from a fixed number of coin flips, a trial
aggregator repeats it N times collecting each walk's final position, and a
summary layer bins those finals into a histogram and measures how often a
target threshold was reached.

# Concept

A single walk tells you almost nothing: flip 25 coins, step forward on
heads and backward on tails (never below the origin), and you end up
somewhere. Run that walk a hundred, a thousand, ten thousand times and the
collection of finishing positions takes shape. That shape is the
distribution, and it is what lets you estimate the probability of reaching
a target.

# Key Properties

  - Deterministic Execution: A fixed seed reproduces every flip, step, and
    summary bit-for-bit across process runs.
  - Explicit Randomness: The coin source is an injected dependency threaded
    through the pipeline, never a hidden global.
  - Hexagonal Architecture: The core returns pure data; rendering (terminal
    bars, PNG charts) and persistence (memory, Redis) live in adapters.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/MarkBJohnsAdmin/distribution"
	)

	func main() {
		sim := distribution.New(distribution.WithSeed(42))

		summary, err := sim.Experiment(1000, 25, 10)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("reached +10 in %.1f%% of %d trials\n", summary.SuccessRate, summary.Trials)
		for _, bucket := range summary.Histogram.Buckets() {
			fmt.Printf("%3d | %d\n", bucket, summary.Histogram[bucket])
		}
	}

Lower-level pieces are importable on their own: pkg/walk for single walks,
pkg/trials for aggregation, pkg/stats for the derived views, and pkg/coin
for the seeded source.
*/
package distribution
