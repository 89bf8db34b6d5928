package distribution_test

import (
	"fmt"

	"github.com/MarkBJohnsAdmin/distribution"
)

// Example demonstrates the canonical classroom run: 100 trials of a
// 25-step walk, asking how often the walker reaches +10.
func Example() {
	sim := distribution.New(distribution.WithSeed(42))

	summary, err := sim.Experiment(100, 25, 10)
	if err != nil {
		panic(err)
	}

	fmt.Printf("trials: %d\n", summary.Trials)
	fmt.Printf("buckets sum: %d\n", summary.Histogram.Total())
	fmt.Printf("rate in band: %v\n", summary.SuccessRate >= 0 && summary.SuccessRate <= 20)
	// Output:
	// trials: 100
	// buckets sum: 100
	// rate in band: true
}
