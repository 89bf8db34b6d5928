package distribution_test

import (
	"testing"

	"github.com/MarkBJohnsAdmin/distribution"
	"github.com/MarkBJohnsAdmin/distribution/pkg/domain"
)

func TestSimulator_Experiment(t *testing.T) {
	sim := distribution.New(distribution.WithSeed(42))

	summary, err := sim.Experiment(100, 25, 10)
	if err != nil {
		t.Fatalf("Experiment failed: %v", err)
	}

	if summary.Trials != 100 {
		t.Errorf("Expected 100 trials, got %d", summary.Trials)
	}
	if summary.WalkLength != 25 {
		t.Errorf("Expected walk length 25, got %d", summary.WalkLength)
	}
	if summary.Seed != 42 {
		t.Errorf("Expected seed 42 recorded, got %d", summary.Seed)
	}
	if total := summary.Histogram.Total(); total != 100 {
		t.Errorf("Histogram counts should sum to 100, got %d", total)
	}
	if summary.SuccessRate < 0 || summary.SuccessRate > 20 {
		t.Errorf("Reference scenario expects a rate in [0, 20], got %.1f", summary.SuccessRate)
	}
}

func TestSimulator_ExperimentReproducible(t *testing.T) {
	first, err := distribution.New(distribution.WithSeed(7)).Experiment(1000, 25, 10)
	if err != nil {
		t.Fatal(err)
	}
	second, err := distribution.New(distribution.WithSeed(7)).Experiment(1000, 25, 10)
	if err != nil {
		t.Fatal(err)
	}

	if first.SuccessRate != second.SuccessRate {
		t.Errorf("Rates diverged for identical seeds: %.2f vs %.2f", first.SuccessRate, second.SuccessRate)
	}
	for bucket, count := range first.Histogram {
		if second.Histogram[bucket] != count {
			t.Errorf("Bucket %d diverged: %d vs %d", bucket, count, second.Histogram[bucket])
		}
	}
}

func TestSimulator_InvalidArguments(t *testing.T) {
	sim := distribution.New(distribution.WithSeed(1))

	if _, err := sim.Walk(-1); err == nil {
		t.Error("Expected error for negative walk length")
	}
	if _, err := sim.RunTrials(0, 25); err == nil {
		t.Error("Expected error for zero trial count")
	}
	if _, err := sim.Summarize(domain.Collection{}, 10); err == nil {
		t.Error("Expected error for empty collection")
	}
}

func TestSimulator_HooksFire(t *testing.T) {
	var steps, walks int
	sim := distribution.New(
		distribution.WithSeed(3),
		distribution.WithHooks(domain.LifecycleHooks{
			OnStep:    func(domain.StepEvent) { steps++ },
			OnWalkEnd: func(domain.WalkEvent) { walks++ },
		}),
	)

	if _, err := sim.RunTrials(4, 25); err != nil {
		t.Fatal(err)
	}

	if walks != 4 {
		t.Errorf("Expected 4 walk-end events, got %d", walks)
	}
	if steps != 100 {
		t.Errorf("Expected 100 step events, got %d", steps)
	}
}
