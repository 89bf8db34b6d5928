// Package trials implements the trial aggregator: repeated walks over one
// shared coin source, collecting final positions.
package trials

import (
	"fmt"

	"github.com/MarkBJohnsAdmin/distribution/pkg/domain"
	"github.com/MarkBJohnsAdmin/distribution/pkg/ports"
	"github.com/MarkBJohnsAdmin/distribution/pkg/walk"
)

// Run invokes the walk generator count times over the same source and
// collects each walk's final position in call order. The source is threaded
// continuously, never reseeded between trials, so successive trials are
// independent draws from one stream.
//
// count must be at least 1; length must be non-negative.
func Run(count, length int, src ports.CoinSource) (domain.Collection, error) {
	return RunObserved(count, length, src, domain.LifecycleHooks{})
}

// RunObserved is Run with lifecycle hooks threaded into each walk.
// OnTrialsEnd fires once after the last trial.
func RunObserved(count, length int, src ports.CoinSource, hooks domain.LifecycleHooks) (domain.Collection, error) {
	if count < 1 {
		return nil, fmt.Errorf("trial count must be positive, got %d: %w", count, domain.ErrInvalidArgument)
	}
	if length < 0 {
		return nil, fmt.Errorf("walk length must be non-negative, got %d: %w", length, domain.ErrInvalidArgument)
	}

	collection := make(domain.Collection, 0, count)
	for i := 0; i < count; i++ {
		result, err := walk.GenerateObserved(length, src, hooks)
		if err != nil {
			return nil, err
		}
		collection = append(collection, result.Final())
	}

	hooks.EmitTrialsEnd(domain.TrialsEvent{Count: count, WalkLength: length})
	return collection, nil
}
