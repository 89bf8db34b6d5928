// Package walk implements the walk generator: a biased random walk driven
// by coin flips, clamped at the origin.
package walk

import (
	"fmt"

	"github.com/MarkBJohnsAdmin/distribution/pkg/domain"
	"github.com/MarkBJohnsAdmin/distribution/pkg/ports"
)

// Generate produces one walk of the given length, consuming exactly length
// flips from src in order. A forward flip moves the position up by one; a
// backward flip moves it down by one, floored at zero. Each step records
// the post-update position.
//
// A zero length yields an empty result (the walker never leaves the
// origin). A negative length is an invalid argument.
func Generate(length int, src ports.CoinSource) (domain.WalkResult, error) {
	return GenerateObserved(length, src, domain.LifecycleHooks{})
}

// GenerateObserved is Generate with lifecycle hooks threaded through. Hooks
// fire inline: OnStep after each flip, OnWalkEnd once the trace is complete.
func GenerateObserved(length int, src ports.CoinSource, hooks domain.LifecycleHooks) (domain.WalkResult, error) {
	if length < 0 {
		return nil, fmt.Errorf("walk length must be non-negative, got %d: %w", length, domain.ErrInvalidArgument)
	}

	result := make(domain.WalkResult, 0, length)
	position := 0

	for i := 0; i < length; i++ {
		outcome := src.Flip()
		switch outcome {
		case domain.OutcomeForward:
			position++
		default:
			if position > 0 {
				position--
			}
		}
		result = append(result, domain.Step{Position: position, Outcome: outcome})
		hooks.EmitStep(domain.StepEvent{Index: i, Position: position, Outcome: outcome})
	}

	hooks.EmitWalkEnd(domain.WalkEvent{Length: length, Final: result.Final()})
	return result, nil
}
