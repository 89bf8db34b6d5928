package walk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarkBJohnsAdmin/distribution/pkg/coin"
	"github.com/MarkBJohnsAdmin/distribution/pkg/domain"
	"github.com/MarkBJohnsAdmin/distribution/pkg/walk"
)

// scriptedSource replays a fixed outcome sequence, looping if exhausted.
type scriptedSource struct {
	outcomes []domain.Outcome
	i        int
}

func (s *scriptedSource) Flip() domain.Outcome {
	o := s.outcomes[s.i%len(s.outcomes)]
	s.i++
	return o
}

func TestGenerate_Length(t *testing.T) {
	result, err := walk.Generate(25, coin.New(1))
	require.NoError(t, err)
	assert.Len(t, result, 25)
}

func TestGenerate_ZeroLength(t *testing.T) {
	result, err := walk.Generate(0, coin.New(1))
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Equal(t, 0, result.Final())
}

func TestGenerate_NegativeLength(t *testing.T) {
	_, err := walk.Generate(-1, coin.New(1))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestGenerate_ClampsAtZero(t *testing.T) {
	src := &scriptedSource{outcomes: []domain.Outcome{domain.OutcomeBackward}}

	result, err := walk.Generate(5, src)
	require.NoError(t, err)
	for _, step := range result {
		assert.Equal(t, 0, step.Position, "backward steps from the origin must stay at zero")
	}
}

func TestGenerate_StepDeltas(t *testing.T) {
	result, err := walk.Generate(200, coin.New(99))
	require.NoError(t, err)

	prev := 0
	for i, step := range result {
		assert.GreaterOrEqual(t, step.Position, 0, "step %d went negative", i)
		switch step.Outcome {
		case domain.OutcomeForward:
			assert.Equal(t, prev+1, step.Position, "step %d: forward must add exactly 1", i)
		case domain.OutcomeBackward:
			expected := prev - 1
			if expected < 0 {
				expected = 0
			}
			assert.Equal(t, expected, step.Position, "step %d: backward must subtract 1, floored at 0", i)
		}
		prev = step.Position
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	first, err := walk.Generate(25, coin.New(42))
	require.NoError(t, err)
	second, err := walk.Generate(25, coin.New(42))
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical fresh seeds must reproduce the trace bit-for-bit")
}

func TestGenerate_SharedSourceDiverges(t *testing.T) {
	// Re-invoking over one stateful source advances the stream, so two
	// in-process calls are expected to differ. This is the documented
	// behavior, not a bug.
	src := coin.New(42)

	first, err := walk.Generate(25, src)
	require.NoError(t, err)
	second, err := walk.Generate(25, src)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestGenerateObserved_Hooks(t *testing.T) {
	var steps int
	var final int
	hooks := domain.LifecycleHooks{
		OnStep:    func(e domain.StepEvent) { steps++ },
		OnWalkEnd: func(e domain.WalkEvent) { final = e.Final },
	}

	result, err := walk.GenerateObserved(10, coin.New(3), hooks)
	require.NoError(t, err)
	assert.Equal(t, 10, steps)
	assert.Equal(t, result.Final(), final)
}
