package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarkBJohnsAdmin/distribution/pkg/domain"
)

// RunResultStoreContract runs a suite of tests to verify that a ResultStore
// implementation adheres to the interface contract. Adapter test files call
// it with a freshly constructed store.
func RunResultStoreContract(t *testing.T, store ResultStore) {
	ctx := context.Background()

	summary := domain.Summary{
		Trials:      100,
		WalkLength:  25,
		Threshold:   10,
		SuccessRate: 7,
		Histogram:   domain.FrequencyTable{0: 60, 1: 30, 2: 10},
		Seed:        42,
	}

	t.Run("Save and Load", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "baseline", summary))

		loaded, err := store.Load(ctx, "baseline")
		require.NoError(t, err)
		assert.Equal(t, summary.Trials, loaded.Trials)
		assert.Equal(t, summary.SuccessRate, loaded.SuccessRate)
		assert.Equal(t, summary.Histogram, loaded.Histogram)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "no-such-summary")
		assert.ErrorIs(t, err, domain.ErrSummaryNotFound)
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		updated := summary
		updated.SuccessRate = 9
		require.NoError(t, store.Save(ctx, "baseline", updated))

		loaded, err := store.Load(ctx, "baseline")
		require.NoError(t, err)
		assert.Equal(t, 9.0, loaded.SuccessRate)
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "second", summary))

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, "baseline")
		assert.Contains(t, names, "second")
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "second"))

		_, err := store.Load(ctx, "second")
		assert.ErrorIs(t, err, domain.ErrSummaryNotFound)

		// Deleting again is a no-op, not an error.
		assert.NoError(t, store.Delete(ctx, "second"))
	})
}
