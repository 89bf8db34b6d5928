package ports

import (
	"context"

	"github.com/MarkBJohnsAdmin/distribution/pkg/domain"
)

// CoinSource produces one of two equally likely outcomes per flip.
//
// The pipeline threads a single source through every flip of every trial in
// strict sequential order, so implementations need not be safe for
// concurrent use. A source built from a fixed seed must yield the same
// outcome stream on every fresh construction.
type CoinSource interface {
	Flip() domain.Outcome
}

// ResultStore persists named experiment summaries.
type ResultStore interface {
	// Save stores the summary under name, overwriting any previous value.
	Save(ctx context.Context, name string, summary domain.Summary) error
	// Load retrieves a stored summary. Returns domain.ErrSummaryNotFound
	// if the name is unknown.
	Load(ctx context.Context, name string) (domain.Summary, error)
	// List returns the names of all stored summaries.
	List(ctx context.Context) ([]string, error)
	// Delete removes a stored summary. Deleting an unknown name is not an error.
	Delete(ctx context.Context, name string) error
}

// ChartRenderer consumes a FrequencyTable and renders it. The core hands
// renderers pure data only; where the chart goes (terminal, image file) is
// the adapter's business.
type ChartRenderer interface {
	Render(table domain.FrequencyTable) error
}
