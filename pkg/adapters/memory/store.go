// Package memory provides an in-memory ResultStore, used as the default
// backend and as a fixture in tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/MarkBJohnsAdmin/distribution/pkg/domain"
)

// Store implements ports.ResultStore with a mutex-guarded map.
type Store struct {
	mu        sync.RWMutex
	summaries map[string]domain.Summary
}

// New creates an empty store.
func New() *Store {
	return &Store{summaries: make(map[string]domain.Summary)}
}

// Save stores a copy of the summary under name.
func (s *Store) Save(ctx context.Context, name string, summary domain.Summary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Copy the histogram so later caller mutations don't leak in.
	table := make(domain.FrequencyTable, len(summary.Histogram))
	for bucket, count := range summary.Histogram {
		table[bucket] = count
	}
	summary.Histogram = table

	s.summaries[name] = summary
	return nil
}

// Load retrieves a stored summary.
func (s *Store) Load(ctx context.Context, name string) (domain.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary, ok := s.summaries[name]
	if !ok {
		return domain.Summary{}, domain.ErrSummaryNotFound
	}
	return summary, nil
}

// List returns the stored names in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.summaries))
	for name := range s.summaries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a stored summary.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.summaries, name)
	return nil
}
