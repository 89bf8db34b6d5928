package distribution

import (
	"log/slog"

	"github.com/MarkBJohnsAdmin/distribution/internal/logging"
	"github.com/MarkBJohnsAdmin/distribution/pkg/coin"
	"github.com/MarkBJohnsAdmin/distribution/pkg/domain"
	"github.com/MarkBJohnsAdmin/distribution/pkg/ports"
	"github.com/MarkBJohnsAdmin/distribution/pkg/stats"
	"github.com/MarkBJohnsAdmin/distribution/pkg/trials"
	"github.com/MarkBJohnsAdmin/distribution/pkg/walk"
)

// Version is the library version, reported by the CLI and the MCP server.
var Version = "0.3.0"

// Simulator is the high-level entry point for the library. It wraps the
// walk/trials/stats pipeline and owns the coin source threaded through it.
type Simulator struct {
	src    ports.CoinSource
	seed   int64
	seeded bool
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// Option defines a functional option for configuring the Simulator.
type Option func(*Simulator)

// WithSeed seeds the default coin source, making every run of this
// Simulator reproducible.
func WithSeed(seed int64) Option {
	return func(s *Simulator) {
		s.src = coin.New(seed)
		s.seed = seed
		s.seeded = true
	}
}

// WithSource injects a custom coin source, bypassing the default seeding.
func WithSource(src ports.CoinSource) Option {
	return func(s *Simulator) {
		s.src = src
		s.seeded = false
	}
}

// WithHooks registers observability callbacks fired during walks and trials.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Simulator) {
		s.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulator) {
		s.logger = logger
	}
}

// New creates a Simulator. Without WithSeed or WithSource the coin source
// is seeded once from the process-global generator, so runs differ between
// processes; pass WithSeed for reproducibility.
func New(opts ...Option) *Simulator {
	s := &Simulator{
		src:    coin.NewRandom(),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Walk generates one walk of the given length, consuming flips from the
// shared source.
func (s *Simulator) Walk(length int) (domain.WalkResult, error) {
	result, err := walk.GenerateObserved(length, s.src, s.hooks)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("walk complete", "length", length, "final", result.Final())
	return result, nil
}

// RunTrials runs count walks of the given length over the shared source,
// threaded continuously (never reseeded), and collects the final positions.
func (s *Simulator) RunTrials(count, length int) (domain.Collection, error) {
	collection, err := trials.RunObserved(count, length, s.src, s.hooks)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("trials complete", "count", count, "walk_length", length)
	return collection, nil
}

// Summarize derives the success rate and histogram for a collection. The
// walk length recorded in the Summary is unknown at this level and left
// zero; use Experiment when you want a fully populated report.
func (s *Simulator) Summarize(c domain.Collection, threshold int) (domain.Summary, error) {
	rate, err := stats.SuccessRate(c, threshold)
	if err != nil {
		return domain.Summary{}, err
	}

	summary := domain.Summary{
		Trials:      len(c),
		Threshold:   threshold,
		SuccessRate: rate,
		Histogram:   stats.Histogram(c),
	}
	if s.seeded {
		summary.Seed = s.seed
	}
	return summary, nil
}

// Experiment runs count trials of length-step walks and summarizes them
// against the threshold in one call.
func (s *Simulator) Experiment(count, length, threshold int) (domain.Summary, error) {
	collection, err := s.RunTrials(count, length)
	if err != nil {
		return domain.Summary{}, err
	}

	summary, err := s.Summarize(collection, threshold)
	if err != nil {
		return domain.Summary{}, err
	}
	summary.WalkLength = length

	s.logger.Info("experiment complete",
		"trials", summary.Trials,
		"walk_length", summary.WalkLength,
		"threshold", summary.Threshold,
		"success_rate", summary.SuccessRate,
	)
	return summary, nil
}
