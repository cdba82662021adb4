package cleanup

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/oncare/care-report-api/pkg/tempfile"
)

// Prefixes of every file the service writes to the temp dir
var Prefixes = []string{"audio_", "chunk_", "report_", "convert_", "journal-", "weekly-report-"}

// Sweeper removes stale files by prefix
type Sweeper interface {
	SweepOlderThan(prefixes []string, maxAge time.Duration) int
}

var _ Sweeper = (*tempfile.Manager)(nil)

// Service handles cleanup of temporary files
type Service struct {
	sweeper         Sweeper
	maxAge          time.Duration
	cleanupInterval time.Duration
	log             zerolog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service
func NewService(sweeper Sweeper, maxAge, cleanupInterval time.Duration, log zerolog.Logger) *Service {
	if cleanupInterval <= 0 {
		cleanupInterval = time.Hour
	}
	return &Service{
		sweeper:         sweeper,
		maxAge:          maxAge,
		cleanupInterval: cleanupInterval,
		log:             log,
	}
}

// Start runs one sweep immediately and then one per interval until Stop or ctx is done
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	s.RunOnce()

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.cleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.RunOnce()
			case <-ctx.Done():
				s.log.Info().Msg("cleanup service stopped")
				return
			}
		}
	}()

	s.log.Info().Dur("interval", s.cleanupInterval).Dur("max_age", s.maxAge).Msg("cleanup service started")
}

// Stop stops the cleanup loop and waits for it to exit
func (s *Service) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// RunOnce performs a single sweep and returns the number of files removed
func (s *Service) RunOnce() int {
	removed := s.sweeper.SweepOlderThan(Prefixes, s.maxAge)
	if removed > 0 {
		s.log.Info().Int("removed", removed).Msg("stale temp files removed")
	}
	return removed
}
