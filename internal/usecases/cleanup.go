package usecases

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// PartialStore finds and removes leftovers of interrupted downloads.
type PartialStore interface {
	StalePartials(cutoff time.Time) ([]string, error)
	Delete(path string) error
}

type CleanupService interface {
	CleanupStalePartials() (int, error)
	Schedule(c *cron.Cron, spec string) (cron.EntryID, error)
}

type cleanupService struct {
	store  PartialStore
	maxAge time.Duration
	now    func() time.Time
	log    *zap.Logger
}

func NewCleanupService(store PartialStore, maxAge time.Duration, log *zap.Logger) CleanupService {
	return &cleanupService{
		store:  store,
		maxAge: maxAge,
		now:    time.Now,
		log:    log.Named("cleanup"),
	}
}

// CleanupStalePartials removes partial files older than maxAge and reports
// how many were removed. A failed removal does not stop the sweep.
func (s *cleanupService) CleanupStalePartials() (int, error) {
	stale, err := s.store.StalePartials(s.now().Add(-s.maxAge))
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, p := range stale {
		if err := s.store.Delete(p); err != nil {
			s.log.Warn("cannot remove partial file", zap.String("path", p), zap.Error(err))
			continue
		}
		removed++
		s.log.Info("removed stale partial file", zap.String("path", p))
	}
	return removed, nil
}

func (s *cleanupService) Schedule(c *cron.Cron, spec string) (cron.EntryID, error) {
	return c.AddFunc(spec, func() {
		if _, err := s.CleanupStalePartials(); err != nil {
			s.log.Error("cleanup sweep failed", zap.Error(err))
		}
	})
}
