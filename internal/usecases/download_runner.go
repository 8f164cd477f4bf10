package usecases

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"media-fetcher/internal/domain/entities"
	"media-fetcher/internal/domain/repositories"
	"media-fetcher/internal/infrastructure/queue"
)

const fallbackErrorMessage = "download failed"

// DownloadRunner drives one job from downloading to finished or error. It
// is the only writer of a job's record once the job is accepted.
type DownloadRunner struct {
	jobs      repositories.JobRepository
	extractor repositories.MediaExtractor
	destDir   string
	mirror    repositories.ArtifactMirror // optional
	log       *zap.Logger
}

func NewDownloadRunner(
	jobs repositories.JobRepository,
	extractor repositories.MediaExtractor,
	destDir string,
	mirror repositories.ArtifactMirror,
	log *zap.Logger,
) *DownloadRunner {
	return &DownloadRunner{
		jobs:      jobs,
		extractor: extractor,
		destDir:   destDir,
		mirror:    mirror,
		log:       log.Named("runner"),
	}
}

var _ queue.Runner = (*DownloadRunner)(nil)

// Run never panics and never returns an error; every outcome lands in the
// job record.
func (r *DownloadRunner) Run(ctx context.Context, job queue.DownloadJob) {
	log := r.log.With(zap.String("job_id", job.ID))

	defer func() {
		if rec := recover(); rec != nil {
			log.Error("download panicked", zap.Any("panic", rec))
			r.fail(log, job.ID, fmt.Sprint(rec))
		}
	}()

	path, err := r.extractor.Download(ctx, job.URL, r.destDir, func(ev entities.ProgressEvent) {
		r.onProgress(log, job.ID, ev)
	})
	if err != nil {
		log.Warn("download failed", zap.String("url", job.URL), zap.Error(err))
		r.fail(log, job.ID, err.Error())
		return
	}

	// some extractors never emit a finished event
	r.apply(log, job.ID, func(s *entities.JobStatus) {
		s.SetProgress(100)
		s.Finish()
	})
	log.Info("download finished", zap.String("path", path))

	if r.mirror != nil && path != "" {
		r.mirrorArtifact(ctx, log, path)
	}
}

func (r *DownloadRunner) onProgress(log *zap.Logger, id string, ev entities.ProgressEvent) {
	switch ev.Stage {
	case entities.ProgressDownloading:
		r.apply(log, id, func(s *entities.JobStatus) { s.SetProgress(ev.Percent) })
	case entities.ProgressFinished:
		r.apply(log, id, func(s *entities.JobStatus) {
			s.SetProgress(100)
			s.Finish()
		})
	}
}

func (r *DownloadRunner) fail(log *zap.Logger, id, msg string) {
	if msg == "" {
		msg = fallbackErrorMessage
	}
	r.apply(log, id, func(s *entities.JobStatus) { s.Fail(msg) })
}

// apply ignores writes to terminal records, so a late error after a
// finished event leaves the job finished.
func (r *DownloadRunner) apply(log *zap.Logger, id string, mutate func(*entities.JobStatus)) {
	err := r.jobs.Update(id, mutate)
	switch {
	case err == nil, errors.Is(err, repositories.ErrJobTerminal):
	default:
		log.Warn("job update dropped", zap.Error(err))
	}
}

func (r *DownloadRunner) mirrorArtifact(ctx context.Context, log *zap.Logger, path string) {
	url, err := r.mirror.Upload(ctx, path)
	if err != nil {
		log.Warn("artifact mirror failed", zap.String("path", path), zap.Error(err))
		return
	}
	log.Info("artifact mirrored", zap.String("path", path), zap.String("url", url))
}
