package usecases

import (
	"context"

	"go.uber.org/zap"

	"media-fetcher/internal/domain/dto"
	"media-fetcher/internal/domain/entities"
	"media-fetcher/internal/domain/mapper"
	"media-fetcher/internal/domain/repositories"
	"media-fetcher/internal/infrastructure/queue"
	"media-fetcher/pkg/errors"
	"media-fetcher/pkg/helper"
)

type DownloadService interface {
	StartDownload(ctx context.Context, req *dto.DownloadRequestDTO) (*dto.DownloadResponse, error)
	GetStatus(id string) entities.JobStatus
	ListArtifacts() ([]dto.ArtifactDTO, error)
}

// JobSubmitter hands accepted jobs to background workers. onAccept runs only
// when the job is taken, before any worker sees it.
type JobSubmitter interface {
	Submit(job queue.DownloadJob, onAccept func()) error
}

type downloadService struct {
	prober  *MetadataProber
	jobs    repositories.JobRepository
	submit  JobSubmitter
	storage repositories.ArtifactStorage
	log     *zap.Logger
}

func NewDownloadService(
	prober *MetadataProber,
	jobs repositories.JobRepository,
	submit JobSubmitter,
	storage repositories.ArtifactStorage,
	log *zap.Logger,
) DownloadService {
	return &downloadService{
		prober:  prober,
		jobs:    jobs,
		submit:  submit,
		storage: storage,
		log:     log.Named("download"),
	}
}

// StartDownload probes the URL, registers the job and schedules it. It
// returns as soon as the job is queued; the registry is only touched once the
// pool has taken the job.
func (s *downloadService) StartDownload(ctx context.Context, req *dto.DownloadRequestDTO) (*dto.DownloadResponse, error) {
	url := helper.NormalizeURL(req.URL)
	if url == "" {
		return nil, errors.ErrInvalidURL(nil)
	}

	info := s.prober.Probe(ctx, url)
	if info == nil {
		return nil, errors.ErrProbeFailed(nil)
	}

	id := helper.JobID(url)
	job := queue.DownloadJob{ID: id, URL: url}
	if err := s.submit.Submit(job, func() { s.jobs.Create(id) }); err != nil {
		s.log.Warn("download rejected", zap.String("job_id", id), zap.Error(err))
		return nil, errors.ErrUnavailable(err)
	}

	s.log.Info("download accepted", zap.String("job_id", id), zap.String("title", info.Title))
	return &dto.DownloadResponse{VideoID: id, Info: info}, nil
}

func (s *downloadService) GetStatus(id string) entities.JobStatus {
	return s.jobs.Get(id)
}

func (s *downloadService) ListArtifacts() ([]dto.ArtifactDTO, error) {
	items, err := s.storage.List()
	if err != nil {
		return nil, errors.ErrInternal(err)
	}
	return mapper.ArtifactsToDTO(items), nil
}
