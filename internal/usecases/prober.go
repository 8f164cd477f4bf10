package usecases

import (
	"context"

	"go.uber.org/zap"

	"media-fetcher/internal/domain/entities"
	"media-fetcher/internal/domain/repositories"
)

// MetadataProber asks the extractor for preview metadata without downloading.
type MetadataProber struct {
	extractor repositories.MediaExtractor
	log       *zap.Logger
}

func NewMetadataProber(extractor repositories.MediaExtractor, log *zap.Logger) *MetadataProber {
	return &MetadataProber{extractor: extractor, log: log.Named("prober")}
}

// Probe returns nil when the URL cannot be resolved for any reason. Callers
// must treat nil as "cannot proceed".
func (p *MetadataProber) Probe(ctx context.Context, url string) *entities.VideoInfo {
	info, err := p.extractor.Probe(ctx, url)
	if err != nil {
		p.log.Info("probe failed", zap.String("url", url), zap.Error(err))
		return nil
	}
	return info
}
