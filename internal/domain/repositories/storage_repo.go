package repositories

import (
	"context"

	"media-fetcher/internal/domain/entities"
)

// ArtifactStorage lists completed media in the storage directory.
type ArtifactStorage interface {
	List() ([]entities.Artifact, error)
	BasePath() string
}

// ArtifactMirror copies a finished artifact to secondary storage.
type ArtifactMirror interface {
	Upload(ctx context.Context, localPath string) (string, error)
}

// ProgressFunc receives collaborator progress in emission order.
type ProgressFunc func(entities.ProgressEvent)

// MediaExtractor is the external extraction/download engine.
type MediaExtractor interface {
	// Probe fetches metadata without downloading any media.
	Probe(ctx context.Context, url string) (*entities.VideoInfo, error)
	// Download saves the media into destDir and returns the written path when
	// the collaborator reports it.
	Download(ctx context.Context, url, destDir string, onProgress ProgressFunc) (string, error)
}
