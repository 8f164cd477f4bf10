package mapper

import (
	"net/url"

	"media-fetcher/internal/domain/dto"
	"media-fetcher/internal/domain/entities"
	"media-fetcher/pkg/file"
)

// DownloadsMount is the URL prefix the storage directory is served under.
const DownloadsMount = "/downloads"

func ArtifactToDTO(a entities.Artifact) dto.ArtifactDTO {
	return dto.ArtifactDTO{
		Title:       file.Stem(a.Name),
		Path:        a.Path,
		SizeDisplay: file.FormatSizeMB(a.Size),
		URL:         DownloadsMount + "/" + url.PathEscape(a.Name),
	}
}

func ArtifactsToDTO(items []entities.Artifact) []dto.ArtifactDTO {
	out := make([]dto.ArtifactDTO, 0, len(items))
	for _, a := range items {
		out = append(out, ArtifactToDTO(a))
	}
	return out
}
