package dto

import "media-fetcher/internal/domain/entities"

type DownloadRequestDTO struct {
	URL string `json:"url" query:"url"`
}

type DownloadResponse struct {
	VideoID string              `json:"video_id"`
	Info    *entities.VideoInfo `json:"info"`
}

type StatusNotFoundResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
