package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"media-fetcher/internal/domain/dto"
	"media-fetcher/internal/domain/entities"
	"media-fetcher/internal/usecases"
	consts "media-fetcher/pkg/constants"
	"media-fetcher/pkg/errors"
)

type DownloadHandler struct {
	downloadService usecases.DownloadService
	log             *zap.Logger
}

func NewDownloadHandler(downloadService usecases.DownloadService, log *zap.Logger) *DownloadHandler {
	return &DownloadHandler{
		downloadService: downloadService,
		log:             log.Named("http"),
	}
}

// StartDownload
//
// @Summary      Start Download
// @Description  Probes the URL for metadata and schedules a background download
// @Tags         Download
// @Produce      json
// @Param        url  query     string  true  "Media URL"
// @Success      200  {object}  dto.DownloadResponse
// @Failure      400  {object}  dto.ErrorResponse "Unable to get video info"
// @Failure      503  {object}  dto.ErrorResponse "Server is shutting down"
// @Router       /download [post]
func (h *DownloadHandler) StartDownload(c *fiber.Ctx) error {
	req := &dto.DownloadRequestDTO{}
	if err := c.QueryParser(req); err != nil {
		return errors.HandleError(c, h.log, errors.ErrInvalidURL(err))
	}

	resp, err := h.downloadService.StartDownload(c.UserContext(), req)
	if err != nil {
		return errors.HandleError(c, h.log, err)
	}
	return c.JSON(resp)
}

// Status
//
// @Summary      Get Download Status
// @Description  Returns progress and state of a job, or not_found for unknown ids
// @Tags         Download
// @Produce      json
// @Param        video_id  path      string  true  "Job ID"
// @Success      200       {object}  entities.JobStatus
// @Router       /status/{video_id} [get]
func (h *DownloadHandler) Status(c *fiber.Ctx) error {
	st := h.downloadService.GetStatus(c.Params("video_id"))
	if st.State == entities.StateNotFound {
		return c.JSON(dto.StatusNotFoundResponse{Status: consts.StatusNotFound})
	}
	return c.JSON(st)
}

// Index renders the artifact list and the submit form.
func (h *DownloadHandler) Index(c *fiber.Ctx) error {
	items, err := h.downloadService.ListArtifacts()
	if err != nil {
		return errors.HandleError(c, h.log, err)
	}
	return c.Render("index", fiber.Map{
		"Artifacts": items,
	})
}

// Health
//
// @Summary      Health Check
// @Tags         System
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *DownloadHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: consts.StatusOK})
}
