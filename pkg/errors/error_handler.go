package errors

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"media-fetcher/pkg/errors/i18n"
)

// HandleError writes err as {"error": "<message>"} with a status derived from
// its code. Causes are logged, never sent to the client.
func HandleError(c *fiber.Ctx, log *zap.Logger, err error) error {
	if err == nil {
		return nil
	}

	var de *DownloadError
	if stderrors.As(err, &de) {
		if de.Err != nil {
			log.Warn("request failed", zap.String("code", de.Code), zap.Error(de.Err))
		}
		return c.Status(StatusFor(de.Code)).JSON(fiber.Map{
			"error": i18n.TOr(de.Code, de.Message),
		})
	}

	log.Error("unexpected error", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": i18n.TOr(CodeInternal, "Internal server error"),
	})
}

func StatusFor(code string) int {
	switch code {
	case CodeProbeFailed, CodeInvalidURL:
		return fiber.StatusBadRequest
	case CodeUnavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
