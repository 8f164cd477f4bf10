package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"media-fetcher/internal/domain/dto"
	"media-fetcher/internal/domain/entities"
)

type apiClient struct {
	base    string
	timeout time.Duration
}

func newAPIClient(base string, timeout time.Duration) *apiClient {
	return &apiClient{base: strings.TrimRight(base, "/"), timeout: timeout}
}

func (c *apiClient) Submit(mediaURL string) (*dto.DownloadResponse, error) {
	code, body, errs := fiber.Post(c.base + "/download?url=" + url.QueryEscape(mediaURL)).
		Timeout(c.timeout).
		Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("submit: %w", errs[0])
	}
	if code != fiber.StatusOK {
		var e dto.ErrorResponse
		_ = json.Unmarshal(body, &e)
		return nil, fmt.Errorf("submit: HTTP %d: %s", code, e.Error)
	}

	var resp dto.DownloadResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode submit response: %w", err)
	}
	return &resp, nil
}

func (c *apiClient) Status(id string) (entities.JobStatus, error) {
	code, body, errs := fiber.Get(c.base + "/status/" + url.PathEscape(id)).
		Timeout(c.timeout).
		Bytes()
	if len(errs) > 0 {
		return entities.JobStatus{}, fmt.Errorf("status: %w", errs[0])
	}
	if code != fiber.StatusOK {
		return entities.JobStatus{}, fmt.Errorf("status: HTTP %d", code)
	}

	st := entities.JobStatus{ID: id}
	if err := json.Unmarshal(body, &st); err != nil {
		return entities.JobStatus{}, fmt.Errorf("decode status: %w", err)
	}
	return st, nil
}

// Wait polls until the job is terminal or unknown, calling onUpdate after
// every poll.
func (c *apiClient) Wait(ctx context.Context, id string, every time.Duration, onUpdate func(entities.JobStatus)) (entities.JobStatus, error) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		st, err := c.Status(id)
		if err != nil {
			return st, err
		}
		if onUpdate != nil {
			onUpdate(st)
		}
		if st.State.IsTerminal() || st.State == entities.StateNotFound {
			return st, nil
		}

		select {
		case <-ctx.Done():
			return st, ctx.Err()
		case <-ticker.C:
		}
	}
}
