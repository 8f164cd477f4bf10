package extractor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"go.uber.org/zap"

	"media-fetcher/internal/domain/entities"
	"media-fetcher/internal/domain/repositories"
)

// progressInterval throttles collaborator progress callbacks.
const progressInterval = 500 * time.Millisecond

var ErrNoMetadata = errors.New("extractor returned no metadata")

// YTDLP drives the yt-dlp binary through go-ytdlp.
type YTDLP struct {
	format         string
	outputTemplate string
	probeTimeout   time.Duration
	log            *zap.Logger
}

var _ repositories.MediaExtractor = (*YTDLP)(nil)

func NewYTDLP(format, outputTemplate string, probeTimeout time.Duration, log *zap.Logger) *YTDLP {
	return &YTDLP{
		format:         format,
		outputTemplate: outputTemplate,
		probeTimeout:   probeTimeout,
		log:            log.Named("ytdlp"),
	}
}

// Install downloads a yt-dlp binary into the user cache when none is usable.
func (y *YTDLP) Install(ctx context.Context) error {
	resolved, err := ytdlp.Install(ctx, nil)
	if err != nil {
		return fmt.Errorf("install yt-dlp: %w", err)
	}
	y.log.Info("yt-dlp ready", zap.String("path", resolved.Executable), zap.String("version", resolved.Version))
	return nil
}

func (y *YTDLP) Probe(ctx context.Context, url string) (*entities.VideoInfo, error) {
	if y.probeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, y.probeTimeout)
		defer cancel()
	}

	result, err := ytdlp.New().
		SkipDownload().
		FlatPlaylist().
		DumpSingleJSON().
		Run(ctx, url)
	if err != nil {
		return nil, err
	}

	// -J prints one document; for a playlist that is the playlist itself
	infos, err := result.GetExtractedInfo()
	if err != nil {
		return nil, fmt.Errorf("parse metadata: %w", err)
	}
	if len(infos) == 0 || infos[0] == nil {
		return nil, ErrNoMetadata
	}
	return toVideoInfo(infos[0]), nil
}

func (y *YTDLP) Download(ctx context.Context, url, destDir string, onProgress repositories.ProgressFunc) (string, error) {
	var written string

	dl := ytdlp.New().
		NoPlaylist().
		Format(y.format).
		Output(filepath.Join(destDir, y.outputTemplate))

	dl.ProgressFunc(progressInterval, func(update ytdlp.ProgressUpdate) {
		ev, ok := toProgressEvent(update)
		if !ok {
			return
		}
		if ev.Stage == entities.ProgressFinished && ev.Filename != "" {
			written = ev.Filename
		}
		if onProgress != nil {
			onProgress(ev)
		}
	})

	result, err := dl.Run(ctx, url)
	if err != nil {
		return "", err
	}

	if written == "" && result != nil {
		if infos, err := result.GetExtractedInfo(); err == nil && len(infos) > 0 && infos[0].Filename != nil {
			written = *infos[0].Filename
		}
	}
	return written, nil
}

func toVideoInfo(info *ytdlp.ExtractedInfo) *entities.VideoInfo {
	v := &entities.VideoInfo{
		Duration:    info.Duration,
		Uploader:    info.Uploader,
		Description: info.Description,
	}
	if info.Title != nil {
		v.Title = *info.Title
	}
	return v
}

// toProgressEvent keeps the downloading and finished stages; the rest are
// dropped.
func toProgressEvent(update ytdlp.ProgressUpdate) (entities.ProgressEvent, bool) {
	switch update.Status {
	case ytdlp.ProgressStatusDownloading:
		return entities.ProgressEvent{
			Stage:    entities.ProgressDownloading,
			Percent:  update.Percent(),
			Filename: update.Filename,
		}, true
	case ytdlp.ProgressStatusFinished:
		return entities.ProgressEvent{
			Stage:    entities.ProgressFinished,
			Percent:  100,
			Filename: update.Filename,
		}, true
	default:
		return entities.ProgressEvent{}, false
	}
}
