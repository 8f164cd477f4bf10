package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"media-fetcher/internal/domain/entities"
	"media-fetcher/internal/domain/repositories"
	"media-fetcher/pkg/file"
)

// LocalStorage is the download directory shared by the runner, the lister
// and the static /downloads mount.
type LocalStorage struct {
	Base string
}

func NewLocalStorage(base string) *LocalStorage {
	return &LocalStorage{Base: base}
}

var _ repositories.ArtifactStorage = (*LocalStorage)(nil)

func (l *LocalStorage) BasePath() string {
	return l.Base
}

// List returns completed media files in directory order. Partial downloads
// and other files are skipped.
func (l *LocalStorage) List() ([]entities.Artifact, error) {
	entries, err := os.ReadDir(l.Base)
	if err != nil {
		return nil, fmt.Errorf("read download dir: %w", err)
	}

	artifacts := make([]entities.Artifact, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !file.IsMediaFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		artifacts = append(artifacts, entities.Artifact{
			Name: entry.Name(),
			Path: filepath.Join(l.Base, entry.Name()),
			Size: info.Size(),
		})
	}
	return artifacts, nil
}

// StalePartials returns partial download files last modified before cutoff.
func (l *LocalStorage) StalePartials(cutoff time.Time) ([]string, error) {
	entries, err := os.ReadDir(l.Base)
	if err != nil {
		return nil, fmt.Errorf("read download dir: %w", err)
	}

	var stale []string
	for _, entry := range entries {
		if entry.IsDir() || !file.IsPartialFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			stale = append(stale, filepath.Join(l.Base, entry.Name()))
		}
	}
	return stale, nil
}

func (l *LocalStorage) Delete(path string) error {
	return os.Remove(path)
}
