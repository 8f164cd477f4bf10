package helper

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// NormalizeURL trims surrounding whitespace. Anything else is left to the
// extractor to judge.
func NormalizeURL(raw string) string {
	return strings.TrimSpace(raw)
}

// JobID derives a stable, collision-resistant id from a source URL (UUIDv5 in
// the URL namespace). The same URL always maps to the same id.
func JobID(rawURL string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(NormalizeURL(rawURL))).String()
}

func GetMimeTypeFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	case ".mkv":
		return "video/x-matroska"
	default:
		return "application/octet-stream"
	}
}
