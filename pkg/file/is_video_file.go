package file

import (
	"path/filepath"
)

// MediaExtensions is the allow-list of container formats shown as artifacts.
var MediaExtensions = []string{".mp4", ".webm", ".mkv"}

// IsMediaFile matches the extension exactly, so "clip.MP4" is not listed.
func IsMediaFile(filePath string) bool {
	ext := filepath.Ext(filePath)
	for _, v := range MediaExtensions {
		if ext == v {
			return true
		}
	}
	return false
}
