package file

import (
	"path/filepath"
	"strings"
)

// PartialExtensions are leftovers yt-dlp writes while a download is running.
var PartialExtensions = []string{".part", ".ytdl"}

func IsPartialFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, p := range PartialExtensions {
		if ext == p {
			return true
		}
	}
	return false
}
