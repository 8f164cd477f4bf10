package file

import (
	"fmt"
	"path/filepath"
	"strings"
)

func Stem(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FormatSizeMB renders a byte count as megabytes with two decimals.
func FormatSizeMB(size int64) string {
	return fmt.Sprintf("%.2f MB", float64(size)/(1024*1024))
}
