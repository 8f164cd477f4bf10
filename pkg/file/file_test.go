package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMediaFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"clip.mp4", true},
		{"clip.webm", true},
		{"clip.mkv", true},
		{"clip.mp3", false},
		{"clip.mp4.part", false},
		{"clip.MP4", false},
		{"notes.txt", false},
		{"mp4", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsMediaFile(tt.name), tt.name)
	}
}

func TestIsPartialFile(t *testing.T) {
	assert.True(t, IsPartialFile("clip.mp4.part"))
	assert.True(t, IsPartialFile("clip.mp4.ytdl"))
	assert.True(t, IsPartialFile("clip.PART"))
	assert.False(t, IsPartialFile("clip.mp4"))
}

func TestStem(t *testing.T) {
	assert.Equal(t, "Some Title", Stem("Some Title.webm"))
	assert.Equal(t, "a.b", Stem("dir/a.b.mkv"))
	assert.Equal(t, "noext", Stem("noext"))
}

func TestFormatSizeMB(t *testing.T) {
	assert.Equal(t, "0.00 MB", FormatSizeMB(0))
	assert.Equal(t, "1.00 MB", FormatSizeMB(1024*1024))
	assert.Equal(t, "1.50 MB", FormatSizeMB(1536*1024))
}

func TestCalculateFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.bin")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	sum, err := CalculateFileHash(path)
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", sum)

	_, err = CalculateFileHash(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
