package dto

// ArtifactDTO is what the index page renders for one stored media file.
type ArtifactDTO struct {
	Title       string `json:"title"`
	Path        string `json:"path"`
	SizeDisplay string `json:"size"`
	URL         string `json:"url"` // link under the /downloads mount
}
