package entities

// VideoInfo is preview metadata returned by a probe. Every field except Title
// may be absent.
type VideoInfo struct {
	Title       string   `json:"title"`
	Duration    *float64 `json:"duration"`    // seconds
	Uploader    *string  `json:"uploader"`
	Description *string  `json:"description"`
}

// Artifact is a completed media file found in the storage directory.
type Artifact struct {
	Name string // file name with extension
	Path string
	Size int64 // bytes
}

// ProgressStage mirrors the collaborator's per-file download stages that the
// runner acts on.
type ProgressStage string

const (
	ProgressDownloading ProgressStage = "downloading"
	ProgressFinished    ProgressStage = "finished"
)

// ProgressEvent is one progress callback from the download collaborator.
type ProgressEvent struct {
	Stage    ProgressStage
	Percent  float64
	Filename string
}
