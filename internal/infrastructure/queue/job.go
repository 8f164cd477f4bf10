package queue

// DownloadJob is one accepted download waiting for a worker.
type DownloadJob struct {
	ID  string
	URL string
}
