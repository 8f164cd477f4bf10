package usecases

import (
	"context"
	"errors"
	"sync"
	"time"

	"media-fetcher/internal/domain/entities"
	"media-fetcher/internal/domain/repositories"
	"media-fetcher/internal/infrastructure/queue"
)

type fakeExtractor struct {
	info     *entities.VideoInfo
	probeErr error

	events   []entities.ProgressEvent
	gate     chan struct{} // when set, Download blocks until closed
	path     string
	dlErr    error
	dlPanic  any
	started  chan struct{}
	mu       sync.Mutex
	dlCalls  int
	lastDest string
}

func (f *fakeExtractor) Probe(_ context.Context, _ string) (*entities.VideoInfo, error) {
	if f.probeErr != nil {
		return nil, f.probeErr
	}
	return f.info, nil
}

func (f *fakeExtractor) Download(_ context.Context, _ string, destDir string, onProgress repositories.ProgressFunc) (string, error) {
	f.mu.Lock()
	f.dlCalls++
	f.lastDest = destDir
	f.mu.Unlock()

	if f.started != nil {
		close(f.started)
	}
	if f.gate != nil {
		<-f.gate
	}
	for _, ev := range f.events {
		onProgress(ev)
	}
	if f.dlPanic != nil {
		panic(f.dlPanic)
	}
	return f.path, f.dlErr
}

type fakeMirror struct {
	mu       sync.Mutex
	uploaded []string
	err      error
}

func (m *fakeMirror) Upload(_ context.Context, p string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	m.uploaded = append(m.uploaded, p)
	return "https://bucket.example/" + p, nil
}

type recordingJobs struct {
	repositories.JobRepository
	mu      sync.Mutex
	history []entities.JobStatus
}

func (r *recordingJobs) Update(id string, mutate func(*entities.JobStatus)) error {
	err := r.JobRepository.Update(id, mutate)
	if err == nil {
		r.mu.Lock()
		r.history = append(r.history, r.JobRepository.Get(id))
		r.mu.Unlock()
	}
	return err
}

type rejectingSubmitter struct{}

func (rejectingSubmitter) Submit(queue.DownloadJob, func()) error { return queue.ErrPoolStopped }

type syncSubmitter struct{ runner queue.Runner }

func (s syncSubmitter) Submit(job queue.DownloadJob, onAccept func()) error {
	if onAccept != nil {
		onAccept()
	}
	s.runner.Run(context.Background(), job)
	return nil
}

// gatedByURL holds each Download until the gate for its URL is closed, then
// reports finished.
type gatedByURL struct {
	info    *entities.VideoInfo
	gates   map[string]chan struct{}
	started chan string
}

func (g *gatedByURL) Probe(context.Context, string) (*entities.VideoInfo, error) {
	return g.info, nil
}

func (g *gatedByURL) Download(_ context.Context, url, _ string, onProgress repositories.ProgressFunc) (string, error) {
	g.started <- url
	if gate := g.gates[url]; gate != nil {
		<-gate
	}
	onProgress(entities.ProgressEvent{Stage: entities.ProgressFinished})
	return "", nil
}

type fakePartialStore struct {
	stale   []string
	listErr error
	failOn  string
	deleted []string
	cutoff  time.Time
}

func (f *fakePartialStore) StalePartials(cutoff time.Time) ([]string, error) {
	f.cutoff = cutoff
	return f.stale, f.listErr
}

func (f *fakePartialStore) Delete(p string) error {
	if p == f.failOn {
		return errors.New("permission denied")
	}
	f.deleted = append(f.deleted, p)
	return nil
}
