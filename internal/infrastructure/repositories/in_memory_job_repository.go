package repositories

import (
	"sync"

	"media-fetcher/internal/domain/entities"
	"media-fetcher/internal/domain/repositories"
)

type jobEntry struct {
	mu     sync.Mutex
	status entities.JobStatus
}

// InMemoryJobRepository keeps job records for the lifetime of the process.
// The map lock is held only for lookup and insert; mutations take the
// per-job lock so updates to different jobs never contend.
type InMemoryJobRepository struct {
	mu   sync.RWMutex
	data map[string]*jobEntry
}

func NewInMemoryJobRepository() *InMemoryJobRepository {
	return &InMemoryJobRepository{
		data: make(map[string]*jobEntry),
	}
}

var _ repositories.JobRepository = (*InMemoryJobRepository)(nil)

// Create replaces any record under id. Records are keyed by id only, so a run
// still going for the same URL keeps updating the new record; once either run
// finishes it, the other's updates fail with ErrJobTerminal.
func (r *InMemoryJobRepository) Create(id string) {
	entry := &jobEntry{status: entities.NewJobStatus(id)}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[id] = entry
}

func (r *InMemoryJobRepository) Update(id string, mutate func(*entities.JobStatus)) error {
	entry, ok := r.lookup(id)
	if !ok {
		return repositories.ErrJobNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.status.State.IsTerminal() {
		return repositories.ErrJobTerminal
	}
	mutate(&entry.status)
	// ID is owned by the repository
	entry.status.ID = id
	return nil
}

func (r *InMemoryJobRepository) Get(id string) entities.JobStatus {
	entry, ok := r.lookup(id)
	if !ok {
		return entities.NotFoundStatus(id)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.status
}

// Len reports how many jobs are tracked.
func (r *InMemoryJobRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}

func (r *InMemoryJobRepository) lookup(id string) (*jobEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.data[id]
	return entry, ok
}
