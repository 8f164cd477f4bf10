package repositories

import (
	"errors"

	"media-fetcher/internal/domain/entities"
)

var (
	ErrJobNotFound = errors.New("job not found")
	ErrJobTerminal = errors.New("job already in terminal state")
)

// JobRepository owns every JobStatus record for the lifetime of the process.
type JobRepository interface {
	// Create stores a fresh downloading record, replacing any existing one.
	// Updates from an earlier run under the same id land on the new record.
	Create(id string)
	// Update mutates the record in place. It fails with ErrJobNotFound for
	// unknown ids and ErrJobTerminal once the record is finished or errored.
	Update(id string, mutate func(*entities.JobStatus)) error
	// Get returns a copy of the record, or a not_found status.
	Get(id string) entities.JobStatus
}
