package repositories

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"media-fetcher/internal/domain/entities"
	"media-fetcher/internal/domain/repositories"
)

func TestInMemoryJobRepository_CreateAndGet(t *testing.T) {
	repo := NewInMemoryJobRepository()
	repo.Create("abc")

	got := repo.Get("abc")
	assert.Equal(t, "abc", got.ID)
	assert.Equal(t, entities.StateDownloading, got.State)
	assert.Zero(t, got.Progress)
	assert.Empty(t, got.Error)
}

func TestInMemoryJobRepository_GetUnknown(t *testing.T) {
	repo := NewInMemoryJobRepository()

	got := repo.Get("missing")
	assert.Equal(t, entities.StateNotFound, got.State)
	assert.Zero(t, repo.Len(), "lookups must not create records")
}

func TestInMemoryJobRepository_UpdateUnknown(t *testing.T) {
	repo := NewInMemoryJobRepository()

	err := repo.Update("missing", func(s *entities.JobStatus) { s.SetProgress(10) })
	assert.ErrorIs(t, err, repositories.ErrJobNotFound)
}

func TestInMemoryJobRepository_GetReturnsCopy(t *testing.T) {
	repo := NewInMemoryJobRepository()
	repo.Create("abc")

	got := repo.Get("abc")
	got.Progress = 99

	assert.Zero(t, repo.Get("abc").Progress)
}

func TestInMemoryJobRepository_TerminalIsFinal(t *testing.T) {
	tests := []struct {
		name      string
		terminate func(*entities.JobStatus)
		want      entities.JobState
	}{
		{"finished", func(s *entities.JobStatus) { s.Finish() }, entities.StateFinished},
		{"error", func(s *entities.JobStatus) { s.Fail("HTTP Error 403") }, entities.StateError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewInMemoryJobRepository()
			repo.Create("abc")
			require.NoError(t, repo.Update("abc", func(s *entities.JobStatus) { s.SetProgress(42) }))
			require.NoError(t, repo.Update("abc", tt.terminate))

			before := repo.Get("abc")
			err := repo.Update("abc", func(s *entities.JobStatus) { s.SetProgress(100) })
			assert.ErrorIs(t, err, repositories.ErrJobTerminal)
			assert.Equal(t, before, repo.Get("abc"))
			assert.Equal(t, tt.want, before.State)
		})
	}
}

func TestInMemoryJobRepository_CreateOverwrites(t *testing.T) {
	repo := NewInMemoryJobRepository()
	repo.Create("abc")
	require.NoError(t, repo.Update("abc", func(s *entities.JobStatus) { s.Fail("boom") }))

	repo.Create("abc")

	got := repo.Get("abc")
	assert.Equal(t, entities.StateDownloading, got.State)
	assert.Empty(t, got.Error)
}

func TestInMemoryJobRepository_CreateWhileEarlierRunActive(t *testing.T) {
	repo := NewInMemoryJobRepository()
	repo.Create("abc")
	require.NoError(t, repo.Update("abc", func(s *entities.JobStatus) { s.Progress = 60 }))

	repo.Create("abc")
	assert.Zero(t, repo.Get("abc").Progress)

	// the earlier run keeps writing to the replacement
	require.NoError(t, repo.Update("abc", func(s *entities.JobStatus) { s.Progress = 70 }))
	require.NoError(t, repo.Update("abc", func(s *entities.JobStatus) { s.Finish() }))

	// the later run is now locked out
	assert.ErrorIs(t, repo.Update("abc", func(s *entities.JobStatus) { s.Progress = 5 }), repositories.ErrJobTerminal)
	assert.Equal(t, entities.StateFinished, repo.Get("abc").State)
}

func TestInMemoryJobRepository_Concurrent(t *testing.T) {
	repo := NewInMemoryJobRepository()
	const jobs = 20
	const updates = 100

	for i := 0; i < jobs; i++ {
		repo.Create(fmt.Sprintf("job-%d", i))
	}

	var wg sync.WaitGroup
	for i := 0; i < jobs; i++ {
		id := fmt.Sprintf("job-%d", i)
		wg.Add(2)
		go func() {
			defer wg.Done()
			for p := 1; p <= updates; p++ {
				_ = repo.Update(id, func(s *entities.JobStatus) { s.SetProgress(float64(p)) })
			}
		}()
		go func() {
			defer wg.Done()
			for p := 0; p < updates; p++ {
				st := repo.Get(id)
				assert.Equal(t, id, st.ID)
			}
		}()
	}
	wg.Wait()

	for i := 0; i < jobs; i++ {
		assert.Equal(t, float64(updates), repo.Get(fmt.Sprintf("job-%d", i)).Progress)
	}
	assert.Equal(t, jobs, repo.Len())
}
