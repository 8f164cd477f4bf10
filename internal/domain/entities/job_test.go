package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobState_IsTerminal(t *testing.T) {
	assert.False(t, StateDownloading.IsTerminal())
	assert.False(t, StateNotFound.IsTerminal())
	assert.True(t, StateFinished.IsTerminal())
	assert.True(t, StateError.IsTerminal())
}

func TestNewJobStatus(t *testing.T) {
	job := NewJobStatus("abc")
	assert.Equal(t, "abc", job.ID)
	assert.Equal(t, StateDownloading, job.State)
	assert.Zero(t, job.Progress)
	assert.Empty(t, job.Error)
}

func TestJobStatus_JSON(t *testing.T) {
	job := NewJobStatus("abc")
	job.SetProgress(42.5)

	raw, err := json.Marshal(job)
	require.NoError(t, err)
	assert.JSONEq(t, `{"progress": 42.5, "status": "downloading"}`, string(raw))

	job.Fail("HTTP Error 403: Forbidden")
	raw, err = json.Marshal(job)
	require.NoError(t, err)
	assert.JSONEq(t, `{"progress": 42.5, "status": "error", "error": "HTTP Error 403: Forbidden"}`, string(raw))
}
