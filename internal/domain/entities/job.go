package entities

// JobState is the lifecycle state of a download job.
type JobState string

const (
	StateDownloading JobState = "downloading"
	StateFinished    JobState = "finished"
	StateError       JobState = "error"
	// StateNotFound is reported for unknown ids and never stored.
	StateNotFound JobState = "not_found"
)

// IsTerminal reports whether no further transitions may happen.
func (s JobState) IsTerminal() bool {
	return s == StateFinished || s == StateError
}

func (s JobState) String() string {
	return string(s)
}

// JobStatus is the live or final state of one download job.
type JobStatus struct {
	ID       string   `json:"-"`
	Progress float64  `json:"progress"`
	State    JobState `json:"status"`
	Error    string   `json:"error,omitempty"`
}

// NewJobStatus returns the record a job starts with when it is accepted.
func NewJobStatus(id string) JobStatus {
	return JobStatus{ID: id, State: StateDownloading, Progress: 0}
}

// NotFoundStatus is the synthetic record returned for unknown ids.
func NotFoundStatus(id string) JobStatus {
	return JobStatus{ID: id, State: StateNotFound}
}

// SetProgress records a progress value verbatim; the last reported value wins.
func (j *JobStatus) SetProgress(percent float64) {
	j.Progress = percent
}

func (j *JobStatus) Finish() {
	j.State = StateFinished
}

func (j *JobStatus) Fail(msg string) {
	j.State = StateError
	j.Error = msg
}
