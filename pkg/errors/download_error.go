package errors

import "fmt"

// DownloadError carries a stable code that maps to an HTTP status and a
// localized message. Err is the underlying cause and is only logged.
type DownloadError struct {
	Code    string
	Message string
	Err     error
}

func (e *DownloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

const (
	CodeProbeFailed = "probe_failed"
	CodeInvalidURL  = "invalid_url"
	CodeUnavailable = "unavailable"
	CodeInternal    = "internal_error"
)

var (
	ErrProbeFailed = func(err error) *DownloadError {
		return &DownloadError{Code: CodeProbeFailed, Message: "Unable to get video info", Err: err}
	}
	ErrInvalidURL = func(err error) *DownloadError {
		return &DownloadError{Code: CodeInvalidURL, Message: "A media URL is required", Err: err}
	}
	ErrUnavailable = func(err error) *DownloadError {
		return &DownloadError{Code: CodeUnavailable, Message: "Server is shutting down, try again later", Err: err}
	}
	ErrInternal = func(err error) *DownloadError {
		return &DownloadError{Code: CodeInternal, Message: "Internal server error", Err: err}
	}
)
