package constants

const (
	StatusOK       = "ok"
	StatusNotFound = "not_found"
)
