package services

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyExists     = errors.New("record already exists and replacement is not allowed")
	ErrNotPresent        = errors.New("record not present and insertion is not allowed")
	ErrLookupNotFound    = errors.New("title not found by enrichment lookup")
	ErrLookupFailed      = errors.New("enrichment lookup failed")
	ErrSnapshotsDisabled = errors.New("snapshot storage is not configured")
)

// ValidationError reports a rejected request parameter.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
