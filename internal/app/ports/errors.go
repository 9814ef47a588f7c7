package ports

import "errors"

// Shared repository sentinels. Adapters translate backend-specific failures
// into these so usecases and the HTTP layer can match with errors.Is.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)
