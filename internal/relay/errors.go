package relay

import "errors"

var (
	// ErrNotFound means no data exists for the requested scope or key, or the
	// published match snapshot was empty.
	ErrNotFound = errors.New("data not found")

	// ErrTimeout means the configured wait deadline passed before data arrived.
	ErrTimeout = errors.New("timed out waiting for data")
)
