package api

import "errors"

var (
	ErrNotFound    = errors.New("no data published for this resource")
	ErrTimeout     = errors.New("server timed out waiting for data")
	ErrRateLimited = errors.New("rate limited by server")
	ErrRejected    = errors.New("payload rejected by server")
)
