package data

import (
	"encoding/json"

	"github.com/dgnsrekt/match-relay/internal/api/generated"
)

// Match is one opaque match record, e.g. team identifiers and score.
type Match = generated.Match

// MatchesPayload is the body shape for publishing and reading matches.
type MatchesPayload = generated.MatchesPayload

// StreamLinks is an opaque per-match stream payload, stored as received.
type StreamLinks = json.RawMessage
