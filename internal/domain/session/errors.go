package session

import "errors"

// Sentinel kinds for session errors.
var (
	ErrNameRequired = errors.New("player name required")
	ErrNotCompleted = errors.New("session not completed")
)
