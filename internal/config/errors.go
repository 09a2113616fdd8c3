package config

import "errors"

// Sentinels callers match with errors.Is. Load wraps the underlying
// koanf or validation failure around one of these.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrLoadConfig    = errors.New("configuration load failed")
)
