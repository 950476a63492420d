package config

import "errors"

// Validation errors returned when configuration groups are incomplete or
// invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, missing address or a negative request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidDownloadConfigs indicates invalid download settings
	// (for example, empty download directory).
	ErrInvalidDownloadConfigs = errors.New("invalid download configuration")
)
