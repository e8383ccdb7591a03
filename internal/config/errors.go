package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates an unusable API base URL or a
	// negative request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidBatchConfigs indicates a batch size outside 1..MaxResults.
	ErrInvalidBatchConfigs = errors.New("invalid batch configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive shutdown timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
