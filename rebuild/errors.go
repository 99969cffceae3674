package rebuild

import "errors"

var (
	// ErrInvalidMaxAttempts is returned when maxAttempts is <= 0
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrCorpusRequired is returned when no corpus is configured.
	ErrCorpusRequired = errors.New("corpus is required")

	// ErrHolderRequired is returned when no index holder is configured.
	ErrHolderRequired = errors.New("index holder is required")

	// ErrNoRepository is returned by Restore without a repository.
	ErrNoRepository = errors.New("no repository configured")

	// ErrChecksumMismatch indicates a restored snapshot differs from the
	// metadata it was committed with.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")

	// ErrInvalidConfig indicates a configuration value is out of range.
	ErrInvalidConfig = errors.New("invalid rebuild configuration")
)
