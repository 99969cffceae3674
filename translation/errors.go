package translation

import "errors"

var (
	// ErrSourceRequired indicates a resolver was created without a source.
	ErrSourceRequired = errors.New("translation source is required")

	// ErrNoStrategies indicates an empty strategy list.
	ErrNoStrategies = errors.New("at least one strategy is required")
)
