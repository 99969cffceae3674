package source

import "errors"

var (
	// ErrInvalidCacheSize indicates a non-positive document cache size.
	ErrInvalidCacheSize = errors.New("cache size must be positive")

	// ErrNotDocument indicates a translation file carries neither an
	// original nor a translated name.
	ErrNotDocument = errors.New("not a translation document")

	// ErrNotTable indicates a language file is not a JSON object.
	ErrNotTable = errors.New("not a language table")
)
