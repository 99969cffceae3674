package ingestion

import "errors"

var (
	// ErrResolverRequired is returned when a resolver is not provided.
	ErrResolverRequired = errors.New("resolver required")

	// ErrPipelineReleased is returned when a released pipeline is used.
	ErrPipelineReleased = errors.New("pipeline released")
)
