package render

import "errors"

var (
	ErrNoWriter     = errors.New("render: writer is required")
	ErrInvalidWidth = errors.New("render: width must be positive")
)
