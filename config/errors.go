package config

import "errors"

var (
	ErrInvalid       = errors.New("config: invalid value")
	ErrUnknownKey    = errors.New("config: unknown key")
	ErrNoFoundryRoot = errors.New("config: foundry_root is required to rebuild")
)
