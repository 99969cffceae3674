package source

import "log/slog"

type options struct {
	logger    *slog.Logger
	cacheSize int64
}

func defaultOptions() *options {
	return &options{
		logger:    slog.Default(),
		cacheSize: 4096,
	}
}

// Option configures a reader or store.
type Option func(*options) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
		return nil
	}
}

// WithCacheSize bounds the number of parsed translation documents kept in
// memory. Default is 4096.
func WithCacheSize(size int64) Option {
	return func(o *options) error {
		if size < 1 {
			return ErrInvalidCacheSize
		}
		o.cacheSize = size
		return nil
	}
}

func applyOptions(opts []Option) (*options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}
