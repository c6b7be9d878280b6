package merge

import "go.uber.org/zap"

type Option func(*Engine)

// WithLogger sets engine logger
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithAspectName overrides the Merge<Name> aspect naming convention
func WithAspectName(name string) Option {
	return func(e *Engine) {
		e.aspectName = name
	}
}
