// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package executor

import "log/slog"

// Option configures an executor during creation.
type Option func(*options)

type options struct {
	maxTextures int
	logger      *slog.Logger
}

// WithMaxTextures caps the number of live textures. Allocations beyond the
// cap are answered with a zero id. Zero or a negative value means no cap.
func WithMaxTextures(n int) Option {
	return func(o *options) {
		o.maxTextures = max(n, 0)
	}
}

// WithLogger sets the executor's logger instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return slogger()
}
