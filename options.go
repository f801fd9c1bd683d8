package webgl

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/gogpu/webgl/command"
)

// ContextOption configures a RenderingContext during creation.
//
// Example:
//
//	ch := command.NewChannel()
//	ctx := webgl.NewRenderingContext(ch, webgl.WithLogger(logger))
type ContextOption func(*contextOptions)

type contextOptions struct {
	logger       *slog.Logger
	presentation command.PresentationSender
	id           uuid.UUID
}

// WithLogger sets the logger of the context. Without it the context logs
// through the package logger installed by SetLogger.
func WithLogger(l *slog.Logger) ContextOption {
	return func(o *contextOptions) {
		o.logger = l
	}
}

// WithPresentationSender routes presentation detach notifications to ps
// instead of the command transport.
func WithPresentationSender(ps command.PresentationSender) ContextOption {
	return func(o *contextOptions) {
		o.presentation = ps
	}
}

// WithContextID fixes the context identity, which otherwise is a random
// UUID. It appears as the "context" attribute of every log record.
func WithContextID(id uuid.UUID) ContextOption {
	return func(o *contextOptions) {
		o.id = id
	}
}
