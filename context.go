package webgl

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/gogpu/webgl/command"
)

// Context is what a Texture needs from the rendering context that created
// it.
type Context interface {
	// SendCommand delivers cmd and reports a delivery failure.
	SendCommand(cmd command.Command) error

	// SendCommandIgnored delivers cmd on a best-effort basis. Failures are
	// logged and otherwise dropped.
	SendCommandIgnored(cmd command.Command)

	// AllocateTexture performs the synchronous id allocation round-trip.
	AllocateTexture() (command.TextureID, error)

	// BoundFramebuffer returns the currently bound framebuffer, or nil.
	BoundFramebuffer() Framebuffer

	// PresentationSender returns the channel for presentation detaches.
	PresentationSender() command.PresentationSender

	// Logger returns the logger to use for this context.
	Logger() *slog.Logger
}

// RenderingContext is the Context of one API surface. It owns the command
// transport and the framebuffer binding.
//
// A RenderingContext and everything created from it belong to a single
// goroutine.
type RenderingContext struct {
	id           uuid.UUID
	transport    command.Transport
	presentation command.PresentationSender

	// logger is scoped to the context. Without WithLogger it is derived
	// from base, the package logger it was built from, and rebuilt when
	// SetLogger replaces that.
	logger *slog.Logger
	base   *slog.Logger
	scoped bool

	framebuffer     *FramebufferObject
	nextFramebuffer uint32
}

// NewRenderingContext creates a context that sends its commands over
// transport. Presentation detaches go to the transport too, unless it does
// not implement command.PresentationSender or WithPresentationSender names
// another one.
func NewRenderingContext(transport command.Transport, opts ...ContextOption) *RenderingContext {
	var o contextOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == uuid.Nil {
		o.id = uuid.New()
	}
	if o.presentation == nil {
		if ps, ok := transport.(command.PresentationSender); ok {
			o.presentation = ps
		} else {
			o.presentation = detachSender{transport}
		}
	}

	c := &RenderingContext{
		id:           o.id,
		transport:    transport,
		presentation: o.presentation,
	}
	if o.logger != nil {
		c.logger = c.scope(o.logger)
		c.scoped = true
	}
	return c
}

func (c *RenderingContext) scope(l *slog.Logger) *slog.Logger {
	return l.With("context", c.id.String())
}

// ID returns the context identity.
func (c *RenderingContext) ID() uuid.UUID {
	return c.id
}

// SendCommand implements Context.
func (c *RenderingContext) SendCommand(cmd command.Command) error {
	if err := c.transport.Send(cmd); err != nil {
		return errors.Wrapf(err, "webgl: context %s", c.id)
	}
	c.Logger().Debug("command sent", "command", cmd.Type())
	return nil
}

// SendCommandIgnored implements Context.
func (c *RenderingContext) SendCommandIgnored(cmd command.Command) {
	if err := c.transport.Send(cmd); err != nil {
		c.Logger().Warn("command dropped", "command", cmd.Type(), "error", err)
		return
	}
	c.Logger().Debug("command sent", "command", cmd.Type())
}

// AllocateTexture implements Context.
func (c *RenderingContext) AllocateTexture() (command.TextureID, error) {
	return c.transport.AllocateTexture()
}

// BoundFramebuffer implements Context.
func (c *RenderingContext) BoundFramebuffer() Framebuffer {
	if c.framebuffer == nil {
		return nil
	}
	return c.framebuffer
}

// PresentationSender implements Context.
func (c *RenderingContext) PresentationSender() command.PresentationSender {
	return c.presentation
}

// Logger implements Context.
func (c *RenderingContext) Logger() *slog.Logger {
	if c.scoped {
		return c.logger
	}
	if base := Logger(); base != c.base || c.logger == nil {
		c.base = base
		c.logger = c.scope(base)
	}
	return c.logger
}

// CreateTexture allocates a new texture.
func (c *RenderingContext) CreateTexture() (*Texture, error) {
	return NewTexture(c)
}

// CreateFramebuffer returns a new framebuffer object with no attachments.
func (c *RenderingContext) CreateFramebuffer() *FramebufferObject {
	c.nextFramebuffer++
	return &FramebufferObject{ctx: c, name: c.nextFramebuffer}
}

// BindFramebuffer makes fb the current framebuffer. A nil fb binds the
// default framebuffer.
func (c *RenderingContext) BindFramebuffer(fb *FramebufferObject) {
	c.framebuffer = fb
}

// detachSender sends presentation detaches as ordinary commands.
type detachSender struct {
	s command.Sender
}

func (d detachSender) SendDetach(id command.TextureID) error {
	return d.s.Send(command.DetachDOMTextureCommand{Texture: id})
}
