package command

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gogpu/wgpu/core"
)

// Channel errors.
var (
	// ErrChannelClosed is returned when sending on a closed channel.
	ErrChannelClosed = errors.New("command: channel closed")

	// ErrOutOfResources is returned when the executor answers an allocation
	// request with no id.
	ErrOutOfResources = errors.New("command: executor out of resources")
)

// DefaultQueueDepth is the number of commands a Channel buffers before Send
// applies backpressure.
const DefaultQueueDepth = 256

// ChannelOption configures a Channel during creation.
type ChannelOption func(*channelOptions)

type channelOptions struct {
	depth int
}

// WithQueueDepth sets the number of buffered commands. Values below 1 are
// ignored.
func WithQueueDepth(n int) ChannelOption {
	return func(o *channelOptions) {
		if n > 0 {
			o.depth = n
		}
	}
}

// Channel is an ordered, one-way queue of commands from a single producer
// to a single executor.
//
// Send appends without waiting for the command to be applied. Close marks
// the channel broken: pending and future sends fail with ErrChannelClosed.
type Channel struct {
	queue     chan Command
	done      chan struct{}
	closeOnce sync.Once
}

// NewChannel creates an open channel.
func NewChannel(opts ...ChannelOption) *Channel {
	o := channelOptions{depth: DefaultQueueDepth}
	for _, opt := range opts {
		opt(&o)
	}
	return &Channel{
		queue: make(chan Command, o.depth),
		done:  make(chan struct{}),
	}
}

// Send appends cmd to the queue.
func (c *Channel) Send(cmd Command) error {
	select {
	case <-c.done:
		return errors.Wrapf(ErrChannelClosed, "send %s", cmd.Type())
	default:
	}

	select {
	case c.queue <- cmd:
		return nil
	case <-c.done:
		return errors.Wrapf(ErrChannelClosed, "send %s", cmd.Type())
	}
}

// SendDetach implements PresentationSender on the same ordered queue.
func (c *Channel) SendDetach(id TextureID) error {
	return c.Send(DetachDOMTextureCommand{Texture: id})
}

// AllocateTexture sends a CreateTextureCommand and blocks until the executor
// replies. It is the only call on Channel that waits.
func (c *Channel) AllocateTexture() (TextureID, error) {
	reply := make(chan TextureID, 1)
	if err := c.Send(CreateTextureCommand{Reply: reply}); err != nil {
		return TextureID{}, err
	}

	var id TextureID
	select {
	case id = <-reply:
	case <-c.done:
		// A reply that raced with Close still wins.
		select {
		case id = <-reply:
		default:
			return TextureID{}, errors.Wrap(ErrChannelClosed, "allocate texture")
		}
	}
	if id.IsZero() {
		return TextureID{}, ErrOutOfResources
	}
	return id, nil
}

// Commands returns the receive side of the queue.
func (c *Channel) Commands() <-chan Command {
	return c.queue
}

// Done is closed when the channel is closed.
func (c *Channel) Done() <-chan struct{} {
	return c.done
}

// Close breaks the channel. It is safe to call more than once.
func (c *Channel) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

// IsClosed reports whether Close has been called.
func (c *Channel) IsClosed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// NewTextureID builds a TextureID from its index and epoch.
func NewTextureID(index, epoch uint32) TextureID {
	return TextureIDFromRaw(uint64(core.Zip(index, epoch)))
}

// TextureIDFromRaw rebuilds a TextureID from its raw 64-bit form.
func TextureIDFromRaw(raw uint64) TextureID {
	var id TextureID
	setRaw(&id, core.RawID(raw))
	return id
}

// setRaw lets the marker type of dst be inferred; core does not export it.
func setRaw[T core.Marker](dst *core.ID[T], raw core.RawID) {
	*dst = core.FromRaw[T](raw)
}
