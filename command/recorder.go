package command

import (
	"sync"

	"github.com/cockroachdb/errors"
)

// Recorder captures commands in emission order instead of delivering them.
// It implements Sender, Allocator and PresentationSender, so it can stand
// in for a Channel wherever the front end needs one.
//
// Allocation requests are recorded too and answered from a local counter,
// starting at index 0, epoch 1.
//
// Example:
//
//	rec := command.NewRecorder()
//	ctx := webgl.NewRenderingContext(rec)
//	tex, _ := webgl.NewTexture(ctx)
//	_ = tex.Bind(webgl.Texture2D)
//	rec.Types() // [CreateTexture BindTexture]
//
// The Recorder is safe for concurrent use.
type Recorder struct {
	mu        sync.Mutex
	commands  []Command
	sendErr   error
	detachErr error
	limit     int
	allocated int
}

// NewRecorder creates an empty Recorder with no allocation limit.
func NewRecorder() *Recorder {
	return &Recorder{
		commands: make([]Command, 0, 64),
		limit:    -1,
	}
}

// Send records cmd. It fails without recording once FailSends is set.
func (r *Recorder) Send(cmd Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sendErr != nil {
		return errors.Wrapf(r.sendErr, "send %s", cmd.Type())
	}
	r.commands = append(r.commands, cmd)
	return nil
}

// SendDetach records a DetachDOMTextureCommand. It fails without recording
// once FailDetach is set.
func (r *Recorder) SendDetach(id TextureID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.detachErr != nil {
		return errors.Wrap(r.detachErr, "send detach")
	}
	r.commands = append(r.commands, DetachDOMTextureCommand{Texture: id})
	return nil
}

// AllocateTexture records a CreateTextureCommand and answers it with the
// next id, or ErrOutOfResources once the limit set by LimitAllocations is
// reached.
func (r *Recorder) AllocateTexture() (TextureID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sendErr != nil {
		return TextureID{}, errors.Wrap(r.sendErr, "allocate texture")
	}
	r.commands = append(r.commands, CreateTextureCommand{})
	if r.limit >= 0 && r.allocated >= r.limit {
		return TextureID{}, ErrOutOfResources
	}
	//nolint:gosec // G115: allocation counts stay far below 2^32 in tests
	id := NewTextureID(uint32(r.allocated), 1)
	r.allocated++
	return id, nil
}

// FailSends makes every later Send and AllocateTexture fail with err.
// Passing nil restores delivery.
func (r *Recorder) FailSends(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sendErr = err
}

// FailDetach makes every later SendDetach fail with err.
func (r *Recorder) FailDetach(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detachErr = err
}

// LimitAllocations caps the number of successful allocations. A negative
// limit removes the cap.
func (r *Recorder) LimitAllocations(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.limit = n
}

// Commands returns a copy of the recorded commands in emission order.
func (r *Recorder) Commands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Types returns the CommandType of every recorded command in order.
func (r *Recorder) Types() []CommandType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]CommandType, len(r.commands))
	for i, cmd := range r.commands {
		out[i] = cmd.Type()
	}
	return out
}

// Count returns how many commands of type t were recorded.
func (r *Recorder) Count(t CommandType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.commands)
}

// Reset drops the recorded commands. Failure modes and the allocation
// counter are kept.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = r.commands[:0]
}
