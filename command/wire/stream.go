package wire

import (
	"bufio"
	"encoding/binary"
	"io"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/gogpu/webgl/command"
)

// MaxFrameSize bounds the message length a Reader accepts.
const MaxFrameSize = 1 << 16

// Writer frames commands onto an io.Writer. It implements command.Sender.
// Writer is safe for concurrent use; frames are never interleaved.
type Writer struct {
	mu  sync.Mutex
	w   io.Writer
	buf []byte
	n   int
}

// NewWriter returns a Writer that writes frames to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, buf: make([]byte, 0, 64)}
}

// Send encodes cmd and writes it as one frame.
func (w *Writer) Send(cmd command.Command) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	buf, err := AppendFrame(w.buf[:0], cmd)
	if err != nil {
		return err
	}
	w.buf = buf
	if _, err := w.w.Write(buf); err != nil {
		return errors.Wrapf(err, "wire: write %s", cmd.Type())
	}
	w.n++
	return nil
}

// Frames returns the number of frames written so far.
func (w *Writer) Frames() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.n
}

// Reader decodes frames written by a Writer.
type Reader struct {
	r   *bufio.Reader
	buf []byte
}

// NewReader returns a Reader that reads frames from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next returns the next command. It returns io.EOF at a clean end of stream
// and io.ErrUnexpectedEOF when the stream stops inside a frame.
func (r *Reader) Next() (command.Command, error) {
	size, err := binary.ReadUvarint(r.r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, errors.Wrap(err, "wire: read frame length")
	}
	if size > MaxFrameSize {
		return nil, errors.Wrapf(ErrMalformed, "frame of %d bytes", size)
	}

	if cap(r.buf) < int(size) {
		r.buf = make([]byte, size)
	}
	r.buf = r.buf[:size]
	if _, err := io.ReadFull(r.r, r.buf); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, errors.Wrap(err, "wire: read frame")
	}
	return Unmarshal(r.buf)
}

// ReadAll decodes frames until the end of the stream and calls fn for each
// command in order. It stops at the first decode or callback error.
func (r *Reader) ReadAll(fn func(command.Command) error) error {
	for {
		cmd, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(cmd); err != nil {
			return err
		}
	}
}

// Tee forwards every command to a transport and copies the encodable ones to
// a trace Writer. Trace failures never affect delivery; the first one is
// kept and reported by Err.
type Tee struct {
	command.Transport
	trace *Writer

	mu  sync.Mutex
	err error
}

// NewTee wraps transport so that its traffic is also written to trace.
func NewTee(transport command.Transport, trace *Writer) *Tee {
	return &Tee{Transport: transport, trace: trace}
}

// Send delivers cmd, then traces it.
func (t *Tee) Send(cmd command.Command) error {
	if err := t.Transport.Send(cmd); err != nil {
		return err
	}
	t.record(cmd)
	return nil
}

// SendDetach delivers a presentation detach through the wrapped transport
// when it supports one, falling back to an ordinary Send.
func (t *Tee) SendDetach(id command.TextureID) error {
	var err error
	if ps, ok := t.Transport.(command.PresentationSender); ok {
		err = ps.SendDetach(id)
	} else {
		err = t.Transport.Send(command.DetachDOMTextureCommand{Texture: id})
	}
	if err != nil {
		return err
	}
	t.record(command.DetachDOMTextureCommand{Texture: id})
	return nil
}

func (t *Tee) record(cmd command.Command) {
	if err := t.trace.Send(cmd); err != nil {
		t.mu.Lock()
		if t.err == nil {
			t.err = err
		}
		t.mu.Unlock()
	}
}

// Err returns the first trace failure, if any.
func (t *Tee) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}
