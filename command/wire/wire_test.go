package wire

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/gogpu/webgl/command"
)

func sampleCommands() []command.Command {
	id := command.NewTextureID(5, 3)
	return []command.Command{
		command.BindTextureCommand{Target: 0x8513, Texture: id},
		command.TexParameteriCommand{Target: 0x8513, Param: 0x2801, Value: 0x2703},
		command.TexParameteriCommand{Target: 0x0DE1, Param: 0x2802, Value: -1},
		command.TexParameterfCommand{Target: 0x0DE1, Param: 0x84FE, Value: 8.5},
		command.GenerateMipmapCommand{Target: 0x8513},
		command.DetachDOMTextureCommand{Texture: id},
		command.FramebufferTexture2DCommand{Framebuffer: 2, Attachment: 0x8CE0, TexTarget: 0x0DE1, Level: 0},
		command.DeleteTextureCommand{Texture: id},
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	for _, cmd := range sampleCommands() {
		t.Run(cmd.Type().String(), func(t *testing.T) {
			b, err := Marshal(cmd)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			got, err := Unmarshal(b)
			if err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got != cmd {
				t.Errorf("Unmarshal(Marshal(%#v)) = %#v", cmd, got)
			}
		})
	}
}

func TestMarshalNaNAnisotropy(t *testing.T) {
	nan := float32(math.NaN())
	b, err := Marshal(command.TexParameterfCommand{Target: 0x0DE1, Param: 0x84FE, Value: nan})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	got, err := Unmarshal(b)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	v := got.(command.TexParameterfCommand).Value
	if !math.IsNaN(float64(v)) {
		t.Errorf("decoded value = %v, want NaN", v)
	}
}

func TestMarshalCreateTexture(t *testing.T) {
	_, err := Marshal(command.CreateTextureCommand{})
	if !errors.Is(err, ErrNotEncodable) {
		t.Errorf("Marshal(CreateTexture) error = %v, want ErrNotEncodable", err)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrMalformed},
		{"truncated tag", []byte{0x80}, ErrMalformed},
		{"unknown type", []byte{0x08, 0x7f}, ErrUnknownType},
		// 257 would alias DeleteTexture if narrowed to a byte.
		{"type out of range", []byte{0x08, 0x81, 0x02}, ErrUnknownType},
		{"create texture", []byte{0x08, byte(command.CmdCreateTexture)}, ErrNotEncodable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("Unmarshal() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUnmarshalSkipsUnknownFields(t *testing.T) {
	b, _ := Marshal(command.GenerateMipmapCommand{Target: 0x0DE1})
	// field 15, bytes type, payload "xy"
	b = append(b, 0x7a, 0x02, 'x', 'y')

	got, err := Unmarshal(b)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got != (command.GenerateMipmapCommand{Target: 0x0DE1}) {
		t.Errorf("Unmarshal() = %#v", got)
	}
}

func TestStreamRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	cmds := sampleCommands()
	for _, cmd := range cmds {
		if err := w.Send(cmd); err != nil {
			t.Fatalf("Send(%s) error = %v", cmd.Type(), err)
		}
	}
	if w.Frames() != len(cmds) {
		t.Errorf("Frames() = %d, want %d", w.Frames(), len(cmds))
	}

	var got []command.Command
	err := NewReader(&buf).ReadAll(func(cmd command.Command) error {
		got = append(got, cmd)
		return nil
	})
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got) != len(cmds) {
		t.Fatalf("ReadAll() decoded %d commands, want %d", len(got), len(cmds))
	}
	for i := range cmds {
		if got[i] != cmds[i] {
			t.Errorf("command %d = %#v, want %#v", i, got[i], cmds[i])
		}
	}
}

func TestReaderTruncatedFrame(t *testing.T) {
	frame, _ := AppendFrame(nil, command.GenerateMipmapCommand{Target: 0x0DE1})
	r := NewReader(bytes.NewReader(frame[:len(frame)-1]))

	_, err := r.Next()
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Next() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestReaderEmpty(t *testing.T) {
	_, err := NewReader(bytes.NewReader(nil)).Next()
	if err != io.EOF {
		t.Errorf("Next() error = %v, want io.EOF", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestTee(t *testing.T) {
	rec := command.NewRecorder()
	var buf bytes.Buffer
	tee := NewTee(rec, NewWriter(&buf))

	id, err := tee.AllocateTexture()
	if err != nil {
		t.Fatalf("AllocateTexture() error = %v", err)
	}
	_ = tee.Send(command.BindTextureCommand{Target: 0x0DE1, Texture: id})
	_ = tee.SendDetach(id)

	if rec.Len() != 3 {
		t.Errorf("recorder saw %d commands, want 3", rec.Len())
	}

	var traced []command.CommandType
	_ = NewReader(&buf).ReadAll(func(cmd command.Command) error {
		traced = append(traced, cmd.Type())
		return nil
	})
	want := []command.CommandType{command.CmdBindTexture, command.CmdDetachDOMTexture}
	if len(traced) != len(want) || traced[0] != want[0] || traced[1] != want[1] {
		t.Errorf("traced = %v, want %v", traced, want)
	}
	if tee.Err() != nil {
		t.Errorf("Err() = %v, want nil", tee.Err())
	}
}

func TestTeeTraceFailureDoesNotBlockDelivery(t *testing.T) {
	rec := command.NewRecorder()
	tee := NewTee(rec, NewWriter(failingWriter{}))

	if err := tee.Send(command.GenerateMipmapCommand{Target: 0x0DE1}); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if rec.Len() != 1 {
		t.Errorf("recorder saw %d commands, want 1", rec.Len())
	}
	if tee.Err() == nil {
		t.Error("Err() = nil, want trace failure")
	}
}
