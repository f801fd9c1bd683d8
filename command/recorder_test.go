package command

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestRecorderCapturesOrder(t *testing.T) {
	rec := NewRecorder()

	id, err := rec.AllocateTexture()
	if err != nil {
		t.Fatalf("AllocateTexture() error = %v", err)
	}
	_ = rec.Send(BindTextureCommand{Target: 0x0DE1, Texture: id})
	_ = rec.SendDetach(id)
	_ = rec.Send(DeleteTextureCommand{Texture: id})

	want := []CommandType{CmdCreateTexture, CmdBindTexture, CmdDetachDOMTexture, CmdDeleteTexture}
	got := rec.Types()
	if len(got) != len(want) {
		t.Fatalf("Types() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Types()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if rec.Count(CmdBindTexture) != 1 {
		t.Errorf("Count(BindTexture) = %d, want 1", rec.Count(CmdBindTexture))
	}
	if rec.Len() != 4 {
		t.Errorf("Len() = %d, want 4", rec.Len())
	}

	rec.Reset()
	if rec.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", rec.Len())
	}
}

func TestRecorderAllocatesDistinctIDs(t *testing.T) {
	rec := NewRecorder()
	a, _ := rec.AllocateTexture()
	b, _ := rec.AllocateTexture()
	if a == b {
		t.Errorf("AllocateTexture() returned %v twice", a)
	}
	if a.IsZero() || b.IsZero() {
		t.Error("AllocateTexture() returned a zero id")
	}
}

func TestRecorderLimitAllocations(t *testing.T) {
	rec := NewRecorder()
	rec.LimitAllocations(1)

	if _, err := rec.AllocateTexture(); err != nil {
		t.Fatalf("first AllocateTexture() error = %v", err)
	}
	if _, err := rec.AllocateTexture(); !errors.Is(err, ErrOutOfResources) {
		t.Errorf("second AllocateTexture() error = %v, want ErrOutOfResources", err)
	}
}

func TestRecorderFailures(t *testing.T) {
	rec := NewRecorder()
	broken := errors.New("broken pipe")

	rec.FailSends(broken)
	if err := rec.Send(GenerateMipmapCommand{}); !errors.Is(err, broken) {
		t.Errorf("Send() error = %v, want %v", err, broken)
	}
	if _, err := rec.AllocateTexture(); !errors.Is(err, broken) {
		t.Errorf("AllocateTexture() error = %v, want %v", err, broken)
	}

	rec.FailDetach(broken)
	if err := rec.SendDetach(NewTextureID(0, 1)); !errors.Is(err, broken) {
		t.Errorf("SendDetach() error = %v, want %v", err, broken)
	}
	if rec.Len() != 0 {
		t.Errorf("failed sends were recorded: %v", rec.Types())
	}

	rec.FailSends(nil)
	if err := rec.Send(GenerateMipmapCommand{}); err != nil {
		t.Errorf("Send() after FailSends(nil) error = %v", err)
	}
}
