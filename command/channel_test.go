package command

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
)

func TestChannelPreservesOrder(t *testing.T) {
	ch := NewChannel(WithQueueDepth(8))
	id := NewTextureID(1, 1)

	sent := []Command{
		BindTextureCommand{Target: 0x0DE1, Texture: id},
		TexParameteriCommand{Target: 0x0DE1, Param: 0x2801, Value: 0x2600},
		GenerateMipmapCommand{Target: 0x0DE1},
		DeleteTextureCommand{Texture: id},
	}
	for _, cmd := range sent {
		if err := ch.Send(cmd); err != nil {
			t.Fatalf("Send(%s) error = %v", cmd.Type(), err)
		}
	}

	for i, want := range sent {
		got := <-ch.Commands()
		if got != want {
			t.Errorf("command %d = %#v, want %#v", i, got, want)
		}
	}
}

func TestChannelSendAfterClose(t *testing.T) {
	ch := NewChannel()
	ch.Close()
	ch.Close() // idempotent

	if !ch.IsClosed() {
		t.Error("IsClosed() = false after Close")
	}
	err := ch.Send(GenerateMipmapCommand{Target: 0x0DE1})
	if !errors.Is(err, ErrChannelClosed) {
		t.Errorf("Send() after Close error = %v, want ErrChannelClosed", err)
	}
	if err := ch.SendDetach(NewTextureID(0, 1)); !errors.Is(err, ErrChannelClosed) {
		t.Errorf("SendDetach() after Close error = %v, want ErrChannelClosed", err)
	}
}

func TestChannelCloseUnblocksFullQueue(t *testing.T) {
	ch := NewChannel(WithQueueDepth(1))
	if err := ch.Send(GenerateMipmapCommand{}); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	errc := make(chan error, 1)
	go func() {
		errc <- ch.Send(GenerateMipmapCommand{})
	}()

	time.Sleep(10 * time.Millisecond)
	ch.Close()

	select {
	case err := <-errc:
		if !errors.Is(err, ErrChannelClosed) {
			t.Errorf("blocked Send() error = %v, want ErrChannelClosed", err)
		}
	case <-time.After(time.Second):
		t.Fatal("blocked Send() did not return after Close")
	}
}

func TestChannelAllocateTexture(t *testing.T) {
	ch := NewChannel()
	want := NewTextureID(4, 1)

	go func() {
		cmd := <-ch.Commands()
		create, ok := cmd.(CreateTextureCommand)
		if !ok {
			return
		}
		create.Reply <- want
	}()

	got, err := ch.AllocateTexture()
	if err != nil {
		t.Fatalf("AllocateTexture() error = %v", err)
	}
	if got != want {
		t.Errorf("AllocateTexture() = %v, want %v", got, want)
	}
}

func TestChannelAllocateTextureExhausted(t *testing.T) {
	ch := NewChannel()

	go func() {
		cmd := <-ch.Commands()
		if create, ok := cmd.(CreateTextureCommand); ok {
			create.Reply <- TextureID{}
		}
	}()

	_, err := ch.AllocateTexture()
	if !errors.Is(err, ErrOutOfResources) {
		t.Errorf("AllocateTexture() error = %v, want ErrOutOfResources", err)
	}
}

func TestChannelAllocateTextureClosed(t *testing.T) {
	ch := NewChannel()

	go func() {
		<-ch.Commands()
		ch.Close()
	}()

	_, err := ch.AllocateTexture()
	if !errors.Is(err, ErrChannelClosed) {
		t.Errorf("AllocateTexture() error = %v, want ErrChannelClosed", err)
	}
}

func TestWithQueueDepthIgnoresInvalid(t *testing.T) {
	ch := NewChannel(WithQueueDepth(0))
	if got := cap(ch.queue); got != DefaultQueueDepth {
		t.Errorf("queue depth = %d, want %d", got, DefaultQueueDepth)
	}
}
