// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package executor

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/webgl"
	"github.com/gogpu/webgl/command"
)

func mustExecute(t *testing.T, ex Executor, cmds ...command.Command) {
	t.Helper()
	for _, cmd := range cmds {
		if err := ex.Execute(cmd); err != nil {
			t.Fatalf("Execute(%s) error = %v", cmd.Type(), err)
		}
	}
}

func createTexture(t *testing.T, ex Executor) command.TextureID {
	t.Helper()
	reply := make(chan command.TextureID, 1)
	mustExecute(t, ex, command.CreateTextureCommand{Reply: reply})
	return <-reply
}

func TestStateCreateTexture(t *testing.T) {
	s := NewState()
	a := createTexture(t, s)
	b := createTexture(t, s)

	if a.IsZero() || b.IsZero() || a == b {
		t.Fatalf("ids = %v, %v, want distinct non-zero", a, b)
	}
	tex, ok := s.Texture(a)
	if !ok {
		t.Fatal("Texture() did not find the new texture")
	}
	if tex.Dimension != gputypes.TextureViewDimensionUndefined {
		t.Errorf("Dimension = %v, want undefined", tex.Dimension)
	}
	if tex.Sampler != defaultSampler() {
		t.Errorf("Sampler = %+v, want GL defaults", tex.Sampler)
	}
	if got := s.Stats().Live; got != 2 {
		t.Errorf("Live = %d, want 2", got)
	}
}

func TestStateMaxTextures(t *testing.T) {
	s := NewState(WithMaxTextures(1))
	first := createTexture(t, s)
	if first.IsZero() {
		t.Fatal("first allocation failed")
	}
	if got := createTexture(t, s); !got.IsZero() {
		t.Errorf("allocation beyond the cap = %v, want zero", got)
	}

	mustExecute(t, s, command.DeleteTextureCommand{Texture: first})
	again := createTexture(t, s)
	if again.IsZero() {
		t.Fatal("allocation after delete failed")
	}
	if again.Index() != first.Index() || again.Epoch() == first.Epoch() {
		t.Errorf("reused id = %v, want index %d with a new epoch", again, first.Index())
	}
	if got := s.Stats().AllocationFailures; got != 1 {
		t.Errorf("AllocationFailures = %d, want 1", got)
	}
}

func TestStateBind(t *testing.T) {
	s := NewState()
	id := createTexture(t, s)
	target2D := uint32(webgl.Texture2D)

	mustExecute(t, s, command.BindTextureCommand{Target: target2D, Texture: id})
	if tex, _ := s.Texture(id); tex.Dimension != gputypes.TextureViewDimension2D {
		t.Errorf("Dimension = %v, want 2D", tex.Dimension)
	}
	if got, ok := s.Bound(webgl.Texture2D); !ok || got != id {
		t.Errorf("Bound() = %v, %v", got, ok)
	}

	err := s.Execute(command.BindTextureCommand{Target: uint32(webgl.TextureCubeMap), Texture: id})
	if !errors.Is(err, ErrTargetMismatch) {
		t.Errorf("rebind error = %v, want ErrTargetMismatch", err)
	}

	mustExecute(t, s, command.BindTextureCommand{Target: target2D})
	if _, ok := s.Bound(webgl.Texture2D); ok {
		t.Error("binding a zero id did not clear the target")
	}
}

func TestStateErrors(t *testing.T) {
	s := NewState()
	id := createTexture(t, s)
	stale := command.NewTextureID(id.Index()+7, 1)

	tests := []struct {
		name string
		cmd  command.Command
		want error
	}{
		{"delete unknown", command.DeleteTextureCommand{Texture: stale}, ErrUnknownTexture},
		{"bind unknown", command.BindTextureCommand{Target: uint32(webgl.Texture2D), Texture: stale}, ErrUnknownTexture},
		{"bind bad target", command.BindTextureCommand{Target: uint32(webgl.Linear), Texture: id}, ErrInvalidArgument},
		{"parameter unbound", command.TexParameteriCommand{Target: uint32(webgl.Texture2D), Param: uint32(webgl.TextureMinFilter), Value: int32(webgl.Linear)}, ErrNoBoundTexture},
		{"mipmap unbound", command.GenerateMipmapCommand{Target: uint32(webgl.TextureCubeMap)}, ErrNoBoundTexture},
		{"detach unknown", command.DetachDOMTextureCommand{Texture: stale}, ErrUnknownTexture},
		{"attach unknown", command.FramebufferTexture2DCommand{Framebuffer: 1, Attachment: uint32(webgl.ColorAttachment0), Texture: stale}, ErrUnknownTexture},
		{"create without reply", command.CreateTextureCommand{}, ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.Execute(tt.cmd); !errors.Is(err, tt.want) {
				t.Errorf("Execute() error = %v, want %v", err, tt.want)
			}
		})
	}
	if got := s.Stats().Failed; got != len(tests) {
		t.Errorf("Failed = %d, want %d", got, len(tests))
	}
}

func TestStateParametersAndMipmaps(t *testing.T) {
	s := NewState()
	id := createTexture(t, s)
	target := uint32(webgl.TextureCubeMap)

	mustExecute(t, s,
		command.BindTextureCommand{Target: target, Texture: id},
		command.TexParameteriCommand{Target: target, Param: uint32(webgl.TextureMinFilter), Value: int32(webgl.LinearMipmapNearest)},
		command.TexParameteriCommand{Target: target, Param: uint32(webgl.TextureWrapT), Value: int32(webgl.ClampToEdge)},
		command.TexParameterfCommand{Target: target, Param: uint32(webgl.TextureMaxAnisotropyEXT), Value: 64},
		command.GenerateMipmapCommand{Target: target},
	)

	tex, _ := s.Texture(id)
	if tex.Dimension != gputypes.TextureViewDimensionCube {
		t.Errorf("Dimension = %v, want cube", tex.Dimension)
	}
	if tex.Sampler.MinFilter != gputypes.FilterModeLinear || tex.Sampler.MipmapFilter != gputypes.MipmapFilterModeNearest {
		t.Errorf("min/mipmap filter = %v/%v", tex.Sampler.MinFilter, tex.Sampler.MipmapFilter)
	}
	if tex.Sampler.AddressModeV != gputypes.AddressModeClampToEdge || tex.Sampler.AddressModeU != gputypes.AddressModeRepeat {
		t.Errorf("address modes = %v/%v", tex.Sampler.AddressModeU, tex.Sampler.AddressModeV)
	}
	if tex.Sampler.MaxAnisotropy != maxAnisotropy {
		t.Errorf("MaxAnisotropy = %d, want %d", tex.Sampler.MaxAnisotropy, maxAnisotropy)
	}
	if tex.MipmapGenerations != 1 {
		t.Errorf("MipmapGenerations = %d, want 1", tex.MipmapGenerations)
	}
}

func TestStateFramebufferAttachments(t *testing.T) {
	s := NewState()
	id := createTexture(t, s)
	color := uint32(webgl.ColorAttachment0)

	mustExecute(t, s, command.FramebufferTexture2DCommand{Framebuffer: 3, Attachment: color, TexTarget: uint32(webgl.Texture2D), Texture: id})
	if tex, _ := s.Texture(id); tex.Attachments != 1 {
		t.Errorf("Attachments = %d, want 1", tex.Attachments)
	}
	if got, ok := s.Attached(3, webgl.ColorAttachment0); !ok || got != id {
		t.Errorf("Attached() = %v, %v", got, ok)
	}

	mustExecute(t, s, command.FramebufferTexture2DCommand{Framebuffer: 3, Attachment: color, TexTarget: uint32(webgl.Texture2D)})
	if tex, _ := s.Texture(id); tex.Attachments != 0 {
		t.Errorf("Attachments after detach = %d, want 0", tex.Attachments)
	}
	if _, ok := s.Attached(3, webgl.ColorAttachment0); ok {
		t.Error("attachment survived a detach")
	}
}

func TestStateDeleteClearsReferences(t *testing.T) {
	s := NewState()
	id := createTexture(t, s)
	mustExecute(t, s,
		command.BindTextureCommand{Target: uint32(webgl.Texture2D), Texture: id},
		command.FramebufferTexture2DCommand{Framebuffer: 1, Attachment: uint32(webgl.DepthAttachment), Texture: id},
		command.DetachDOMTextureCommand{Texture: id},
		command.DeleteTextureCommand{Texture: id},
	)

	if _, ok := s.Texture(id); ok {
		t.Error("deleted texture still recorded")
	}
	if _, ok := s.Bound(webgl.Texture2D); ok {
		t.Error("deleted texture still bound")
	}
	if _, ok := s.Attached(1, webgl.DepthAttachment); ok {
		t.Error("deleted texture still attached")
	}
	if err := s.Execute(command.DeleteTextureCommand{Texture: id}); !errors.Is(err, ErrUnknownTexture) {
		t.Errorf("second delete error = %v, want ErrUnknownTexture", err)
	}

	stats := s.Stats()
	if stats.Commands[command.CmdDeleteTexture] != 1 || stats.Live != 0 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestDiscard(t *testing.T) {
	d := NewDiscard(WithMaxTextures(2))
	a := createTexture(t, d)
	_ = createTexture(t, d)
	if got := createTexture(t, d); !got.IsZero() {
		t.Errorf("allocation beyond the cap = %v, want zero", got)
	}

	mustExecute(t, d,
		command.BindTextureCommand{Target: 0xdead, Texture: a},
		command.GenerateMipmapCommand{Target: 0xdead},
		command.DeleteTextureCommand{Texture: a},
	)
	if err := d.Execute(command.DeleteTextureCommand{Texture: a}); !errors.Is(err, ErrUnknownTexture) {
		t.Errorf("double delete error = %v, want ErrUnknownTexture", err)
	}

	stats := d.Stats()
	if stats.Total() != 6 || stats.Live != 1 || stats.Failed != 1 || stats.AllocationFailures != 1 {
		t.Errorf("stats = %+v", stats)
	}
}
