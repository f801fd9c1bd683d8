// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package executor

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/webgl"
	"github.com/gogpu/webgl/command"
)

// TextureState is the executor's record of one texture.
type TextureState struct {
	ID command.TextureID

	// Dimension is undefined until the texture is first bound.
	Dimension gputypes.TextureViewDimension
	Sampler   gputypes.SamplerDescriptor

	MipmapGenerations    int
	PresentationDetached bool

	// Attachments is the number of framebuffer attachment points currently
	// holding the texture.
	Attachments int
}

type attachmentKey struct {
	framebuffer uint32
	point       uint32
}

// State is an Executor that keeps the state of every live texture and
// rejects commands that do not fit it.
//
// State is safe for concurrent use; inspection methods may be called while
// Serve is running.
type State struct {
	opts options

	mu          sync.Mutex
	ids         identities
	textures    map[command.TextureID]*TextureState
	bindings    map[webgl.Enum]command.TextureID
	attachments map[attachmentKey]command.TextureID
	stats       Stats
}

// NewState creates an empty State executor.
func NewState(opts ...Option) *State {
	return &State{
		opts:        buildOptions(opts),
		ids:         newIdentities(),
		textures:    make(map[command.TextureID]*TextureState),
		bindings:    make(map[webgl.Enum]command.TextureID),
		attachments: make(map[attachmentKey]command.TextureID),
	}
}

// Allocate returns a fresh texture id, or a zero id when the texture cap
// set by WithMaxTextures is reached.
func (s *State) Allocate() command.TextureID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allocate()
}

func (s *State) allocate() command.TextureID {
	if s.opts.maxTextures > 0 && len(s.textures) >= s.opts.maxTextures {
		s.stats.AllocationFailures++
		s.opts.log().Warn("texture limit reached", "limit", s.opts.maxTextures)
		return command.TextureID{}
	}
	id := s.ids.Alloc()
	s.textures[id] = &TextureState{ID: id, Sampler: defaultSampler()}
	s.opts.log().Debug("texture created", "texture", id)
	return id
}

// Execute implements Executor.
func (s *State) Execute(cmd command.Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.execute(cmd)
	if err != nil {
		s.stats.Failed++
		return errors.Wrapf(err, "%s", cmd.Type())
	}
	s.stats.count(cmd.Type())
	return nil
}

func (s *State) execute(cmd command.Command) error {
	switch c := cmd.(type) {
	case command.CreateTextureCommand:
		if c.Reply == nil {
			return errors.Wrap(ErrInvalidArgument, "no reply channel")
		}
		c.Reply <- s.allocate()
		return nil

	case command.DeleteTextureCommand:
		if _, err := s.lookup(c.Texture); err != nil {
			return err
		}
		s.release(c.Texture)
		return nil

	case command.BindTextureCommand:
		return s.bind(webgl.Enum(c.Target), c.Texture)

	case command.TexParameteriCommand:
		tex, err := s.bound(webgl.Enum(c.Target))
		if err != nil {
			return err
		}
		return setParameteri(&tex.Sampler, webgl.Enum(c.Param), c.Value)

	case command.TexParameterfCommand:
		tex, err := s.bound(webgl.Enum(c.Target))
		if err != nil {
			return err
		}
		return setParameterf(&tex.Sampler, webgl.Enum(c.Param), c.Value)

	case command.GenerateMipmapCommand:
		tex, err := s.bound(webgl.Enum(c.Target))
		if err != nil {
			return err
		}
		tex.MipmapGenerations++
		return nil

	case command.DetachDOMTextureCommand:
		tex, err := s.lookup(c.Texture)
		if err != nil {
			return err
		}
		tex.PresentationDetached = true
		return nil

	case command.FramebufferTexture2DCommand:
		return s.attach(c)

	default:
		return errors.Wrapf(ErrInvalidArgument, "unsupported command %T", cmd)
	}
}

func (s *State) lookup(id command.TextureID) (*TextureState, error) {
	tex, ok := s.textures[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTexture, "%s", id)
	}
	return tex, nil
}

func (s *State) bound(target webgl.Enum) (*TextureState, error) {
	id, ok := s.bindings[target]
	if !ok {
		return nil, errors.Wrapf(ErrNoBoundTexture, "%s", target)
	}
	return s.lookup(id)
}

// bind binds id to target. A zero id clears the binding.
func (s *State) bind(target webgl.Enum, id command.TextureID) error {
	dim, err := viewDimension(target)
	if err != nil {
		return err
	}
	if id.IsZero() {
		delete(s.bindings, target)
		return nil
	}

	tex, err := s.lookup(id)
	if err != nil {
		return err
	}
	switch tex.Dimension {
	case gputypes.TextureViewDimensionUndefined:
		tex.Dimension = dim
	case dim:
	default:
		return errors.Wrapf(ErrTargetMismatch, "%s is %s, bound to %s", id, tex.Dimension, target)
	}
	s.bindings[target] = id
	return nil
}

func (s *State) attach(c command.FramebufferTexture2DCommand) error {
	key := attachmentKey{framebuffer: c.Framebuffer, point: c.Attachment}

	var tex *TextureState
	if !c.Texture.IsZero() {
		var err error
		if tex, err = s.lookup(c.Texture); err != nil {
			return err
		}
	}

	if prev, ok := s.attachments[key]; ok {
		if old, ok := s.textures[prev]; ok {
			old.Attachments--
		}
		delete(s.attachments, key)
	}
	if tex != nil {
		s.attachments[key] = c.Texture
		tex.Attachments++
	}
	return nil
}

// release forgets a texture and returns its id to the identity pool.
func (s *State) release(id command.TextureID) {
	delete(s.textures, id)
	for target, bound := range s.bindings {
		if bound == id {
			delete(s.bindings, target)
		}
	}
	for key, attached := range s.attachments {
		if attached == id {
			s.opts.log().Warn("deleted texture still attached",
				"texture", id, "framebuffer", key.framebuffer, "attachment", webgl.Enum(key.point))
			delete(s.attachments, key)
		}
	}
	s.ids.Release(id)
	s.opts.log().Debug("texture released", "texture", id)
}

// Texture returns a copy of the record of id.
func (s *State) Texture(id command.TextureID) (TextureState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tex, ok := s.textures[id]
	if !ok {
		return TextureState{}, false
	}
	return *tex, true
}

// Bound returns the texture bound to target.
func (s *State) Bound(target webgl.Enum) (command.TextureID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.bindings[target]
	return id, ok
}

// Attached returns the texture attached at point of framebuffer.
func (s *State) Attached(framebuffer uint32, point webgl.Enum) (command.TextureID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.attachments[attachmentKey{framebuffer: framebuffer, point: uint32(point)}]
	return id, ok
}

// Stats implements Executor.
func (s *State) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.stats.clone()
	out.Live = len(s.textures)
	return out
}
