// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package executor

import (
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/gogpu/webgl/command"
)

// Discard is an Executor that allocates ids and counts commands without
// applying them. It is the baseline for measuring the front end alone.
type Discard struct {
	opts options

	mu    sync.Mutex
	ids   identities
	live  map[command.TextureID]struct{}
	stats Stats
}

// NewDiscard creates a Discard executor. WithMaxTextures is honored.
func NewDiscard(opts ...Option) *Discard {
	return &Discard{
		opts: buildOptions(opts),
		ids:  newIdentities(),
		live: make(map[command.TextureID]struct{}),
	}
}

// Execute implements Executor. Only allocation and deletion are checked.
func (d *Discard) Execute(cmd command.Command) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch c := cmd.(type) {
	case command.CreateTextureCommand:
		if c.Reply == nil {
			d.stats.Failed++
			return errors.Wrap(ErrInvalidArgument, "no reply channel")
		}
		c.Reply <- d.allocate()
	case command.DeleteTextureCommand:
		if _, ok := d.live[c.Texture]; !ok {
			d.stats.Failed++
			return errors.Wrapf(ErrUnknownTexture, "%s", c.Texture)
		}
		delete(d.live, c.Texture)
		d.ids.Release(c.Texture)
	}
	d.stats.count(cmd.Type())
	return nil
}

func (d *Discard) allocate() command.TextureID {
	if d.opts.maxTextures > 0 && len(d.live) >= d.opts.maxTextures {
		d.stats.AllocationFailures++
		return command.TextureID{}
	}
	id := d.ids.Alloc()
	d.live[id] = struct{}{}
	return id
}

// Stats implements Executor.
func (d *Discard) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := d.stats.clone()
	out.Live = len(d.live)
	return out
}
