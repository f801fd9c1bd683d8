// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package executor

import (
	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/webgl/command"
)

// identities allocates texture ids. Released indices come back with a
// bumped epoch, so a stale id never names a newer texture.
type identities interface {
	Alloc() command.TextureID
	Release(id command.TextureID)
	Count() uint64
}

func newIdentities() identities {
	return newIdentityManager(command.TextureID{})
}

// newIdentityManager infers the marker of the id type, which core keeps
// unexported.
func newIdentityManager[T core.Marker](core.ID[T]) *core.IdentityManager[T] {
	return core.NewIdentityManager[T]()
}
