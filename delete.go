package webgl

import (
	"github.com/cockroachdb/errors"

	"github.com/gogpu/webgl/command"
)

// Delete deletes the texture. The delete command must be delivered; a
// delivery failure is returned. Deleting a deleted texture does nothing.
func (t *Texture) Delete() error {
	return t.delete(false)
}

// Close releases the texture when its owner goes away. It runs the teardown
// at most once, ignores delivery failures and always returns nil. Close
// after Delete sends nothing.
func (t *Texture) Close() error {
	t.closeOnce.Do(func() {
		_ = t.delete(true)
	})
	return nil
}

func (t *Texture) delete(fallible bool) error {
	if t.deleted {
		return nil
	}
	t.deleted = true
	log := t.ctx.Logger()

	if t.attachedToDOM {
		if err := t.ctx.PresentationSender().SendDetach(t.id); err != nil {
			log.Warn("presentation detach dropped", "texture", t.id, "error", err)
		}
	}

	// The framebuffer detach has to reach the executor before the delete.
	if fb := t.ctx.BoundFramebuffer(); fb != nil {
		fb.DetachTexture(t)
	}

	cmd := command.DeleteTextureCommand{Texture: t.id}
	if fallible {
		t.ctx.SendCommandIgnored(cmd)
	} else if err := t.ctx.SendCommand(cmd); err != nil {
		return errors.Wrapf(err, "webgl: delete texture %s", t.id)
	}
	log.Info("texture deleted", "texture", t.id)
	return nil
}
