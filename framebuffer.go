package webgl

import "github.com/gogpu/webgl/command"

// Framebuffer is the hook a Texture uses on deletion. DetachTexture must
// behave as if FramebufferTexture2D had been called with no texture for
// every attachment point tex occupies.
type Framebuffer interface {
	DetachTexture(tex *Texture)
}

// attachmentPoints lists the attachment points in the order detaches are
// emitted.
var attachmentPoints = [...]Enum{
	ColorAttachment0,
	DepthAttachment,
	StencilAttachment,
	DepthStencilAttachment,
}

type attachment struct {
	tex    *Texture
	target TexImageTarget
	level  int32
}

// FramebufferObject is a framebuffer with texture attachments. It holds
// non-owning references to the attached textures.
type FramebufferObject struct {
	ctx         *RenderingContext
	name        uint32
	attachments [len(attachmentPoints)]attachment
}

// Name returns the framebuffer name used in commands.
func (fb *FramebufferObject) Name() uint32 {
	return fb.name
}

// AttachTexture attaches the level image of tex named by target to point.
// A nil tex clears the point.
func (fb *FramebufferObject) AttachTexture(point Enum, target TexImageTarget, tex *Texture, level int32) error {
	slot := attachmentSlot(point)
	if slot < 0 || !target.valid() {
		return ErrInvalidEnum
	}
	if tex == nil {
		fb.clear(slot)
		return nil
	}
	if tex.IsDeleted() {
		return ErrInvalidOperation
	}
	if bound, ok := tex.Target(); !ok || bound != target.BindTarget() {
		return ErrInvalidOperation
	}
	if level < 0 || level >= MaxLevelCount {
		return ErrInvalidValue
	}

	fb.attachments[slot] = attachment{tex: tex, target: target, level: level}
	fb.ctx.SendCommandIgnored(command.FramebufferTexture2DCommand{
		Framebuffer: fb.name,
		Attachment:  uint32(point),
		TexTarget:   uint32(target),
		Texture:     tex.ID(),
		Level:       level,
	})
	return nil
}

// Attachment returns the texture attached at point, or nil.
func (fb *FramebufferObject) Attachment(point Enum) *Texture {
	slot := attachmentSlot(point)
	if slot < 0 {
		return nil
	}
	return fb.attachments[slot].tex
}

// DetachTexture implements Framebuffer.
func (fb *FramebufferObject) DetachTexture(tex *Texture) {
	for slot := range fb.attachments {
		if fb.attachments[slot].tex == tex {
			fb.clear(slot)
		}
	}
}

func (fb *FramebufferObject) clear(slot int) {
	a := fb.attachments[slot]
	if a.tex == nil {
		return
	}
	fb.attachments[slot] = attachment{}
	fb.ctx.SendCommandIgnored(command.FramebufferTexture2DCommand{
		Framebuffer: fb.name,
		Attachment:  uint32(attachmentPoints[slot]),
		TexTarget:   uint32(a.target),
	})
}

func attachmentSlot(point Enum) int {
	for i, p := range attachmentPoints {
		if p == point {
			return i
		}
	}
	return -1
}
