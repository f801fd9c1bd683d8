// Package command defines the messages a texture front end sends to the
// out-of-thread executor that owns the GPU resources.
//
// Commands are typed structs, one per operation, identified by a
// CommandType. They travel over an ordered one-way Channel: the front end
// appends and never waits, except for CreateTextureCommand which carries a
// reply channel and is the only synchronous round-trip.
//
// # Ordering
//
// A Channel is single-producer and FIFO. The executor applies commands in
// exactly the order they were sent, which is what lets the front end update
// its local state optimistically right after Send returns.
//
// # Example
//
//	ch := command.NewChannel()
//	id, err := ch.AllocateTexture()
//	if err != nil {
//	    return err
//	}
//	_ = ch.Send(command.BindTextureCommand{Target: 0x0DE1, Texture: id})
package command

import (
	"github.com/gogpu/wgpu/core"
)

// TextureID is the executor-side handle of a texture. The zero value never
// names a live texture.
type TextureID = core.TextureID

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// Resource lifetime
	CmdCreateTexture CommandType = iota // Allocate a texture id (synchronous)
	CmdDeleteTexture                    // Release a texture id

	// Texture state
	CmdBindTexture      // Bind a texture to a target
	CmdTexParameteri    // Set an integer sampling parameter
	CmdTexParameterf    // Set a float sampling parameter
	CmdGenerateMipmap   // Generate the mip chain of the bound texture
	CmdDetachDOMTexture // Release a presentation link

	// Framebuffer state
	CmdFramebufferTexture2D // Attach or detach a texture image
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdCreateTexture:        "CreateTexture",
	CmdDeleteTexture:        "DeleteTexture",
	CmdBindTexture:          "BindTexture",
	CmdTexParameteri:        "TexParameteri",
	CmdTexParameterf:        "TexParameterf",
	CmdGenerateMipmap:       "GenerateMipmap",
	CmdDetachDOMTexture:     "DetachDOMTexture",
	CmdFramebufferTexture2D: "FramebufferTexture2D",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// CreateTextureCommand asks the executor for a fresh texture id.
// The executor answers on Reply exactly once; a zero TextureID means the
// allocation failed.
type CreateTextureCommand struct {
	Reply chan<- TextureID
}

// Type implements Command.
func (CreateTextureCommand) Type() CommandType { return CmdCreateTexture }

// DeleteTextureCommand releases a texture id.
type DeleteTextureCommand struct {
	Texture TextureID
}

// Type implements Command.
func (DeleteTextureCommand) Type() CommandType { return CmdDeleteTexture }

// BindTextureCommand binds Texture to Target.
type BindTextureCommand struct {
	// Target is the GL binding target (TEXTURE_2D or TEXTURE_CUBE_MAP).
	Target uint32
	// Texture is the texture to bind.
	Texture TextureID
}

// Type implements Command.
func (BindTextureCommand) Type() CommandType { return CmdBindTexture }

// TexParameteriCommand sets an integer texture parameter on the texture
// bound to Target.
type TexParameteriCommand struct {
	Target uint32
	Param  uint32
	Value  int32
}

// Type implements Command.
func (TexParameteriCommand) Type() CommandType { return CmdTexParameteri }

// TexParameterfCommand sets a float texture parameter on the texture
// bound to Target.
type TexParameterfCommand struct {
	Target uint32
	Param  uint32
	Value  float32
}

// Type implements Command.
func (TexParameterfCommand) Type() CommandType { return CmdTexParameterf }

// GenerateMipmapCommand generates the mip chain of the texture bound to
// Target.
type GenerateMipmapCommand struct {
	Target uint32
}

// Type implements Command.
func (GenerateMipmapCommand) Type() CommandType { return CmdGenerateMipmap }

// DetachDOMTextureCommand tells the presentation path to drop its link to
// Texture.
type DetachDOMTextureCommand struct {
	Texture TextureID
}

// Type implements Command.
func (DetachDOMTextureCommand) Type() CommandType { return CmdDetachDOMTexture }

// FramebufferTexture2DCommand attaches a texture image to an attachment
// point of Framebuffer. A zero Texture detaches whatever is attached.
type FramebufferTexture2DCommand struct {
	Framebuffer uint32
	Attachment  uint32
	TexTarget   uint32
	Texture     TextureID
	Level       int32
}

// Type implements Command.
func (FramebufferTexture2DCommand) Type() CommandType { return CmdFramebufferTexture2D }

// Sender delivers commands to the executor in order. Send never waits for
// the command to be applied.
type Sender interface {
	Send(cmd Command) error
}

// Allocator performs the synchronous texture allocation round-trip.
type Allocator interface {
	AllocateTexture() (TextureID, error)
}

// PresentationSender notifies the presentation path that a texture link
// must be released.
type PresentationSender interface {
	SendDetach(id TextureID) error
}

// Transport is the front end's view of the executor link: ordered sends plus
// the synchronous allocation round-trip.
type Transport interface {
	Sender
	Allocator
}
