// Package wire encodes executor commands for byte-stream transports.
//
// Each command is a protobuf-wire message (built with protowire, no
// generated code) framed by a uvarint length prefix, so a stream is just
// frames back to back:
//
//	frame   = uvarint(len(message)) message
//	message = field 1 (type, varint) + per-command fields
//
// CreateTextureCommand carries an in-process reply channel and cannot be
// encoded; the allocation round-trip stays on the in-process Channel.
package wire

import (
	"math"

	"github.com/cockroachdb/errors"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/gogpu/webgl/command"
)

// Codec errors.
var (
	// ErrNotEncodable is returned for commands that only make sense in
	// process (CreateTextureCommand).
	ErrNotEncodable = errors.New("wire: command cannot be encoded")

	// ErrMalformed is returned when a message cannot be decoded.
	ErrMalformed = errors.New("wire: malformed message")

	// ErrUnknownType is returned when a message names an unknown command type.
	ErrUnknownType = errors.New("wire: unknown command type")
)

// Field numbers.
const (
	fieldType        protowire.Number = 1
	fieldTexture     protowire.Number = 2
	fieldTarget      protowire.Number = 3
	fieldParam       protowire.Number = 4
	fieldIntValue    protowire.Number = 5
	fieldFloatValue  protowire.Number = 6
	fieldFramebuffer protowire.Number = 7
	fieldAttachment  protowire.Number = 8
	fieldTexTarget   protowire.Number = 9
	fieldLevel       protowire.Number = 10
)

// Marshal encodes cmd as a single unframed message.
func Marshal(cmd command.Command) ([]byte, error) {
	return AppendMessage(nil, cmd)
}

// AppendMessage appends the unframed encoding of cmd to b.
func AppendMessage(b []byte, cmd command.Command) ([]byte, error) {
	b = appendVarint(b, fieldType, uint64(cmd.Type()))

	switch c := cmd.(type) {
	case command.DeleteTextureCommand:
		b = appendTexture(b, c.Texture)
	case command.BindTextureCommand:
		b = appendVarint(b, fieldTarget, uint64(c.Target))
		b = appendTexture(b, c.Texture)
	case command.TexParameteriCommand:
		b = appendVarint(b, fieldTarget, uint64(c.Target))
		b = appendVarint(b, fieldParam, uint64(c.Param))
		b = appendVarint(b, fieldIntValue, protowire.EncodeZigZag(int64(c.Value)))
	case command.TexParameterfCommand:
		b = appendVarint(b, fieldTarget, uint64(c.Target))
		b = appendVarint(b, fieldParam, uint64(c.Param))
		b = protowire.AppendTag(b, fieldFloatValue, protowire.Fixed32Type)
		b = protowire.AppendFixed32(b, math.Float32bits(c.Value))
	case command.GenerateMipmapCommand:
		b = appendVarint(b, fieldTarget, uint64(c.Target))
	case command.DetachDOMTextureCommand:
		b = appendTexture(b, c.Texture)
	case command.FramebufferTexture2DCommand:
		b = appendVarint(b, fieldFramebuffer, uint64(c.Framebuffer))
		b = appendVarint(b, fieldAttachment, uint64(c.Attachment))
		b = appendVarint(b, fieldTexTarget, uint64(c.TexTarget))
		b = appendTexture(b, c.Texture)
		b = appendVarint(b, fieldLevel, protowire.EncodeZigZag(int64(c.Level)))
	default:
		return nil, errors.Wrapf(ErrNotEncodable, "%s", cmd.Type())
	}
	return b, nil
}

// AppendFrame appends the length-prefixed encoding of cmd to b.
func AppendFrame(b []byte, cmd command.Command) ([]byte, error) {
	msg, err := Marshal(cmd)
	if err != nil {
		return nil, err
	}
	b = protowire.AppendVarint(b, uint64(len(msg)))
	return append(b, msg...), nil
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendTexture(b []byte, id command.TextureID) []byte {
	b = protowire.AppendTag(b, fieldTexture, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, uint64(id.Raw()))
}

// fields holds every decoded field; unused ones stay zero.
type fields struct {
	typ         uint64
	hasType     bool
	texture     command.TextureID
	target      uint32
	param       uint32
	intValue    int32
	floatValue  float32
	framebuffer uint32
	attachment  uint32
	texTarget   uint32
	level       int32
}

// Unmarshal decodes a single unframed message.
func Unmarshal(b []byte) (command.Command, error) {
	var f fields
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, errors.Wrap(ErrMalformed, protowire.ParseError(n).Error())
		}
		b = b[n:]

		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, errors.Wrap(ErrMalformed, protowire.ParseError(n).Error())
			}
			b = b[n:]
			f.setVarint(num, v)
		case protowire.Fixed32Type:
			v, n := protowire.ConsumeFixed32(b)
			if n < 0 {
				return nil, errors.Wrap(ErrMalformed, protowire.ParseError(n).Error())
			}
			b = b[n:]
			if num == fieldFloatValue {
				f.floatValue = math.Float32frombits(v)
			}
		case protowire.Fixed64Type:
			v, n := protowire.ConsumeFixed64(b)
			if n < 0 {
				return nil, errors.Wrap(ErrMalformed, protowire.ParseError(n).Error())
			}
			b = b[n:]
			if num == fieldTexture {
				f.texture = command.TextureIDFromRaw(v)
			}
		default:
			// Skip fields added by newer encoders.
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, errors.Wrap(ErrMalformed, protowire.ParseError(n).Error())
			}
			b = b[n:]
		}
	}

	if !f.hasType {
		return nil, errors.Wrap(ErrMalformed, "missing command type")
	}
	return f.command()
}

//nolint:gosec // G115: values were encoded from the same 32-bit fields
func (f *fields) setVarint(num protowire.Number, v uint64) {
	switch num {
	case fieldType:
		f.typ = v
		f.hasType = true
	case fieldTarget:
		f.target = uint32(v)
	case fieldParam:
		f.param = uint32(v)
	case fieldIntValue:
		f.intValue = int32(protowire.DecodeZigZag(v))
	case fieldFramebuffer:
		f.framebuffer = uint32(v)
	case fieldAttachment:
		f.attachment = uint32(v)
	case fieldTexTarget:
		f.texTarget = uint32(v)
	case fieldLevel:
		f.level = int32(protowire.DecodeZigZag(v))
	}
}

func (f *fields) command() (command.Command, error) {
	if f.typ > math.MaxUint8 {
		return nil, errors.Wrapf(ErrUnknownType, "type %d", f.typ)
	}
	typ := command.CommandType(f.typ)
	switch typ {
	case command.CmdDeleteTexture:
		return command.DeleteTextureCommand{Texture: f.texture}, nil
	case command.CmdBindTexture:
		return command.BindTextureCommand{Target: f.target, Texture: f.texture}, nil
	case command.CmdTexParameteri:
		return command.TexParameteriCommand{Target: f.target, Param: f.param, Value: f.intValue}, nil
	case command.CmdTexParameterf:
		return command.TexParameterfCommand{Target: f.target, Param: f.param, Value: f.floatValue}, nil
	case command.CmdGenerateMipmap:
		return command.GenerateMipmapCommand{Target: f.target}, nil
	case command.CmdDetachDOMTexture:
		return command.DetachDOMTextureCommand{Texture: f.texture}, nil
	case command.CmdFramebufferTexture2D:
		return command.FramebufferTexture2DCommand{
			Framebuffer: f.framebuffer,
			Attachment:  f.attachment,
			TexTarget:   f.texTarget,
			Texture:     f.texture,
			Level:       f.level,
		}, nil
	case command.CmdCreateTexture:
		return nil, errors.Wrapf(ErrNotEncodable, "%s", typ)
	default:
		return nil, errors.Wrapf(ErrUnknownType, "type %d", f.typ)
	}
}
