package webgl

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/webgl/command"
)

// Texture is the front-end state of one texture object. It validates every
// call against local state, updates that state, and only then sends the
// matching command to the executor.
//
// A Texture is owned by the goroutine of its context and is not safe for
// concurrent use.
type Texture struct {
	ctx Context
	id  command.TextureID

	// target is zero until the first successful Bind.
	target    Enum
	baseLevel uint32
	params    parameterStore
	images    ImageInfoTable

	deleted       bool
	attachedToDOM bool
	closeOnce     sync.Once
}

// NewTexture allocates a texture id from the executor and returns the new
// texture. When the executor has no id to give, the error matches
// ErrAllocationFailed and no texture exists.
func NewTexture(ctx Context) (*Texture, error) {
	id, err := ctx.AllocateTexture()
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "webgl: create texture"), ErrAllocationFailed)
	}
	if id.IsZero() {
		return nil, errors.Wrap(ErrAllocationFailed, "webgl: create texture")
	}

	ctx.Logger().Info("texture allocated", "texture", id)
	return &Texture{
		ctx:    ctx,
		id:     id,
		params: defaultParameters(),
	}, nil
}

// ID returns the executor handle of the texture.
func (t *Texture) ID() command.TextureID {
	return t.id
}

// Target returns the binding target, if the texture has been bound.
func (t *Texture) Target() (Enum, bool) {
	return t.target, t.target != 0
}

// Bind binds the texture to target. The first bind fixes the target; later
// binds must repeat it.
func (t *Texture) Bind(target Enum) error {
	if t.deleted {
		return ErrInvalidOperation
	}

	if t.target != 0 {
		if target != t.target {
			return ErrInvalidOperation
		}
	} else {
		var faces int
		switch target {
		case Texture2D:
			faces = 1
		case TextureCubeMap:
			faces = MaxFaceCount
		default:
			return ErrInvalidEnum
		}
		t.images.setFaceCount(faces)
		t.target = target
	}

	t.ctx.SendCommandIgnored(command.BindTextureCommand{Target: uint32(target), Texture: t.id})
	return nil
}

// Initialize records the metadata of an uploaded image. It sends nothing;
// the upload command itself belongs to the caller.
//
// target must name an image of the bound texture.
func (t *Texture) Initialize(target TexImageTarget, width, height, depth uint32, format TexFormat, level uint32, dataType TexDataType) {
	t.images.Set(level, target.FaceIndex(), NewImageInfo(width, height, depth, format, dataType))
}

// GenerateMipmap validates the base image and asks the executor to generate
// the mip chain, then records the derived levels locally.
func (t *Texture) GenerateMipmap() error {
	if t.deleted {
		return ErrInvalidOperation
	}
	if t.target == 0 {
		t.ctx.Logger().Error("cannot generate mipmap on a texture that has no target", "texture", t.id)
		return ErrInvalidOperation
	}

	base := t.baseImageInfo()
	if !base.IsInitialized() {
		return ErrInvalidOperation
	}
	if t.target == TextureCubeMap && !t.images.IsCubeComplete(t.baseLevel) {
		return ErrInvalidOperation
	}
	if !base.IsPowerOfTwo() {
		return ErrInvalidOperation
	}
	if base.IsCompressed() {
		return ErrInvalidOperation
	}

	t.ctx.SendCommandIgnored(command.GenerateMipmapCommand{Target: uint32(t.target)})

	levels := base.MaxMipmapLevels()
	if t.baseLevel+levels == 0 {
		return ErrInvalidOperation
	}
	return t.PopulateMipChain(t.baseLevel, t.baseLevel+levels-1)
}

// PopulateMipChain records the levels derived from firstLevel up to, but
// not including, lastLevel. See ImageInfoTable.PopulateMipChain.
func (t *Texture) PopulateMipChain(firstLevel, lastLevel uint32) error {
	return t.images.PopulateMipChain(firstLevel, lastLevel)
}

// TexParameter applies a sampling parameter. Filter changes that do not
// change anything are not sent. The texture must be bound.
func (t *Texture) TexParameter(param Enum, value TexParameterValue) error {
	if t.deleted {
		return ErrInvalidOperation
	}
	if t.target == 0 {
		panic("webgl: TexParameter on a texture with no target")
	}

	iv := value.Int()
	switch param {
	case TextureMinFilter:
		if !isMinFilter(Enum(uint32(iv))) {
			return ErrInvalidEnum
		}
		t.updateFilter(&t.params.minFilter, param, iv)
		return nil

	case TextureMagFilter:
		if !isMagFilter(Enum(uint32(iv))) {
			return ErrInvalidEnum
		}
		t.updateFilter(&t.params.magFilter, param, iv)
		return nil

	case TextureWrapS, TextureWrapT:
		if !isWrapMode(Enum(uint32(iv))) {
			return ErrInvalidEnum
		}
		t.ctx.SendCommandIgnored(command.TexParameteriCommand{
			Target: uint32(t.target),
			Param:  uint32(param),
			Value:  iv,
		})
		return nil

	case TextureMaxAnisotropyEXT:
		fv := value.Float()
		// NaN fails the comparison too.
		if !(fv >= 1) {
			return ErrInvalidValue
		}
		t.ctx.SendCommandIgnored(command.TexParameterfCommand{
			Target: uint32(t.target),
			Param:  uint32(param),
			Value:  fv,
		})
		return nil

	default:
		return ErrInvalidEnum
	}
}

func (t *Texture) updateFilter(filter *Enum, param Enum, value int32) {
	if *filter == Enum(uint32(value)) {
		t.ctx.Logger().Debug("filter unchanged", "texture", t.id, "param", param, "value", *filter)
		return
	}
	*filter = Enum(uint32(value))
	t.ctx.SendCommandIgnored(command.TexParameteriCommand{
		Target: uint32(t.target),
		Param:  uint32(param),
		Value:  value,
	})
}

// MinFilter returns the current minification filter.
func (t *Texture) MinFilter() Enum { return t.params.minFilter }

// MagFilter returns the current magnification filter.
func (t *Texture) MagFilter() Enum { return t.params.magFilter }

// IsUsingLinearFiltering reports whether either filter samples linearly
// within or between levels.
func (t *Texture) IsUsingLinearFiltering() bool {
	return t.params.usesLinearFiltering()
}

// IsDeleted reports whether the texture has been deleted.
func (t *Texture) IsDeleted() bool {
	return t.deleted
}

// ImageInfoFor returns the image named by target at level.
func (t *Texture) ImageInfoFor(target TexImageTarget, level uint32) ImageInfo {
	return t.images.At(level, target.FaceIndex())
}

// ImageInfoAtFace returns the image of face at level.
func (t *Texture) ImageInfoAtFace(face int, level uint32) ImageInfo {
	return t.images.At(level, face)
}

// MipChain returns the extents of the consecutive initialized levels of
// target, starting at the base level. It is empty when the base level has
// not been initialized.
func (t *Texture) MipChain(target TexImageTarget) []gputypes.Extent3D {
	var chain []gputypes.Extent3D
	for level := t.baseLevel; level < MaxLevelCount; level++ {
		info := t.ImageInfoFor(target, level)
		if !info.IsInitialized() {
			break
		}
		chain = append(chain, info.Extent())
	}
	return chain
}

// SetAttachedToDOM marks the texture as feeding the presentation path, so
// deletion also releases that link.
func (t *Texture) SetAttachedToDOM() {
	t.attachedToDOM = true
}

func (t *Texture) baseImageInfo() ImageInfo {
	return t.images.At(t.baseLevel, 0)
}
