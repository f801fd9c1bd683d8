package webgl

import (
	"math/bits"

	"github.com/gogpu/gputypes"
)

// ImageInfo describes one (level, face) image of a texture. The zero value
// is an undefined, uninitialized image.
type ImageInfo struct {
	width          uint32
	height         uint32
	depth          uint32
	internalFormat TexFormat
	dataType       TexDataType
	initialized    bool
}

// NewImageInfo returns an initialized ImageInfo. dataType may be
// DataTypeNone, as for compressed uploads.
func NewImageInfo(width, height, depth uint32, format TexFormat, dataType TexDataType) ImageInfo {
	return ImageInfo{
		width:          width,
		height:         height,
		depth:          depth,
		internalFormat: format,
		dataType:       dataType,
		initialized:    true,
	}
}

func (i ImageInfo) Width() uint32             { return i.width }
func (i ImageInfo) Height() uint32            { return i.height }
func (i ImageInfo) Depth() uint32             { return i.depth }
func (i ImageInfo) InternalFormat() TexFormat { return i.internalFormat }
func (i ImageInfo) DataType() TexDataType     { return i.dataType }
func (i ImageInfo) IsInitialized() bool       { return i.initialized }

// IsDefined reports whether an internal format has been declared.
func (i ImageInfo) IsDefined() bool {
	return i.internalFormat != FormatNone
}

// IsPowerOfTwo reports whether width, height and depth are all powers of
// two. Zero is not a power of two.
func (i ImageInfo) IsPowerOfTwo() bool {
	return isPowerOfTwo(i.width) && isPowerOfTwo(i.height) && isPowerOfTwo(i.depth)
}

// IsCompressed reports whether the declared format is block-compressed.
func (i ImageInfo) IsCompressed() bool {
	return i.internalFormat.IsCompressed()
}

// MaxMipmapLevels returns floor(log2(largest dimension)) + 1, or 0 when all
// dimensions are zero.
func (i ImageInfo) MaxMipmapLevels() uint32 {
	largest := max(i.width, i.height, i.depth)
	return uint32(bits.Len32(largest))
}

// Extent returns the image size as a gputypes extent.
func (i ImageInfo) Extent() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              i.width,
		Height:             i.height,
		DepthOrArrayLayers: i.depth,
	}
}

func isPowerOfTwo(v uint32) bool {
	return v != 0 && v&(v-1) == 0
}
