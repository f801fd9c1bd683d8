package webgl

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// TexFormat is a GL internal format. The zero value means "not specified".
type TexFormat uint32

// Internal formats accepted by texture uploads.
const (
	FormatNone           TexFormat = 0
	FormatDepthComponent TexFormat = 0x1902
	FormatAlpha          TexFormat = 0x1906
	FormatRGB            TexFormat = 0x1907
	FormatRGBA           TexFormat = 0x1908
	FormatLuminance      TexFormat = 0x1909
	FormatLuminanceAlpha TexFormat = 0x190A
	FormatDepthStencil   TexFormat = 0x84F9

	// WEBGL_compressed_texture_s3tc
	FormatCompressedRGBS3TCDXT1  TexFormat = 0x83F0
	FormatCompressedRGBAS3TCDXT1 TexFormat = 0x83F1
	FormatCompressedRGBAS3TCDXT3 TexFormat = 0x83F2
	FormatCompressedRGBAS3TCDXT5 TexFormat = 0x83F3

	// WEBGL_compressed_texture_etc1
	FormatCompressedRGBETC1 TexFormat = 0x8D64

	// WEBGL_compressed_texture_astc
	FormatCompressedRGBAASTC4x4 TexFormat = 0x93B0
)

// GPUFormat returns the executor format the GL internal format is stored
// as, or gputypes.TextureFormatUndefined for an unknown format.
func (f TexFormat) GPUFormat() gputypes.TextureFormat {
	switch f {
	case FormatAlpha, FormatLuminance:
		return gputypes.TextureFormatR8Unorm
	case FormatLuminanceAlpha:
		return gputypes.TextureFormatRG8Unorm
	case FormatRGB, FormatRGBA:
		return gputypes.TextureFormatRGBA8Unorm
	case FormatDepthComponent:
		return gputypes.TextureFormatDepth24Plus
	case FormatDepthStencil:
		return gputypes.TextureFormatDepth24PlusStencil8
	case FormatCompressedRGBS3TCDXT1, FormatCompressedRGBAS3TCDXT1:
		return gputypes.TextureFormatBC1RGBAUnorm
	case FormatCompressedRGBAS3TCDXT3:
		return gputypes.TextureFormatBC2RGBAUnorm
	case FormatCompressedRGBAS3TCDXT5:
		return gputypes.TextureFormatBC3RGBAUnorm
	case FormatCompressedRGBETC1:
		// ETC1 is the RGB subset of ETC2.
		return gputypes.TextureFormatETC2RGB8Unorm
	case FormatCompressedRGBAASTC4x4:
		return gputypes.TextureFormatASTC4x4Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// IsCompressed reports whether f is a block-compressed format.
func (f TexFormat) IsCompressed() bool {
	return isCompressedGPUFormat(f.GPUFormat())
}

// isCompressedGPUFormat covers the BC, ETC2, EAC and ASTC ranges, which
// gputypes lays out contiguously.
func isCompressedGPUFormat(f gputypes.TextureFormat) bool {
	return f >= gputypes.TextureFormatBC1RGBAUnorm && f <= gputypes.TextureFormatASTC12x12UnormSrgb
}

// String returns the GL name of the format.
func (f TexFormat) String() string {
	switch f {
	case FormatNone:
		return "NONE"
	case FormatDepthComponent:
		return "DEPTH_COMPONENT"
	case FormatAlpha:
		return "ALPHA"
	case FormatRGB:
		return "RGB"
	case FormatRGBA:
		return "RGBA"
	case FormatLuminance:
		return "LUMINANCE"
	case FormatLuminanceAlpha:
		return "LUMINANCE_ALPHA"
	case FormatDepthStencil:
		return "DEPTH_STENCIL"
	case FormatCompressedRGBS3TCDXT1:
		return "COMPRESSED_RGB_S3TC_DXT1"
	case FormatCompressedRGBAS3TCDXT1:
		return "COMPRESSED_RGBA_S3TC_DXT1"
	case FormatCompressedRGBAS3TCDXT3:
		return "COMPRESSED_RGBA_S3TC_DXT3"
	case FormatCompressedRGBAS3TCDXT5:
		return "COMPRESSED_RGBA_S3TC_DXT5"
	case FormatCompressedRGBETC1:
		return "COMPRESSED_RGB_ETC1"
	case FormatCompressedRGBAASTC4x4:
		return "COMPRESSED_RGBA_ASTC_4x4"
	default:
		return fmt.Sprintf("TexFormat(0x%04X)", uint32(f))
	}
}

// TexDataType is the GL type of uploaded texel data. The zero value means
// "not specified", which is what compressed uploads record.
type TexDataType uint32

// Texel data types.
const (
	DataTypeNone              TexDataType = 0
	DataTypeUnsignedByte      TexDataType = 0x1401
	DataTypeUnsignedShort     TexDataType = 0x1403
	DataTypeUnsignedInt       TexDataType = 0x1405
	DataTypeFloat             TexDataType = 0x1406
	DataTypeUnsignedShort4444 TexDataType = 0x8033
	DataTypeUnsignedShort5551 TexDataType = 0x8034
	DataTypeUnsignedShort565  TexDataType = 0x8363
	DataTypeUnsignedInt248    TexDataType = 0x84FA
	DataTypeHalfFloatOES      TexDataType = 0x8D61
)
