package webgl

import "fmt"

// Enum is a GL symbolic constant as it arrives from the API surface.
type Enum uint32

// Texture binding targets.
const (
	Texture2D      Enum = 0x0DE1
	TextureCubeMap Enum = 0x8513

	TextureCubeMapPositiveX Enum = 0x8515
	TextureCubeMapNegativeX Enum = 0x8516
	TextureCubeMapPositiveY Enum = 0x8517
	TextureCubeMapNegativeY Enum = 0x8518
	TextureCubeMapPositiveZ Enum = 0x8519
	TextureCubeMapNegativeZ Enum = 0x851A
)

// Texture parameter names.
const (
	TextureMagFilter Enum = 0x2800
	TextureMinFilter Enum = 0x2801
	TextureWrapS     Enum = 0x2802
	TextureWrapT     Enum = 0x2803

	// TextureMaxAnisotropyEXT comes from EXT_texture_filter_anisotropic.
	TextureMaxAnisotropyEXT Enum = 0x84FE
)

// Filter values.
const (
	Nearest              Enum = 0x2600
	Linear               Enum = 0x2601
	NearestMipmapNearest Enum = 0x2700
	LinearMipmapNearest  Enum = 0x2701
	NearestMipmapLinear  Enum = 0x2702
	LinearMipmapLinear   Enum = 0x2703
)

// Wrap values.
const (
	Repeat         Enum = 0x2901
	ClampToEdge    Enum = 0x812F
	MirroredRepeat Enum = 0x8370
)

// Framebuffer attachment points.
const (
	ColorAttachment0       Enum = 0x8CE0
	DepthAttachment        Enum = 0x8D00
	StencilAttachment      Enum = 0x8D20
	DepthStencilAttachment Enum = 0x821A
)

var enumNames = map[Enum]string{
	Texture2D:               "TEXTURE_2D",
	TextureCubeMap:          "TEXTURE_CUBE_MAP",
	TextureCubeMapPositiveX: "TEXTURE_CUBE_MAP_POSITIVE_X",
	TextureCubeMapNegativeX: "TEXTURE_CUBE_MAP_NEGATIVE_X",
	TextureCubeMapPositiveY: "TEXTURE_CUBE_MAP_POSITIVE_Y",
	TextureCubeMapNegativeY: "TEXTURE_CUBE_MAP_NEGATIVE_Y",
	TextureCubeMapPositiveZ: "TEXTURE_CUBE_MAP_POSITIVE_Z",
	TextureCubeMapNegativeZ: "TEXTURE_CUBE_MAP_NEGATIVE_Z",
	TextureMagFilter:        "TEXTURE_MAG_FILTER",
	TextureMinFilter:        "TEXTURE_MIN_FILTER",
	TextureWrapS:            "TEXTURE_WRAP_S",
	TextureWrapT:            "TEXTURE_WRAP_T",
	TextureMaxAnisotropyEXT: "TEXTURE_MAX_ANISOTROPY_EXT",
	Nearest:                 "NEAREST",
	Linear:                  "LINEAR",
	NearestMipmapNearest:    "NEAREST_MIPMAP_NEAREST",
	LinearMipmapNearest:     "LINEAR_MIPMAP_NEAREST",
	NearestMipmapLinear:     "NEAREST_MIPMAP_LINEAR",
	LinearMipmapLinear:      "LINEAR_MIPMAP_LINEAR",
	Repeat:                  "REPEAT",
	ClampToEdge:             "CLAMP_TO_EDGE",
	MirroredRepeat:          "MIRRORED_REPEAT",
	ColorAttachment0:        "COLOR_ATTACHMENT0",
	DepthAttachment:         "DEPTH_ATTACHMENT",
	StencilAttachment:       "STENCIL_ATTACHMENT",
	DepthStencilAttachment:  "DEPTH_STENCIL_ATTACHMENT",
}

// String returns the GL name of e, or its hex value when unknown.
func (e Enum) String() string {
	if name, ok := enumNames[e]; ok {
		return name
	}
	return fmt.Sprintf("0x%04X", uint32(e))
}
