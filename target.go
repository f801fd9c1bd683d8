package webgl

// TexImageTarget names one image of a texture: the single image of a 2D
// texture, or one face of a cube map.
type TexImageTarget Enum

// Image targets.
const (
	TexImage2D            = TexImageTarget(Texture2D)
	TexImageCubePositiveX = TexImageTarget(TextureCubeMapPositiveX)
	TexImageCubeNegativeX = TexImageTarget(TextureCubeMapNegativeX)
	TexImageCubePositiveY = TexImageTarget(TextureCubeMapPositiveY)
	TexImageCubeNegativeY = TexImageTarget(TextureCubeMapNegativeY)
	TexImageCubePositiveZ = TexImageTarget(TextureCubeMapPositiveZ)
	TexImageCubeNegativeZ = TexImageTarget(TextureCubeMapNegativeZ)
)

// CubeFaces lists the cube map image targets in face index order.
var CubeFaces = [MaxFaceCount]TexImageTarget{
	TexImageCubePositiveX,
	TexImageCubeNegativeX,
	TexImageCubePositiveY,
	TexImageCubeNegativeY,
	TexImageCubePositiveZ,
	TexImageCubeNegativeZ,
}

// ParseTexImageTarget validates an enumerant passed where an image target
// is expected.
func ParseTexImageTarget(e Enum) (TexImageTarget, error) {
	t := TexImageTarget(e)
	if !t.valid() {
		return 0, ErrInvalidEnum
	}
	return t, nil
}

func (t TexImageTarget) valid() bool {
	return t == TexImage2D || (t >= TexImageCubePositiveX && t <= TexImageCubeNegativeZ)
}

// FaceIndex returns the face slot of t: 0 for 2D, 0 through 5 for the cube
// faces in +X, -X, +Y, -Y, +Z, -Z order.
func (t TexImageTarget) FaceIndex() int {
	if t >= TexImageCubePositiveX && t <= TexImageCubeNegativeZ {
		return int(t - TexImageCubePositiveX)
	}
	return 0
}

// BindTarget returns the binding target a texture must have for t to name
// one of its images.
func (t TexImageTarget) BindTarget() Enum {
	if t == TexImage2D {
		return Texture2D
	}
	return TextureCubeMap
}

// String returns the GL name of the target.
func (t TexImageTarget) String() string {
	return Enum(t).String()
}
