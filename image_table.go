package webgl

import "fmt"

const (
	// MaxLevelCount is the number of mip levels a texture can describe.
	MaxLevelCount = 31

	// MaxFaceCount is the number of faces of a cube map.
	MaxFaceCount = 6
)

// ImageInfoTable stores the ImageInfo of every (level, face) slot of one
// texture. Slots are addressed as level*faceCount + face, so the layout
// depends on the face count chosen when the texture is first bound.
//
// Indexes outside the table, or a face beyond the face count, are
// programming errors and panic.
type ImageInfoTable struct {
	faceCount int
	infos     [MaxLevelCount * MaxFaceCount]ImageInfo
}

// FaceCount returns 0 before the face count is set, then 1 or 6.
func (t *ImageInfoTable) FaceCount() int {
	return t.faceCount
}

func (t *ImageInfoTable) setFaceCount(n int) {
	if n != 1 && n != MaxFaceCount {
		panic(fmt.Sprintf("webgl: invalid face count %d", n))
	}
	t.faceCount = n
}

// At returns the image at (level, face). Before the face count is set every
// slot reads as the zero ImageInfo.
func (t *ImageInfoTable) At(level uint32, face int) ImageInfo {
	if t.faceCount == 0 {
		checkLevel(level)
		return ImageInfo{}
	}
	return t.infos[t.index(level, face)]
}

// Set stores info at (level, face).
func (t *ImageInfoTable) Set(level uint32, face int, info ImageInfo) {
	t.infos[t.index(level, face)] = info
}

// SetLevel stores info at every face of level.
func (t *ImageInfoTable) SetLevel(level uint32, info ImageInfo) {
	for face := 0; face < t.faceCount; face++ {
		t.Set(level, face, info)
	}
}

func (t *ImageInfoTable) index(level uint32, face int) int {
	checkLevel(level)
	if face < 0 || face >= t.faceCount {
		panic(fmt.Sprintf("webgl: face %d out of range [0,%d)", face, t.faceCount))
	}
	return int(level)*t.faceCount + face
}

func checkLevel(level uint32) {
	if level >= MaxLevelCount {
		panic(fmt.Sprintf("webgl: mip level %d out of range [0,%d)", level, MaxLevelCount))
	}
}
