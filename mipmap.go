package webgl

// IsCubeComplete reports whether all six faces at level are initialized,
// share the format of face 0 and measure w×w, where w is the width of
// face 0. Comparing each height against the reference width is what
// enforces square faces.
func (t *ImageInfoTable) IsCubeComplete(level uint32) bool {
	if t.faceCount != MaxFaceCount {
		return false
	}

	ref := t.At(level, 0)
	if !ref.IsDefined() {
		return false
	}

	for face := 0; face < t.faceCount; face++ {
		info := t.At(level, face)
		if !info.IsInitialized() || !info.IsDefined() {
			return false
		}
		if info.internalFormat != ref.internalFormat ||
			info.width != ref.width ||
			info.height != ref.width {
			return false
		}
	}
	return true
}

// PopulateMipChain derives the images of the levels after firstLevel from
// face 0 of firstLevel, halving width and height down to 1×1. lastLevel is
// exclusive and capped at MaxLevelCount. Derived images carry the reference format and data type, have
// zero depth, and are written to every face.
//
// It fails with ErrInvalidOperation, writing nothing, when the reference
// image is uninitialized or has a zero width or height.
func (t *ImageInfoTable) PopulateMipChain(firstLevel, lastLevel uint32) error {
	ref := t.At(firstLevel, 0)
	if !ref.IsInitialized() {
		return ErrInvalidOperation
	}

	width, height := ref.width, ref.height
	if width == 0 || height == 0 {
		return ErrInvalidOperation
	}

	lastLevel = min(lastLevel, MaxLevelCount)
	for level := firstLevel + 1; level < lastLevel; level++ {
		if width == 1 && height == 1 {
			break
		}
		width = max(1, width/2)
		height = max(1, height/2)

		t.SetLevel(level, ImageInfo{
			width:          width,
			height:         height,
			internalFormat: ref.internalFormat,
			dataType:       ref.dataType,
			initialized:    true,
		})
	}
	return nil
}
