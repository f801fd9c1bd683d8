package webgl

import (
	"math"

	"github.com/chewxy/math32"
)

// TexParameterValue is the argument of texParameteri or texParameterf. It
// remembers which entry point produced it and converts to the other
// representation following the GLES 2.0 rules.
type TexParameterValue struct {
	isFloat bool
	i       int32
	f       float32
}

// IntParameter wraps a texParameteri argument.
func IntParameter(v int32) TexParameterValue {
	return TexParameterValue{i: v}
}

// FloatParameter wraps a texParameterf argument.
func FloatParameter(v float32) TexParameterValue {
	return TexParameterValue{isFloat: true, f: v}
}

// Int returns the value as an integer. Floats are truncated toward zero and
// saturate at the int32 range; NaN converts to 0.
func (v TexParameterValue) Int() int32 {
	if !v.isFloat {
		return v.i
	}
	switch {
	case math32.IsNaN(v.f):
		return 0
	case v.f >= math.MaxInt32:
		return math.MaxInt32
	case v.f <= math.MinInt32:
		return math.MinInt32
	default:
		return int32(v.f)
	}
}

// Float returns the value as a float.
func (v TexParameterValue) Float() float32 {
	if v.isFloat {
		return v.f
	}
	return float32(v.i)
}

// parameterStore holds the cached filter state of a texture. Wrap modes are
// not cached, so every legal wrap change is forwarded.
type parameterStore struct {
	minFilter Enum
	magFilter Enum
}

func defaultParameters() parameterStore {
	return parameterStore{
		minFilter: NearestMipmapLinear,
		magFilter: Linear,
	}
}

func (p parameterStore) usesLinearFiltering() bool {
	return isLinearFilter(p.minFilter) || isLinearFilter(p.magFilter)
}

func isMinFilter(e Enum) bool {
	switch e {
	case Nearest, Linear,
		NearestMipmapNearest, LinearMipmapNearest,
		NearestMipmapLinear, LinearMipmapLinear:
		return true
	}
	return false
}

func isMagFilter(e Enum) bool {
	return e == Nearest || e == Linear
}

func isWrapMode(e Enum) bool {
	return e == ClampToEdge || e == MirroredRepeat || e == Repeat
}

func isLinearFilter(e Enum) bool {
	switch e {
	case Linear, NearestMipmapLinear, LinearMipmapNearest, LinearMipmapLinear:
		return true
	}
	return false
}
