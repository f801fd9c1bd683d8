// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package executor

import (
	"github.com/cockroachdb/errors"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/webgl"
)

const (
	// maxAnisotropy is the largest anisotropy a sampler accepts.
	maxAnisotropy = 16

	// mipmappedLodMaxClamp lets sampling reach every level.
	mipmappedLodMaxClamp = 32
)

// defaultSampler is the GL initial sampler state: NEAREST_MIPMAP_LINEAR,
// LINEAR and REPEAT on every axis.
func defaultSampler() gputypes.SamplerDescriptor {
	s := gputypes.DefaultSamplerDescriptor()
	s.AddressModeU = gputypes.AddressModeRepeat
	s.AddressModeV = gputypes.AddressModeRepeat
	s.AddressModeW = gputypes.AddressModeRepeat
	s.MagFilter = gputypes.FilterModeLinear
	s.MinFilter = gputypes.FilterModeNearest
	s.MipmapFilter = gputypes.MipmapFilterModeLinear
	s.LodMaxClamp = mipmappedLodMaxClamp
	return s
}

// setParameteri applies an integer texture parameter to s.
func setParameteri(s *gputypes.SamplerDescriptor, param webgl.Enum, value int32) error {
	v := webgl.Enum(uint32(value))
	switch param {
	case webgl.TextureMinFilter:
		return setMinFilter(s, v)
	case webgl.TextureMagFilter:
		switch v {
		case webgl.Nearest:
			s.MagFilter = gputypes.FilterModeNearest
		case webgl.Linear:
			s.MagFilter = gputypes.FilterModeLinear
		default:
			return errors.Wrapf(ErrInvalidArgument, "mag filter %s", v)
		}
	case webgl.TextureWrapS:
		m, err := addressMode(v)
		if err != nil {
			return err
		}
		s.AddressModeU = m
	case webgl.TextureWrapT:
		m, err := addressMode(v)
		if err != nil {
			return err
		}
		s.AddressModeV = m
	case webgl.TextureMaxAnisotropyEXT:
		return setParameterf(s, param, float32(value))
	default:
		return errors.Wrapf(ErrInvalidArgument, "texture parameter %s", param)
	}
	return nil
}

// setParameterf applies a float texture parameter to s. Anisotropy is
// clamped to the supported range.
func setParameterf(s *gputypes.SamplerDescriptor, param webgl.Enum, value float32) error {
	if param != webgl.TextureMaxAnisotropyEXT {
		return setParameteri(s, param, webgl.FloatParameter(value).Int())
	}
	if !(value >= 1) {
		return errors.Wrapf(ErrInvalidArgument, "anisotropy %v", value)
	}
	s.MaxAnisotropy = uint16(min(value, maxAnisotropy))
	return nil
}

// setMinFilter splits a GL minification filter into the min and mipmap
// filters. The filters without a mipmap component clamp sampling to the
// base level.
func setMinFilter(s *gputypes.SamplerDescriptor, v webgl.Enum) error {
	minFilter := gputypes.FilterModeNearest
	mipFilter := gputypes.MipmapFilterModeNearest
	lodMax := float32(mipmappedLodMaxClamp)

	switch v {
	case webgl.Nearest:
		lodMax = 0
	case webgl.Linear:
		minFilter, lodMax = gputypes.FilterModeLinear, 0
	case webgl.NearestMipmapNearest:
	case webgl.LinearMipmapNearest:
		minFilter = gputypes.FilterModeLinear
	case webgl.NearestMipmapLinear:
		mipFilter = gputypes.MipmapFilterModeLinear
	case webgl.LinearMipmapLinear:
		minFilter, mipFilter = gputypes.FilterModeLinear, gputypes.MipmapFilterModeLinear
	default:
		return errors.Wrapf(ErrInvalidArgument, "min filter %s", v)
	}
	s.MinFilter = minFilter
	s.MipmapFilter = mipFilter
	s.LodMaxClamp = lodMax
	return nil
}

func addressMode(v webgl.Enum) (gputypes.AddressMode, error) {
	switch v {
	case webgl.Repeat:
		return gputypes.AddressModeRepeat, nil
	case webgl.ClampToEdge:
		return gputypes.AddressModeClampToEdge, nil
	case webgl.MirroredRepeat:
		return gputypes.AddressModeMirrorRepeat, nil
	default:
		return gputypes.AddressModeUndefined, errors.Wrapf(ErrInvalidArgument, "wrap mode %s", v)
	}
}

// viewDimension returns the view dimension of a binding target.
func viewDimension(target webgl.Enum) (gputypes.TextureViewDimension, error) {
	switch target {
	case webgl.Texture2D:
		return gputypes.TextureViewDimension2D, nil
	case webgl.TextureCubeMap:
		return gputypes.TextureViewDimensionCube, nil
	default:
		return gputypes.TextureViewDimensionUndefined, errors.Wrapf(ErrInvalidArgument, "binding target %s", target)
	}
}
