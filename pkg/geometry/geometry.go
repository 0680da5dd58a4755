// Package geometry describes the frame layout shared by the encode and
// decode pipelines.
package geometry

import (
	"errors"
	"fmt"
)

// Defaults used when no configuration overrides them.
const (
	DefaultBaseWidth  = 1280
	DefaultBaseHeight = 720
	DefaultFactor     = 4
)

// ErrInvalidGeometry is returned when a geometry cannot carry any payload.
var ErrInvalidGeometry = errors.New("geometry: invalid frame geometry")

// Geometry is the immutable frame layout of a run.
//
// Width and Height are the effective bitmap dimensions: the base dimensions
// divided by Factor when Factor > 0. Each frame carries BytesPerFrame bytes,
// one bit per effective pixel.
type Geometry struct {
	BaseWidth     int
	BaseHeight    int
	Factor        int
	Width         int
	Height        int
	BytesPerFrame int
}

// New derives a Geometry from base dimensions and a downscale factor.
// A factor of 0 disables resampling.
func New(baseWidth, baseHeight, factor int) (Geometry, error) {
	if baseWidth <= 0 || baseHeight <= 0 {
		return Geometry{}, fmt.Errorf("%w: base size %dx%d", ErrInvalidGeometry, baseWidth, baseHeight)
	}
	if factor < 0 {
		return Geometry{}, fmt.Errorf("%w: negative downscale factor %d", ErrInvalidGeometry, factor)
	}

	w, h := baseWidth, baseHeight
	if factor > 0 {
		w /= factor
		h /= factor
	}

	bpf := w * h / 8
	if bpf <= 0 {
		return Geometry{}, fmt.Errorf("%w: %dx%d at factor %d holds no whole byte", ErrInvalidGeometry, baseWidth, baseHeight, factor)
	}

	return Geometry{
		BaseWidth:     baseWidth,
		BaseHeight:    baseHeight,
		Factor:        factor,
		Width:         w,
		Height:        h,
		BytesPerFrame: bpf,
	}, nil
}

// Default returns the 1280x720 geometry at factor 4.
func Default() Geometry {
	g, _ := New(DefaultBaseWidth, DefaultBaseHeight, DefaultFactor)
	return g
}

// Scale returns the integer scale between bitmap and stored raster.
func (g Geometry) Scale() int {
	if g.Factor > 0 {
		return g.Factor
	}
	return 1
}

// StorageWidth is the width of a raster as stored in the video.
func (g Geometry) StorageWidth() int {
	return g.Width * g.Scale()
}

// StorageHeight is the height of a raster as stored in the video.
func (g Geometry) StorageHeight() int {
	return g.Height * g.Scale()
}

// Frames returns how many frames a payload of n bytes occupies.
func (g Geometry) Frames(n int64) int64 {
	bpf := int64(g.BytesPerFrame)
	return (n + bpf - 1) / bpf
}

// Capacity returns how many payload bytes fit into the given number of frames.
func (g Geometry) Capacity(frames int64) int64 {
	return frames * int64(g.BytesPerFrame)
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d/%d -> %dx%d (%d bytes/frame)",
		g.BaseWidth, g.BaseHeight, g.Factor, g.Width, g.Height, g.BytesPerFrame)
}
