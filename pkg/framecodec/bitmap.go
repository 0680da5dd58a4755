package framecodec

import (
	"image"
	"image/color"
)

// Bitmap is a packed one-bit raster. Pixel i in row-major order is bit i of
// Pix, most significant bit first. Set bits are white, clear bits and bits
// past the end of Pix are black.
type Bitmap struct {
	Pix  []byte
	Rect image.Rectangle
}

// NewBitmap allocates a black bitmap able to hold every pixel of a w x h
// raster.
func NewBitmap(w, h int) *Bitmap {
	return &Bitmap{
		Pix:  make([]byte, (w*h+7)/8),
		Rect: image.Rect(0, 0, w, h),
	}
}

// ColorModel implements image.Image.
func (b *Bitmap) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds implements image.Image.
func (b *Bitmap) Bounds() image.Rectangle {
	return b.Rect
}

// At implements image.Image.
func (b *Bitmap) At(x, y int) color.Color {
	return b.GrayAt(x, y)
}

// GrayAt returns the pixel at (x, y) as black or white.
func (b *Bitmap) GrayAt(x, y int) color.Gray {
	if b.Bit(x, y) {
		return color.Gray{Y: 255}
	}
	return color.Gray{Y: 0}
}

// Bit reports whether the pixel at (x, y) is set.
func (b *Bitmap) Bit(x, y int) bool {
	i, ok := b.bitIndex(x, y)
	if !ok || i>>3 >= len(b.Pix) {
		return false
	}
	return b.Pix[i>>3]&(0x80>>(i&7)) != 0
}

// SetBit sets or clears the pixel at (x, y). Pixels outside the bounds or
// past the end of Pix are ignored.
func (b *Bitmap) SetBit(x, y int, on bool) {
	i, ok := b.bitIndex(x, y)
	if !ok || i>>3 >= len(b.Pix) {
		return
	}
	if on {
		b.Pix[i>>3] |= 0x80 >> (i & 7)
	} else {
		b.Pix[i>>3] &^= 0x80 >> (i & 7)
	}
}

func (b *Bitmap) bitIndex(x, y int) (int, bool) {
	if !(image.Point{X: x, Y: y}.In(b.Rect)) {
		return 0, false
	}
	return (y-b.Rect.Min.Y)*b.Rect.Dx() + (x - b.Rect.Min.X), true
}

var _ image.Image = (*Bitmap)(nil)
