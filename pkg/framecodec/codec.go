// Package framecodec converts fixed-size byte chunks to one-bit bitmaps and
// recovers them from (possibly degraded) rasters.
package framecodec

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/user/vidstash/pkg/geometry"
	"github.com/user/vidstash/pkg/resample"
)

// DefaultThreshold is the luminance above which a pixel reads as a set bit.
const DefaultThreshold uint8 = 128

// ErrSizeMismatch is returned when a chunk or raster does not match the
// frame geometry.
var ErrSizeMismatch = errors.New("framecodec: size does not match geometry")

// ChunkToBitmap lays chunk out as a Width x Height bitmap. The chunk must be
// exactly BytesPerFrame bytes long. The bitmap owns a copy of the chunk.
func ChunkToBitmap(g geometry.Geometry, chunk []byte) (*Bitmap, error) {
	if len(chunk) != g.BytesPerFrame {
		return nil, fmt.Errorf("%w: chunk is %d bytes, want %d", ErrSizeMismatch, len(chunk), g.BytesPerFrame)
	}

	pix := make([]byte, len(chunk))
	copy(pix, chunk)
	return &Bitmap{
		Pix:  pix,
		Rect: image.Rect(0, 0, g.Width, g.Height),
	}, nil
}

// BitmapToChunk reads a chunk back from a stored raster.
//
// The raster is converted to luminance and binarized with threshold. When
// the geometry resamples, the binary raster is averaged down by the factor
// and binarized again before packing.
func BitmapToChunk(g geometry.Geometry, raster image.Image, threshold uint8) ([]byte, error) {
	gray := Luminance(raster)
	Binarize(gray, threshold)

	if g.Factor > 0 {
		gray = resample.Downscale(gray, g.Factor)
		Binarize(gray, threshold)
	}

	if gray.Rect.Dx() != g.Width || gray.Rect.Dy() != g.Height {
		return nil, fmt.Errorf("%w: raster %dx%d reads as %dx%d, want %dx%d",
			ErrSizeMismatch, raster.Bounds().Dx(), raster.Bounds().Dy(),
			gray.Rect.Dx(), gray.Rect.Dy(), g.Width, g.Height)
	}

	return pack(gray, g.BytesPerFrame), nil
}

// Luminance returns a grayscale copy of img with its origin at (0, 0).
func Luminance(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Rect, img, b.Min, draw.Src)
	return gray
}

// Binarize maps every pixel of gray to 255 when it is above threshold and to
// 0 otherwise.
func Binarize(gray *image.Gray, threshold uint8) {
	for y := gray.Rect.Min.Y; y < gray.Rect.Max.Y; y++ {
		row := gray.Pix[gray.PixOffset(gray.Rect.Min.X, y):gray.PixOffset(gray.Rect.Max.X, y)]
		for i, v := range row {
			if v > threshold {
				row[i] = 255
			} else {
				row[i] = 0
			}
		}
	}
}

// pack writes the first n*8 pixels of a binarized raster into n bytes.
func pack(gray *image.Gray, n int) []byte {
	out := make([]byte, n)
	w := gray.Rect.Dx()
	for i := 0; i < n*8; i++ {
		off := gray.PixOffset(gray.Rect.Min.X+i%w, gray.Rect.Min.Y+i/w)
		if gray.Pix[off] != 0 {
			out[i>>3] |= 0x80 >> (i & 7)
		}
	}
	return out
}
