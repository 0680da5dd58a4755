// Package resample scales bitmaps between their logical size and the size
// stored in the video.
package resample

import (
	"image"

	"golang.org/x/image/draw"
)

// Upscale enlarges img by an integer factor using nearest-neighbour
// sampling, so every source pixel becomes a solid factor x factor block.
// Factors of 0 and 1 return img unchanged.
func Upscale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}

	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Downscale shrinks gray by an integer factor. Each output pixel is the
// rounded mean of its factor x factor source block. Trailing rows and
// columns that do not fill a whole block are dropped. Factors of 0 and 1
// return gray unchanged.
func Downscale(gray *image.Gray, factor int) *image.Gray {
	if factor <= 1 {
		return gray
	}

	b := gray.Bounds()
	w, h := b.Dx()/factor, b.Dy()/factor
	dst := image.NewGray(image.Rect(0, 0, w, h))
	area := factor * factor

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum := 0
			for dy := 0; dy < factor; dy++ {
				off := gray.PixOffset(b.Min.X+x*factor, b.Min.Y+y*factor+dy)
				for _, v := range gray.Pix[off : off+factor] {
					sum += int(v)
				}
			}
			dst.Pix[y*dst.Stride+x] = uint8((sum + area/2) / area)
		}
	}

	return dst
}
