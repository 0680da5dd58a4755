package ports

import "image"

// ImageCodec encodes and decodes still images.
type ImageCodec interface {
	// EncodePNG encodes img losslessly.
	EncodePNG(img image.Image) ([]byte, error)

	// Decode decodes PNG or JPEG data.
	Decode(data []byte) (image.Image, error)

	// Resize scales img to width x height with nearest-neighbour sampling
	// so bit patterns stay sharp.
	Resize(img image.Image, width, height int) image.Image
}
