// Package imagecodec implements ports.ImageCodec with the standard image
// encoders and golang.org/x/image scaling.
package imagecodec

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // frames extracted as JPEG
	"image/png"

	"golang.org/x/image/draw"

	"github.com/user/vidstash/pkg/ports"
)

// Codec implements ports.ImageCodec.
type Codec struct {
	encoder png.Encoder
}

// New creates a Codec. Scratch frames are written once and read once, so
// PNG compression favours speed.
func New() *Codec {
	return &Codec{
		encoder: png.Encoder{CompressionLevel: png.BestSpeed},
	}
}

// EncodePNG encodes img as PNG.
func (c *Codec) EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.encoder.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode decodes PNG or JPEG data.
func (c *Codec) Decode(data []byte) (image.Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if format != "png" && format != "jpeg" {
		return nil, fmt.Errorf("decode image: unsupported format %s", format)
	}
	return img, nil
}

// Resize scales img to width x height.
func (c *Codec) Resize(img image.Image, width, height int) image.Image {
	dst := image.NewGray(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Ensure Codec implements ports.ImageCodec
var _ ports.ImageCodec = (*Codec)(nil)
