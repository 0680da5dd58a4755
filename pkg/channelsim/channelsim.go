// Package channelsim approximates what a lossy video codec does to frame
// pixels, so the robustness of a geometry can be measured without running
// an encoder.
package channelsim

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"math/bits"
	"math/rand/v2"

	"github.com/disintegration/gift"

	"github.com/user/vidstash/pkg/framecodec"
	"github.com/user/vidstash/pkg/geometry"
	"github.com/user/vidstash/pkg/resample"
	"github.com/user/vidstash/pkg/segment"
)

// Options describes the degradation applied to a frame. Zero values disable
// each step.
type Options struct {
	// BlurSigma is the standard deviation of a Gaussian blur in pixels.
	BlurSigma float32
	// Noise is the maximum absolute luminance change added to each pixel.
	Noise int
	// JPEGQuality re-encodes the frame as JPEG at this quality (1-100).
	JPEGQuality int
	// Seed makes the noise reproducible.
	Seed uint64
}

// DefaultOptions roughly matches an H.264 encode at the default quality.
func DefaultOptions() Options {
	return Options{
		BlurSigma:   0.8,
		Noise:       20,
		JPEGQuality: 75,
		Seed:        1,
	}
}

// Degrade returns a grayscale copy of img after blur, noise and JPEG
// recompression, in that order.
func Degrade(img image.Image, opts Options) (*image.Gray, error) {
	gray := framecodec.Luminance(img)

	if opts.BlurSigma > 0 {
		g := gift.New(gift.GaussianBlur(opts.BlurSigma))
		blurred := image.NewGray(g.Bounds(gray.Bounds()))
		g.Draw(blurred, gray)
		gray = blurred
	}

	if opts.Noise > 0 {
		addNoise(gray, opts.Noise, opts.Seed)
	}

	if opts.JPEGQuality > 0 {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, gray, &jpeg.Options{Quality: opts.JPEGQuality}); err != nil {
			return nil, fmt.Errorf("jpeg encode: %w", err)
		}
		decoded, err := jpeg.Decode(&buf)
		if err != nil {
			return nil, fmt.Errorf("jpeg decode: %w", err)
		}
		gray = framecodec.Luminance(decoded)
	}

	return gray, nil
}

func addNoise(gray *image.Gray, amplitude int, seed uint64) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i, v := range gray.Pix {
		n := int(v) + rng.IntN(2*amplitude+1) - amplitude
		gray.Pix[i] = uint8(min(max(n, 0), 255))
	}
}

// Report summarizes a Measure run.
type Report struct {
	Frames      int
	Bits        int64
	BitErrors   int64
	FrameErrors int // frames with at least one wrong bit
}

// BitErrorRate returns BitErrors/Bits, or 0 when nothing was measured.
func (r Report) BitErrorRate() float64 {
	if r.Bits == 0 {
		return 0
	}
	return float64(r.BitErrors) / float64(r.Bits)
}

// Measure encodes data into frames with g, degrades every frame and decodes
// it again with threshold, counting the bits that changed. Frame i uses
// opts.Seed+i.
func Measure(ctx context.Context, g geometry.Geometry, data []byte, opts Options, threshold uint8) (Report, error) {
	var report Report
	for i, chunk := range segment.Chunks(data, g.BytesPerFrame) {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		bm, err := framecodec.ChunkToBitmap(g, chunk)
		if err != nil {
			return report, err
		}

		frameOpts := opts
		frameOpts.Seed = opts.Seed + uint64(i)
		degraded, err := Degrade(resample.Upscale(bm, g.Factor), frameOpts)
		if err != nil {
			return report, fmt.Errorf("frame %d: %w", i, err)
		}

		decoded, err := framecodec.BitmapToChunk(g, degraded, threshold)
		if err != nil {
			return report, fmt.Errorf("frame %d: %w", i, err)
		}

		errs := 0
		for j := range chunk {
			errs += bits.OnesCount8(chunk[j] ^ decoded[j])
		}
		report.Frames++
		report.Bits += int64(len(chunk)) * 8
		report.BitErrors += int64(errs)
		if errs > 0 {
			report.FrameErrors++
		}
	}
	return report, nil
}
