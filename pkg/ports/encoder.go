package ports

import (
	"context"
	"image"
)

// VideoEncoder assembles a sequence of frames into a video file.
type VideoEncoder interface {
	// Begin starts writing a video of width x height frames at fps to path.
	// The context bounds the lifetime of the encode.
	Begin(ctx context.Context, path string, width, height int, fps float64, opts EncoderOptions) error

	// EncodeFrame appends one frame. Frames must match the size given to Begin.
	EncodeFrame(img image.Image) error

	// End finalizes the video.
	End() error

	// Abort stops a started encode and discards partial output.
	Abort()
}

// EncoderOptions configures video encoding parameters.
type EncoderOptions struct {
	Bitrate int // Target bitrate in kbps, 0 for quality-driven
	Quality int // 1-63, lower is better; 0 selects the encoder default
}
