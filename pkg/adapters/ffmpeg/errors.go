package ffmpeg

import "errors"

var (
	// ErrNotInitialized is returned when frames are sent before Begin or after End.
	ErrNotInitialized = errors.New("ffmpeg: encoder not initialized")

	// ErrFFmpegNotFound is returned when no ffmpeg executable can be located.
	ErrFFmpegNotFound = errors.New("ffmpeg: executable not found")

	// ErrOddDimensions is returned for frame sizes yuv420p cannot represent.
	ErrOddDimensions = errors.New("ffmpeg: frame dimensions must be even")

	// ErrFrameSize is returned when a frame does not match the size given to Begin.
	ErrFrameSize = errors.New("ffmpeg: frame size does not match stream")
)
