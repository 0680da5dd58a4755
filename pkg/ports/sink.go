package ports

import (
	"image"
)

// DebugSink receives intermediate results for inspection.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveRunJSON saves the run parameters and result as JSON.
	SaveRunJSON(data []byte) error

	// SaveBitmap saves the logical bitmap of frame index, before upscaling
	// on encode or after downscaling on decode. Safe for concurrent use.
	SaveBitmap(index int, img image.Image) error

	// Close writes any aggregated output.
	Close() error
}
