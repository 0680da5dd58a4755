package pipeline

import (
	"errors"

	"github.com/user/vidstash/pkg/geometry"
	"github.com/user/vidstash/pkg/ports"
)

// ErrScratchIO is returned when an intermediate frame cannot be written to
// or read from the scratch directory.
var ErrScratchIO = errors.New("pipeline: scratch i/o failed")

// FrameWriteInput is the input of the frame write stage.
type FrameWriteInput struct {
	Data     []byte
	Geometry geometry.Geometry
	Store    ports.FrameStore
}

// FrameWriteResult is the output of the frame write stage.
type FrameWriteResult struct {
	FrameCount   int
	PaddingBytes int
}

// AssembleInput is the input of the assemble stage.
type AssembleInput struct {
	Store      ports.FrameStore
	OutputPath string
	FPS        float64
	Quality    int
	Bitrate    int
}

// AssembleResult is the output of the assemble stage.
type AssembleResult struct {
	FrameCount int
	Width      int
	Height     int
	DurationMs int
}

// ExtractInput is the input of the extract stage.
type ExtractInput struct {
	VideoPath string
	OutputDir string
}

// ExtractResult is the output of the extract stage.
type ExtractResult struct {
	FrameCount int
	// Info is nil when the container could not be probed.
	Info *ports.VideoInfo
}

// FrameReadInput is the input of the frame read stage.
type FrameReadInput struct {
	Store     ports.FrameStore
	Geometry  geometry.Geometry
	Threshold uint8
}

// FrameReadResult is the output of the frame read stage. Chunks are in
// frame order.
type FrameReadResult struct {
	Chunks [][]byte
}
