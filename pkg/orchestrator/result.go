package orchestrator

import (
	"time"

	"github.com/user/vidstash/pkg/geometry"
)

// Run modes.
const (
	ModeEncode = "encode"
	ModeDecode = "decode"
)

// RunResult contains the results of a run for summary generation.
type RunResult struct {
	Mode       string `json:"mode"`
	InputPath  string `json:"input"`
	OutputPath string `json:"output"`

	InputBytes   int64 `json:"input_bytes"`
	OutputBytes  int64 `json:"output_bytes"`
	FrameCount   int   `json:"frames"`
	PaddingBytes int   `json:"padding_bytes,omitempty"`

	Geometry geometry.Geometry `json:"geometry"`
	FPS      float64           `json:"fps"`
	Codec    string            `json:"codec,omitempty"`
	VideoMs  int               `json:"video_ms,omitempty"`

	ScratchDir  string        `json:"scratch_dir"`
	KeptScratch bool          `json:"kept_scratch"`
	Appended    bool          `json:"appended,omitempty"`
	Elapsed     time.Duration `json:"elapsed_ns"`
}
