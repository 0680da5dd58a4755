// Package summarizer provides summary generation for encode and decode runs.
package summarizer

import "time"

// Summary contains all data collected during a run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time
	Mode        string // "encode" or "decode"

	Files    FileInfo
	Frames   FrameInfo
	Settings Settings
	Video    VideoInfo

	Elapsed time.Duration
}

// FileInfo describes the input and output of the run.
type FileInfo struct {
	InputPath   string
	OutputPath  string
	InputBytes  int64
	OutputBytes int64
	Appended    bool
}

// FrameInfo describes the frame sequence.
type FrameInfo struct {
	Count         int
	BytesPerFrame int
	PaddingBytes  int
	BaseWidth     int
	BaseHeight    int
	StorageWidth  int
	StorageHeight int
	Factor        int
}

// Settings contains the run configuration.
type Settings struct {
	Preset      string
	Threshold   int
	Quality     int
	CRF         int
	Workers     int
	KeepScratch bool
	ScratchDir  string
}

// VideoInfo contains information about the video container.
type VideoInfo struct {
	Codec      string
	FPS        float64
	DurationMs int
	Width      int
	Height     int
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithMode sets the run mode.
func (b *Builder) WithMode(mode string) *Builder {
	b.summary.Mode = mode
	return b
}

// WithFiles sets input and output information.
func (b *Builder) WithFiles(files FileInfo) *Builder {
	b.summary.Files = files
	return b
}

// WithFrames sets frame information.
func (b *Builder) WithFrames(frames FrameInfo) *Builder {
	b.summary.Frames = frames
	return b
}

// WithSettings sets run settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithVideo sets video information.
func (b *Builder) WithVideo(video VideoInfo) *Builder {
	b.summary.Video = video
	return b
}

// WithElapsed sets the wall-clock duration of the run.
func (b *Builder) WithElapsed(d time.Duration) *Builder {
	b.summary.Elapsed = d
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
