package mocks

import (
	"context"

	"github.com/user/vidstash/pkg/ports"
)

// FrameExtractor is a mock implementation of ports.FrameExtractor.
type FrameExtractor struct {
	ExtractFramesFunc func(ctx context.Context, videoPath, outputDir string) (int, error)

	// Recorded calls for verification
	VideoPath string
	OutputDir string
}

func (m *FrameExtractor) ExtractFrames(ctx context.Context, videoPath, outputDir string) (int, error) {
	m.VideoPath = videoPath
	m.OutputDir = outputDir
	if m.ExtractFramesFunc != nil {
		return m.ExtractFramesFunc(ctx, videoPath, outputDir)
	}
	return 0, nil
}

// VideoProbe is a mock implementation of ports.VideoProbe.
type VideoProbe struct {
	Info ports.VideoInfo
	Err  error

	ProbedPath string
}

func (m *VideoProbe) Probe(path string) (ports.VideoInfo, error) {
	m.ProbedPath = path
	if m.Err != nil {
		return ports.VideoInfo{}, m.Err
	}
	return m.Info, nil
}

var (
	_ ports.FrameExtractor = (*FrameExtractor)(nil)
	_ ports.VideoProbe     = (*VideoProbe)(nil)
)
