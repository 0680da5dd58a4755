package mocks

import (
	"context"
	"image"
	"sync"

	"github.com/user/vidstash/pkg/ports"
)

// VideoEncoder is a mock implementation of ports.VideoEncoder.
type VideoEncoder struct {
	BeginFunc       func(ctx context.Context, path string, width, height int, fps float64, opts ports.EncoderOptions) error
	EncodeFrameFunc func(img image.Image) error
	EndFunc         func() error

	mu sync.Mutex

	// Recorded calls for verification
	BeginCalled bool
	Path        string
	Width       int
	Height      int
	FPS         float64
	Options     ports.EncoderOptions
	Frames      []image.Image
	EndCalled   bool
	AbortCalled bool
}

func (m *VideoEncoder) Begin(ctx context.Context, path string, width, height int, fps float64, opts ports.EncoderOptions) error {
	m.mu.Lock()
	m.BeginCalled = true
	m.Path, m.Width, m.Height, m.FPS, m.Options = path, width, height, fps, opts
	m.mu.Unlock()
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx, path, width, height, fps, opts)
	}
	return nil
}

func (m *VideoEncoder) EncodeFrame(img image.Image) error {
	m.mu.Lock()
	m.Frames = append(m.Frames, img)
	m.mu.Unlock()
	if m.EncodeFrameFunc != nil {
		return m.EncodeFrameFunc(img)
	}
	return nil
}

func (m *VideoEncoder) End() error {
	m.mu.Lock()
	m.EndCalled = true
	m.mu.Unlock()
	if m.EndFunc != nil {
		return m.EndFunc()
	}
	return nil
}

func (m *VideoEncoder) Abort() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AbortCalled = true
}

var _ ports.VideoEncoder = (*VideoEncoder)(nil)
