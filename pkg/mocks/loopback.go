package mocks

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/user/vidstash/pkg/ports"
)

// Loopback stands in for a lossless video codec. Frames encoded to a path
// are kept in memory and written back as 1-based PNG files when that path
// is extracted, the way ffmpeg names them.
type Loopback struct {
	fs ports.FileSystem

	mu      sync.Mutex
	videos  map[string][]image.Image
	path    string
	pending []image.Image
	started bool

	// Recorded calls for verification
	AbortCalled bool
}

// NewLoopback creates a Loopback writing through fs.
func NewLoopback(fs ports.FileSystem) *Loopback {
	return &Loopback{
		fs:     fs,
		videos: make(map[string][]image.Image),
	}
}

func (l *Loopback) Begin(ctx context.Context, path string, width, height int, fps float64, opts ports.EncoderOptions) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.path = path
	l.pending = nil
	l.started = true
	return nil
}

func (l *Loopback) EncodeFrame(img image.Image) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.started {
		return fmt.Errorf("loopback: not started")
	}
	l.pending = append(l.pending, img)
	return nil
}

func (l *Loopback) End() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.started {
		return fmt.Errorf("loopback: not started")
	}
	l.started = false
	l.videos[l.path] = l.pending
	return l.fs.WriteFile(l.path, []byte(fmt.Sprintf("loopback video, %d frames", len(l.pending))))
}

func (l *Loopback) Abort() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.started = false
	l.pending = nil
	l.AbortCalled = true
}

func (l *Loopback) ExtractFrames(ctx context.Context, videoPath, outputDir string) (int, error) {
	l.mu.Lock()
	frames, ok := l.videos[videoPath]
	l.mu.Unlock()
	if !ok {
		return 0, fmt.Errorf("loopback: no video at %s", videoPath)
	}

	for i, img := range frames {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return i, err
		}
		name := filepath.Join(outputDir, strconv.Itoa(i+1)+".png")
		if err := l.fs.WriteFile(name, buf.Bytes()); err != nil {
			return i, err
		}
	}
	return len(frames), nil
}

// FrameCount returns the number of frames stored for path.
func (l *Loopback) FrameCount(path string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.videos[path])
}

var (
	_ ports.VideoEncoder   = (*Loopback)(nil)
	_ ports.FrameExtractor = (*Loopback)(nil)
)
