package mocks

import (
	"image"
	"sync"

	"github.com/user/vidstash/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	RunJSON []byte
	Bitmaps map[int]image.Image
	Closed  bool
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled: enabled,
		Bitmaps: make(map[int]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveRunJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RunJSON = data
	return nil
}

func (m *DebugSink) SaveBitmap(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Bitmaps[index] = img
	return nil
}

func (m *DebugSink) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}

// BitmapCount returns the number of saved bitmaps.
func (m *DebugSink) BitmapCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.Bitmaps)
}

var _ ports.DebugSink = (*DebugSink)(nil)
