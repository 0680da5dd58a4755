package mocks

import (
	"fmt"
	"image"
	"os"
	"sync"

	"github.com/user/vidstash/pkg/ports"
	"github.com/user/vidstash/pkg/sequence"
)

// FrameStore is an in-memory implementation of ports.FrameStore.
// ListFrames returns names in map order, so callers must sort.
type FrameStore struct {
	mu     sync.RWMutex
	dir    string
	frames map[string]image.Image

	SaveFrameFunc func(index int, img image.Image) error
	LoadFrameFunc func(name string) (image.Image, error)
}

// NewFrameStore creates an empty FrameStore.
func NewFrameStore(dir string) *FrameStore {
	return &FrameStore{
		dir:    dir,
		frames: make(map[string]image.Image),
	}
}

func (m *FrameStore) Dir() string {
	return m.dir
}

func (m *FrameStore) SaveFrame(index int, img image.Image) error {
	if m.SaveFrameFunc != nil {
		if err := m.SaveFrameFunc(index, img); err != nil {
			return err
		}
	}
	m.Put(sequence.FrameName(index), img)
	return nil
}

func (m *FrameStore) ListFrames() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.frames))
	for name := range m.frames {
		names = append(names, name)
	}
	return names, nil
}

func (m *FrameStore) LoadFrame(name string) (image.Image, error) {
	if m.LoadFrameFunc != nil {
		return m.LoadFrameFunc(name)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	img, ok := m.frames[name]
	if !ok {
		return nil, fmt.Errorf("frame %s: %w", name, os.ErrNotExist)
	}
	return img, nil
}

// Put stores img under an arbitrary name.
func (m *FrameStore) Put(name string, img image.Image) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frames[name] = img
}

// Get returns the frame stored under name (for test verification).
func (m *FrameStore) Get(name string) (image.Image, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	img, ok := m.frames[name]
	return img, ok
}

// Len returns the number of stored frames.
func (m *FrameStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.frames)
}

var _ ports.FrameStore = (*FrameStore)(nil)
