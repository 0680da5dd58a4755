// Package framestore keeps frames as PNG files in a scratch directory.
package framestore

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/vidstash/pkg/ports"
	"github.com/user/vidstash/pkg/sequence"
)

// Store implements ports.FrameStore on top of a FileSystem.
type Store struct {
	dir   string
	fs    ports.FileSystem
	codec ports.ImageCodec
}

// New creates a Store over dir.
func New(dir string, fs ports.FileSystem, codec ports.ImageCodec) *Store {
	return &Store{
		dir:   dir,
		fs:    fs,
		codec: codec,
	}
}

// Factory returns a ports.FrameStoreFactory sharing fs and codec.
func Factory(fs ports.FileSystem, codec ports.ImageCodec) ports.FrameStoreFactory {
	return func(dir string) ports.FrameStore {
		return New(dir, fs, codec)
	}
}

// Dir returns the backing directory.
func (s *Store) Dir() string {
	return s.dir
}

// SaveFrame writes img as <index>.png.
func (s *Store) SaveFrame(index int, img image.Image) error {
	data, err := s.codec.EncodePNG(img)
	if err != nil {
		return fmt.Errorf("encode frame %d: %w", index, err)
	}
	return s.fs.WriteFile(filepath.Join(s.dir, sequence.FrameName(index)), data)
}

// ListFrames returns the frame file names in the directory. Other files
// are ignored. The order is whatever the file system returns.
func (s *Store) ListFrames() ([]string, error) {
	names, err := s.fs.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	frames := names[:0]
	for _, name := range names {
		if sequence.IsFrame(name) {
			frames = append(frames, name)
		}
	}
	return frames, nil
}

// LoadFrame reads and decodes the frame stored under name.
func (s *Store) LoadFrame(name string) (image.Image, error) {
	data, err := s.fs.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, err
	}
	img, err := s.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("frame %s: %w", name, err)
	}
	return img, nil
}

// Ensure Store implements ports.FrameStore
var _ ports.FrameStore = (*Store)(nil)
