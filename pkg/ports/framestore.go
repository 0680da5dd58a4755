package ports

import "image"

// FrameStore persists frames in a scratch directory.
type FrameStore interface {
	// Dir returns the directory backing the store.
	Dir() string

	// SaveFrame stores img as the frame at index.
	SaveFrame(index int, img image.Image) error

	// ListFrames returns the names of the stored frames in directory order.
	ListFrames() ([]string, error)

	// LoadFrame decodes the frame stored under name.
	LoadFrame(name string) (image.Image, error)
}

// FrameStoreFactory opens a FrameStore over a directory.
type FrameStoreFactory func(dir string) FrameStore
