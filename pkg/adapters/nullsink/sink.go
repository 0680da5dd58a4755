// Package nullsink provides a debug sink that discards everything.
package nullsink

import (
	"image"

	"github.com/user/vidstash/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
type Sink struct{}

// New creates a new Sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

func (s *Sink) SaveRunJSON(data []byte) error               { return nil }
func (s *Sink) SaveBitmap(index int, img image.Image) error { return nil }
func (s *Sink) Close() error                                { return nil }

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
