// Package debugsink writes intermediate results of a run to a directory.
package debugsink

import (
	"fmt"
	"image"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fogleman/gg"

	"github.com/user/vidstash/pkg/ports"
	"github.com/user/vidstash/pkg/sequence"
)

// DefaultSheetFrames is how many leading frames are kept for inspection.
const DefaultSheetFrames = 16

const (
	sheetColumns = 4
	cellWidth    = 240
	cellPadding  = 8
	labelHeight  = 18
)

// Sink saves run metadata, the first bitmaps of a run, and a contact sheet
// of those bitmaps.
type Sink struct {
	baseDir   string
	fs        ports.FileSystem
	codec     ports.ImageCodec
	maxFrames int

	mu      sync.Mutex
	bitmaps map[int]image.Image
}

// New creates a Sink writing under baseDir.
func New(baseDir string, fs ports.FileSystem, codec ports.ImageCodec) *Sink {
	return &Sink{
		baseDir:   baseDir,
		fs:        fs,
		codec:     codec,
		maxFrames: DefaultSheetFrames,
		bitmaps:   make(map[int]image.Image),
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveRunJSON saves the run description as run.json.
func (s *Sink) SaveRunJSON(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "run.json"), data)
}

// SaveBitmap keeps the bitmaps of the first frames and writes them to
// bitmaps/<index>.png. Later frames are ignored.
func (s *Sink) SaveBitmap(index int, img image.Image) error {
	if index >= s.maxFrames {
		return nil
	}

	s.mu.Lock()
	s.bitmaps[index] = img
	s.mu.Unlock()

	data, err := s.codec.EncodePNG(img)
	if err != nil {
		return fmt.Errorf("encode bitmap %d: %w", index, err)
	}
	return s.fs.WriteFile(filepath.Join(s.baseDir, "bitmaps", sequence.FrameName(index)), data)
}

// Close renders contact-sheet.png from the kept bitmaps.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.bitmaps) == 0 {
		return nil
	}

	indices := make([]int, 0, len(s.bitmaps))
	for i := range s.bitmaps {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	sheet := s.renderSheet(indices)
	data, err := s.codec.EncodePNG(sheet)
	if err != nil {
		return fmt.Errorf("encode contact sheet: %w", err)
	}
	return s.fs.WriteFile(filepath.Join(s.baseDir, "contact-sheet.png"), data)
}

func (s *Sink) renderSheet(indices []int) image.Image {
	first := s.bitmaps[indices[0]].Bounds()
	cellHeight := cellWidth * first.Dy() / first.Dx()
	if cellHeight < 1 {
		cellHeight = 1
	}

	cols := sheetColumns
	if len(indices) < cols {
		cols = len(indices)
	}
	rows := (len(indices) + cols - 1) / cols

	width := cols*(cellWidth+cellPadding) + cellPadding
	height := rows*(cellHeight+labelHeight+cellPadding) + cellPadding

	dc := gg.NewContext(width, height)
	dc.SetRGB(0.12, 0.12, 0.18)
	dc.Clear()

	for k, idx := range indices {
		x := cellPadding + (k%cols)*(cellWidth+cellPadding)
		y := cellPadding + (k/cols)*(cellHeight+labelHeight+cellPadding)

		thumb := s.codec.Resize(s.bitmaps[idx], cellWidth, cellHeight)
		dc.DrawImage(thumb, x, y)

		dc.SetRGB(0.9, 0.3, 0.3)
		dc.SetLineWidth(1)
		dc.DrawRectangle(float64(x)-0.5, float64(y)-0.5, cellWidth+1, float64(cellHeight)+1)
		dc.Stroke()

		dc.SetRGB(1, 1, 1)
		dc.DrawStringAnchored(fmt.Sprintf("frame %d", idx),
			float64(x)+cellWidth/2, float64(y+cellHeight)+labelHeight/2, 0.5, 0.5)
	}

	return dc.Image()
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
