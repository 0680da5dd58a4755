package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"os/exec"
	"strconv"
	"sync"

	"github.com/user/vidstash/pkg/ports"
)

// DefaultCRF is used when no quality is requested.
const DefaultCRF = 23

// Encoder pipes raw grayscale frames into libx264.
type Encoder struct {
	ffmpegPath string

	mu         sync.Mutex
	cmd        *exec.Cmd
	cancel     context.CancelFunc
	stdin      io.WriteCloser
	stderr     bytes.Buffer
	path       string
	width      int
	height     int
	frame      *image.Gray
	frameCount int
}

// NewEncoder creates an Encoder. An empty ffmpegPath locates ffmpeg with Find.
func NewEncoder(ffmpegPath string) *Encoder {
	return &Encoder{ffmpegPath: ffmpegPath}
}

// CRF maps a 1-63 quality to x264's 0-51 CRF scale. 0 selects DefaultCRF.
func CRF(quality int) int {
	if quality <= 0 || quality > 63 {
		return DefaultCRF
	}
	return quality * 51 / 63
}

// Args returns the ffmpeg arguments for encoding width x height gray frames
// at fps into path.
func Args(path string, width, height int, fps float64, opts ports.EncoderOptions) []string {
	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-f", "rawvideo",
		"-pix_fmt", "gray",
		"-s", fmt.Sprintf("%dx%d", width, height),
		"-r", strconv.FormatFloat(fps, 'f', -1, 64),
		"-i", "pipe:0",
		"-c:v", "libx264",
		"-preset", "fast",
		"-pix_fmt", "yuv420p",
		"-crf", strconv.Itoa(CRF(opts.Quality)),
	}
	if opts.Bitrate > 0 {
		args = append(args, "-b:v", fmt.Sprintf("%dk", opts.Bitrate))
	}
	return append(args, "-movflags", "+faststart", path)
}

// Begin starts ffmpeg writing to path.
func (e *Encoder) Begin(ctx context.Context, path string, width, height int, fps float64, opts ports.EncoderOptions) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if width%2 != 0 || height%2 != 0 {
		return fmt.Errorf("%w: %dx%d", ErrOddDimensions, width, height)
	}

	ffmpegPath, err := Find(e.ffmpegPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(ctx, ffmpegPath, Args(path, width, height, fps, opts)...)
	e.stderr.Reset()
	cmd.Stderr = &e.stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		cancel()
		return fmt.Errorf("stdin pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		cancel()
		return fmt.Errorf("start ffmpeg: %w", err)
	}

	e.cmd = cmd
	e.cancel = cancel
	e.stdin = stdin
	e.path = path
	e.width = width
	e.height = height
	e.frame = image.NewGray(image.Rect(0, 0, width, height))
	e.frameCount = 0
	return nil
}

// EncodeFrame writes one frame to ffmpeg.
func (e *Encoder) EncodeFrame(img image.Image) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stdin == nil {
		return ErrNotInitialized
	}

	b := img.Bounds()
	if b.Dx() != e.width || b.Dy() != e.height {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrFrameSize, b.Dx(), b.Dy(), e.width, e.height)
	}

	pix := e.frame.Pix
	if g, ok := img.(*image.Gray); ok && g.Stride == e.width {
		pix = g.Pix[g.PixOffset(b.Min.X, b.Min.Y):][:e.width*e.height]
	} else {
		draw.Draw(e.frame, e.frame.Rect, img, b.Min, draw.Src)
	}

	if _, err := e.stdin.Write(pix); err != nil {
		return fmt.Errorf("write frame %d: %w", e.frameCount, err)
	}
	e.frameCount++
	return nil
}

// End closes ffmpeg's input and waits for the MP4 to be written.
func (e *Encoder) End() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stdin == nil {
		return ErrNotInitialized
	}

	e.stdin.Close()
	e.stdin = nil
	defer e.cancel()

	if err := e.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg encoding failed: %w\nstderr: %s", err, e.stderr.String())
	}
	return nil
}

// Abort kills ffmpeg and removes the partial output.
func (e *Encoder) Abort() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stdin == nil {
		return
	}
	e.stdin.Close()
	e.stdin = nil
	e.cancel()
	e.cmd.Wait()
	os.Remove(e.path)
}

// FrameCount returns the number of frames written since Begin.
func (e *Encoder) FrameCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frameCount
}

// Ensure Encoder implements ports.VideoEncoder
var _ ports.VideoEncoder = (*Encoder)(nil)
