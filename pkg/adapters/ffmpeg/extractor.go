package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/user/vidstash/pkg/ports"
	"github.com/user/vidstash/pkg/sequence"
)

// Extractor splits a video into 1.png, 2.png, ... with ffmpeg.
type Extractor struct {
	ffmpegPath string
}

// NewExtractor creates an Extractor. An empty ffmpegPath locates ffmpeg with Find.
func NewExtractor(ffmpegPath string) *Extractor {
	return &Extractor{ffmpegPath: ffmpegPath}
}

// ExtractArgs returns the ffmpeg arguments for writing every frame of
// videoPath into outputDir without dropping or duplicating frames.
func ExtractArgs(videoPath, outputDir string) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-i", videoPath,
		"-vsync", "0",
		"-pix_fmt", "gray",
		"-f", "image2",
		filepath.Join(outputDir, "%d"+sequence.FrameExt),
	}
}

// ExtractFrames runs ffmpeg and counts the frames it wrote.
func (x *Extractor) ExtractFrames(ctx context.Context, videoPath, outputDir string) (int, error) {
	ffmpegPath, err := Find(x.ffmpegPath)
	if err != nil {
		return 0, err
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, ffmpegPath, ExtractArgs(videoPath, outputDir)...)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, ctxErr
		}
		return 0, fmt.Errorf("ffmpeg extraction failed: %w\nstderr: %s", err, stderr.String())
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return 0, fmt.Errorf("read extracted frames: %w", err)
	}
	count := 0
	for _, e := range entries {
		if !e.IsDir() && sequence.IsFrame(e.Name()) {
			count++
		}
	}
	return count, nil
}

// Ensure Extractor implements ports.FrameExtractor
var _ ports.FrameExtractor = (*Extractor)(nil)
