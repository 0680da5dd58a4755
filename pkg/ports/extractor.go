package ports

import "context"

// FrameExtractor splits a video into numbered still images.
type FrameExtractor interface {
	// ExtractFrames writes every frame of videoPath into outputDir and
	// returns how many were written. Files are named by 1-based frame number
	// without zero padding.
	ExtractFrames(ctx context.Context, videoPath, outputDir string) (int, error)
}
