// Package extract implements the stage that splits a video into frame
// images.
package extract

import (
	"context"
	"fmt"

	"github.com/user/vidstash/pkg/pipeline"
	"github.com/user/vidstash/pkg/ports"
)

// Stage probes the container and extracts every frame into a directory.
type Stage struct {
	extractor ports.FrameExtractor
	probe     ports.VideoProbe
	logger    ports.Logger
}

// NewStage creates a new extract stage. probe may be nil.
func NewStage(extractor ports.FrameExtractor, probe ports.VideoProbe, logger ports.Logger) *Stage {
	return &Stage{
		extractor: extractor,
		probe:     probe,
		logger:    logger.WithComponent("extract"),
	}
}

// Execute extracts the frames of input.VideoPath into input.OutputDir.
// A container that cannot be probed is not an error; extraction decides.
func (s *Stage) Execute(ctx context.Context, input pipeline.ExtractInput) (pipeline.ExtractResult, error) {
	var result pipeline.ExtractResult

	if s.probe != nil {
		info, err := s.probe.Probe(input.VideoPath)
		if err != nil {
			s.logger.Debug("Could not read container metadata: %s", err)
		} else {
			s.logger.Debug("Video track: %s %dx%d, %d frames", info.Codec, info.Width, info.Height, info.Frames)
			result.Info = &info
		}
	}

	n, err := s.extractor.ExtractFrames(ctx, input.VideoPath, input.OutputDir)
	if err != nil {
		return pipeline.ExtractResult{}, fmt.Errorf("extract frames: %w", err)
	}
	result.FrameCount = n

	if result.Info != nil && result.Info.Frames > 0 && result.Info.Frames != n {
		s.logger.Warn("Extracted %d frames but the container lists %d", n, result.Info.Frames)
	}

	s.logger.Debug("Extracted %d frames", n)
	return result, nil
}
