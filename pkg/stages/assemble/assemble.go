// Package assemble implements the stage that turns stored frames into a
// video file.
package assemble

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/vidstash/pkg/pipeline"
	"github.com/user/vidstash/pkg/ports"
	"github.com/user/vidstash/pkg/sequence"
)

// ErrNoFrames is returned when the store holds nothing to assemble.
var ErrNoFrames = errors.New("assemble: no frames to encode")

// Stage feeds stored frames to a video encoder in natural name order.
type Stage struct {
	encoder ports.VideoEncoder
	logger  ports.Logger
}

// NewStage creates a new assemble stage.
func NewStage(encoder ports.VideoEncoder, logger ports.Logger) *Stage {
	return &Stage{
		encoder: encoder,
		logger:  logger.WithComponent("assemble"),
	}
}

// Execute encodes all stored frames into input.OutputPath.
func (s *Stage) Execute(ctx context.Context, input pipeline.AssembleInput) (pipeline.AssembleResult, error) {
	names, err := input.Store.ListFrames()
	if err != nil {
		return pipeline.AssembleResult{}, fmt.Errorf("%w: list frames: %w", pipeline.ErrScratchIO, err)
	}
	if len(names) == 0 {
		return pipeline.AssembleResult{}, ErrNoFrames
	}
	sequence.Sort(names)

	first, err := input.Store.LoadFrame(names[0])
	if err != nil {
		return pipeline.AssembleResult{}, fmt.Errorf("%w: load frame %s: %w", pipeline.ErrScratchIO, names[0], err)
	}
	width, height := first.Bounds().Dx(), first.Bounds().Dy()

	opts := ports.EncoderOptions{
		Bitrate: input.Bitrate,
		Quality: input.Quality,
	}
	s.logger.Debug("Encoding %d frames at %.1f fps (%dx%d)", len(names), input.FPS, width, height)

	if err := s.encoder.Begin(ctx, input.OutputPath, width, height, input.FPS, opts); err != nil {
		return pipeline.AssembleResult{}, fmt.Errorf("begin encoding: %w", err)
	}

	for i, name := range names {
		if err := ctx.Err(); err != nil {
			s.encoder.Abort()
			return pipeline.AssembleResult{}, err
		}

		img := first
		if i > 0 {
			img, err = input.Store.LoadFrame(name)
			if err != nil {
				s.encoder.Abort()
				return pipeline.AssembleResult{}, fmt.Errorf("%w: load frame %s: %w", pipeline.ErrScratchIO, name, err)
			}
		}

		if err := s.encoder.EncodeFrame(img); err != nil {
			s.encoder.Abort()
			return pipeline.AssembleResult{}, fmt.Errorf("encode frame %s: %w", name, err)
		}
	}

	if err := s.encoder.End(); err != nil {
		return pipeline.AssembleResult{}, fmt.Errorf("end encoding: %w", err)
	}

	durationMs := 0
	if input.FPS > 0 {
		durationMs = int(float64(len(names)) * 1000 / input.FPS)
	}

	s.logger.Debug("Encoding completed")
	return pipeline.AssembleResult{
		FrameCount: len(names),
		Width:      width,
		Height:     height,
		DurationMs: durationMs,
	}, nil
}
