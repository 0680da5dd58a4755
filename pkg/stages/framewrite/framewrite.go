// Package framewrite implements the stage that turns a payload into stored
// frame images.
package framewrite

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/user/vidstash/pkg/framecodec"
	"github.com/user/vidstash/pkg/pipeline"
	"github.com/user/vidstash/pkg/ports"
	"github.com/user/vidstash/pkg/resample"
	"github.com/user/vidstash/pkg/segment"
)

// Stage segments the payload, renders each chunk as a bitmap, upscales it
// and stores it as <index>.png.
type Stage struct {
	sink       ports.DebugSink
	logger     ports.Logger
	numWorkers int
}

// NewStage creates a new frame write stage.
func NewStage(sink ports.DebugSink, logger ports.Logger, numWorkers int) *Stage {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Stage{
		sink:       sink,
		logger:     logger.WithComponent("framewrite"),
		numWorkers: numWorkers,
	}
}

type job struct {
	index int
	chunk []byte
}

// Execute writes one frame per chunk of input.Data.
func (s *Stage) Execute(ctx context.Context, input pipeline.FrameWriteInput) (pipeline.FrameWriteResult, error) {
	g := input.Geometry
	total := segment.Count(len(input.Data), g.BytesPerFrame)
	result := pipeline.FrameWriteResult{
		FrameCount:   total,
		PaddingBytes: segment.Padding(len(input.Data), g.BytesPerFrame),
	}
	if total == 0 {
		return result, nil
	}

	workers := min(s.numWorkers, total)
	s.logger.Debug("Writing %d frames with %d workers", total, workers)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan job, total)
	errChan := make(chan error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go s.worker(ctx, cancel, &wg, input, jobs, errChan)
	}

	for i, chunk := range segment.Chunks(input.Data, g.BytesPerFrame) {
		jobs <- job{index: i, chunk: chunk}
	}
	close(jobs)

	wg.Wait()
	close(errChan)

	if err := <-errChan; err != nil {
		return pipeline.FrameWriteResult{}, err
	}
	// Workers only cancel after reporting an error, so this is the caller.
	if err := ctx.Err(); err != nil {
		return pipeline.FrameWriteResult{}, err
	}

	s.logger.Debug("Frames written: %d (%d padding bytes)", total, result.PaddingBytes)
	return result, nil
}

func (s *Stage) worker(
	ctx context.Context,
	cancel context.CancelFunc,
	wg *sync.WaitGroup,
	input pipeline.FrameWriteInput,
	jobs <-chan job,
	errChan chan<- error,
) {
	defer wg.Done()

	for j := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if err := s.writeFrame(input, j); err != nil {
			select {
			case errChan <- err:
			default:
			}
			cancel()
			return
		}
	}
}

func (s *Stage) writeFrame(input pipeline.FrameWriteInput, j job) error {
	g := input.Geometry

	bm, err := framecodec.ChunkToBitmap(g, j.chunk)
	if err != nil {
		return fmt.Errorf("render chunk %d: %w", j.index, err)
	}

	if s.sink.Enabled() {
		s.sink.SaveBitmap(j.index, bm)
	}

	if err := input.Store.SaveFrame(j.index, resample.Upscale(bm, g.Factor)); err != nil {
		return fmt.Errorf("%w: save frame %d: %w", pipeline.ErrScratchIO, j.index, err)
	}
	return nil
}
