// Package frameread implements the stage that recovers payload chunks from
// extracted frame images.
package frameread

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/user/vidstash/pkg/framecodec"
	"github.com/user/vidstash/pkg/pipeline"
	"github.com/user/vidstash/pkg/ports"
	"github.com/user/vidstash/pkg/sequence"
)

// Stage decodes every stored frame back into a chunk, in natural name order.
type Stage struct {
	sink       ports.DebugSink
	logger     ports.Logger
	numWorkers int
}

// NewStage creates a new frame read stage.
func NewStage(sink ports.DebugSink, logger ports.Logger, numWorkers int) *Stage {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Stage{
		sink:       sink,
		logger:     logger.WithComponent("frameread"),
		numWorkers: numWorkers,
	}
}

// indexedChunk holds a chunk with its frame position for sorting.
type indexedChunk struct {
	index int
	chunk []byte
}

// Execute decodes all frames in input.Store.
func (s *Stage) Execute(ctx context.Context, input pipeline.FrameReadInput) (pipeline.FrameReadResult, error) {
	names, err := input.Store.ListFrames()
	if err != nil {
		return pipeline.FrameReadResult{}, fmt.Errorf("%w: list frames: %w", pipeline.ErrScratchIO, err)
	}
	if len(names) == 0 {
		return pipeline.FrameReadResult{Chunks: [][]byte{}}, nil
	}
	sequence.Sort(names)

	workers := min(s.numWorkers, len(names))
	s.logger.Debug("Decoding %d frames with %d workers", len(names), workers)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int, len(names))
	results := make(chan indexedChunk, len(names))
	errChan := make(chan error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go s.worker(ctx, cancel, &wg, input, names, jobs, results, errChan)
	}

	for i := range names {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
		close(errChan)
	}()

	collected := make([]indexedChunk, 0, len(names))
	for r := range results {
		collected = append(collected, r)
	}

	if err := <-errChan; err != nil {
		return pipeline.FrameReadResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return pipeline.FrameReadResult{}, err
	}

	sort.Slice(collected, func(i, j int) bool {
		return collected[i].index < collected[j].index
	})

	chunks := make([][]byte, len(collected))
	for i, c := range collected {
		chunks[i] = c.chunk
	}

	s.logger.Debug("Decoding completed")
	return pipeline.FrameReadResult{Chunks: chunks}, nil
}

func (s *Stage) worker(
	ctx context.Context,
	cancel context.CancelFunc,
	wg *sync.WaitGroup,
	input pipeline.FrameReadInput,
	names []string,
	jobs <-chan int,
	results chan<- indexedChunk,
	errChan chan<- error,
) {
	defer wg.Done()

	for idx := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		chunk, err := s.readFrame(input, idx, names[idx])
		if err != nil {
			select {
			case errChan <- err:
			default:
			}
			cancel()
			return
		}

		results <- indexedChunk{index: idx, chunk: chunk}
	}
}

func (s *Stage) readFrame(input pipeline.FrameReadInput, idx int, name string) ([]byte, error) {
	img, err := input.Store.LoadFrame(name)
	if err != nil {
		return nil, fmt.Errorf("%w: load frame %s: %w", pipeline.ErrScratchIO, name, err)
	}

	chunk, err := framecodec.BitmapToChunk(input.Geometry, img, input.Threshold)
	if err != nil {
		return nil, fmt.Errorf("decode frame %s: %w", name, err)
	}

	if s.sink.Enabled() {
		bm, err := framecodec.ChunkToBitmap(input.Geometry, chunk)
		if err == nil {
			s.sink.SaveBitmap(idx, bm)
		}
	}
	return chunk, nil
}
