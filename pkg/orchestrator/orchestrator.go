// Package orchestrator runs the encode and decode pipelines end to end.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/user/vidstash/pkg/framecodec"
	"github.com/user/vidstash/pkg/geometry"
	"github.com/user/vidstash/pkg/pipeline"
	"github.com/user/vidstash/pkg/ports"
	"github.com/user/vidstash/pkg/segment"
)

var (
	// ErrSourceNotFound is returned when the input file does not exist.
	ErrSourceNotFound = errors.New("orchestrator: source file not found")

	// ErrEmptyInput is returned when encoding a zero-length file.
	ErrEmptyInput = errors.New("orchestrator: input file is empty")

	// ErrScratchIO is returned when intermediate frames cannot be written or
	// read back.
	ErrScratchIO = pipeline.ErrScratchIO
)

// Config contains the parameters of a single run.
type Config struct {
	InputPath  string
	OutputPath string

	// Geometry
	BaseWidth       int
	BaseHeight      int
	DownscaleFactor int

	// Decoding
	Threshold uint8

	// Encoding
	FPS     float64
	Quality int
	Bitrate int

	// Scratch and output handling
	ScratchDir   string // parent of the per-run scratch directory, "" for the system default
	KeepScratch  bool
	AppendOutput bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		BaseWidth:       geometry.DefaultBaseWidth,
		BaseHeight:      geometry.DefaultBaseHeight,
		DownscaleFactor: geometry.DefaultFactor,
		Threshold:       framecodec.DefaultThreshold,
		FPS:             30.0,
		Quality:         12,
	}
}

// Orchestrator coordinates the execution of the pipeline stages.
type Orchestrator struct {
	frameWriteStage pipeline.Stage[pipeline.FrameWriteInput, pipeline.FrameWriteResult]
	assembleStage   pipeline.Stage[pipeline.AssembleInput, pipeline.AssembleResult]
	extractStage    pipeline.Stage[pipeline.ExtractInput, pipeline.ExtractResult]
	frameReadStage  pipeline.Stage[pipeline.FrameReadInput, pipeline.FrameReadResult]
	fs              ports.FileSystem
	openStore       ports.FrameStoreFactory
	sink            ports.DebugSink
	logger          ports.Logger
}

// New creates a new Orchestrator.
func New(
	frameWriteStage pipeline.Stage[pipeline.FrameWriteInput, pipeline.FrameWriteResult],
	assembleStage pipeline.Stage[pipeline.AssembleInput, pipeline.AssembleResult],
	extractStage pipeline.Stage[pipeline.ExtractInput, pipeline.ExtractResult],
	frameReadStage pipeline.Stage[pipeline.FrameReadInput, pipeline.FrameReadResult],
	fs ports.FileSystem,
	openStore ports.FrameStoreFactory,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		frameWriteStage: frameWriteStage,
		assembleStage:   assembleStage,
		extractStage:    extractStage,
		frameReadStage:  frameReadStage,
		fs:              fs,
		openStore:       openStore,
		sink:            sink,
		logger:          logger,
	}
}

// Encode stores the file at config.InputPath in a video at
// config.OutputPath.
func (o *Orchestrator) Encode(ctx context.Context, config Config) (RunResult, error) {
	started := time.Now()

	g, err := geometry.New(config.BaseWidth, config.BaseHeight, config.DownscaleFactor)
	if err != nil {
		return RunResult{}, err
	}
	if err := o.requireSource(config.InputPath); err != nil {
		return RunResult{}, err
	}

	data, err := o.fs.ReadFile(config.InputPath)
	if err != nil {
		return RunResult{}, fmt.Errorf("read input: %w", err)
	}
	if len(data) == 0 {
		return RunResult{}, fmt.Errorf("%w: %s", ErrEmptyInput, config.InputPath)
	}

	output := config.OutputPath
	if output == "" {
		if output, err = UniqueOutputPath(o.fs, ".mp4"); err != nil {
			return RunResult{}, err
		}
	}

	o.logger.Info("Encoding %s (%d bytes) into %s", config.InputPath, len(data), output)
	o.logger.Info("Frame geometry: %s", g)

	scratch, cleanup, err := o.openScratch(config)
	if err != nil {
		return RunResult{}, err
	}
	defer cleanup()

	store := o.openStore(scratch)

	written, err := o.frameWriteStage.Execute(ctx, pipeline.FrameWriteInput{
		Data:     data,
		Geometry: g,
		Store:    store,
	})
	if err != nil {
		o.logger.Error("Failed to write frames: %s", err)
		return RunResult{}, fmt.Errorf("frame write stage: %w", err)
	}
	o.logger.Info("Wrote %d frames", written.FrameCount)

	assembled, err := o.assembleStage.Execute(ctx, pipeline.AssembleInput{
		Store:      store,
		OutputPath: output,
		FPS:        config.FPS,
		Quality:    config.Quality,
		Bitrate:    config.Bitrate,
	})
	if err != nil {
		o.logger.Error("Failed to encode video: %s", err)
		return RunResult{}, fmt.Errorf("assemble stage: %w", err)
	}

	size, err := o.fs.Size(output)
	if err != nil {
		return RunResult{}, fmt.Errorf("stat output: %w", err)
	}
	o.logger.Info("Video encoded: %d bytes", size)

	result := RunResult{
		Mode:         ModeEncode,
		InputPath:    config.InputPath,
		OutputPath:   output,
		InputBytes:   int64(len(data)),
		OutputBytes:  size,
		FrameCount:   assembled.FrameCount,
		PaddingBytes: written.PaddingBytes,
		Geometry:     g,
		FPS:          config.FPS,
		VideoMs:      assembled.DurationMs,
		ScratchDir:   scratch,
		KeptScratch:  config.KeepScratch,
		Elapsed:      time.Since(started),
	}
	o.saveRun(result)
	return result, nil
}

// Decode recovers the file stored in the video at config.InputPath and
// writes it to config.OutputPath.
func (o *Orchestrator) Decode(ctx context.Context, config Config) (RunResult, error) {
	started := time.Now()

	g, err := geometry.New(config.BaseWidth, config.BaseHeight, config.DownscaleFactor)
	if err != nil {
		return RunResult{}, err
	}
	if err := o.requireSource(config.InputPath); err != nil {
		return RunResult{}, err
	}
	inputSize, err := o.fs.Size(config.InputPath)
	if err != nil {
		return RunResult{}, fmt.Errorf("stat input: %w", err)
	}

	output := config.OutputPath
	if output == "" {
		if output, err = UniqueOutputPath(o.fs, ".bin"); err != nil {
			return RunResult{}, err
		}
	}

	o.logger.Info("Decoding %s into %s", config.InputPath, output)
	o.logger.Info("Frame geometry: %s", g)

	scratch, cleanup, err := o.openScratch(config)
	if err != nil {
		return RunResult{}, err
	}
	defer cleanup()

	extracted, err := o.extractStage.Execute(ctx, pipeline.ExtractInput{
		VideoPath: config.InputPath,
		OutputDir: scratch,
	})
	if err != nil {
		o.logger.Error("Failed to extract frames: %s", err)
		return RunResult{}, fmt.Errorf("extract stage: %w", err)
	}
	o.logger.Info("Extracted %d frames", extracted.FrameCount)

	read, err := o.frameReadStage.Execute(ctx, pipeline.FrameReadInput{
		Store:     o.openStore(scratch),
		Geometry:  g,
		Threshold: config.Threshold,
	})
	if err != nil {
		o.logger.Error("Failed to decode frames: %s", err)
		return RunResult{}, fmt.Errorf("frame read stage: %w", err)
	}

	written, err := o.writeOutput(output, config.AppendOutput, read.Chunks)
	if err != nil {
		o.logger.Error("Failed to write output: %s", err)
		return RunResult{}, fmt.Errorf("write output: %w", err)
	}
	o.logger.Info("Recovered %d bytes from %d frames", written, len(read.Chunks))

	result := RunResult{
		Mode:        ModeDecode,
		InputPath:   config.InputPath,
		OutputPath:  output,
		InputBytes:  inputSize,
		OutputBytes: written,
		FrameCount:  len(read.Chunks),
		Geometry:    g,
		FPS:         config.FPS,
		ScratchDir:  scratch,
		KeptScratch: config.KeepScratch,
		Appended:    config.AppendOutput,
		Elapsed:     time.Since(started),
	}
	if extracted.Info != nil {
		result.Codec = extracted.Info.Codec
		result.VideoMs = int(extracted.Info.DurationMs)
	}
	o.saveRun(result)
	return result, nil
}

func (o *Orchestrator) requireSource(path string) error {
	exists, err := o.fs.Exists(path)
	if err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	return nil
}

// writeOutput concatenates chunks into path. Padding stays in place.
func (o *Orchestrator) writeOutput(path string, appendMode bool, chunks [][]byte) (int64, error) {
	w, err := o.fs.Create(path, appendMode)
	if err != nil {
		return 0, err
	}
	n, err := segment.Reassemble(w, slices.Values(chunks))
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	return n, err
}

func (o *Orchestrator) saveRun(result RunResult) {
	if !o.sink.Enabled() {
		return
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err == nil {
		err = o.sink.SaveRunJSON(data)
	}
	if err != nil {
		o.logger.Warn("Failed to write debug output: %s", err)
	}
	if err := o.sink.Close(); err != nil {
		o.logger.Warn("Failed to write debug output: %s", err)
	}
}
