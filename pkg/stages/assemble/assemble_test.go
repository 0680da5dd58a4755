package assemble

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/user/vidstash/pkg/adapters/logger"
	"github.com/user/vidstash/pkg/mocks"
	"github.com/user/vidstash/pkg/pipeline"
	"github.com/user/vidstash/pkg/sequence"
)

// taggedFrame returns a frame whose first pixel encodes tag.
func taggedFrame(tag uint8) image.Image {
	img := image.NewGray(image.Rect(0, 0, 8, 4))
	img.SetGray(0, 0, color.Gray{Y: tag})
	return img
}

func TestStage_Execute_NaturalOrder(t *testing.T) {
	store := mocks.NewFrameStore("/scratch")
	for i := 0; i < 12; i++ {
		store.Put(sequence.FrameName(i), taggedFrame(uint8(i)))
	}

	encoder := &mocks.VideoEncoder{}
	stage := NewStage(encoder, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.AssembleInput{
		Store:      store,
		OutputPath: "out.mp4",
		FPS:        30,
		Quality:    12,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !encoder.BeginCalled || !encoder.EndCalled {
		t.Error("expected Begin and End to be called")
	}
	if encoder.Path != "out.mp4" || encoder.Width != 8 || encoder.Height != 4 || encoder.FPS != 30 {
		t.Errorf("Begin(%s, %d, %d, %v)", encoder.Path, encoder.Width, encoder.Height, encoder.FPS)
	}
	if encoder.Options.Quality != 12 {
		t.Errorf("quality = %d, want 12", encoder.Options.Quality)
	}
	if len(encoder.Frames) != 12 {
		t.Fatalf("encoded %d frames, want 12", len(encoder.Frames))
	}
	for i, img := range encoder.Frames {
		if got := img.(*image.Gray).GrayAt(0, 0).Y; got != uint8(i) {
			t.Errorf("position %d holds frame %d", i, got)
		}
	}

	if result.FrameCount != 12 {
		t.Errorf("FrameCount = %d, want 12", result.FrameCount)
	}
	if result.DurationMs != 400 {
		t.Errorf("DurationMs = %d, want 400", result.DurationMs)
	}
}

func TestStage_Execute_NoFrames(t *testing.T) {
	encoder := &mocks.VideoEncoder{}
	stage := NewStage(encoder, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.AssembleInput{
		Store: mocks.NewFrameStore("/scratch"),
		FPS:   30,
	})
	if !errors.Is(err, ErrNoFrames) {
		t.Errorf("expected ErrNoFrames, got %v", err)
	}
	if encoder.BeginCalled {
		t.Error("encoder should not be started without frames")
	}
}

func TestStage_Execute_EncodeFailureAborts(t *testing.T) {
	store := mocks.NewFrameStore("/scratch")
	for i := 0; i < 3; i++ {
		store.Put(sequence.FrameName(i), taggedFrame(0))
	}

	calls := 0
	encoder := &mocks.VideoEncoder{
		EncodeFrameFunc: func(img image.Image) error {
			calls++
			if calls == 2 {
				return errors.New("broken pipe")
			}
			return nil
		},
	}
	stage := NewStage(encoder, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.AssembleInput{Store: store, FPS: 30})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !encoder.AbortCalled {
		t.Error("expected the encoder to be aborted")
	}
	if encoder.EndCalled {
		t.Error("End should not be called after a failure")
	}
}

func TestStage_Execute_LoadFailure(t *testing.T) {
	store := mocks.NewFrameStore("/scratch")
	store.Put("0.png", taggedFrame(0))
	store.Put("1.png", taggedFrame(1))
	store.LoadFrameFunc = func(name string) (image.Image, error) {
		if name == "1.png" {
			return nil, errors.New("truncated file")
		}
		return taggedFrame(0), nil
	}

	encoder := &mocks.VideoEncoder{}
	stage := NewStage(encoder, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.AssembleInput{Store: store, FPS: 30})
	if !errors.Is(err, pipeline.ErrScratchIO) {
		t.Errorf("expected ErrScratchIO, got %v", err)
	}
	if !encoder.AbortCalled {
		t.Error("expected the encoder to be aborted")
	}
}
