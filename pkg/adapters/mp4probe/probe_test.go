package mp4probe

import (
	"bytes"
	"context"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/vidstash/pkg/adapters/ffmpeg"
	"github.com/user/vidstash/pkg/ports"
)

func TestProbe_MissingFile(t *testing.T) {
	if _, err := New().Probe(filepath.Join(t.TempDir(), "missing.mp4")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestProbeReader_NotMP4(t *testing.T) {
	if _, err := ProbeReader(bytes.NewReader(nil)); err == nil {
		t.Error("expected an error for empty input")
	}
}

func TestCodecName(t *testing.T) {
	tests := map[string]string{
		"avc1": CodecH264,
		"avc3": CodecH264,
		"hev1": CodecH265,
		"av01": CodecAV1,
		"vp09": CodecVP9,
		"mp4a": CodecUnknown,
	}
	for box, want := range tests {
		if got := codecName(box); got != want {
			t.Errorf("codecName(%q) = %q, want %q", box, got, want)
		}
	}
}

func TestTicksToMs(t *testing.T) {
	if got := ticksToMs(15360, 15360); got != 1000 {
		t.Errorf("ticksToMs = %d, want 1000", got)
	}
	if got := ticksToMs(100, 0); got != 0 {
		t.Errorf("zero timescale should give 0, got %d", got)
	}
}

func TestProbe_EncodedVideo(t *testing.T) {
	if !ffmpeg.Available("") {
		t.Skip("ffmpeg not available")
	}

	path := filepath.Join(t.TempDir(), "probe.mp4")
	enc := ffmpeg.NewEncoder("")
	if err := enc.Begin(context.Background(), path, 64, 32, 30, ports.EncoderOptions{}); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	for i := 0; i < 15; i++ {
		if err := enc.EncodeFrame(image.NewGray(image.Rect(0, 0, 64, 32))); err != nil {
			t.Fatalf("EncodeFrame failed: %v", err)
		}
	}
	if err := enc.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	info, err := New().Probe(path)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if info.Codec != CodecH264 {
		t.Errorf("codec = %s, want %s", info.Codec, CodecH264)
	}
	if info.Width != 64 || info.Height != 32 {
		t.Errorf("size = %dx%d, want 64x32", info.Width, info.Height)
	}
	if info.Frames != 15 {
		t.Errorf("frames = %d, want 15", info.Frames)
	}
	if info.Fragmented {
		t.Error("faststart output should be progressive")
	}
	if info.DurationMs < 450 || info.DurationMs > 550 {
		t.Errorf("duration = %d ms, want about 500", info.DurationMs)
	}

	data, _ := os.ReadFile(path)
	fromBytes, err := ProbeReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ProbeReader failed: %v", err)
	}
	if fromBytes != info {
		t.Errorf("ProbeReader = %+v, Probe = %+v", fromBytes, info)
	}
}
