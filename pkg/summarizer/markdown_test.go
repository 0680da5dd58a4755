package summarizer

import (
	"strings"
	"testing"
	"time"
)

func encodeSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		Mode:        "encode",
		Files: FileInfo{
			InputPath:   "archive.zip",
			OutputPath:  "archive.mp4",
			InputBytes:  1024 * 1024,
			OutputBytes: 2048,
		},
		Frames: FrameInfo{
			Count:         37,
			BytesPerFrame: 28800,
			PaddingBytes:  12,
			BaseWidth:     1280,
			BaseHeight:    720,
			StorageWidth:  1280,
			StorageHeight: 720,
			Factor:        4,
		},
		Settings: Settings{Quality: 12, CRF: 9},
		Video:    VideoInfo{FPS: 30, DurationMs: 1233},
	}
}

func TestMarkdownFormatter_Encode(t *testing.T) {
	result := NewMarkdownFormatter().Format(encodeSummary())

	checks := []string{
		"# Encode Summary",
		"`archive.zip`",
		"1.00 MB",
		"2.00 KB",
		"| Frame Count | 37 |",
		"28800",
		"1280x720",
		"320x180 (1/4)",
		"12 (CRF 9)",
		"30 fps",
		"1233 ms",
	}
	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("expected output to contain %q", check)
		}
	}
	if strings.Contains(result, "Threshold") {
		t.Error("encode summary should not show the decode threshold")
	}
}

func TestMarkdownFormatter_Decode(t *testing.T) {
	s := encodeSummary()
	s.Mode = "decode"
	s.Settings.Threshold = 128
	s.Files.Appended = true
	s.Video.DurationMs = 0
	s.Video.Codec = "avc1"

	result := NewMarkdownFormatter().Format(s)

	for _, check := range []string{"# Decode Summary", "| Threshold | 128 |", "Appended", "N/A", "avc1"} {
		if !strings.Contains(result, check) {
			t.Errorf("expected output to contain %q", check)
		}
	}
	if strings.Contains(result, "CRF") {
		t.Error("decode summary should not show CRF")
	}
}

func TestMarkdownFormatter_NoResampling(t *testing.T) {
	s := encodeSummary()
	s.Frames.Factor = 0

	result := NewMarkdownFormatter().Format(s)
	if !strings.Contains(result, "| Bitmap Size | 1280x720 |") {
		t.Error("expected full-size bitmap without resampling")
	}
}

func TestMarkdownFormatter_WithTranslator(t *testing.T) {
	translator := func(key string) string {
		translations := map[string]string{
			"Encode Summary": "エンコード結果",
			"Frame Count":    "フレーム数",
		}
		if v, ok := translations[key]; ok {
			return v
		}
		return key
	}

	result := NewMarkdownFormatter(WithTranslator(translator)).Format(encodeSummary())

	if !strings.Contains(result, "エンコード結果") {
		t.Error("expected translated title")
	}
	if !strings.Contains(result, "フレーム数") {
		t.Error("expected translated label")
	}
}

func TestMarkdownFormatter_WithVersion(t *testing.T) {
	result := NewMarkdownFormatter(WithVersion("v1.2.0")).Format(encodeSummary())
	if !strings.Contains(result, "v1.2.0") {
		t.Error("expected output to contain version 'v1.2.0'")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{100, "100 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{1024 * 1024 * 1024, "1.00 GB"},
		{1536 * 1024 * 1024, "1.50 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := formatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("formatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}
