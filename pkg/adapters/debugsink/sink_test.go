package debugsink

import (
	"bytes"
	"image"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/user/vidstash/pkg/adapters/imagecodec"
	"github.com/user/vidstash/pkg/mocks"
)

func TestSink_SaveRunJSON(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New("/debug", fs, imagecodec.New())

	if !sink.Enabled() {
		t.Error("expected sink to be enabled")
	}
	if err := sink.SaveRunJSON([]byte(`{"frames":3}`)); err != nil {
		t.Fatalf("SaveRunJSON failed: %v", err)
	}
	data, ok := fs.GetFile(filepath.Join("/debug", "run.json"))
	if !ok || string(data) != `{"frames":3}` {
		t.Errorf("run.json = %q", data)
	}
}

func TestSink_KeepsLeadingBitmaps(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New("/debug", fs, imagecodec.New())

	for i := 0; i < DefaultSheetFrames+4; i++ {
		if err := sink.SaveBitmap(i, image.NewGray(image.Rect(0, 0, 32, 18))); err != nil {
			t.Fatalf("SaveBitmap(%d) failed: %v", i, err)
		}
	}

	if _, ok := fs.GetFile(filepath.Join("/debug", "bitmaps", "0.png")); !ok {
		t.Error("expected bitmaps/0.png")
	}
	if _, ok := fs.GetFile(filepath.Join("/debug", "bitmaps", "16.png")); ok {
		t.Error("frames past the limit should not be written")
	}
}

func TestSink_ContactSheet(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New("/debug", fs, imagecodec.New())

	for i := 0; i < 6; i++ {
		sink.SaveBitmap(i, image.NewGray(image.Rect(0, 0, 320, 180)))
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, ok := fs.GetFile(filepath.Join("/debug", "contact-sheet.png"))
	if !ok {
		t.Fatal("expected contact-sheet.png")
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("contact sheet is not a PNG: %v", err)
	}

	// 4 columns, 2 rows of 240x135 cells
	wantW := 4*(cellWidth+cellPadding) + cellPadding
	wantH := 2*(135+labelHeight+cellPadding) + cellPadding
	if img.Bounds().Dx() != wantW || img.Bounds().Dy() != wantH {
		t.Errorf("sheet size = %v, want %dx%d", img.Bounds().Size(), wantW, wantH)
	}
}

func TestSink_CloseWithoutBitmaps(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New("/debug", fs, imagecodec.New())

	if err := sink.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if len(fs.GetAllFiles()) != 0 {
		t.Error("expected no output without bitmaps")
	}
}
