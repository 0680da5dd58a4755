package framestore

import (
	"image"
	"image/color"
	"path/filepath"
	"slices"
	"testing"

	"github.com/user/vidstash/pkg/adapters/imagecodec"
	"github.com/user/vidstash/pkg/mocks"
)

func TestStore_SaveListLoad(t *testing.T) {
	fs := mocks.NewFileSystem()
	dir, _ := fs.MkdirTemp("", "vidstash-*")
	store := New(dir, fs, imagecodec.New())

	for i := 0; i < 12; i++ {
		img := image.NewGray(image.Rect(0, 0, 4, 4))
		img.SetGray(0, 0, color.Gray{Y: uint8(i * 20)})
		if err := store.SaveFrame(i, img); err != nil {
			t.Fatalf("SaveFrame(%d) failed: %v", i, err)
		}
	}
	fs.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"))

	names, err := store.ListFrames()
	if err != nil {
		t.Fatalf("ListFrames failed: %v", err)
	}
	if len(names) != 12 {
		t.Fatalf("expected 12 frames, got %d: %v", len(names), names)
	}
	if slices.Contains(names, "notes.txt") {
		t.Error("non-frame files should be skipped")
	}

	img, err := store.LoadFrame("11.png")
	if err != nil {
		t.Fatalf("LoadFrame failed: %v", err)
	}
	got := color.GrayModel.Convert(img.At(0, 0)).(color.Gray).Y
	if got != 220 {
		t.Errorf("pixel = %d, want 220", got)
	}
}

func TestStore_WritesIndexNamedFiles(t *testing.T) {
	fs := mocks.NewFileSystem()
	store := New("/scratch", fs, imagecodec.New())

	store.SaveFrame(10, image.NewGray(image.Rect(0, 0, 2, 2)))

	if _, ok := fs.GetFile(filepath.Join("/scratch", "10.png")); !ok {
		t.Errorf("expected /scratch/10.png, files: %v", fs.GetAllFiles())
	}
	if store.Dir() != "/scratch" {
		t.Errorf("Dir() = %s", store.Dir())
	}
}

func TestStore_LoadMissing(t *testing.T) {
	store := New("/scratch", mocks.NewFileSystem(), imagecodec.New())
	if _, err := store.LoadFrame("3.png"); err == nil {
		t.Error("expected an error for a missing frame")
	}
}

func TestFactory(t *testing.T) {
	fs := mocks.NewFileSystem()
	open := Factory(fs, imagecodec.New())

	a, b := open("/a"), open("/b")
	if a.Dir() != "/a" || b.Dir() != "/b" {
		t.Errorf("stores opened on %s and %s", a.Dir(), b.Dir())
	}
}
