package framecodec

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/user/vidstash/pkg/geometry"
	"github.com/user/vidstash/pkg/resample"
)

func mustGeometry(t *testing.T, w, h, factor int) geometry.Geometry {
	t.Helper()
	g, err := geometry.New(w, h, factor)
	if err != nil {
		t.Fatalf("geometry.New(%d, %d, %d): %v", w, h, factor, err)
	}
	return g
}

func randomChunk(seed int64, n int) []byte {
	r := rand.New(rand.NewSource(seed))
	chunk := make([]byte, n)
	r.Read(chunk)
	return chunk
}

func TestChunkToBitmap_BitOrder(t *testing.T) {
	g := mustGeometry(t, 8, 2, 0) // 2 bytes per frame

	bm, err := ChunkToBitmap(g, []byte{0x80, 0x01})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for y := 0; y < 2; y++ {
		for x := 0; x < 8; x++ {
			want := (y == 0 && x == 0) || (y == 1 && x == 7)
			if bm.Bit(x, y) != want {
				t.Errorf("bit (%d,%d) = %v, want %v", x, y, bm.Bit(x, y), want)
			}
		}
	}

	if got := bm.At(0, 0).(color.Gray).Y; got != 255 {
		t.Errorf("set bit should be white, got %d", got)
	}
	if got := bm.At(1, 0).(color.Gray).Y; got != 0 {
		t.Errorf("clear bit should be black, got %d", got)
	}
}

func TestChunkToBitmap_TrailingPixelsBlack(t *testing.T) {
	g := mustGeometry(t, 3, 3, 0) // 9 pixels, 1 byte

	bm, err := ChunkToBitmap(g, []byte{0xFF})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bm.Bit(2, 2) {
		t.Error("pixel past the last whole byte should be black")
	}
	if !bm.Bit(1, 2) {
		t.Error("eighth pixel should be set")
	}
}

func TestChunkToBitmap_CopiesInput(t *testing.T) {
	g := mustGeometry(t, 8, 1, 0)
	chunk := []byte{0xAA}

	bm, _ := ChunkToBitmap(g, chunk)
	chunk[0] = 0x00

	if !bm.Bit(0, 0) {
		t.Error("bitmap should not alias the caller's chunk")
	}
}

func TestChunkToBitmap_SizeMismatch(t *testing.T) {
	g := mustGeometry(t, 16, 16, 0)

	_, err := ChunkToBitmap(g, make([]byte, g.BytesPerFrame-1))
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestRoundTrip_NoResampling(t *testing.T) {
	g := mustGeometry(t, 64, 48, 0)

	for seed := int64(0); seed < 5; seed++ {
		chunk := randomChunk(seed, g.BytesPerFrame)

		bm, err := ChunkToBitmap(g, chunk)
		if err != nil {
			t.Fatalf("ChunkToBitmap: %v", err)
		}
		got, err := BitmapToChunk(g, bm, DefaultThreshold)
		if err != nil {
			t.Fatalf("BitmapToChunk: %v", err)
		}
		if !bytes.Equal(got, chunk) {
			t.Fatalf("seed %d: round trip mismatch", seed)
		}
	}
}

func TestRoundTrip_WithResampling(t *testing.T) {
	for _, factor := range []int{1, 2, 4} {
		g := mustGeometry(t, 96, 64, factor)
		chunk := randomChunk(int64(factor), g.BytesPerFrame)

		bm, err := ChunkToBitmap(g, chunk)
		if err != nil {
			t.Fatalf("factor %d: ChunkToBitmap: %v", factor, err)
		}
		raster := resample.Upscale(bm, factor)

		got, err := BitmapToChunk(g, raster, DefaultThreshold)
		if err != nil {
			t.Fatalf("factor %d: BitmapToChunk: %v", factor, err)
		}
		if !bytes.Equal(got, chunk) {
			t.Errorf("factor %d: round trip mismatch", factor)
		}
	}
}

func TestRoundTrip_ColorRaster(t *testing.T) {
	g := mustGeometry(t, 32, 8, 2)
	chunk := randomChunk(7, g.BytesPerFrame)

	bm, _ := ChunkToBitmap(g, chunk)
	gray := resample.Upscale(bm, 2)

	// Decoders hand back RGBA frames.
	rgba := image.NewRGBA(gray.Bounds())
	for y := 0; y < rgba.Rect.Dy(); y++ {
		for x := 0; x < rgba.Rect.Dx(); x++ {
			rgba.Set(x, y, gray.At(x, y))
		}
	}

	got, err := BitmapToChunk(g, rgba, DefaultThreshold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, chunk) {
		t.Error("round trip through RGBA mismatch")
	}
}

func uniformGray(w, h int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

func TestBitmapToChunk_ThresholdMonotonic(t *testing.T) {
	thresholds := []uint8{0, 1, 64, 127, 128, 200, 254}

	for _, factor := range []int{0, 4} {
		g := mustGeometry(t, 32, 8, factor)
		w, h := g.StorageWidth(), g.StorageHeight()

		for _, th := range thresholds {
			above, err := BitmapToChunk(g, uniformGray(w, h, th+1), th)
			if err != nil {
				t.Fatalf("factor %d: %v", factor, err)
			}
			for i, b := range above {
				if b != 0xFF {
					t.Fatalf("factor %d threshold %d: byte %d = %#x, want 0xff", factor, th, i, b)
				}
			}

			atOrBelow, err := BitmapToChunk(g, uniformGray(w, h, th), th)
			if err != nil {
				t.Fatalf("factor %d: %v", factor, err)
			}
			for i, b := range atOrBelow {
				if b != 0x00 {
					t.Fatalf("factor %d threshold %d: byte %d = %#x, want 0x00", factor, th, i, b)
				}
			}
		}
	}
}

func TestBitmapToChunk_Threshold255ReadsBlack(t *testing.T) {
	g := mustGeometry(t, 16, 8, 0)
	got, err := BitmapToChunk(g, uniformGray(16, 8, 255), 255)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, make([]byte, g.BytesPerFrame)) {
		t.Error("nothing exceeds 255, expected all zero bytes")
	}
}

func perturb(img image.Image, amount int, seed int64) *image.Gray {
	r := rand.New(rand.NewSource(seed))
	out := Luminance(img)
	for i, v := range out.Pix {
		n := int(v) + r.Intn(2*amount+1) - amount
		if n < 0 {
			n = 0
		}
		if n > 255 {
			n = 255
		}
		out.Pix[i] = uint8(n)
	}
	return out
}

func TestBitmapToChunk_ResampleRobustness(t *testing.T) {
	g := mustGeometry(t, 32, 4, 4) // 8x1 bitmap, 1 byte per frame
	if g.BytesPerFrame != 1 {
		t.Fatalf("BytesPerFrame = %d, want 1", g.BytesPerFrame)
	}

	for _, chunk := range [][]byte{{0xFF}, {0xA5}, {0x00}} {
		bm, _ := ChunkToBitmap(g, chunk)
		stored := resample.Upscale(bm, g.Factor)

		for seed := int64(0); seed < 20; seed++ {
			noisy := perturb(stored, 20, seed)
			got, err := BitmapToChunk(g, noisy, DefaultThreshold)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(got, chunk) {
				t.Fatalf("chunk %#x seed %d: got %#x", chunk[0], seed, got[0])
			}
		}
	}
}

func TestBitmapToChunk_SizeMismatch(t *testing.T) {
	g := mustGeometry(t, 32, 16, 4)

	_, err := BitmapToChunk(g, uniformGray(31, 16, 0), DefaultThreshold)
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestBitmapToChunk_DoesNotModifyInput(t *testing.T) {
	g := mustGeometry(t, 8, 8, 0)
	src := uniformGray(8, 8, 90)

	if _, err := BitmapToChunk(g, src, 50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, v := range src.Pix {
		if v != 90 {
			t.Fatal("input raster was modified")
		}
	}
}
