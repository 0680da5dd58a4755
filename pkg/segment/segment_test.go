package segment

import (
	"bytes"
	"errors"
	"slices"
	"testing"
)

func TestCountAndPadding(t *testing.T) {
	tests := []struct {
		n, size     int
		wantCount   int
		wantPadding int
	}{
		{0, 10, 0, 0},
		{1, 10, 1, 9},
		{10, 10, 1, 0},
		{11, 10, 2, 9},
		{25, 10, 3, 5},
		{7200, 7200, 1, 0},
	}

	for _, tt := range tests {
		if got := Count(tt.n, tt.size); got != tt.wantCount {
			t.Errorf("Count(%d, %d) = %d, want %d", tt.n, tt.size, got, tt.wantCount)
		}
		if got := Padding(tt.n, tt.size); got != tt.wantPadding {
			t.Errorf("Padding(%d, %d) = %d, want %d", tt.n, tt.size, got, tt.wantPadding)
		}
	}
}

func TestChunks(t *testing.T) {
	data := []byte("abcdefghij") // 10 bytes
	var got [][]byte
	var indices []int
	for i, c := range Chunks(data, 4) {
		indices = append(indices, i)
		got = append(got, c)
	}

	want := [][]byte{[]byte("abcd"), []byte("efgh"), []byte("ij\x00\x00")}
	if len(got) != len(want) {
		t.Fatalf("got %d chunks, want %d", len(got), len(want))
	}
	for i := range want {
		if !bytes.Equal(got[i], want[i]) {
			t.Errorf("chunk %d = %q, want %q", i, got[i], want[i])
		}
	}
	if !slices.Equal(indices, []int{0, 1, 2}) {
		t.Errorf("indices = %v", indices)
	}
	if string(data) != "abcdefghij" {
		t.Error("source buffer was modified")
	}
}

func TestChunks_CountMatches(t *testing.T) {
	for _, n := range []int{0, 1, 63, 64, 65, 1000} {
		data := make([]byte, n)
		seen := 0
		for _, c := range Chunks(data, 64) {
			if len(c) != 64 {
				t.Fatalf("n=%d: chunk length %d", n, len(c))
			}
			seen++
		}
		if seen != Count(n, 64) {
			t.Errorf("n=%d: yielded %d chunks, Count says %d", n, seen, Count(n, 64))
		}
	}
}

func TestChunks_Restartable(t *testing.T) {
	seq := Chunks([]byte{1, 2, 3, 4, 5}, 2)
	first, second := 0, 0
	for range seq {
		first++
	}
	for range seq {
		second++
	}
	if first != 3 || second != 3 {
		t.Errorf("iterations yielded %d and %d chunks, want 3 each", first, second)
	}
}

func TestChunks_EarlyStop(t *testing.T) {
	n := 0
	for range Chunks(make([]byte, 100), 10) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("expected to stop after 2 chunks, got %d", n)
	}
}

func TestChunks_AppendDoesNotClobber(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	for _, c := range Chunks(data, 2) {
		_ = append(c, 9)
	}
	if !bytes.Equal(data, []byte{1, 2, 3, 4}) {
		t.Errorf("source buffer changed to %v", data)
	}
}

func TestReassemble(t *testing.T) {
	var buf bytes.Buffer
	chunks := [][]byte{{1, 2}, {3, 4}, {5, 0}}

	n, err := Reassemble(&buf, slices.Values(chunks))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 6 {
		t.Errorf("wrote %d bytes, want 6", n)
	}
	if !bytes.Equal(buf.Bytes(), []byte{1, 2, 3, 4, 5, 0}) {
		t.Errorf("output = %v", buf.Bytes())
	}
	if !bytes.Equal(Join(chunks), buf.Bytes()) {
		t.Error("Join and Reassemble disagree")
	}
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errors.New("disk full")
	}
	w.after--
	return len(p), nil
}

func TestReassemble_WriteError(t *testing.T) {
	chunks := [][]byte{{1, 2}, {3, 4}, {5, 6}}
	n, err := Reassemble(&failingWriter{after: 1}, slices.Values(chunks))
	if err == nil {
		t.Fatal("expected an error")
	}
	if n != 2 {
		t.Errorf("reported %d bytes written, want 2", n)
	}
}

func TestSegmentThenJoin(t *testing.T) {
	data := []byte("the quick brown fox")
	var chunks [][]byte
	for _, c := range Chunks(data, 8) {
		chunks = append(chunks, c)
	}

	joined := Join(chunks)
	if len(joined) != len(data)+Padding(len(data), 8) {
		t.Fatalf("joined length %d", len(joined))
	}
	if !bytes.Equal(joined[:len(data)], data) {
		t.Error("payload prefix changed")
	}
	for _, b := range joined[len(data):] {
		if b != 0 {
			t.Error("padding should be zero bytes")
		}
	}
}
