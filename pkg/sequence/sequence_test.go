package sequence

import (
	"slices"
	"testing"
)

func TestFrameName(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "0.png"},
		{9, "9.png"},
		{10, "10.png"},
		{12345, "12345.png"},
	}
	for _, tt := range tests {
		if got := FrameName(tt.index); got != tt.want {
			t.Errorf("FrameName(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		name   string
		want   int
		wantOK bool
	}{
		{"0.png", 0, true},
		{"42.png", 42, true},
		{"/tmp/scratch/117.png", 117, true},
		{"frame.png", 0, false},
		{"-1.png", 0, false},
	}
	for _, tt := range tests {
		got, ok := Index(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Index(%q) = (%d, %v), want (%d, %v)", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}

	for i := 0; i < 1000; i += 37 {
		if got, ok := Index(FrameName(i)); !ok || got != i {
			t.Errorf("Index(FrameName(%d)) = %d, %v", i, got, ok)
		}
	}
}

func TestSort_Natural(t *testing.T) {
	names := []string{"11", "2", "0", "10", "1"}
	Sort(names)

	want := []string{"0", "1", "2", "10", "11"}
	if !slices.Equal(names, want) {
		t.Errorf("Sort = %v, want %v", names, want)
	}
}

func TestSort_FrameFiles(t *testing.T) {
	names := []string{"10.png", "1.png", "100.png", "9.png", "2.png", "11.png"}
	Sort(names)

	want := []string{"1.png", "2.png", "9.png", "10.png", "11.png", "100.png"}
	if !slices.Equal(names, want) {
		t.Errorf("Sort = %v, want %v", names, want)
	}
}

func TestLess(t *testing.T) {
	if !Less("2.png", "10.png") {
		t.Error("2.png should sort before 10.png")
	}
	if Less("10.png", "9.png") {
		t.Error("10.png should not sort before 9.png")
	}
}

func TestIsFrame(t *testing.T) {
	if !IsFrame("3.png") || !IsFrame("3.PNG") {
		t.Error("expected png files to be frames")
	}
	if IsFrame("3.jpg") || IsFrame("notes.txt") {
		t.Error("expected non-png files to be skipped")
	}
}
