package osfilesystem

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestFileSystem_WriteAndReadFile(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "a", "b", "payload.bin")

	if err := fs.WriteFile(path, []byte("hello world")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "hello world" {
		t.Errorf("expected %q, got %q", "hello world", data)
	}

	size, err := fs.Size(path)
	if err != nil {
		t.Fatalf("Size failed: %v", err)
	}
	if size != 11 {
		t.Errorf("expected size 11, got %d", size)
	}
}

func TestFileSystem_CreateTruncates(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "out.bin")
	fs.WriteFile(path, []byte("previous contents"))

	w, err := fs.Create(path, false)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	w.Write([]byte("new"))
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, _ := fs.ReadFile(path)
	if string(data) != "new" {
		t.Errorf("expected %q, got %q", "new", data)
	}
}

func TestFileSystem_CreateAppends(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "out.bin")
	fs.WriteFile(path, []byte("head-"))

	w, err := fs.Create(path, true)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	w.Write([]byte("tail"))
	w.Close()

	data, _ := fs.ReadFile(path)
	if string(data) != "head-tail" {
		t.Errorf("expected %q, got %q", "head-tail", data)
	}
}

func TestFileSystem_MkdirTempAndRemoveAll(t *testing.T) {
	fs := New()
	parent := filepath.Join(t.TempDir(), "scratch")

	dir, err := fs.MkdirTemp(parent, "vidstash-*")
	if err != nil {
		t.Fatalf("MkdirTemp failed: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(dir), "vidstash-") {
		t.Errorf("unexpected directory name %s", dir)
	}

	fs.WriteFile(filepath.Join(dir, "0.png"), []byte{1})
	fs.WriteFile(filepath.Join(dir, "1.png"), []byte{2})

	names, err := fs.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	slices.Sort(names)
	if !slices.Equal(names, []string{"0.png", "1.png"}) {
		t.Errorf("ReadDir = %v", names)
	}

	if err := fs.RemoveAll(dir); err != nil {
		t.Fatalf("RemoveAll failed: %v", err)
	}
	exists, _ := fs.Exists(dir)
	if exists {
		t.Error("expected scratch directory to be removed")
	}
}

func TestFileSystem_ExistsAndRemove(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "file.txt")

	exists, err := fs.Exists(path)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected file to not exist")
	}

	fs.WriteFile(path, []byte("x"))
	if exists, _ := fs.Exists(path); !exists {
		t.Error("expected file to exist")
	}

	if err := fs.Remove(path); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if exists, _ := fs.Exists(path); exists {
		t.Error("expected file to be removed")
	}
}
