package ports

import "io"

// FileSystem abstracts the file operations used by the pipelines.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating parent directories.
	WriteFile(path string, data []byte) error

	// Create opens path for writing. The file is truncated unless
	// appendMode is set, in which case writes go to its end.
	Create(path string, appendMode bool) (io.WriteCloser, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// MkdirTemp creates a new unique directory under dir (the system
	// temporary directory when dir is empty) and returns its path.
	MkdirTemp(dir, pattern string) (string, error)

	// ReadDir lists the names of the entries in dir.
	ReadDir(dir string) ([]string, error)

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// Size returns the size of a file in bytes.
	Size(path string) (int64, error)

	// Remove deletes a file or empty directory.
	Remove(path string) error

	// RemoveAll deletes path and everything below it.
	RemoveAll(path string) error
}
