package orchestrator

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/user/vidstash/pkg/ports"
)

// ScratchPattern names per-run scratch directories.
const ScratchPattern = "vidstash-*"

// openScratch creates the run's scratch directory. The returned cleanup
// removes it unless config.KeepScratch is set, and must run on every exit
// path.
func (o *Orchestrator) openScratch(config Config) (string, func(), error) {
	dir, err := o.fs.MkdirTemp(config.ScratchDir, ScratchPattern)
	if err != nil {
		return "", nil, fmt.Errorf("%w: create scratch directory: %w", ErrScratchIO, err)
	}
	o.logger.Debug("Scratch directory: %s", dir)

	cleanup := func() {
		if config.KeepScratch {
			o.logger.Info("Keeping scratch directory %s", dir)
			return
		}
		if err := o.fs.RemoveAll(dir); err != nil {
			o.logger.Warn("Failed to remove scratch directory %s: %s", dir, err)
		}
	}
	return dir, cleanup, nil
}

// UniqueOutputPath returns output_<uuid><ext> in the working directory,
// picking a new name while one already exists.
func UniqueOutputPath(fs ports.FileSystem, ext string) (string, error) {
	for {
		name := "output_" + uuid.NewString() + ext
		exists, err := fs.Exists(name)
		if err != nil {
			return "", fmt.Errorf("check output name: %w", err)
		}
		if !exists {
			return name, nil
		}
	}
}
