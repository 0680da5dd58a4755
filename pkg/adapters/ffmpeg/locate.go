// Package ffmpeg drives an external ffmpeg process to assemble frames into
// an H.264 MP4 and to split videos back into PNG frames.
package ffmpeg

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Find returns the ffmpeg executable to run. An explicit path wins, then
// FFMPEG_PATH, then PATH, then the usual install locations for the OS.
// An explicit path or FFMPEG_PATH that does not exist is an error rather
// than a reason to keep searching.
func Find(custom string) (string, error) {
	if custom != "" {
		if !exists(custom) {
			return "", fmt.Errorf("%w: %s does not exist", ErrFFmpegNotFound, custom)
		}
		return custom, nil
	}

	if env := os.Getenv("FFMPEG_PATH"); env != "" {
		if !exists(env) {
			return "", fmt.Errorf("%w: FFMPEG_PATH=%s does not exist", ErrFFmpegNotFound, env)
		}
		return env, nil
	}

	name := "ffmpeg"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	if p, err := exec.LookPath(name); err == nil {
		return p, nil
	}

	for _, p := range commonPaths() {
		if exists(p) {
			return p, nil
		}
	}
	return "", ErrFFmpegNotFound
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Available reports whether ffmpeg can be located.
func Available(custom string) bool {
	_, err := Find(custom)
	return err == nil
}

func commonPaths() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			`C:\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files\ffmpeg\bin\ffmpeg.exe`,
		}
	case "darwin":
		return []string{
			"/opt/homebrew/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
		}
	default:
		return []string{
			"/usr/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/snap/bin/ffmpeg",
		}
	}
}
