package ports

// VideoInfo describes the video track of a container.
type VideoInfo struct {
	Codec      string
	Width      int
	Height     int
	Frames     int
	Timescale  uint32
	DurationMs int64
	Fragmented bool
}

// VideoProbe reads container metadata without decoding frames.
type VideoProbe interface {
	Probe(path string) (VideoInfo, error)
}
