// Package mp4probe reads video track metadata from MP4 files.
package mp4probe

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/vidstash/pkg/ports"
)

// Codec names reported in ports.VideoInfo.
const (
	CodecH264    = "h264"
	CodecH265    = "h265"
	CodecAV1     = "av1"
	CodecVP9     = "vp9"
	CodecUnknown = "unknown"
)

// ErrNoVideoTrack is returned when a file has no video track.
var ErrNoVideoTrack = errors.New("mp4probe: no video track found")

// Probe implements ports.VideoProbe.
type Probe struct{}

// New creates a new Probe.
func New() *Probe {
	return &Probe{}
}

// Probe reads the video track metadata of the MP4 at path.
func (p *Probe) Probe(path string) (ports.VideoInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ports.VideoInfo{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return ProbeReader(f)
}

// ProbeReader reads video track metadata from an MP4 stream.
func ProbeReader(r io.ReadSeeker) (ports.VideoInfo, error) {
	file, err := mp4.DecodeFile(r)
	if err != nil {
		return ports.VideoInfo{}, fmt.Errorf("decode mp4: %w", err)
	}

	moov := file.Moov
	if file.IsFragmented() && file.Init != nil {
		moov = file.Init.Moov
	}
	if moov == nil {
		return ports.VideoInfo{}, ErrNoVideoTrack
	}

	trak := videoTrack(moov)
	if trak == nil {
		return ports.VideoInfo{}, ErrNoVideoTrack
	}

	info := ports.VideoInfo{
		Codec:      CodecUnknown,
		Fragmented: file.IsFragmented(),
	}
	if trak.Tkhd != nil {
		info.Width = int(trak.Tkhd.Width >> 16)
		info.Height = int(trak.Tkhd.Height >> 16)
	}
	if trak.Mdia.Mdhd != nil {
		info.Timescale = trak.Mdia.Mdhd.Timescale
	}

	stbl := trak.Mdia.Minf.Stbl
	if stbl.Stsd != nil {
		for _, child := range stbl.Stsd.Children {
			if codec := codecName(child.Type()); codec != CodecUnknown {
				info.Codec = codec
				if vse, ok := child.(*mp4.VisualSampleEntryBox); ok && vse.Width > 0 {
					info.Width = int(vse.Width)
					info.Height = int(vse.Height)
				}
				break
			}
		}
	}

	if info.Fragmented {
		frames, duration, err := countFragmentSamples(file, moov, trak.Tkhd.TrackID)
		if err != nil {
			return info, err
		}
		info.Frames = frames
		info.DurationMs = ticksToMs(duration, info.Timescale)
		return info, nil
	}

	if stbl.Stsz != nil {
		info.Frames = int(stbl.Stsz.SampleNumber)
	}
	if trak.Mdia.Mdhd != nil {
		info.DurationMs = ticksToMs(trak.Mdia.Mdhd.Duration, info.Timescale)
	}
	return info, nil
}

func videoTrack(moov *mp4.MoovBox) *mp4.TrakBox {
	for _, trak := range moov.Traks {
		if trak.Mdia == nil || trak.Mdia.Hdlr == nil || trak.Mdia.Hdlr.HandlerType != "vide" {
			continue
		}
		if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil {
			continue
		}
		return trak
	}
	return nil
}

func codecName(boxType string) string {
	switch boxType {
	case "avc1", "avc3":
		return CodecH264
	case "hvc1", "hev1":
		return CodecH265
	case "av01":
		return CodecAV1
	case "vp09":
		return CodecVP9
	default:
		return CodecUnknown
	}
}

func countFragmentSamples(file *mp4.File, moov *mp4.MoovBox, trackID uint32) (int, uint64, error) {
	var trex *mp4.TrexBox
	if moov.Mvex != nil {
		for _, t := range moov.Mvex.Trexs {
			if t.TrackID == trackID {
				trex = t
				break
			}
		}
	}

	frames := 0
	var duration uint64
	for _, seg := range file.Segments {
		for _, frag := range seg.Fragments {
			if frag.Moof == nil || !hasTrack(frag.Moof, trackID) {
				continue
			}
			samples, err := frag.GetFullSamples(trex)
			if err != nil {
				return 0, 0, fmt.Errorf("get samples: %w", err)
			}
			frames += len(samples)
			for _, s := range samples {
				duration += uint64(s.Dur)
			}
		}
	}
	return frames, duration, nil
}

func hasTrack(moof *mp4.MoofBox, trackID uint32) bool {
	for _, traf := range moof.Trafs {
		if traf.Tfhd != nil && traf.Tfhd.TrackID == trackID {
			return true
		}
	}
	return false
}

func ticksToMs(ticks uint64, timescale uint32) int64 {
	if timescale == 0 {
		return 0
	}
	return int64(ticks * 1000 / uint64(timescale))
}

// Ensure Probe implements ports.VideoProbe
var _ ports.VideoProbe = (*Probe)(nil)
