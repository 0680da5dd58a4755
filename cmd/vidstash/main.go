// Package main provides the CLI entry point for vidstash.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"
)

var version = "dev"

// Flag categories
const (
	catOutput   = "Output"
	catGeometry = "Frame Geometry"
	catVideo    = "Video and Quality"
	catRuntime  = "Runtime"
	catDebug    = "Debug"
	catLogging  = "Logging"
	catChannel  = "Channel Simulation"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "vidstash",
		Usage:   l10n.T("Store arbitrary files as black-and-white video frames"),
		Version: version,
		Description: l10n.T("vidstash packs the bytes of a file into monochrome bitmaps, " +
			"assembles them into an MP4 video, and recovers the file from such a video."),
		Commands: []*cli.Command{
			encodeCommand(),
			decodeCommand(),
			probeCommand(),
			checkCommand(),
		},
	}
}

// commonFlags are shared by every command that reads the configuration.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.PathFlag{
			Name:     "config",
			Aliases:  []string{"c"},
			Usage:    l10n.T("YAML configuration file"),
			Category: l10n.T(catRuntime),
		},
		&cli.StringFlag{
			Name:     "preset",
			Aliases:  []string{"p"},
			Usage:    l10n.T("Density preset (robust, balanced, dense)"),
			Category: l10n.T(catGeometry),
		},
		&cli.IntFlag{
			Name:     "width",
			Aliases:  []string{"W"},
			Usage:    l10n.T("Frame width in pixels (default: 1280)"),
			Category: l10n.T(catGeometry),
		},
		&cli.IntFlag{
			Name:     "height",
			Aliases:  []string{"H"},
			Usage:    l10n.T("Frame height in pixels (default: 720)"),
			Category: l10n.T(catGeometry),
		},
		&cli.IntFlag{
			Name:     "factor",
			Aliases:  []string{"f"},
			Usage:    l10n.T("Downscale factor, 0 disables resampling (default: 4)"),
			Category: l10n.T(catGeometry),
		},
		&cli.IntFlag{
			Name:     "workers",
			Aliases:  []string{"j"},
			Usage:    l10n.T("Number of frame workers (default: number of CPUs)"),
			Category: l10n.T(catRuntime),
		},
		&cli.BoolFlag{
			Name:     "debug",
			Aliases:  []string{"d"},
			Usage:    l10n.T("Enable debug output"),
			Category: l10n.T(catDebug),
		},
		&cli.PathFlag{
			Name:     "debug-dir",
			Usage:    l10n.T("Directory for debug output"),
			Category: l10n.T(catDebug),
		},
		&cli.StringFlag{
			Name:     "log-level",
			Aliases:  []string{"l"},
			Usage:    l10n.T("Log level (debug, info, warn, error)"),
			Category: l10n.T(catLogging),
		},
		&cli.BoolFlag{
			Name:     "quiet",
			Aliases:  []string{"q"},
			Usage:    l10n.T("Suppress all log output"),
			Category: l10n.T(catLogging),
		},
	}
}

// pipelineFlags are shared by encode and decode.
func pipelineFlags() []cli.Flag {
	return append(commonFlags(),
		&cli.PathFlag{
			Name:     "output",
			Aliases:  []string{"o"},
			Usage:    l10n.T("Output file path (default: generated unique name)"),
			Category: l10n.T(catOutput),
		},
		&cli.PathFlag{
			Name:     "summary",
			Aliases:  []string{"s"},
			Usage:    l10n.T("Output execution summary to file (Markdown format)"),
			Category: l10n.T(catOutput),
		},
		&cli.BoolFlag{
			Name:     "keep-scratch",
			Usage:    l10n.T("Keep the scratch directory with intermediate frames"),
			Category: l10n.T(catRuntime),
		},
		&cli.PathFlag{
			Name:     "scratch-dir",
			Usage:    l10n.T("Parent directory for scratch directories"),
			Category: l10n.T(catRuntime),
		},
		&cli.StringFlag{
			Name:     "ffmpeg",
			Usage:    l10n.T("Path to the ffmpeg executable (falls back to FFMPEG_PATH, then PATH)"),
			Category: l10n.T(catRuntime),
		},
	)
}

func encodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Usage:     l10n.T("Encode a file into an MP4 video"),
		ArgsUsage: "<file>",
		Flags: append(pipelineFlags(),
			&cli.Float64Flag{
				Name:     "fps",
				Usage:    l10n.T("Video frame rate (default: 30)"),
				Category: l10n.T(catVideo),
			},
			&cli.IntFlag{
				Name:     "quality",
				Usage:    l10n.T("Video quality (0-63, lower is better, default: 12)"),
				Category: l10n.T(catVideo),
			},
			&cli.IntFlag{
				Name:     "bitrate",
				Usage:    l10n.T("Target bitrate in kbps, 0 uses quality"),
				Category: l10n.T(catVideo),
			},
		),
		Action: runEncode,
	}
}

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     l10n.T("Recover a file from an MP4 video"),
		ArgsUsage: "<video>",
		Flags: append(pipelineFlags(),
			&cli.IntFlag{
				Name:     "threshold",
				Aliases:  []string{"t"},
				Usage:    l10n.T("Luminance threshold for white pixels (0-255, default: 128)"),
				Category: l10n.T(catVideo),
			},
			&cli.BoolFlag{
				Name:     "append",
				Usage:    l10n.T("Append to the output file instead of overwriting it"),
				Category: l10n.T(catOutput),
			},
		),
		Action: runDecode,
	}
}

func probeCommand() *cli.Command {
	return &cli.Command{
		Name:      "probe",
		Usage:     l10n.T("Show the video track of an MP4 and how many bytes it can carry"),
		ArgsUsage: "<video>",
		Flags:     commonFlags(),
		Action:    runProbe,
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: l10n.T("Measure bit errors of the current geometry through a simulated lossy channel"),
		Flags: append(commonFlags(),
			&cli.IntFlag{
				Name:     "bytes",
				Aliases:  []string{"n"},
				Value:    256 * 1024,
				Usage:    l10n.T("Amount of random data to push through the channel"),
				Category: l10n.T(catChannel),
			},
			&cli.Float64Flag{
				Name:     "blur",
				Value:    0.8,
				Usage:    l10n.T("Gaussian blur sigma in pixels"),
				Category: l10n.T(catChannel),
			},
			&cli.IntFlag{
				Name:     "noise",
				Value:    20,
				Usage:    l10n.T("Maximum luminance noise per pixel"),
				Category: l10n.T(catChannel),
			},
			&cli.IntFlag{
				Name:     "jpeg-quality",
				Value:    75,
				Usage:    l10n.T("JPEG recompression quality, 0 disables it"),
				Category: l10n.T(catChannel),
			},
			&cli.Uint64Flag{
				Name:     "seed",
				Value:    1,
				Usage:    l10n.T("Random seed"),
				Category: l10n.T(catChannel),
			},
			&cli.IntFlag{
				Name:     "threshold",
				Aliases:  []string{"t"},
				Usage:    l10n.T("Luminance threshold for white pixels (0-255, default: 128)"),
				Category: l10n.T(catVideo),
			},
		),
		Action: runCheck,
	}
}
