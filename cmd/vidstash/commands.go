package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/vidstash/pkg/adapters/debugsink"
	"github.com/user/vidstash/pkg/adapters/ffmpeg"
	"github.com/user/vidstash/pkg/adapters/framestore"
	"github.com/user/vidstash/pkg/adapters/imagecodec"
	"github.com/user/vidstash/pkg/adapters/logger"
	"github.com/user/vidstash/pkg/adapters/mp4probe"
	"github.com/user/vidstash/pkg/adapters/nullsink"
	"github.com/user/vidstash/pkg/adapters/osfilesystem"
	"github.com/user/vidstash/pkg/channelsim"
	"github.com/user/vidstash/pkg/config"
	"github.com/user/vidstash/pkg/orchestrator"
	"github.com/user/vidstash/pkg/ports"
	"github.com/user/vidstash/pkg/stages/assemble"
	"github.com/user/vidstash/pkg/stages/extract"
	"github.com/user/vidstash/pkg/stages/frameread"
	"github.com/user/vidstash/pkg/stages/framewrite"
	"github.com/user/vidstash/pkg/summarizer"
)

// loadConfig reads the optional config file and applies flag overrides.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.Path("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if c.IsSet("preset") {
		if err := cfg.ApplyPreset(config.Preset(c.String("preset"))); err != nil {
			return cfg, err
		}
	}

	if c.IsSet("width") {
		cfg.BaseWidth = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.BaseHeight = c.Int("height")
	}
	if c.IsSet("factor") {
		cfg.DownscaleFactor = c.Int("factor")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("threshold") {
		cfg.Threshold = c.Int("threshold")
	}
	if c.IsSet("fps") {
		cfg.FPS = c.Float64("fps")
	}
	if c.IsSet("quality") {
		cfg.Quality = c.Int("quality")
	}
	if c.IsSet("bitrate") {
		cfg.Bitrate = c.Int("bitrate")
	}
	if c.IsSet("keep-scratch") {
		cfg.KeepScratch = c.Bool("keep-scratch")
	}
	if c.IsSet("append") {
		cfg.AppendOutput = c.Bool("append")
	}
	if c.IsSet("scratch-dir") {
		cfg.ScratchDir = c.Path("scratch-dir")
	}
	if c.IsSet("ffmpeg") {
		cfg.FFmpegPath = c.String("ffmpeg")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.Path("debug-dir")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	return cfg, cfg.Validate()
}

func newLogger(c *cli.Context, cfg config.Config) ports.Logger {
	if c.Bool("quiet") {
		return logger.NewNoop()
	}
	return logger.NewConsole(cfg.Level())
}

func requireArg(c *cli.Context, name string) (string, error) {
	if c.NArg() != 1 {
		return "", cli.Exit(l10n.F("Exactly one %s argument is required", name), 2)
	}
	return c.Args().First(), nil
}

// buildOrchestrator wires the adapters and stages for cfg.
func buildOrchestrator(cfg config.Config, fs ports.FileSystem, log ports.Logger) (*orchestrator.Orchestrator, error) {
	ffmpegPath, err := ffmpeg.Find(cfg.FFmpegPath)
	if err != nil {
		return nil, err
	}
	log.Debug("Using ffmpeg at %s", ffmpegPath)

	codec := imagecodec.New()

	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return nil, fmt.Errorf("create debug directory: %w", err)
		}
		sink = debugsink.New(cfg.DebugDir, fs, codec)
	} else {
		sink = nullsink.New()
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return orchestrator.New(
		framewrite.NewStage(sink, log, workers),
		assemble.NewStage(ffmpeg.NewEncoder(ffmpegPath), log),
		extract.NewStage(ffmpeg.NewExtractor(ffmpegPath), mp4probe.New(), log),
		frameread.NewStage(sink, log, workers),
		fs,
		framestore.Factory(fs, codec),
		sink,
		log,
	), nil
}

func runEncode(c *cli.Context) error {
	input, err := requireArg(c, "<file>")
	if err != nil {
		return err
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log := newLogger(c, cfg)
	fs := osfilesystem.New()

	orch, err := buildOrchestrator(cfg, fs, log)
	if err != nil {
		return err
	}

	result, err := orch.Encode(c.Context, cfg.ToOrchestratorConfig(input, c.Path("output")))
	if err != nil {
		return err
	}
	log.Info("Output saved to %s", result.OutputPath)

	writeSummary(c, cfg, fs, log, result)
	return nil
}

func runDecode(c *cli.Context) error {
	input, err := requireArg(c, "<video>")
	if err != nil {
		return err
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log := newLogger(c, cfg)
	fs := osfilesystem.New()

	orch, err := buildOrchestrator(cfg, fs, log)
	if err != nil {
		return err
	}

	result, err := orch.Decode(c.Context, cfg.ToOrchestratorConfig(input, c.Path("output")))
	if err != nil {
		return err
	}
	log.Info("Output saved to %s", result.OutputPath)

	writeSummary(c, cfg, fs, log, result)
	return nil
}

func runProbe(c *cli.Context) error {
	input, err := requireArg(c, "<video>")
	if err != nil {
		return err
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	g, err := cfg.Geometry()
	if err != nil {
		return err
	}

	info, err := mp4probe.New().Probe(input)
	if err != nil {
		return err
	}

	out := c.App.Writer
	fmt.Fprintf(out, "%s: %s\n", l10n.T("Codec"), info.Codec)
	fmt.Fprintf(out, "%s: %dx%d\n", l10n.T("Frame Size"), info.Width, info.Height)
	fmt.Fprintf(out, "%s: %d\n", l10n.T("Frame Count"), info.Frames)
	fmt.Fprintf(out, "%s: %d ms\n", l10n.T("Duration"), info.DurationMs)
	if info.Fragmented {
		fmt.Fprintln(out, l10n.T("Fragmented MP4"))
	}
	fmt.Fprintf(out, "%s: %s\n", l10n.T("Geometry"), g)
	fmt.Fprintln(out, l10n.F("Capacity: %d bytes", g.Capacity(int64(info.Frames))))

	if info.Width != g.StorageWidth() || info.Height != g.StorageHeight() {
		fmt.Fprintln(out, l10n.F("Warning: video is %dx%d but the geometry expects %dx%d",
			info.Width, info.Height, g.StorageWidth(), g.StorageHeight()))
	}
	return nil
}

func runCheck(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	g, err := cfg.Geometry()
	if err != nil {
		return err
	}

	opts := channelsim.Options{
		BlurSigma:   float32(c.Float64("blur")),
		Noise:       c.Int("noise"),
		JPEGQuality: c.Int("jpeg-quality"),
		Seed:        c.Uint64("seed"),
	}
	data := randomPayload(c.Int("bytes"), opts.Seed)

	report, err := channelsim.Measure(c.Context, g, data, opts, uint8(cfg.Threshold))
	if err != nil {
		return err
	}

	out := c.App.Writer
	fmt.Fprintf(out, "%s: %s\n", l10n.T("Geometry"), g)
	fmt.Fprintln(out, l10n.F("Frames: %d, bits: %d, bit errors: %d, frames with errors: %d",
		report.Frames, report.Bits, report.BitErrors, report.FrameErrors))
	fmt.Fprintln(out, l10n.F("Bit error rate: %.6f", report.BitErrorRate()))
	if report.BitErrors > 0 {
		fmt.Fprintln(out, l10n.T("Data would be corrupted; try a larger downscale factor."))
	}
	return nil
}

func writeSummary(c *cli.Context, cfg config.Config, fs ports.FileSystem, log ports.Logger, result orchestrator.RunResult) {
	path := c.Path("summary")
	if path == "" {
		return
	}
	w := summarizer.NewWriter(
		summarizer.NewMarkdownFormatter(
			summarizer.WithTranslator(l10n.T),
			summarizer.WithVersion(version),
		),
		fs,
	)
	if err := w.Write(path, buildSummary(cfg, result)); err != nil {
		log.Warn("Failed to write summary: %s", err)
		return
	}
	log.Info("Summary saved to %s", path)
}

func buildSummary(cfg config.Config, result orchestrator.RunResult) *summarizer.Summary {
	g := result.Geometry
	return summarizer.NewBuilder().
		WithMode(result.Mode).
		WithFiles(summarizer.FileInfo{
			InputPath:   result.InputPath,
			OutputPath:  result.OutputPath,
			InputBytes:  result.InputBytes,
			OutputBytes: result.OutputBytes,
			Appended:    result.Appended,
		}).
		WithFrames(summarizer.FrameInfo{
			Count:         result.FrameCount,
			BytesPerFrame: g.BytesPerFrame,
			PaddingBytes:  result.PaddingBytes,
			BaseWidth:     g.BaseWidth,
			BaseHeight:    g.BaseHeight,
			StorageWidth:  g.StorageWidth(),
			StorageHeight: g.StorageHeight(),
			Factor:        g.Factor,
		}).
		WithSettings(summarizer.Settings{
			Threshold:   cfg.Threshold,
			Quality:     cfg.Quality,
			CRF:         ffmpeg.CRF(cfg.Quality),
			Workers:     cfg.Workers,
			KeepScratch: result.KeptScratch,
			ScratchDir:  result.ScratchDir,
		}).
		WithVideo(summarizer.VideoInfo{
			Codec:      result.Codec,
			FPS:        result.FPS,
			DurationMs: result.VideoMs,
			Width:      g.StorageWidth(),
			Height:     g.StorageHeight(),
		}).
		WithElapsed(result.Elapsed).
		Build()
}

func randomPayload(n int, seed uint64) []byte {
	if n < 0 {
		n = 0
	}
	data := make([]byte, n)
	rng := rand.New(rand.NewPCG(seed, ^seed))
	for i := range data {
		data[i] = byte(rng.UintN(256))
	}
	return data
}

func init() {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintln(os.Stdout, l10n.F("vidstash version %s", c.App.Version))
	}
}
