package summarizer

import (
	"fmt"
	"strings"
	"time"
)

// Translator maps an English label to the display language.
type Translator func(key string) string

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate Translator
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the label translator.
func WithTranslator(t Translator) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = t
	}
}

// WithVersion adds the tool version to the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(key string) string { return key },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	var b strings.Builder
	t := f.translate

	title := "Run Summary"
	switch s.Mode {
	case "encode":
		title = "Encode Summary"
	case "decode":
		title = "Decode Summary"
	}
	fmt.Fprintf(&b, "# %s\n\n", t(title))

	fmt.Fprintf(&b, "## %s\n\n", t("Files"))
	f.header(&b)
	f.row(&b, "Input", code(s.Files.InputPath))
	f.row(&b, "Input Size", formatBytes(s.Files.InputBytes))
	f.row(&b, "Output", code(s.Files.OutputPath))
	f.row(&b, "Output Size", formatBytes(s.Files.OutputBytes))
	if s.Files.Appended {
		f.row(&b, "Output Mode", t("Appended"))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Frames"))
	f.header(&b)
	f.row(&b, "Frame Count", fmt.Sprintf("%d", s.Frames.Count))
	f.row(&b, "Bytes per Frame", fmt.Sprintf("%d", s.Frames.BytesPerFrame))
	if s.Frames.PaddingBytes > 0 {
		f.row(&b, "Padding", formatBytes(int64(s.Frames.PaddingBytes)))
	}
	f.row(&b, "Frame Size", fmt.Sprintf("%dx%d", s.Frames.StorageWidth, s.Frames.StorageHeight))
	if s.Frames.Factor > 0 {
		f.row(&b, "Bitmap Size", fmt.Sprintf("%dx%d (1/%d)",
			s.Frames.StorageWidth/s.Frames.Factor, s.Frames.StorageHeight/s.Frames.Factor, s.Frames.Factor))
	} else {
		f.row(&b, "Bitmap Size", fmt.Sprintf("%dx%d", s.Frames.StorageWidth, s.Frames.StorageHeight))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Settings"))
	f.header(&b)
	if s.Settings.Preset != "" {
		f.row(&b, "Preset", s.Settings.Preset)
	}
	if s.Mode == "decode" {
		f.row(&b, "Threshold", fmt.Sprintf("%d", s.Settings.Threshold))
	} else {
		f.row(&b, "Quality", fmt.Sprintf("%d (CRF %d)", s.Settings.Quality, s.Settings.CRF))
	}
	if s.Settings.Workers > 0 {
		f.row(&b, "Workers", fmt.Sprintf("%d", s.Settings.Workers))
	}
	if s.Settings.KeepScratch {
		f.row(&b, "Scratch Directory", code(s.Settings.ScratchDir))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Video"))
	f.header(&b)
	if s.Video.Codec != "" {
		f.row(&b, "Codec", s.Video.Codec)
	}
	f.row(&b, "Frame Rate", fmt.Sprintf("%g fps", s.Video.FPS))
	if s.Video.DurationMs > 0 {
		f.row(&b, "Duration", fmt.Sprintf("%d ms", s.Video.DurationMs))
	} else {
		f.row(&b, "Duration", "N/A")
	}
	b.WriteString("\n")

	b.WriteString("---\n\n")
	footer := fmt.Sprintf("%s %s", t("Generated at"), s.GeneratedAt.Format(time.RFC3339))
	if s.Elapsed > 0 {
		footer += fmt.Sprintf(" (%s %s)", t("took"), s.Elapsed.Round(time.Millisecond))
	}
	if f.version != "" {
		footer += fmt.Sprintf(" by vidstash %s", f.version)
	}
	b.WriteString(footer + "\n")

	return b.String()
}

func (f *MarkdownFormatter) header(b *strings.Builder) {
	fmt.Fprintf(b, "| %s | %s |\n|---|---|\n", f.translate("Item"), f.translate("Value"))
}

func (f *MarkdownFormatter) row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "| %s | %s |\n", f.translate(label), value)
}

func code(s string) string {
	if s == "" {
		return "-"
	}
	return "`" + s + "`"
}

// formatBytes formats a byte count with binary units.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 2; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMG"[exp])
}
