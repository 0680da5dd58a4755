// Package ports declares the interfaces the pipelines depend on. Adapters
// under pkg/adapters implement them.
package ports

// LogLevel is the minimum severity a logger emits.
type LogLevel int

const (
	// LevelDebug covers stage internals: worker counts, per-frame progress.
	LevelDebug LogLevel = iota
	// LevelInfo covers pipeline progress reported by the orchestrator.
	LevelInfo
	// LevelWarn covers problems that do not stop a run, such as a frame
	// count that disagrees with the container.
	LevelWarn
	// LevelError covers failures that abort a run.
	LevelError
	// LevelQuiet suppresses all output.
	LevelQuiet
)

// String returns the name used in configuration files and flags.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelQuiet:
		return "quiet"
	default:
		return "unknown"
	}
}

// ParseLogLevel maps a level name to a LogLevel. Unknown names mean info.
func ParseLogLevel(s string) LogLevel {
	switch s {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "quiet", "silent":
		return LevelQuiet
	default:
		return LevelInfo
	}
}

// Logger is the logging abstraction. Messages are format strings that double
// as translation keys.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	// WithComponent returns a logger that tags every line with component.
	WithComponent(component string) Logger
}
