package logger

import (
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
)

type (
	Level string

	// Logger is the structured logger used across lifestyle.
	Logger interface {
		Debug(msg string, keyvals ...any)
		Info(msg string, keyvals ...any)
		Warn(msg string, keyvals ...any)
		Error(msg string, keyvals ...any)
	}
)

const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

func (l Level) charm() charmlog.Level {
	switch l {
	case DebugLevel:
		return charmlog.DebugLevel
	case WarnLevel:
		return charmlog.WarnLevel
	case ErrorLevel:
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

type Config struct {
	Level  Level
	Output io.Writer
	JSON   bool
}

// DefaultConfig logs info and above to stderr so stdout stays free for reports.
func DefaultConfig() *Config {
	return &Config{
		Level:  InfoLevel,
		Output: os.Stderr,
	}
}

var defaultLogger = New(DefaultConfig())

// New builds a charm logger from cfg.
func New(cfg *Config) *charmlog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	l := charmlog.NewWithOptions(out, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           cfg.Level.charm(),
	})
	if cfg.JSON {
		l.SetFormatter(charmlog.JSONFormatter)
	}
	return l
}

// Setup replaces the default logger.
func Setup(level string, json bool) {
	defaultLogger = New(&Config{Level: Level(level), Output: os.Stderr, JSON: json})
}

// SetOutput redirects the default logger, mostly for tests.
func SetOutput(w io.Writer) {
	defaultLogger.SetOutput(w)
}

func Default() Logger { return defaultLogger }

func Debug(msg string, keyvals ...any) { defaultLogger.Debug(msg, keyvals...) }

func Info(msg string, keyvals ...any) { defaultLogger.Info(msg, keyvals...) }

func Warn(msg string, keyvals ...any) { defaultLogger.Warn(msg, keyvals...) }

func Error(msg string, keyvals ...any) { defaultLogger.Error(msg, keyvals...) }

