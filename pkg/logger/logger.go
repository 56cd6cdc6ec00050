package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	Level       string
	Pretty      bool
	ServiceName string
	Output      io.Writer
}

// Logger keeps the printf-style API used across services on top of zerolog.
type Logger struct {
	base zerolog.Logger
}

func New() *Logger {
	return NewWithConfig(Config{Level: "info"})
}

func NewWithConfig(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Output != nil {
		w = cfg.Output
	}
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
	if cfg.ServiceName != "" {
		zl = zl.With().Str(FieldService, cfg.ServiceName).Logger()
	}

	return &Logger{base: zl}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.base.Debug().Msgf(format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.base.Info().Msgf(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.base.Warn().Msgf(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.base.Error().Msgf(format, args...)
}

// With returns a child logger carrying an extra string field.
func (l *Logger) With(key, value string) *Logger {
	return &Logger{base: l.base.With().Str(key, value).Logger()}
}

// Zerolog exposes the underlying logger for structured events.
func (l *Logger) Zerolog() *zerolog.Logger {
	return &l.base
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
