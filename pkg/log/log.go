package log

import (
	"io"
	"log/slog"
	"os"
	"time"

	"piper-tts/config"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(NewLogger)

type Logger struct {
	*slog.Logger
}

func NewLogger(config *config.Config) *Logger {
	return NewLoggerWithWriter(os.Stdout, slog.Level(config.Log.Level))
}

func NewLoggerWithWriter(w io.Writer, level slog.Level) *Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return &Logger{logger}
}

// Discard drops everything; used by tests.
func Discard() *Logger {
	return &Logger{slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func (l *Logger) WithModule(module string) *Logger {
	return &Logger{l.With(slog.String("module", module))}
}

func Any(key string, value any) slog.Attr {
	return slog.Any(key, value)
}

func String(key string, value string) slog.Attr {
	return slog.String(key, value)
}

func Int(key string, value int) slog.Attr {
	return slog.Int(key, value)
}

func Int64(key string, value int64) slog.Attr {
	return slog.Int64(key, value)
}

func Duration(key string, value time.Duration) slog.Attr {
	return slog.Duration(key, value)
}

func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
