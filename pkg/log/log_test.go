package log

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithModule(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, slog.LevelInfo).WithModule("TtsUsecase")

	l.Info("synthesis finished", Int("bytes", 42), Error(errors.New("boom")))

	out := buf.String()
	assert.Contains(t, out, "module=TtsUsecase")
	assert.Contains(t, out, "bytes=42")
	assert.Contains(t, out, "error=boom")
	assert.Contains(t, out, "time=")
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, slog.LevelWarn)

	l.Info("hidden")
	l.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
