package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func TestConsoleHandler(t *testing.T) {
	t.Parallel()
	buf := new(bytes.Buffer)
	h := &ConsoleHandler{level: slog.LevelInfo, w: buf, noColor: true}

	assert.False(t, h.Enabled(slog.LevelDebug))
	assert.True(t, h.Enabled(slog.LevelWarn))

	log := slog.New(h.WithAttrs([]slog.Attr{slog.String("source", "jar")}))
	log.Info("cookies cleared", "removed", 2)

	line := buf.String()
	assert.Contains(t, line, "INFO")
	assert.Contains(t, line, "cookies cleared")
	assert.Contains(t, line, "source=jar")
	assert.Contains(t, line, "removed: 2")
}
