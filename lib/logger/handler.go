package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/exp/slog"
)

const (
	red    = 31
	yellow = 33
	blue   = 36
	grey   = 38
)

var bufPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

func freeBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufPool.Put(buf)
}

// ConsoleHandler is a Handler that writes Records to an io.Writer as
// single colored lines.
type ConsoleHandler struct {
	level        slog.Leveler
	w            io.Writer
	attrs, group string
	noColor      bool
}

// NewConsoleHandler creates a ConsoleHandler that writes to stdout,
// using the given level.
func NewConsoleHandler(l slog.Leveler) *ConsoleHandler {
	return &ConsoleHandler{
		level:   l,
		w:       os.Stdout,
		noColor: os.Getenv("NO_COLOR") != "",
	}
}

// Enabled reports whether the handler handles records at the given level.
// The handler ignores records whose level is lower.
func (c *ConsoleHandler) Enabled(l slog.Level) bool {
	minLevel := slog.LevelInfo
	if c.level != nil {
		minLevel = c.level.Level()
	}
	return l >= minLevel
}

// WithAttrs returns a new ConsoleHandler whose attributes consists
// of c's attributes followed by attrs.
func (c *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	buf := bufPool.Get().(*bytes.Buffer)
	defer freeBuffer(buf)

	buf.WriteString(c.attrs)
	for _, attr := range attrs {
		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(attr.String())
	}

	return &ConsoleHandler{
		level:   c.level,
		w:       c.w,
		group:   c.group,
		attrs:   buf.String(),
		noColor: c.noColor,
	}
}

// WithGroup returns a new Handler with the given group name.
// The record attribute keys are qualified with the name.
func (c *ConsoleHandler) WithGroup(name string) slog.Handler {
	return &ConsoleHandler{
		level:   c.level,
		w:       c.w,
		group:   name,
		attrs:   c.attrs,
		noColor: c.noColor,
	}
}

// Handle formats its argument Record as a single line.
//
// If the Record's time is zero, the time is omitted.
//
// Each call to Handle results in a single serialized call to io.Writer.Write.
func (c *ConsoleHandler) Handle(r slog.Record) (err error) {
	time := ""
	if !r.Time.IsZero() {
		time = r.Time.Format("15:04:05.000")
	}

	buf := bufPool.Get().(*bytes.Buffer)
	defer freeBuffer(buf)

	if c.attrs != "" {
		buf.WriteString(c.attrs)
		buf.WriteByte(' ')
	}
	r.Attrs(func(a slog.Attr) {
		if c.group != "" {
			buf.WriteString(c.group)
			buf.WriteByte('.')
		}
		buf.WriteString(a.Key)
		buf.WriteString(": ")
		buf.WriteString(a.Value.String())
		buf.WriteByte(' ')
	})

	var levelColor = grey
	switch r.Level {
	case slog.LevelDebug:
		levelColor = blue
	case slog.LevelWarn:
		levelColor = yellow
	case slog.LevelError:
		levelColor = red
	}

	if c.noColor {
		_, err = fmt.Fprintf(c.w, "[%s] %s %s %s\n", time, r.Level.String(), r.Message, buf.String())
		return
	}

	_, err = fmt.Fprintf(c.w, "[%s] \x1b[%dm%s \x1b[0m%s %s\n", time, levelColor, r.Level.String(), r.Message, buf.String())

	return
}
