// Package logs records placement and resize events as JSON lines.
// Logging is off unless the environment turns it on.
package logs

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

const (
	// EnvLog turns logging on for any value other than "", "0" or "false".
	EnvLog = "TEXTGRID_LOG"
	// EnvLogFile names the log file and turns logging on by itself.
	EnvLogFile = "TEXTGRID_LOG_FILE"

	// DefaultFile is used when only EnvLog is set.
	DefaultFile = "textgrid.log"
)

// Logger appends one JSON object per event. Every method is safe on a
// nil *Logger, so callers never need to check before logging.
type Logger struct {
	mu      sync.Mutex
	w       *bufio.Writer
	c       io.Closer
	enabled bool
}

// NewFromEnv opens the log file named by the environment. If logging is
// off, or the file cannot be opened, the returned Logger drops events.
func NewFromEnv() *Logger {
	path, ok := logPath()
	if !ok {
		return &Logger{}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return &Logger{}
	}
	return &Logger{w: bufio.NewWriter(f), c: f, enabled: true}
}

func logPath() (string, bool) {
	if path := os.Getenv(EnvLogFile); path != "" {
		return path, true
	}
	switch os.Getenv(EnvLog) {
	case "", "0", "false":
		return "", false
	}
	return DefaultFile, true
}

// New returns an enabled logger writing to w.
func New(w io.Writer) *Logger {
	l := &Logger{w: bufio.NewWriter(w), enabled: true}
	if c, ok := w.(io.Closer); ok {
		l.c = c
	}
	return l
}

// Enabled reports whether Event writes anything.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}

// Close flushes pending output and disables l.
func (l *Logger) Close() {
	if !l.Enabled() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.w.Flush()
	if l.c != nil {
		_ = l.c.Close()
	}
	l.enabled = false
}

// Event writes fields plus "time" and "event" keys on a single line.
func (l *Logger) Event(event string, fields map[string]any) {
	if !l.Enabled() {
		return
	}
	rec := map[string]any{
		"time":  time.Now().Format(time.RFC3339Nano),
		"event": event,
	}
	for k, v := range fields {
		rec[k] = v
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	enc := json.NewEncoder(l.w)
	_ = enc.Encode(rec)
	_ = l.w.Flush()
}
