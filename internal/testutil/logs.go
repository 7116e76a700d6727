package testutil

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
)

// LogBuffer collects text-formatted slog output at debug level.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewLogger returns a debug-level logger writing into a fresh LogBuffer.
func NewLogger() (*slog.Logger, *LogBuffer) {
	lb := &LogBuffer{}
	return slog.New(slog.NewTextHandler(lb, &slog.HandlerOptions{Level: slog.LevelDebug})), lb
}

// Write implements io.Writer.
func (lb *LogBuffer) Write(p []byte) (int, error) {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.buf.Write(p)
}

// String returns everything logged so far.
func (lb *LogBuffer) String() string {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.buf.String()
}

// Lines returns the logged lines containing every one of substrs.
func (lb *LogBuffer) Lines(substrs ...string) []string {
	var out []string
	for _, line := range strings.Split(strings.TrimRight(lb.String(), "\n"), "\n") {
		if line == "" {
			continue
		}
		if containsAll(line, substrs) {
			out = append(out, line)
		}
	}
	return out
}

func containsAll(s string, substrs []string) bool {
	for _, sub := range substrs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
