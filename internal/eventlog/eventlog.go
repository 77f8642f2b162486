package eventlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// maxInfo caps the free-text part of a line so one oversized input
// cannot flood the log.
const maxInfo = 60

// Log is the append-only diagnostic sink. One line per significant event:
//
//	2006-01-02 15:04:05 | IP=203.0.113.7 | INPUT | first words of the message
//
// The handle is opened once at startup and shared by all in-flight requests;
// appends are serialized internally.
type Log struct {
	mu sync.Mutex
	f  *os.File
}

func Open(path string) (*Log, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open event log: %w", err)
	}
	return &Log{f: f}, nil
}

func (l *Log) Event(action, clientIP, info string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("%s | IP=%s | %s | %s\n", ts, clientIP, action, sanitize(info))

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.f.WriteString(line)
}

func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Close()
}

func sanitize(info string) string {
	info = strings.ReplaceAll(info, "\r", " ")
	info = strings.ReplaceAll(info, "\n", " ")
	runes := []rune(info)
	if len(runes) > maxInfo {
		return string(runes[:maxInfo])
	}
	return info
}
