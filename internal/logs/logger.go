package logs

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

var (
	// Logger discards output until Initialize points it at a file; the TUI
	// owns stdout.
	Logger  = log.New(io.Discard, "[todomatic] ", log.LstdFlags|log.Lshortfile)
	logFile *os.File
	mu      sync.Mutex
)

// Initialize redirects Logger to debug.log inside logDir. An empty logDir
// leaves logging disabled.
func Initialize(logDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" {
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, "debug.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	Logger = log.New(f, "[todomatic] ", log.LstdFlags|log.Lshortfile)
	Logger.Printf("logging to %s", logPath)
	return nil
}

// Close closes the log file and falls back to discarding.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	Logger = log.New(io.Discard, "[todomatic] ", log.LstdFlags|log.Lshortfile)
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
