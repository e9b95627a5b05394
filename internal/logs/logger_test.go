package logs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitializeWritesDebugLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	if err := Initialize(dir); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	Logger.Printf("hello from test")
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log missing message: %s", data)
	}
}

func TestInitializeEmptyDirIsNoop(t *testing.T) {
	if err := Initialize(""); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
	Logger.Printf("discarded")
}
