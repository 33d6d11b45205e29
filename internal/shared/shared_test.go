package shared

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

func TestParseLevel(t *testing.T) {
	tc := []struct {
		name  string
		input string
		want  log.Level
	}{
		{name: "debug", input: "debug", want: log.DebugLevel},
		{name: "mixed case with spaces", input: "  Warn ", want: log.WarnLevel},
		{name: "error", input: "error", want: log.ErrorLevel},
		{name: "empty falls back to info", input: "", want: log.InfoLevel},
		{name: "unknown falls back to info", input: "chatty", want: log.InfoLevel},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	if a == b {
		t.Fatal("expected distinct IDs")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("expected a valid UUID, got %q: %v", a, err)
	}
}

func TestMarshalJSON(t *testing.T) {
	v := map[string]int{"a": 1}

	compact, err := MarshalJSON(v, false)
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	if string(compact) != `{"a":1}` {
		t.Errorf("unexpected compact output %s", compact)
	}

	pretty, err := MarshalJSON(v, true)
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	if !strings.Contains(string(pretty), "\n  \"a\": 1") {
		t.Errorf("unexpected pretty output %s", pretty)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	t.Run("creates file and parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "out.json")

		if err := WriteFileAtomic(path, []byte("hello"), 0644); err != nil {
			t.Fatalf("WriteFileAtomic failed: %v", err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		if string(content) != "hello" {
			t.Errorf("expected hello, got %s", content)
		}
	})

	t.Run("replaces existing content and leaves no temp files", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.json")

		if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}
		if err := WriteFileAtomic(path, []byte("new"), 0644); err != nil {
			t.Fatalf("WriteFileAtomic failed: %v", err)
		}

		content, _ := os.ReadFile(path)
		if string(content) != "new" {
			t.Errorf("expected new, got %s", content)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("failed to read dir: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("expected only the target file, found %d entries", len(entries))
		}
	})

	t.Run("fails when directory is a file", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}

		if err := WriteFileAtomic(filepath.Join(blocker, "out.json"), []byte("x"), 0644); err == nil {
			t.Error("expected error writing beneath a regular file")
		}
	})
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tui.log")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger.Info("hello from test", "k", "v")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "hello from test") {
		t.Errorf("expected log line in file, got %q", content)
	}
}
