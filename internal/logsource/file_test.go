package logsource

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSource_Lines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "access.log")
	content := "line one\nline two\n\nline four\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	src := NewFileSource(path)
	if src.Name() != "file" {
		t.Errorf("Name = %q, want file", src.Name())
	}

	lines, err := src.Lines()
	if err != nil {
		t.Fatalf("Lines: %v", err)
	}
	want := []string{"line one", "line two", "", "line four"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %d, want %d: %q", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestFileSource_Missing(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "does-not-exist.log"))

	if _, err := src.Lines(); err == nil {
		t.Error("Lines on missing file should fail")
	}
}

func TestFileSource_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.log")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	lines, err := NewFileSource(path).Lines()
	if err != nil {
		t.Fatalf("Lines: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("lines = %q, want none", lines)
	}
}

func TestFileSource_NoTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "access.log")
	if err := os.WriteFile(path, []byte("only line"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	lines, err := NewFileSource(path).Lines()
	if err != nil {
		t.Fatalf("Lines: %v", err)
	}
	if len(lines) != 1 || lines[0] != "only line" {
		t.Errorf("lines = %q, want [only line]", lines)
	}
}
