package logging

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRotatingWriterKeepsOneBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swindle.log")
	w, err := newRotatingWriter(path, 1)
	if err != nil {
		t.Fatalf("create writer: %v", err)
	}
	defer w.Close()

	chunk := make([]byte, 512*1024)
	for i := 0; i < 5; i++ {
		if _, err := w.Write(chunk); err != nil {
			t.Fatalf("write chunk %d: %v", i, err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat log: %v", err)
	}
	if info.Size() > 1<<20 {
		t.Fatalf("expected log <= 1MB, got %d", info.Size())
	}
	backup, err := os.Stat(path + ".1")
	if err != nil {
		t.Fatalf("stat backup: %v", err)
	}
	if backup.Size() != 1<<20 {
		t.Fatalf("backup size = %d, want a full 1MB file", backup.Size())
	}
	if _, err := os.Stat(path + ".2"); !os.IsNotExist(err) {
		t.Fatalf("only one backup expected, got %v", err)
	}
}

func TestRotatingWriterResumesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swindle.log")
	if err := os.WriteFile(path, []byte("earlier\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	w, err := newRotatingWriter(path, 1)
	if err != nil {
		t.Fatalf("create writer: %v", err)
	}
	if _, err := w.Write([]byte("later\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	_ = w.Close()
	b, _ := os.ReadFile(path)
	if string(b) != "earlier\nlater\n" {
		t.Fatalf("content = %q", b)
	}
}
