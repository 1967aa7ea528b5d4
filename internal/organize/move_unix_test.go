//go:build unix

package organize

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
)

func TestRenameFallsBackOnCrossDevice(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.pdf")
	mustWrite(t, src)
	dst := filepath.Join(dir, "Documents", "a.pdf")
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	orig := renameFunc
	renameFunc = func(oldpath, newpath string) error {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: syscall.EXDEV}
	}
	defer func() { renameFunc = orig }()

	if err := rename(src, dst); err != nil {
		t.Fatalf("rename error: %v", err)
	}
	if _, err := os.Stat(dst); err != nil {
		t.Fatalf("destination missing after copy fallback: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatalf("source should be gone, stat err: %v", err)
	}
}

func TestRenameDoesNotMaskOtherFailures(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.pdf")
	mustWrite(t, src)
	dst := filepath.Join(dir, "Documents", "a.pdf")
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	orig := renameFunc
	renameFunc = func(oldpath, newpath string) error {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: syscall.EACCES}
	}
	defer func() { renameFunc = orig }()

	err := rename(src, dst)
	if err == nil {
		t.Fatalf("expected rename failure to surface")
	}
	if !errors.Is(err, syscall.EACCES) {
		t.Fatalf("got %v want EACCES", err)
	}
	if _, err := os.Stat(src); err != nil {
		t.Fatalf("source must be untouched: %v", err)
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Fatalf("no copy must happen, stat err: %v", err)
	}
}
