package organize

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Outcome describes one attempted relocation. Dest is the requested path in
// dry-run mode and the collision-resolved path after a real move. A non-nil
// Err means the move failed; the rest of the pass is unaffected.
type Outcome struct {
	Source string
	Dest   string
	Size   int64
	DryRun bool
	Err    error
}

// Move relocates src to dst, creating the destination directory chain first.
// Dry-run performs no filesystem mutation at all and reports the requested
// destination unchanged.
func Move(src, dst string, dryRun bool) Outcome {
	out := Outcome{Source: src, Dest: dst, DryRun: dryRun}
	if info, err := os.Stat(src); err == nil {
		out.Size = info.Size()
	}
	if dryRun {
		return out
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		out.Err = err
		return out
	}
	unique, err := UniquePath(dst)
	if err != nil {
		out.Err = err
		return out
	}
	out.Dest = unique
	if err := rename(src, unique); err != nil {
		out.Err = err
	}
	return out
}

// UniquePath resolves collisions by inserting " (1)", " (2)", ... before the
// extension until an unoccupied path is found. Existing files are never
// overwritten.
func UniquePath(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	} else if err != nil {
		return "", err
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(filepath.Base(path), ext)
	dir := filepath.Dir(path)
	for i := 1; i <= 9999; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", base, i, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		} else if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("cannot resolve unique name for %s", path)
}

// Swappable so tests can simulate cross-device rename failures.
var renameFunc = os.Rename

// rename tries os.Rename and falls back to copy+delete only for cross-device
// failures, so moves across filesystem boundaries still succeed while every
// other rename error surfaces untouched.
func rename(src, dst string) error {
	err := renameFunc(src, dst)
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) {
		return err
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return err
	}
	return out.Close()
}
