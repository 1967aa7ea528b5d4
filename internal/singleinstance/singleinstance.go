package singleinstance

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

var rootLock *flock.Flock

// lockPath derives a stable lock file location for a watch root. The lock
// lives under the user cache dir, never inside the root, so the organizer
// cannot sweep up its own lock file.
func lockPath(root string) (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	dir := filepath.Join(base, "afo")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	sum := sha1.Sum([]byte(filepath.Clean(root)))
	return filepath.Join(dir, fmt.Sprintf("watch-%x.lock", sum[:8])), nil
}

// Acquire takes the per-root watch lock. Returns false when another session
// already holds it.
func Acquire(root string) (bool, error) {
	path, err := lockPath(root)
	if err != nil {
		return false, fmt.Errorf("instance lock path: %w", err)
	}
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return false, fmt.Errorf("instance lock failed: %w", err)
	}
	if !ok {
		return false, nil
	}
	rootLock = lock
	return true, nil
}

func Release() {
	if rootLock != nil {
		_ = rootLock.Unlock()
		rootLock = nil
	}
}
