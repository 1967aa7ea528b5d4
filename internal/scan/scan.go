package scan

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Candidate is one regular file discovered under the organizing root.
// Directories are never candidates.
type Candidate struct {
	AbsPath string
	RelPath string
	Size    int64
}

// Files enumerates regular files under root. Non-recursive mode lists only
// direct children; recursive mode walks every descendant. Symlinks are left
// alone and unreadable directories are skipped rather than failing the whole
// enumeration. Results are sorted by relative path so output is stable across
// platforms.
func Files(root string, recursive bool) ([]Candidate, error) {
	root = filepath.Clean(root)
	var out []Candidate
	if recursive {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if isAccessDenied(err) {
					if d != nil && d.IsDir() {
						return filepath.SkipDir
					}
					return nil
				}
				return err
			}
			if d.Type()&os.ModeSymlink != 0 {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			c, ok := toCandidate(root, path, d)
			if ok {
				out = append(out, c)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() || e.Type()&os.ModeSymlink != 0 {
				continue
			}
			c, ok := toCandidate(root, filepath.Join(root, e.Name()), e)
			if ok {
				out = append(out, c)
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].RelPath < out[j].RelPath })
	return out, nil
}

func toCandidate(root, path string, d fs.DirEntry) (Candidate, bool) {
	info, err := d.Info()
	if err != nil {
		// The entry vanished or turned unreadable mid-scan; skip it.
		return Candidate{}, false
	}
	if !info.Mode().IsRegular() {
		return Candidate{}, false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return Candidate{}, false
	}
	return Candidate{AbsPath: path, RelPath: rel, Size: info.Size()}, true
}

func isAccessDenied(err error) bool {
	if os.IsPermission(err) {
		return true
	}
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return os.IsPermission(pe.Err) || errors.Is(pe.Err, fs.ErrPermission)
	}
	return errors.Is(err, fs.ErrPermission)
}
