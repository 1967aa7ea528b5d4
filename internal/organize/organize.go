package organize

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/the-hitesh/auto-file-organizer/internal/scan"
)

// Options controls a single pass.
type Options struct {
	DryRun    bool
	Recursive bool
}

// Organize runs one classify-and-move pass over root. The returned slice holds
// one Outcome per eligible file, including per-file failures; a non-nil error
// means the root itself was unusable and nothing was attempted. An empty slice
// with a nil error means there was nothing to do.
//
// Passes are idempotent: everything a pass moves lands under a destination
// category, which the eligibility filter skips on the next pass, and
// classification of untouched files is deterministic, so re-running converges
// to the same tree.
func Organize(root string, rules Rules, opts Options) ([]Outcome, error) {
	root, err := filepath.Abs(filepath.Clean(root))
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("target not usable: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("target not a directory: %s", root)
	}

	categories := rules.Categories()
	candidates, err := scan.Files(root, opts.Recursive)
	if err != nil {
		return nil, err
	}

	var outcomes []Outcome
	for _, c := range candidates {
		if !Eligible(root, c.AbsPath, categories) {
			continue
		}
		category := rules.Classify(c.AbsPath)

		name := filepath.Base(c.AbsPath)
		dst := filepath.Join(root, category, name)
		if opts.Recursive {
			// Keep the file's position in the source tree beneath its category.
			if relDir := filepath.Dir(c.RelPath); relDir != "." {
				dst = filepath.Join(root, category, relDir, name)
			}
		}

		outcomes = append(outcomes, Move(c.AbsPath, dst, opts.DryRun))
	}
	return outcomes, nil
}
