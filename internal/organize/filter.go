package organize

import (
	"path/filepath"
	"strings"
)

// Eligible reports whether path may be organized relative to root. Paths
// outside root are rejected rather than treated as an error, and paths whose
// first component under root is a destination category are rejected so the
// organizer never touches its own output. The root itself is never eligible.
func Eligible(root, path string, categories map[string]struct{}) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return false
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	first := rel
	if idx := strings.IndexRune(rel, filepath.Separator); idx >= 0 {
		first = rel[:idx]
	}
	_, organized := categories[first]
	return !organized
}
