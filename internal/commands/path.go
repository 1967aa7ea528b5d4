package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// expandPath turns a user-supplied path into a clean absolute one, expanding
// a leading ~ to the home directory.
func expandPath(in string) (string, error) {
	if strings.TrimSpace(in) == "" {
		return "", fmt.Errorf("path is required")
	}
	switch {
	case in == "~":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		in = home
	case strings.HasPrefix(in, "~/") || strings.HasPrefix(in, `~\`):
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		in = filepath.Join(home, in[2:])
	}
	return filepath.Abs(filepath.Clean(in))
}
