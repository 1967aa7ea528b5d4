package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/the-hitesh/auto-file-organizer/internal/organize"
)

// FileName is the per-user config file looked up in the home directory.
const FileName = ".afo.yaml"

// File mirrors the YAML config. Categories maps a destination folder name to
// the extensions it owns; Fallback overrides the folder for unmatched files.
//
//	fallback: Misc
//	categories:
//	  Images: [jpg, png, webp]
//	  Papers: [.pdf, .djvu]
type File struct {
	Fallback   string              `yaml:"fallback"`
	Categories map[string][]string `yaml:"categories"`
}

// Load reads rules from an explicit config path. The file must exist.
func Load(path string) (organize.Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return organize.Rules{}, err
	}
	return parse(path, data)
}

// Discover looks for the per-user config file and falls back to the built-in
// default rules when it does not exist.
func Discover() (organize.Rules, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return organize.DefaultRules(), nil
	}
	path := filepath.Join(home, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return organize.DefaultRules(), nil
		}
		return organize.Rules{}, err
	}
	return parse(path, data)
}

func parse(path string, data []byte) (organize.Rules, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return organize.Rules{}, fmt.Errorf("config %s: %w", path, err)
	}

	rules := organize.DefaultRules()
	if strings.TrimSpace(f.Fallback) != "" {
		rules.Fallback = strings.TrimSpace(f.Fallback)
	}
	if len(f.Categories) == 0 {
		return rules, nil
	}

	// A categories block replaces the built-in mapping entirely.
	byExt := make(map[string]string)
	for category, exts := range f.Categories {
		category = strings.TrimSpace(category)
		if category == "" {
			return organize.Rules{}, fmt.Errorf("config %s: empty category name", path)
		}
		for _, ext := range exts {
			key := normalizeExt(ext)
			if key == "." {
				return organize.Rules{}, fmt.Errorf("config %s: empty extension in category %q", path, category)
			}
			if prev, ok := byExt[key]; ok && prev != category {
				return organize.Rules{}, fmt.Errorf("config %s: extension %q mapped to both %q and %q", path, key, prev, category)
			}
			byExt[key] = category
		}
	}
	rules.ByExtension = byExt
	return rules, nil
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
