package organize

import (
	"path/filepath"
	"strings"
)

// Rules maps lower-cased extensions (with leading dot) to category folder
// names. Fallback is the category for extensions with no entry and is always
// part of the destination set.
type Rules struct {
	ByExtension map[string]string
	Fallback    string
}

// DefaultRules returns the built-in mapping used when no config file exists.
func DefaultRules() Rules {
	return Rules{
		ByExtension: map[string]string{
			".jpg":  "Images",
			".jpeg": "Images",
			".png":  "Images",
			".gif":  "Images",
			".bmp":  "Images",
			".pdf":  "Documents",
			".doc":  "Documents",
			".docx": "Documents",
			".txt":  "Documents",
			".ppt":  "Documents",
			".pptx": "Documents",
			".xls":  "Documents",
			".xlsx": "Documents",
			".zip":  "Archives",
			".rar":  "Archives",
			".tar":  "Archives",
			".gz":   "Archives",
			".mp4":  "Videos",
			".mkv":  "Videos",
			".mov":  "Videos",
			".mp3":  "Audio",
			".wav":  "Audio",
			".py":   "Code",
			".cpp":  "Code",
			".c":    "Code",
			".h":    "Code",
			".java": "Code",
			".js":   "Code",
			".exe":  "Installers",
			".msi":  "Installers",
		},
		Fallback: "Others",
	}
}

// Classify returns the category for srcPath. Matching is case-insensitive on
// the final extension segment only; unknown extensions map to the fallback.
func (r Rules) Classify(srcPath string) string {
	ext := strings.ToLower(filepath.Ext(srcPath))
	if category, ok := r.ByExtension[ext]; ok {
		return category
	}
	return r.Fallback
}

// Categories returns the destination-category set: every mapped category plus
// the fallback. Files whose first path component under the root is in this set
// are the organizer's own output and must never be reprocessed.
func (r Rules) Categories() map[string]struct{} {
	set := make(map[string]struct{}, len(r.ByExtension)+1)
	for _, category := range r.ByExtension {
		set[category] = struct{}{}
	}
	set[r.Fallback] = struct{}{}
	return set
}
