package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var DefaultExtensions = []string{"jpg", "png", "jpeg"}

// DisplayName is the caption shown for an image: its file name.
func DisplayName(filePath string) string {
	if i := strings.LastIndexAny(filePath, `/\`); i >= 0 && i < len(filePath)-1 {
		return filePath[i+1:]
	}
	return filepath.Base(filePath)
}

// NormalizeExtensions lowercases extensions and strips leading dots and
// globs, so "*.JPG" and ".jpg" both become "jpg".
func NormalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	seen := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		ext = strings.TrimLeft(ext, "*.")
		if ext == "" || seen[ext] {
			continue
		}
		seen[ext] = true
		out = append(out, ext)
	}
	return out
}

func HasExtension(filePath string, exts []string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filePath)), ".")
	for _, want := range exts {
		if ext == want {
			return true
		}
	}
	return false
}

func ValidateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return fmt.Errorf("directory does not exist: %s", dir)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}
	return nil
}
