package packs

import (
	"path/filepath"

	"github.com/arthur-debert/overlay/pkg/types"
)

// matchesIgnore reports whether name matches one of the ignore patterns
func matchesIgnore(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// hasIgnoreFile reports whether dir contains the ignore marker file
func hasIgnoreFile(fsys types.FS, dir, ignoreFile string) bool {
	if ignoreFile == "" {
		return false
	}
	_, err := fsys.Stat(filepath.Join(dir, ignoreFile))
	return err == nil
}
