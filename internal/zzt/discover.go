package zzt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nao1215/stkscan/internal/model"
)

// Extension is the file extension of world files, matched case-insensitively.
const Extension = ".zzt"

// IsWorldFile reports whether name carries the world file extension.
func IsWorldFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), Extension)
}

// Discover lists the world files directly inside dir, sorted by name.
// Subdirectories are not descended into. A file whose name matches one of
// the ignore glob patterns (case-insensitively) is left out.
//
// An empty result is not an error.
func Discover(dir string, ignore []string) ([]model.Target, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	targets := make([]model.Target, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !IsWorldFile(name) || ignored(name, ignore) {
			continue
		}

		path := filepath.Join(dir, name)
		if !isRegularFile(entry, path) {
			continue
		}

		targets = append(targets, model.Target{Name: name, Path: path})
	}

	return targets, nil
}

// isRegularFile follows symlinks so linked worlds are picked up too.
func isRegularFile(entry os.DirEntry, path string) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func ignored(name string, patterns []string) bool {
	lower := strings.ToLower(name)
	for _, p := range patterns {
		if ok, err := filepath.Match(strings.ToLower(p), lower); err == nil && ok {
			return true
		}
	}
	return false
}
