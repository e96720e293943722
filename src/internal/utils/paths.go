package utils

import "path/filepath"

// ResolvePath returns path unchanged if it is absolute, otherwise joins it to
// baseDir and cleans the result. An empty path resolves to an empty string.
func ResolvePath(path, baseDir string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(filepath.Join(baseDir, path))
}
