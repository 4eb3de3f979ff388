// Package fileutil holds the small path and list helpers shared by option
// normalization and config loading.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// NormalizePath resolves path against parent when it carries a path
// separator; bare names (patterns, check codes masquerading as paths) are
// left untouched. Trailing separators are stripped. The result is stable
// under repeated application.
func NormalizePath(path, parent string) string {
	sep := string(os.PathSeparator)
	if strings.Contains(path, sep) {
		if !filepath.IsAbs(path) {
			path = filepath.Join(parent, path)
		}
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}
	return strings.TrimRight(path, sep)
}

// NormalizePaths applies NormalizePath to every element.
func NormalizePaths(paths []string, parent string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, NormalizePath(p, parent))
	}
	return out
}

// ParseCommaSeparatedList splits value on commas and newlines, trimming
// whitespace and dropping empty entries.
func ParseCommaSeparatedList(value string) []string {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
	out := make([]string, 0, len(fields))
	for _, item := range fields {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
