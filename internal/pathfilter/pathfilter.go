// Package pathfilter decides which source paths become reference pages.
package pathfilter

import (
	"strings"
)

const (
	// sourceExt is the only extension that produces pages.
	sourceExt = ".py"
	// initFile stands in for its directory rather than being private.
	initFile = "__init__.py"
)

// PathFilter applies one package's exclusion lists to relative paths.
// Matching is plain substring containment, never glob or regex: a broad
// pattern like "test" also hits "contest.py", and that is intended.
type PathFilter struct {
	excludeFiles []string
	excludeDirs  []string
}

// New creates a PathFilter for the given exclusion lists.
func New(excludeFiles, excludeDirs []string) *PathFilter {
	return &PathFilter{
		excludeFiles: excludeFiles,
		excludeDirs:  excludeDirs,
	}
}

// ExcludedDir reports whether a directory's relative path contains any
// excluded-directory pattern. Callers prune the whole subtree on a match.
func (pf *PathFilter) ExcludedDir(relPath string) bool {
	return containsAny(normalize(relPath), pf.excludeDirs)
}

// ExcludedFile reports whether a file's relative path contains any
// excluded-file pattern. Testing the full relative path subsumes
// bare-filename patterns, since the filename is a substring of the path.
func (pf *PathFilter) ExcludedFile(relPath string) bool {
	return containsAny(normalize(relPath), pf.excludeFiles)
}

// Source reports whether base names a Python source file.
func Source(base string) bool {
	return strings.HasSuffix(base, sourceExt)
}

// Private reports whether base names a private module. An underscore prefix
// hides a file from documentation; the package initializer is the one
// exception because it documents its directory.
func Private(base string) bool {
	if base == initFile {
		return false
	}
	return strings.HasPrefix(base, "_")
}

// IsInit reports whether base is the package initializer.
func IsInit(base string) bool {
	return base == initFile
}

func containsAny(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}

func normalize(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}
