// Package scanner walks package trees and collects documentable source files.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/taigrr/refgen/internal/pathfilter"
	"github.com/taigrr/refgen/internal/types"
)

// NotFoundError reports a package root that is missing or not a directory.
type NotFoundError struct {
	Package string
	Root    string
	Err     error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("package %s not found at %s", e.Package, e.Root)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// Scan walks the tree under spec.Path/spec.Name depth-first, each directory
// in listing order, and returns the files that should become reference
// pages. Candidate paths are slash-separated and relative to spec.Path, so
// the package name is always the first segment. Excluded directories are
// pruned whole; private, non-source, and excluded files are skipped
// silently. Every call walks the tree fresh.
func Scan(spec types.PackageSpec) ([]types.Candidate, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("package name is required")
	}
	base := spec.Path
	if base == "" {
		base = "."
	}
	root := filepath.Join(base, spec.Name)

	info, err := os.Stat(root)
	if err != nil {
		return nil, &NotFoundError{Package: spec.Name, Root: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &NotFoundError{Package: spec.Name, Root: root, Err: fmt.Errorf("not a directory")}
	}

	filter := pathfilter.New(spec.ExcludeFiles, spec.ExcludeDirs)

	var candidates []types.Candidate
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if filter.ExcludedDir(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !pathfilter.Source(d.Name()) || pathfilter.Private(d.Name()) {
			return nil
		}
		if filter.ExcludedFile(rel) {
			return nil
		}
		candidates = append(candidates, types.Candidate{RelPath: rel})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan package %s: %w", spec.Name, err)
	}
	return candidates, nil
}
