// Package types defines the data structures shared across the generator.
package types

type (
	// PackageSpec describes one Python package to document.
	PackageSpec struct {
		Name         string   `yaml:"name"`                    // package directory name, required
		Path         string   `yaml:"path,omitempty"`          // directory containing the package, default "."
		ExcludeFiles []string `yaml:"exclude_files,omitempty"` // substring matches against relative file paths
		ExcludeDirs  []string `yaml:"exclude_dirs,omitempty"`  // substring matches, prune whole subtrees
		Options      Options  `yaml:"options,omitempty"`       // per-package rendering option overrides
	}
)
