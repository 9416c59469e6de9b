package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// PackageInput describes one package to document.
	PackageInput struct {
		Name         string         `json:"name" jsonschema:"Package directory name; becomes the root of every dotted identifier"`
		Path         string         `json:"path,omitempty" jsonschema:"Directory containing the package directory (default: current directory)"`
		ExcludeFiles []string       `json:"excludeFiles,omitempty" jsonschema:"Substrings of relative file paths to skip"`
		ExcludeDirs  []string       `json:"excludeDirs,omitempty" jsonschema:"Substrings of relative directory paths to prune"`
		Options      map[string]any `json:"options,omitempty" jsonschema:"Rendering option overrides merged over the defaults"`
	}

	// GenerateInput contains parameters for a generation run.
	GenerateInput struct {
		Config   string         `json:"config,omitempty" jsonschema:"Run configuration file to load (default: refgen.yaml)"`
		Packages []PackageInput `json:"packages,omitempty" jsonschema:"Packages to document; overrides the config file's list"`
		Out      string         `json:"out,omitempty" jsonschema:"Reference root directory (overrides reference_dir)"`
		DryRun   bool           `json:"dryRun,omitempty" jsonschema:"Report pages without writing anything"`
	}

	// GeneratedPackage reports the pages generated for one package.
	GeneratedPackage struct {
		Name  string   `json:"name"`
		Pages []string `json:"pages"`
	}

	// GenerateOutput contains the result of a generation run.
	GenerateOutput struct {
		Packages    []GeneratedPackage `json:"packages"`
		SummaryPath string             `json:"summaryPath"`
		TotalPages  int                `json:"totalPages"`
		DryRun      bool               `json:"dryRun,omitempty"`
	}

	// CheckInput contains parameters for checking a reference tree.
	CheckInput struct {
		Root string `json:"root,omitempty" jsonschema:"Reference root directory to check (default: reference)"`
	}

	// CheckOutput contains the result of a structural check.
	CheckOutput struct {
		Valid    bool     `json:"valid"`
		Problems []string `json:"problems,omitempty"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate mkdocstrings reference pages and a literate-nav SUMMARY.md for the given packages. Exclusions match by substring; files starting with underscore are skipped except __init__.py, which becomes its directory's index page.",
	}, handleGenerate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check",
		Description: "Verify a generated reference tree: SUMMARY.md must be a pure nested bullet list whose relative links resolve to existing pages under the reference root.",
	}, handleCheck)
}
