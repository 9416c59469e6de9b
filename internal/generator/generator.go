// Package generator orchestrates one documentation generation run.
package generator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/taigrr/refgen/internal/directive"
	"github.com/taigrr/refgen/internal/nav"
	"github.com/taigrr/refgen/internal/scanner"
	"github.com/taigrr/refgen/internal/types"
)

// Config holds the knobs for one Generator.
type Config struct {
	Root   string      // reference root directory for pages and SUMMARY.md
	DryRun bool        // derive everything, write nothing
	Logger *log.Logger // nil silences run logging
}

// Generator runs the scan → emit → nav pipeline over configured packages.
type Generator struct {
	root   string
	dryRun bool
	logger *log.Logger
}

// New creates a Generator from cfg.
func New(cfg Config) *Generator {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Generator{
		root:   cfg.Root,
		dryRun: cfg.DryRun,
		logger: logger,
	}
}

// Run processes the package specs sequentially in the order given: each
// package is scanned, its pages rendered and written, and its navigation
// fragment built; the fragments are then concatenated in the same order and
// written once to SUMMARY.md at the reference root. The first failure aborts
// the run.
func (g *Generator) Run(specs []types.PackageSpec) (*types.GenerateResult, error) {
	result := &types.GenerateResult{DryRun: g.dryRun}
	var fragments strings.Builder

	for _, spec := range specs {
		pkgResult, fragment, err := g.runPackage(spec)
		if err != nil {
			return nil, err
		}
		fragments.WriteString(fragment)
		result.Packages = append(result.Packages, pkgResult)
		result.TotalPages += len(pkgResult.Pages)
	}

	summaryPath := filepath.Join(g.root, nav.SummaryFile)
	if !g.dryRun {
		if err := os.MkdirAll(g.root, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
		if err := os.WriteFile(summaryPath, []byte(fragments.String()), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write navigation document: %s - %w", summaryPath, err)
		}
	}
	result.SummaryPath = summaryPath

	g.logger.Info("generation complete",
		"packages", len(result.Packages),
		"pages", result.TotalPages,
		"summary", summaryPath,
	)
	return result, nil
}

func (g *Generator) runPackage(spec types.PackageSpec) (types.PackageResult, string, error) {
	pkgResult := types.PackageResult{Name: spec.Name}

	candidates, err := scanner.Scan(spec)
	if err != nil {
		return pkgResult, "", err
	}

	opts := directive.Defaults().Merge(spec.Options)
	builder := nav.NewBuilder()

	for _, c := range candidates {
		page := directive.PageFor(c)
		content := directive.Render(page.Module, opts)
		if !g.dryRun {
			if err := directive.Write(g.root, page, content); err != nil {
				return pkgResult, "", err
			}
		}
		builder.Add(page.Parts, page.DocPath)
		pkgResult.Pages = append(pkgResult.Pages, page.DocPath)
		g.logger.Debug("generated page", "module", page.Module, "path", page.DocPath)
	}

	g.logger.Info("package generated", "name", spec.Name, "pages", len(pkgResult.Pages))
	return pkgResult, builder.Literate(), nil
}
