package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/taigrr/refgen/internal/config"
	"github.com/taigrr/refgen/internal/generator"
	"github.com/taigrr/refgen/internal/nav"
	"github.com/taigrr/refgen/internal/types"
)

func handleGenerate(ctx context.Context, req *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, GenerateOutput, error) {
	configPath := input.Config
	if configPath == "" {
		configPath = config.DefaultFile
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, GenerateOutput{}, err
	}

	if len(input.Packages) > 0 {
		cfg.Packages = make([]types.PackageSpec, 0, len(input.Packages))
		for _, p := range input.Packages {
			cfg.Packages = append(cfg.Packages, types.PackageSpec{
				Name:         p.Name,
				Path:         p.Path,
				ExcludeFiles: p.ExcludeFiles,
				ExcludeDirs:  p.ExcludeDirs,
				Options:      types.OptionsFromMap(p.Options),
			})
		}
	}
	if input.Out != "" {
		cfg.ReferenceDir = input.Out
	}
	if err := cfg.Validate(); err != nil {
		return &mcp.CallToolResult{IsError: true}, GenerateOutput{}, err
	}
	if len(cfg.Packages) == 0 {
		return &mcp.CallToolResult{IsError: true}, GenerateOutput{},
			fmt.Errorf("no packages configured: pass packages or list them in %s", configPath)
	}

	g := generator.New(generator.Config{
		Root:   cfg.ReferenceDir,
		DryRun: input.DryRun,
	})
	result, err := g.Run(cfg.Packages)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, GenerateOutput{}, err
	}

	out := GenerateOutput{
		SummaryPath: result.SummaryPath,
		TotalPages:  result.TotalPages,
		DryRun:      result.DryRun,
	}
	for _, pkg := range result.Packages {
		out.Packages = append(out.Packages, GeneratedPackage{Name: pkg.Name, Pages: pkg.Pages})
	}
	return nil, out, nil
}

func handleCheck(ctx context.Context, req *mcp.CallToolRequest, input CheckInput) (*mcp.CallToolResult, CheckOutput, error) {
	root := input.Root
	if root == "" {
		root = config.DefaultReferenceDir
	}

	problems, err := nav.Check(root)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, CheckOutput{}, err
	}

	out := CheckOutput{Valid: len(problems) == 0}
	for _, p := range problems {
		out.Problems = append(out.Problems, p.Message)
	}
	return nil, out, nil
}
