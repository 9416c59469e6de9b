// Package main implements the refgen command line.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	cmd := &cobra.Command{
		Use:   "refgen",
		Short: "Generate mkdocstrings reference pages and navigation",
		Long: `refgen walks Python package trees and emits one mkdocstrings
rendering-directive page per public module, plus a literate-nav
SUMMARY.md whose nesting mirrors the package layout. Point it at a
single package with flags, or drive multiple packages from refgen.yaml.`,
		Example: `  refgen generate --name mypkg --path src
  refgen generate --config refgen.yaml
  refgen check docs/reference`,
	}

	cmd.AddCommand(
		newGenerateCommand(),
		newCheckCommand(),
		newServeCommand(),
	)

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "refgen",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
