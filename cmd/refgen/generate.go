package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taigrr/refgen/internal/config"
	"github.com/taigrr/refgen/internal/generator"
	"github.com/taigrr/refgen/internal/types"
)

type generateFlags struct {
	configPath   string
	name         string
	path         string
	excludeFiles []string
	excludeDirs  []string
	out          string
	dryRun       bool
	verbose      bool
}

func newGenerateCommand() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate reference pages and SUMMARY.md",
		Long: `Generate walks each configured package, writes one rendering-directive
page per public module under the reference root, and writes the
literate-nav SUMMARY.md. Passing --name documents a single package and
takes precedence over the packages list in the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(flags)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", config.DefaultFile, "run configuration file")
	cmd.Flags().StringVar(&flags.name, "name", "", "package directory name to document")
	cmd.Flags().StringVar(&flags.path, "path", ".", "directory containing the package directory")
	cmd.Flags().StringArrayVar(&flags.excludeFiles, "exclude-file", nil, "substring of file paths to skip (repeatable)")
	cmd.Flags().StringArrayVar(&flags.excludeDirs, "exclude-dir", nil, "substring of directory paths to prune (repeatable)")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "reference root directory (overrides reference_dir)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "report pages without writing anything")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log each generated page")

	return cmd
}

func runGenerate(flags *generateFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if flags.name != "" {
		cfg.Packages = []types.PackageSpec{{
			Name:         flags.name,
			Path:         flags.path,
			ExcludeFiles: flags.excludeFiles,
			ExcludeDirs:  flags.excludeDirs,
		}}
	}
	if flags.out != "" {
		cfg.ReferenceDir = flags.out
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(cfg.Packages) == 0 {
		return fmt.Errorf("no packages configured: pass --name or list packages in %s", flags.configPath)
	}

	g := generator.New(generator.Config{
		Root:   cfg.ReferenceDir,
		DryRun: flags.dryRun,
		Logger: newLogger(flags.verbose),
	})
	_, err = g.Run(cfg.Packages)
	return err
}
