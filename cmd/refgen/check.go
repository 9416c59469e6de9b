package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/taigrr/refgen/internal/config"
	"github.com/taigrr/refgen/internal/nav"
)

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [reference-dir]",
		Short: "Verify the structure of a generated reference tree",
		Long: `Check parses SUMMARY.md under the reference root and verifies the
structural contract the navigation-interpreting tool relies on: a pure
nested bullet list whose links are relative and resolve to existing
pages. The reference root defaults to "reference".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := config.DefaultReferenceDir
			if len(args) > 0 {
				root = args[0]
			}
			return runCheck(cmd.OutOrStdout(), root)
		},
		SilenceUsage: true,
	}

	return cmd
}

func runCheck(out io.Writer, root string) error {
	problems, err := nav.Check(root)
	if err != nil {
		return err
	}

	if len(problems) == 0 {
		fmt.Fprintf(out, "✓ %s/%s is structurally valid\n", root, nav.SummaryFile)
		return nil
	}
	for _, p := range problems {
		fmt.Fprintf(out, "✗ %s\n", p.Message)
	}
	return fmt.Errorf("%d problem(s) found in %s/%s", len(problems), root, nav.SummaryFile)
}
