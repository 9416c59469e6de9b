// Package directive derives reference pages from scanned source files and
// renders their mkdocstrings rendering-directive content.
package directive

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/taigrr/refgen/internal/pathfilter"
	"github.com/taigrr/refgen/internal/types"
)

const (
	// indentUnit is one YAML nesting level inside the options block.
	indentUnit = "  "
	// optionsIndent is the base nesting level of the options block, lining
	// it up under the "    options:" line.
	optionsIndent = 3
)

// PageFor derives the reference page for one candidate. The initializer
// collapses into its directory: the page becomes the directory's own index
// and the dotted identifier drops the final segment.
func PageFor(c types.Candidate) types.Page {
	parts := strings.Split(strings.TrimSuffix(c.RelPath, ".py"), "/")
	docPath := strings.TrimSuffix(c.RelPath, ".py") + ".md"
	if pathfilter.IsInit(path.Base(c.RelPath)) {
		parts = parts[:len(parts)-1]
		docPath = path.Join(path.Dir(c.RelPath), "index.md")
	}
	return types.Page{
		Module:  strings.Join(parts, "."),
		Source:  c.RelPath,
		DocPath: docPath,
		Parts:   parts,
	}
}

func opt(key string, value any) types.Option {
	return types.Option{Key: key, Value: value}
}

// Defaults returns the default rendering options in their fixed emission
// order. Every call returns a fresh copy safe to merge against.
func Defaults() types.Options {
	return types.Options{
		opt("show_root_heading", "false"),
		opt("allow_inspection", "false"),
		opt("show_root_full_path", "true"),
		opt("find_stubs_package", "true"),
		opt("show_source", "false"),
		opt("show_submodules", "false"),
		opt("members_order", "source"),
		opt("inherited_members", "false"),
		opt("summary", types.Options{
			opt("attributes", true),
			opt("methods", true),
			opt("classes", true),
			opt("modules", false),
		}),
		opt("imported_members", "true"),
		opt("docstring_section_style", "spacy"),
		opt("relative_crossrefs", "true"),
		opt("show_root_members_full_path", "false"),
		opt("show_object_full_path", "false"),
		opt("annotations_path", "source"),
		opt("show_category_heading", "true"),
		opt("group_by_category", "true"),
		opt("show_signature_annotations", "true"),
		opt("separate_signature", "true"),
		opt("signature_crossrefs", "true"),
	}
}

// Render produces the directive document for one module: the directive line
// naming the dotted identifier, the handler line, and the options block.
// Scalars render bare, so a string "false" and a bool false emit the same
// bytes; the downstream reader sees plain YAML either way.
func Render(module string, opts types.Options) string {
	var sb strings.Builder
	sb.WriteString("\n::: ")
	sb.WriteString(module)
	sb.WriteString("\n    handler: python\n    options:\n")
	writeOptions(&sb, opts, optionsIndent)
	sb.WriteString("\n")
	return sb.String()
}

func writeOptions(sb *strings.Builder, opts types.Options, indent int) {
	for _, o := range opts {
		sb.WriteString(strings.Repeat(indentUnit, indent))
		sb.WriteString(o.Key)
		sb.WriteString(":")
		switch v := o.Value.(type) {
		case types.Options:
			sb.WriteString("\n")
			writeOptions(sb, v, indent+1)
		case bool:
			if v {
				sb.WriteString(" true\n")
			} else {
				sb.WriteString(" false\n")
			}
		default:
			fmt.Fprintf(sb, " %v\n", v)
		}
	}
}

// Write places content at root/page.DocPath, creating parent directories as
// needed. Existing pages are overwritten; regenerating must leave identical
// bytes behind.
func Write(root string, page types.Page, content string) error {
	dest := filepath.Join(root, filepath.FromSlash(page.DocPath))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(dest, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write page: %s - %w", page.DocPath, err)
	}
	return nil
}
