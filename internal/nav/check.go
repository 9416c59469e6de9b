package nav

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Problem is one structural violation found in a navigation document.
type Problem struct {
	Message string `json:"message"`
}

// Check parses root/SUMMARY.md and verifies the structural contract the
// navigation-interpreting tool relies on: the document is nothing but a
// nested bullet list, every link is relative, and every link target exists
// under root. All violations are collected; the error return is reserved for
// an unreadable document.
func Check(root string) ([]Problem, error) {
	src, err := os.ReadFile(filepath.Join(root, SummaryFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read navigation document: %s - %w", SummaryFile, err)
	}
	return CheckDocument(root, src), nil
}

// CheckDocument verifies already-loaded navigation document bytes against
// the pages under root.
func CheckDocument(root string, src []byte) []Problem {
	var problems []Problem

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if _, ok := n.(*ast.List); !ok {
			problems = append(problems, Problem{
				Message: fmt.Sprintf("unexpected %s at top level: the document must be a single nested bullet list", n.Kind()),
			})
		}
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.ListItem:
			if node.FirstChild() == nil {
				problems = append(problems, Problem{Message: "empty navigation entry"})
			}
		case *ast.Link:
			dest := string(node.Destination)
			switch {
			case dest == "":
				problems = append(problems, Problem{Message: "navigation link with empty destination"})
			case strings.Contains(dest, "://") || strings.HasPrefix(dest, "/"):
				problems = append(problems, Problem{Message: fmt.Sprintf("link %s must be relative to the reference root", dest)})
			default:
				target := filepath.Join(root, filepath.FromSlash(dest))
				if _, err := os.Stat(target); err != nil {
					problems = append(problems, Problem{Message: fmt.Sprintf("link target missing: %s", dest)})
				}
			}
		}
		return ast.WalkContinue, nil
	})

	return problems
}
