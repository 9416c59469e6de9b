// Package nav builds the insertion-ordered navigation tree for generated
// reference pages and serializes it in literate-nav form.
package nav

import (
	"fmt"
	"strings"
)

// indent is one nesting level in the serialized document.
const indent = "    "

// SummaryFile is the navigation document's name at the reference root.
const SummaryFile = "SUMMARY.md"

// Node is one entry in the navigation tree. Children keep insertion order;
// a directory node may carry its own link when an initializer page has
// collapsed into it.
type Node struct {
	Title    string
	Link     string
	children []*Node
	index    map[string]*Node
}

// Builder accumulates the pages of one package into a navigation tree.
type Builder struct {
	root Node
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add records a page under the given path segments, creating intermediate
// directory nodes as needed. The first sighting of a segment fixes its
// position among its siblings; re-adding a path only updates the link.
func (b *Builder) Add(parts []string, link string) {
	node := &b.root
	for _, part := range parts {
		node = node.child(part)
	}
	node.Link = link
}

func (n *Node) child(title string) *Node {
	if c, ok := n.index[title]; ok {
		return c
	}
	if n.index == nil {
		n.index = make(map[string]*Node)
	}
	c := &Node{Title: title}
	n.index[title] = c
	n.children = append(n.children, c)
	return c
}

// Children returns the node's children in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

// Literate serializes the tree as a nested bullet list, one line per node:
// linked nodes as markdown links, bare directories as labels. The shape is a
// structural contract with the navigation-interpreting tool, down to the
// four-space indentation unit, so nothing here is re-sorted or prettified.
func (b *Builder) Literate() string {
	var sb strings.Builder
	for _, c := range b.root.children {
		writeNode(&sb, c, 0)
	}
	return sb.String()
}

func writeNode(sb *strings.Builder, n *Node, depth int) {
	sb.WriteString(strings.Repeat(indent, depth))
	if n.Link != "" {
		fmt.Fprintf(sb, "* [%s](%s)\n", n.Title, n.Link)
	} else {
		fmt.Fprintf(sb, "* %s\n", n.Title)
	}
	for _, c := range n.children {
		writeNode(sb, c, depth+1)
	}
}
