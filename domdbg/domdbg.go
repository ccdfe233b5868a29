// Package domdbg implements helpers to debug a DOM tree.
package domdbg

import (
	"fmt"
	"io"
	"strings"

	"github.com/xlab/treeprint"

	"domcore/dom"
)

// Format renders the subtree rooted at n as an ASCII tree, one line per
// node, children indented under their parent.
func Format(n *dom.Node) string {
	if n == nil {
		return "<nil>\n"
	}
	tree := treeprint.NewWithRoot(label(n))
	addChildren(tree, n)
	return tree.String()
}

// Dump writes the formatted subtree to w.
func Dump(w io.Writer, n *dom.Node) error {
	_, err := io.WriteString(w, Format(n))
	return err
}

func addChildren(branch treeprint.Tree, n *dom.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if c.HasChildNodes() {
			addChildren(branch.AddBranch(label(c)), c)
		} else {
			branch.AddNode(label(c))
		}
	}
}

// label summarizes one node: name, attributes for elements, an excerpt of
// the character data for text and comments.
func label(n *dom.Node) string {
	switch n.NodeType() {
	case dom.ElementNode:
		el := (*dom.Element)(n)
		var sb strings.Builder
		sb.WriteByte('<')
		sb.WriteString(strings.ToLower(el.TagName()))
		for _, attr := range el.Attributes() {
			fmt.Fprintf(&sb, " %s=%q", attr.Name, attr.Value)
		}
		sb.WriteByte('>')
		return sb.String()
	case dom.TextNode:
		return fmt.Sprintf("#text %q", excerpt(n.NodeValue()))
	case dom.CommentNode:
		return fmt.Sprintf("#comment %q", excerpt(n.NodeValue()))
	case dom.DocumentTypeNode:
		return "<!DOCTYPE " + n.DoctypeName() + ">"
	default:
		return n.NodeName()
	}
}

func excerpt(s string) string {
	const max = 40
	if len(s) > max {
		return s[:max] + "…"
	}
	return s
}
