// Package html is the markup-parser front end: it parses HTML using
// golang.org/x/net/html as the underlying parser and builds dom trees
// through the public mutation primitives.
package html

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"domcore/dom"
)

// Namespace URIs for the foreign-content namespaces x/net/html reports.
const (
	svgNamespace    = "http://www.w3.org/2000/svg"
	mathMLNamespace = "http://www.w3.org/1998/Math/MathML"
)

// Parse parses a complete HTML document from r.
func Parse(r io.Reader) (*dom.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	doc := dom.NewDocument()
	if err := buildChildren(root, doc.AsNode(), doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseString parses a complete HTML document from a string.
func ParseString(content string) (*dom.Document, error) {
	return Parse(strings.NewReader(content))
}

// ParseFragment parses an HTML fragment as it would appear inside an element
// with the given tag name (e.g. "body", "div"). The parsed nodes are owned
// by doc and returned in a fresh DocumentFragment.
func ParseFragment(r io.Reader, doc *dom.Document, contextTag string) (*dom.DocumentFragment, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     contextTag,
		DataAtom: atom.Lookup([]byte(contextTag)),
	}
	nodes, err := html.ParseFragment(r, context)
	if err != nil {
		return nil, err
	}

	frag := doc.CreateDocumentFragment()
	for _, n := range nodes {
		if err := buildNode(n, frag.AsNode(), doc); err != nil {
			return nil, err
		}
	}
	return frag, nil
}

// ParseFragmentString parses an HTML fragment from a string in a body context.
func ParseFragmentString(fragment string, doc *dom.Document) (*dom.DocumentFragment, error) {
	return ParseFragment(strings.NewReader(fragment), doc, "body")
}

// buildChildren converts the children of src and attaches them under dst.
func buildChildren(src *html.Node, dst *dom.Node, doc *dom.Document) error {
	for c := src.FirstChild; c != nil; c = c.NextSibling {
		if err := buildNode(c, dst, doc); err != nil {
			return err
		}
	}
	return nil
}

// buildNode converts one parser node and attaches it under dst. Text runs
// go through AppendText so adjacent runs emitted by the tokenizer coalesce
// into a single text node.
func buildNode(src *html.Node, dst *dom.Node, doc *dom.Document) error {
	switch src.Type {
	case html.ElementNode:
		var el *dom.Element
		if ns := namespaceURI(src.Namespace); ns != "" {
			el = doc.CreateElementNS(ns, src.Data)
		} else {
			el = doc.CreateElement(src.Data)
		}
		for _, a := range src.Attr {
			name := a.Key
			if a.Namespace != "" {
				name = a.Namespace + ":" + a.Key
			}
			el.SetAttribute(name, a.Val)
		}
		if _, err := dst.AppendChildWithError(el.AsNode()); err != nil {
			return err
		}
		return buildChildren(src, el.AsNode(), doc)

	case html.TextNode:
		_, err := dst.AppendText(src.Data)
		return err

	case html.CommentNode:
		_, err := dst.AppendChildWithError(doc.CreateComment(src.Data))
		return err

	case html.DoctypeNode:
		var publicID, systemID string
		for _, a := range src.Attr {
			switch a.Key {
			case "public":
				publicID = a.Val
			case "system":
				systemID = a.Val
			}
		}
		_, err := dst.AppendChildWithError(doc.CreateDocumentType(src.Data, publicID, systemID))
		return err

	default:
		// ErrorNode and raw document nodes carry no content of their own
		return buildChildren(src, dst, doc)
	}
}

// namespaceURI maps the parser's namespace token to a namespace URI.
// The empty token is the HTML namespace, which CreateElement applies.
func namespaceURI(ns string) string {
	switch ns {
	case "svg":
		return svgNamespace
	case "math":
		return mathMLNamespace
	default:
		return ""
	}
}
