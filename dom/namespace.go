package dom

import "strings"

// Well-known namespace URIs.
const (
	HTMLNamespace  = "http://www.w3.org/1999/xhtml"
	XMLNamespace   = "http://www.w3.org/XML/1998/namespace"
	XMLNSNamespace = "http://www.w3.org/2000/xmlns/"
)

// LookupNamespaceURI returns the namespace URI bound to the given prefix at
// this node, or the empty string if none. An empty prefix asks for the
// default namespace. Resolution dispatches on node kind: elements consult
// their own declaration (prefix, xmlns attributes) before delegating to the
// parent element; most other kinds just delegate, terminating at the root.
func (n *Node) LookupNamespaceURI(prefix string) string {
	return n.lookupNamespaceURI(prefix)
}

func (n *Node) lookupNamespaceURI(prefix string) string {
	switch n.nodeType {
	case DocumentNode:
		// Document delegates to its document element
		for child := n.firstChild; child != nil; child = child.nextSibling {
			if child.nodeType == ElementNode {
				return child.lookupNamespaceURI(prefix)
			}
		}
		return ""

	case ElementNode:
		// The xml and xmlns prefixes are always bound in an Element context
		if prefix == "xml" {
			return XMLNamespace
		}
		if prefix == "xmlns" {
			return XMLNSNamespace
		}

		if n.elementData != nil {
			if n.elementData.prefix == prefix && n.elementData.namespaceURI != "" {
				return n.elementData.namespaceURI
			}
			attrName := "xmlns"
			if prefix != "" {
				attrName = "xmlns:" + prefix
			}
			if value, ok := n.elementData.lookup(attrName); ok {
				return value
			}
		}
		if n.parentNode != nil && n.parentNode.nodeType == ElementNode {
			return n.parentNode.lookupNamespaceURI(prefix)
		}
		return ""

	case DocumentTypeNode, DocumentFragmentNode:
		// These kinds carry no namespace context
		return ""
	}

	// Character data delegates to a parent Element only; a Document parent
	// does not pass its element's namespace down to loose children.
	if n.parentNode != nil && n.parentNode.nodeType == ElementNode {
		return n.parentNode.lookupNamespaceURI(prefix)
	}
	return ""
}

// LookupPrefix returns a prefix bound to the given namespace URI at this
// node, or the empty string if none.
func (n *Node) LookupPrefix(namespaceURI string) string {
	if namespaceURI == "" {
		return ""
	}
	return n.lookupPrefix(namespaceURI)
}

func (n *Node) lookupPrefix(namespaceURI string) string {
	if n.nodeType == ElementNode && n.elementData != nil {
		if n.elementData.namespaceURI == namespaceURI && n.elementData.prefix != "" {
			return n.elementData.prefix
		}
		// Check attributes for xmlns:prefix declarations
		for _, attr := range n.elementData.attrs {
			if strings.HasPrefix(attr.Name, "xmlns:") && attr.Value == namespaceURI {
				return strings.TrimPrefix(attr.Name, "xmlns:")
			}
		}
	}
	if n.parentNode != nil && n.parentNode.nodeType == ElementNode {
		return n.parentNode.lookupPrefix(namespaceURI)
	}
	return ""
}

// IsDefaultNamespace returns true if the given namespace URI is the default
// namespace at this node. An empty URI matches when no default namespace is
// declared.
func (n *Node) IsDefaultNamespace(namespaceURI string) bool {
	return n.LookupNamespaceURI("") == namespaceURI
}
