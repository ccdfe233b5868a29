package dom

import "strings"

// Element represents an element in the DOM tree. Only the generic contract
// lives here: identity, an ordered attribute list, and the namespace
// declarations the resolver consults. Concrete element behaviors (style
// linkage, attribute side effects) hook in through NodeHooks.
type Element Node

// elementData holds data specific to Element nodes.
type elementData struct {
	localName    string
	namespaceURI string
	prefix       string
	attrs        []Attr
}

// Attr is one attribute, in document order within its element.
type Attr struct {
	Name  string
	Value string
}

// lookup returns the value of the named attribute and whether it is present.
func (ed *elementData) lookup(name string) (string, bool) {
	for _, attr := range ed.attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// newElement creates a new detached element.
func newElement(localName, namespaceURI, prefix string, ownerDoc *Document) *Element {
	qualified := localName
	if prefix != "" {
		qualified = prefix + ":" + localName
	}
	// HTML-namespace elements use the uppercase tag name as node name
	nodeName := qualified
	if namespaceURI == HTMLNamespace {
		nodeName = strings.ToUpper(qualified)
	}
	node := newNode(ElementNode, nodeName, ownerDoc)
	node.elementData = &elementData{
		localName:    localName,
		namespaceURI: namespaceURI,
		prefix:       prefix,
	}
	return (*Element)(node)
}

// AsNode returns the underlying Node.
func (e *Element) AsNode() *Node {
	return (*Node)(e)
}

// NodeType returns ElementNode (1).
func (e *Element) NodeType() NodeType {
	return ElementNode
}

// TagName returns the element's qualified name, uppercased for HTML elements.
func (e *Element) TagName() string {
	return e.AsNode().nodeName
}

// LocalName returns the local name of the element.
func (e *Element) LocalName() string {
	return e.AsNode().elementData.localName
}

// NamespaceURI returns the namespace URI of the element.
func (e *Element) NamespaceURI() string {
	return e.AsNode().elementData.namespaceURI
}

// Prefix returns the namespace prefix of the element.
func (e *Element) Prefix() string {
	return e.AsNode().elementData.prefix
}

// Attributes returns the element's attributes in document order. The slice
// is a snapshot.
func (e *Element) Attributes() []Attr {
	return append([]Attr(nil), e.AsNode().elementData.attrs...)
}

// GetAttribute returns the value of the attribute with the given name, or
// the empty string when absent.
func (e *Element) GetAttribute(name string) string {
	value, _ := e.AsNode().elementData.lookup(name)
	return value
}

// HasAttribute returns true if the attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.AsNode().elementData.lookup(name)
	return ok
}

// SetAttribute sets an attribute, replacing an existing value in place so
// attribute order is preserved. The attribute-changed hook and mutation
// callbacks fire after the change.
func (e *Element) SetAttribute(name, value string) {
	n := e.AsNode()
	ed := n.elementData
	var oldValue string
	replaced := false
	for i := range ed.attrs {
		if ed.attrs[i].Name == name {
			oldValue = ed.attrs[i].Value
			ed.attrs[i].Value = value
			replaced = true
			break
		}
	}
	if !replaced {
		ed.attrs = append(ed.attrs, Attr{Name: name, Value: value})
	}

	notifyAttributeMutation(n, name, oldValue)
	if n.hooks != nil {
		n.hooks.AttributeChanged(n, name, oldValue, value)
	}
}

// RemoveAttribute removes the named attribute. A no-op when absent.
func (e *Element) RemoveAttribute(name string) {
	n := e.AsNode()
	ed := n.elementData
	for i := range ed.attrs {
		if ed.attrs[i].Name == name {
			oldValue := ed.attrs[i].Value
			ed.attrs = append(ed.attrs[:i], ed.attrs[i+1:]...)

			notifyAttributeMutation(n, name, oldValue)
			if n.hooks != nil {
				n.hooks.AttributeChanged(n, name, oldValue, "")
			}
			return
		}
	}
}

// elementsEqual compares two Element nodes per the DOM spec: namespace,
// prefix, local name, and the attribute set (order-insensitive, matched by
// name and value).
func (n *Node) elementsEqual(other *Node) bool {
	e1 := n.elementData
	e2 := other.elementData
	if e1 == nil || e2 == nil {
		return e1 == e2
	}

	if e1.namespaceURI != e2.namespaceURI {
		return false
	}
	if e1.prefix != e2.prefix {
		return false
	}
	if e1.localName != e2.localName {
		return false
	}

	if len(e1.attrs) != len(e2.attrs) {
		return false
	}
	for _, attr := range e1.attrs {
		value, ok := e2.lookup(attr.Name)
		if !ok || value != attr.Value {
			return false
		}
	}

	return true
}

// splitQualifiedName splits "prefix:localName" into its parts; a name
// without a colon has an empty prefix.
func splitQualifiedName(qualifiedName string) (prefix, localName string) {
	if i := strings.IndexByte(qualifiedName, ':'); i >= 0 {
		return qualifiedName[:i], qualifiedName[i+1:]
	}
	return "", qualifiedName
}
