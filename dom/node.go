package dom

import (
	"strings"
	"sync/atomic"
)

// nodeSerial is a monotonic counter assigning every node a construction
// serial. The serial gives a stable total order over nodes in different
// trees, which CompareDocumentPosition needs to stay antisymmetric for
// disconnected pairs (pointer values are not ordered in Go).
var nodeSerial atomic.Uint64

// Node represents a node in the DOM tree. It is the base entity from which
// Document, Element, Text, Comment, and the other node kinds are derived.
//
// Ownership runs strictly parent to children: parentNode and ownerDoc are
// non-owning back-references and are written only by the mutation engine in
// this package. Every other method treats tree shape as read-only.
type Node struct {
	nodeType  NodeType
	nodeName  string
	flags     NodeFlags
	serial    uint64
	nodeValue *string // nil for Element, Document, DocumentFragment
	baseURI   *string // explicit base URI override, nil to inherit

	ownerDoc   *Document // nil for Document nodes and unowned nodes
	parentNode *Node

	// First/last child and sibling pointers for efficient traversal.
	// The child sequence semantics (insertion order, adjacency) are the
	// contract; the pointer links are the cache that keeps lookups O(1).
	firstChild  *Node
	lastChild   *Node
	prevSibling *Node
	nextSibling *Node

	// Event listener registrations, in registration order.
	listeners []listenerEntry

	hooks NodeHooks

	// Type-specific data (only one will be non-nil based on nodeType)
	elementData *elementData
	docData     *documentData
	docTypeData *docTypeData
}

// documentData holds data specific to Document nodes.
type documentData struct {
	url          string // the document's URL (defaults to "about:blank")
	contentType  string // the content type (MIME type) of the document
	characterSet string // the document's character encoding (defaults to "UTF-8")
}

// docTypeData holds data specific to DocumentType nodes.
type docTypeData struct {
	name     string
	publicID string
	systemID string
}

// newNode creates a new detached node with the given type and name.
func newNode(nodeType NodeType, nodeName string, ownerDoc *Document) *Node {
	return &Node{
		nodeType: nodeType,
		nodeName: nodeName,
		flags:    flagsForType(nodeType),
		serial:   nodeSerial.Add(1),
		ownerDoc: ownerDoc,
	}
}

// NodeType returns the type of the node.
func (n *Node) NodeType() NodeType {
	return n.nodeType
}

// NodeName returns the name of the node.
// For elements, this is the tag name.
// For text nodes, this is "#text".
// For comments, this is "#comment".
// For documents, this is "#document".
// For document fragments, this is "#document-fragment".
func (n *Node) NodeName() string {
	return n.nodeName
}

// Flags returns the static classification flags fixed at construction.
func (n *Node) Flags() NodeFlags {
	return n.flags
}

// NodeValue returns the value of the node.
// For text and comment nodes, this is the character data.
// For other nodes, this is the empty string.
func (n *Node) NodeValue() string {
	if n.nodeValue != nil {
		return *n.nodeValue
	}
	return ""
}

// SetNodeValue sets the value of the node.
// This only has an effect on character data nodes; for other node types it
// is a no-op per the spec.
func (n *Node) SetNodeValue(value string) {
	if n.flags&FlagCharacterData == 0 {
		return
	}
	var oldValue string
	if n.nodeValue != nil {
		oldValue = *n.nodeValue
	}
	n.nodeValue = &value
	notifyCharacterDataMutation(n, oldValue)
}

// OwnerDocument returns the Document that owns this node.
// For Document nodes, this returns nil: a document never owns itself, even
// if it ends up structurally nested.
func (n *Node) OwnerDocument() *Document {
	if n.nodeType == DocumentNode {
		return nil
	}
	return n.ownerDoc
}

// document returns the Document context of this node: the node itself when
// it is a Document, otherwise its owner.
func (n *Node) document() *Document {
	if n.nodeType == DocumentNode {
		return (*Document)(n)
	}
	return n.ownerDoc
}

// ParentNode returns the parent of this node, or nil for roots and
// detached nodes.
func (n *Node) ParentNode() *Node {
	return n.parentNode
}

// ParentElement returns the parent Element, or nil if the parent is not an element.
func (n *Node) ParentElement() *Element {
	if n.parentNode != nil && n.parentNode.nodeType == ElementNode {
		return (*Element)(n.parentNode)
	}
	return nil
}

// FirstChild returns the first child node, or nil if there are no children.
func (n *Node) FirstChild() *Node {
	return n.firstChild
}

// LastChild returns the last child node, or nil if there are no children.
func (n *Node) LastChild() *Node {
	return n.lastChild
}

// PreviousSibling returns the previous sibling node, or nil if this is the first child.
func (n *Node) PreviousSibling() *Node {
	return n.prevSibling
}

// NextSibling returns the next sibling node, or nil if this is the last child.
func (n *Node) NextSibling() *Node {
	return n.nextSibling
}

// HasChildNodes returns true if this node has any child nodes.
func (n *Node) HasChildNodes() bool {
	return n.firstChild != nil
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	count := 0
	for c := n.firstChild; c != nil; c = c.nextSibling {
		count++
	}
	return count
}

// ChildAt returns the child at the given index, or nil if out of range.
func (n *Node) ChildAt(index int) *Node {
	if index < 0 {
		return nil
	}
	c := n.firstChild
	for i := 0; c != nil && i < index; i++ {
		c = c.nextSibling
	}
	return c
}

// Children returns the child sequence as a slice, in order. The slice is a
// snapshot; mutating the tree does not affect it.
func (n *Node) Children() []*Node {
	var children []*Node
	for c := n.firstChild; c != nil; c = c.nextSibling {
		children = append(children, c)
	}
	return children
}

// IsConnected returns true if the node is connected to a document.
// A node is connected if its root is a document.
func (n *Node) IsConnected() bool {
	return n.GetRootNode().nodeType == DocumentNode
}

// GetRootNode returns the root of the tree containing this node.
func (n *Node) GetRootNode() *Node {
	root := n
	for root.parentNode != nil {
		root = root.parentNode
	}
	return root
}

// Contains returns true if other is this node or a descendant of this node.
func (n *Node) Contains(other *Node) bool {
	for node := other; node != nil; node = node.parentNode {
		if node == n {
			return true
		}
	}
	return false
}

// IsSameNode returns true if this node is the same node as the given node.
func (n *Node) IsSameNode(other *Node) bool {
	return n == other
}

// BaseURI resolves the node's base URI: the explicit override if set, else
// the parent's base URI, else the owning document's URI, else empty.
func (n *Node) BaseURI() string {
	if n.baseURI != nil {
		return *n.baseURI
	}
	if n.parentNode != nil {
		return n.parentNode.BaseURI()
	}
	if doc := n.document(); doc != nil {
		return doc.URL()
	}
	return ""
}

// SetBaseURI sets an explicit base URI override on this node.
func (n *Node) SetBaseURI(uri string) {
	n.baseURI = &uri
}

// ClearBaseURI removes the explicit base URI override, restoring inheritance.
func (n *Node) ClearBaseURI() {
	n.baseURI = nil
}

// SetHooks installs the per-node lifecycle hooks. Passing nil restores the
// default no-op behavior.
func (n *Node) SetHooks(hooks NodeHooks) {
	n.hooks = hooks
}

// TextContent returns the text content of the node and its descendants.
func (n *Node) TextContent() string {
	switch {
	case n.nodeType == DocumentNode || n.nodeType == DocumentTypeNode:
		return ""
	case n.flags&FlagCharacterData != 0:
		return n.NodeValue()
	default:
		var sb strings.Builder
		n.collectTextContent(&sb)
		return sb.String()
	}
}

func (n *Node) collectTextContent(sb *strings.Builder) {
	for child := n.firstChild; child != nil; child = child.nextSibling {
		switch {
		case child.flags&FlagText != 0:
			sb.WriteString(child.NodeValue())
		case child.flags&FlagContainer != 0:
			child.collectTextContent(sb)
		}
	}
}

// SetTextContent sets the text content of the node.
// For containers, this replaces all children with a single text node.
func (n *Node) SetTextContent(value string) {
	switch {
	case n.nodeType == DocumentNode || n.nodeType == DocumentTypeNode:
		// Do nothing per the spec
	case n.flags&FlagCharacterData != 0:
		n.SetNodeValue(value)
	default:
		var replacement *Node
		if value != "" {
			replacement = newText(value, n.ownerDoc)
		}
		n.replaceAll(replacement)
	}
}

// IsEqualNode returns true if this node is equal to the given node.
// Per DOM spec, equality is based on node type, type-specific properties,
// and children, compared recursively.
func (n *Node) IsEqualNode(other *Node) bool {
	if other == nil {
		return false
	}
	if n.nodeType != other.nodeType {
		return false
	}

	switch n.nodeType {
	case ElementNode:
		if !n.elementsEqual(other) {
			return false
		}
	case DocumentTypeNode:
		if !n.doctypesEqual(other) {
			return false
		}
	case TextNode, CommentNode:
		if n.NodeValue() != other.NodeValue() {
			return false
		}
	case DocumentNode, DocumentFragmentNode:
		// Documents and DocumentFragments compare only on children
	}

	if n.ChildCount() != other.ChildCount() {
		return false
	}

	c1, c2 := n.firstChild, other.firstChild
	for c1 != nil && c2 != nil {
		if !c1.IsEqualNode(c2) {
			return false
		}
		c1, c2 = c1.nextSibling, c2.nextSibling
	}

	return true
}

// doctypesEqual compares two DocumentType nodes on name, public ID, and system ID.
func (n *Node) doctypesEqual(other *Node) bool {
	d1 := n.docTypeData
	d2 := other.docTypeData
	if d1 == nil || d2 == nil {
		return d1 == d2
	}
	return d1.name == d2.name && d1.publicID == d2.publicID && d1.systemID == d2.systemID
}
