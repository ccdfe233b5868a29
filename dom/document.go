package dom

// Document represents the root context object a tree of nodes belongs to.
// It supplies the base URI and is the adoption authority for nodes moving
// between trees. A Document's own owner is always nil.
type Document Node

// NewDocument creates a new empty HTML Document.
func NewDocument() *Document {
	node := newNode(DocumentNode, "#document", nil)
	node.docData = &documentData{
		contentType: "text/html",
	}
	return (*Document)(node)
}

// AsNode returns the underlying Node.
func (d *Document) AsNode() *Node {
	return (*Node)(d)
}

// NodeType returns DocumentNode (9).
func (d *Document) NodeType() NodeType {
	return DocumentNode
}

// NodeName returns "#document".
func (d *Document) NodeName() string {
	return "#document"
}

// ContentType returns the MIME type of the document.
func (d *Document) ContentType() string {
	if d.AsNode().docData.contentType == "" {
		return "text/html"
	}
	return d.AsNode().docData.contentType
}

// URL returns the document's URL. Defaults to "about:blank".
func (d *Document) URL() string {
	if d.AsNode().docData.url == "" {
		return "about:blank"
	}
	return d.AsNode().docData.url
}

// SetURL sets the document's URL.
func (d *Document) SetURL(url string) {
	d.AsNode().docData.url = url
}

// DocumentURI returns the document's URI. Same as URL per spec.
func (d *Document) DocumentURI() string {
	return d.URL()
}

// CharacterSet returns the document's character encoding. Defaults to "UTF-8".
func (d *Document) CharacterSet() string {
	if d.AsNode().docData.characterSet == "" {
		return "UTF-8"
	}
	return d.AsNode().docData.characterSet
}

// Doctype returns the DocumentType child node, or nil if there is none.
func (d *Document) Doctype() *Node {
	for child := d.AsNode().firstChild; child != nil; child = child.nextSibling {
		if child.nodeType == DocumentTypeNode {
			return child
		}
	}
	return nil
}

// DocumentElement returns the root element of the document, or nil.
func (d *Document) DocumentElement() *Element {
	for child := d.AsNode().firstChild; child != nil; child = child.nextSibling {
		if child.nodeType == ElementNode {
			return (*Element)(child)
		}
	}
	return nil
}

// CreateElement creates a new detached element in the HTML namespace.
func (d *Document) CreateElement(localName string) *Element {
	return newElement(localName, HTMLNamespace, "", d)
}

// CreateElementNS creates a new detached element with the given namespace
// and qualified name ("prefix:localName" or plain "localName").
func (d *Document) CreateElementNS(namespaceURI, qualifiedName string) *Element {
	prefix, localName := splitQualifiedName(qualifiedName)
	return newElement(localName, namespaceURI, prefix, d)
}

// CreateTextNode creates a new detached text node.
func (d *Document) CreateTextNode(data string) *Node {
	return newText(data, d)
}

// CreateComment creates a new detached comment node.
func (d *Document) CreateComment(data string) *Node {
	node := newNode(CommentNode, "#comment", d)
	node.nodeValue = &data
	return node
}

// CreateDocumentFragment creates a new empty document fragment.
func (d *Document) CreateDocumentFragment() *DocumentFragment {
	node := newNode(DocumentFragmentNode, "#document-fragment", d)
	return (*DocumentFragment)(node)
}

// CreateDocumentType creates a new detached DocumentType node.
func (d *Document) CreateDocumentType(name, publicID, systemID string) *Node {
	node := newNode(DocumentTypeNode, name, d)
	node.docTypeData = &docTypeData{
		name:     name,
		publicID: publicID,
		systemID: systemID,
	}
	return node
}

// AdoptNode adopts a node from another document: the node is severed from
// its current parent, and the owning document is reassigned recursively for
// the whole subtree. This is the only sanctioned way to move a node across
// trees. Adopting a Document fails with NotSupportedError.
func (d *Document) AdoptNode(node *Node) (*Node, error) {
	if node == nil {
		return nil, ErrNotFound("The node to be adopted is null.")
	}
	if node.nodeType == DocumentNode {
		return nil, ErrNotSupported("Document nodes cannot be adopted.")
	}

	if node.parentNode != nil {
		node.parentNode.RemoveChild(node)
	}

	adopt(node, d)
	return node, nil
}

// ImportNode clones a node from another document and adopts the clone.
func (d *Document) ImportNode(node *Node, deep bool) (*Node, error) {
	if node == nil {
		return nil, ErrNotFound("The node to be imported is null.")
	}
	if node.nodeType == DocumentNode {
		return nil, ErrNotSupported("Document nodes cannot be imported.")
	}

	clone := node.CloneNode(deep)
	adopt(clone, d)
	return clone, nil
}
