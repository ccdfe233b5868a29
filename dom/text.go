package dom

// Text represents a text node in the DOM.
type Text Node

// newText creates a new detached text node.
func newText(data string, ownerDoc *Document) *Node {
	node := newNode(TextNode, "#text", ownerDoc)
	node.nodeValue = &data
	return node
}

// AsNode returns the underlying Node.
func (t *Text) AsNode() *Node {
	return (*Node)(t)
}

// NodeType returns TextNode (3).
func (t *Text) NodeType() NodeType {
	return TextNode
}

// NodeName returns "#text".
func (t *Text) NodeName() string {
	return "#text"
}

// Data returns the text content.
func (t *Text) Data() string {
	return t.AsNode().NodeValue()
}

// SetData sets the text content.
func (t *Text) SetData(data string) {
	t.AsNode().SetNodeValue(data)
}

// Length returns the length of the text content.
func (t *Text) Length() int {
	return len(t.Data())
}

// WholeText returns the text of this node and all adjacent text nodes.
func (t *Text) WholeText() string {
	first := t.AsNode()
	for first.prevSibling != nil && first.prevSibling.flags&FlagText != 0 {
		first = first.prevSibling
	}

	var result string
	for node := first; node != nil && node.flags&FlagText != 0; node = node.nextSibling {
		result += node.NodeValue()
	}
	return result
}
