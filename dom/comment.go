package dom

// Comment represents a comment node in the DOM.
type Comment Node

// AsNode returns the underlying Node.
func (c *Comment) AsNode() *Node {
	return (*Node)(c)
}

// NodeType returns CommentNode (8).
func (c *Comment) NodeType() NodeType {
	return CommentNode
}

// NodeName returns "#comment".
func (c *Comment) NodeName() string {
	return "#comment"
}

// Data returns the comment content.
func (c *Comment) Data() string {
	return c.AsNode().NodeValue()
}

// SetData sets the comment content.
func (c *Comment) SetData(data string) {
	c.AsNode().SetNodeValue(data)
}
