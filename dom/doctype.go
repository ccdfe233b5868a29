package dom

// DocumentType accessor methods

// DoctypeName returns the name of a DocumentType node, or empty string for other node types.
func (n *Node) DoctypeName() string {
	if n.nodeType == DocumentTypeNode && n.docTypeData != nil {
		return n.docTypeData.name
	}
	return ""
}

// DoctypePublicID returns the public ID of a DocumentType node, or empty string for other node types.
func (n *Node) DoctypePublicID() string {
	if n.nodeType == DocumentTypeNode && n.docTypeData != nil {
		return n.docTypeData.publicID
	}
	return ""
}

// DoctypeSystemID returns the system ID of a DocumentType node, or empty string for other node types.
func (n *Node) DoctypeSystemID() string {
	if n.nodeType == DocumentTypeNode && n.docTypeData != nil {
		return n.docTypeData.systemID
	}
	return ""
}
