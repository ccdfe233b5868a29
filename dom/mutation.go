package dom

// NodeHooks is the per-node extension point for node-kind specific behavior
// on tree mutation. The mutation engine invokes hooks after the structural
// change is complete; the default (no hooks installed) is a no-op.
//
// An attribute/style subsystem hangs off AttributeChanged; subtree lifecycle
// tracking hangs off Inserted/Removed.
type NodeHooks interface {
	// Inserted is called after node has been inserted under parent.
	Inserted(node, parent *Node)
	// Removed is called after node has been detached from oldParent.
	// oldPreviousSibling is the sibling that preceded node before removal.
	Removed(node, oldParent, oldPreviousSibling *Node)
	// AttributeChanged is called after an attribute of node changed.
	AttributeChanged(node *Node, name, oldValue, newValue string)
}

// AppendChild adds a node to the end of the list of children of this node.
// For error-returning version, use AppendChildWithError.
func (n *Node) AppendChild(child *Node) *Node {
	result, _ := n.AppendChildWithError(child)
	return result
}

// AppendChildWithError adds a node to the end of the list of children of this node.
// Returns an error if the operation violates DOM hierarchy constraints.
func (n *Node) AppendChildWithError(child *Node) (*Node, error) {
	return n.InsertBeforeWithError(child, nil)
}

// InsertBefore inserts a node before a reference child node.
// If refChild is nil, the node is appended to the end.
// For error-returning version, use InsertBeforeWithError.
func (n *Node) InsertBefore(newChild, refChild *Node) *Node {
	result, _ := n.InsertBeforeWithError(newChild, refChild)
	return result
}

// InsertBeforeWithError inserts a node before a reference child node.
// If refChild is nil, the node is appended to the end.
// All validation runs against the pre-mutation tree shape; on error the
// tree is left unchanged.
func (n *Node) InsertBeforeWithError(newChild, refChild *Node) (*Node, error) {
	if err := n.validatePreInsertion(newChild, refChild); err != nil {
		return nil, err
	}
	return n.insertBefore(newChild, refChild), nil
}

// InsertChildAt inserts a node at the given index in this node's child
// sequence. Index may equal the current child count, which appends.
func (n *Node) InsertChildAt(index int, newChild *Node) (*Node, error) {
	count := n.ChildCount()
	if index < 0 || index > count {
		return nil, ErrIndexSize("The index is not in the allowed range.")
	}
	var refChild *Node
	if index < count {
		refChild = n.ChildAt(index)
	}
	return n.InsertBeforeWithError(newChild, refChild)
}

// validatePreInsertion implements the pre-insertion validation steps from the DOM spec.
// https://dom.spec.whatwg.org/#concept-node-pre-insert
func (n *Node) validatePreInsertion(node, child *Node) error {
	return n.validatePreInsertionOrReplace(node, child, false)
}

func (n *Node) validatePreReplace(node, child *Node) error {
	return n.validatePreInsertionOrReplace(node, child, true)
}

func (n *Node) validatePreInsertionOrReplace(node, child *Node, isReplace bool) error {
	// Step 1: If parent is not a Document, DocumentFragment, or Element node, throw HierarchyRequestError
	if n.flags&FlagContainer == 0 {
		return ErrHierarchyRequest("The operation would yield an incorrect node tree.")
	}

	// Step 2: If node is an inclusive ancestor of parent, throw HierarchyRequestError.
	// This is the explicit O(depth) cycle check: walk the parent chain upward
	// and reject on match.
	if n.isInclusiveAncestor(node) {
		return ErrHierarchyRequest("The new child element contains the parent.")
	}

	// Step 3: If child is non-null and its parent is not parent, throw NotFoundError
	if child != nil && child.parentNode != n {
		return ErrNotFound("The node before which the new node is to be inserted is not a child of this node.")
	}

	// Step 4: If node is not a DocumentFragment, DocumentType, Element, Text, or Comment node.
	// In particular a Document can never be a child of anything.
	if !isValidChildType(node) {
		return ErrHierarchyRequest("The operation would yield an incorrect node tree.")
	}

	// Step 5: If node is a Text node and parent is a document, or node is a doctype and parent is not a document
	if node.nodeType == TextNode && n.nodeType == DocumentNode {
		return ErrHierarchyRequest("Cannot insert Text node as a direct child of Document.")
	}
	if node.nodeType == DocumentTypeNode && n.nodeType != DocumentNode {
		return ErrHierarchyRequest("DocumentType nodes can only be children of Document.")
	}

	// Step 6: If parent is a document, special validation for document children
	if n.nodeType == DocumentNode {
		if err := n.validateDocumentInsertionOrReplace(node, child, isReplace); err != nil {
			return err
		}
	}

	return nil
}

// isInclusiveAncestor returns true if node is this node or an ancestor of this node.
func (n *Node) isInclusiveAncestor(node *Node) bool {
	if node == nil {
		return false
	}
	for current := n; current != nil; current = current.parentNode {
		if current == node {
			return true
		}
	}
	return false
}

// isValidChildType returns true if node is a kind that may appear as a child.
func isValidChildType(node *Node) bool {
	if node == nil {
		return false
	}
	switch node.nodeType {
	case DocumentFragmentNode, DocumentTypeNode, ElementNode, TextNode, CommentNode:
		return true
	default:
		return false
	}
}

// validateDocumentInsertionOrReplace performs validation for inserting into a Document node.
// The child parameter is the reference child for insertBefore, or the child being replaced
// for replaceChild. When isReplace is true, child is excluded from counts since it will be
// replaced.
func (n *Node) validateDocumentInsertionOrReplace(node, child *Node, isReplace bool) error {
	var exclude *Node
	if isReplace {
		exclude = child
	}

	switch node.nodeType {
	case DocumentFragmentNode:
		elementCount := 0
		hasText := false
		for c := node.firstChild; c != nil; c = c.nextSibling {
			if c.nodeType == ElementNode {
				elementCount++
			}
			if c.nodeType == TextNode {
				hasText = true
			}
		}

		if hasText {
			return ErrHierarchyRequest("Cannot insert Text node as a direct child of Document.")
		}
		if elementCount > 1 {
			return ErrHierarchyRequest("Document can have only one element child.")
		}
		if elementCount == 1 {
			if n.hasElementChildExcluding(exclude) {
				return ErrHierarchyRequest("Document already has a document element.")
			}
			if child != nil && !(isReplace && child.nodeType == ElementNode) {
				if child.nodeType == DocumentTypeNode || n.doctypeFollows(child) {
					return ErrHierarchyRequest("Cannot insert element before doctype.")
				}
			}
		}

	case ElementNode:
		if n.hasElementChildExcluding(exclude) {
			return ErrHierarchyRequest("Document already has a document element.")
		}
		if child != nil && !(isReplace && child.nodeType == ElementNode) {
			if child.nodeType == DocumentTypeNode || n.doctypeFollows(child) {
				return ErrHierarchyRequest("Cannot insert element before doctype.")
			}
		}

	case DocumentTypeNode:
		if n.hasDoctypeExcluding(exclude) {
			return ErrHierarchyRequest("Document already has a doctype.")
		}
		if n.hasElementChildExcluding(exclude) {
			if child == nil || n.elementPrecedesExcluding(child, exclude) {
				return ErrHierarchyRequest("Cannot insert doctype after document element.")
			}
		}
	}

	return nil
}

// hasElementChildExcluding returns true if this node has an element child other than exclude.
func (n *Node) hasElementChildExcluding(exclude *Node) bool {
	for c := n.firstChild; c != nil; c = c.nextSibling {
		if c != exclude && c.nodeType == ElementNode {
			return true
		}
	}
	return false
}

// hasDoctypeExcluding returns true if this document has a doctype child other than exclude.
func (n *Node) hasDoctypeExcluding(exclude *Node) bool {
	for c := n.firstChild; c != nil; c = c.nextSibling {
		if c != exclude && c.nodeType == DocumentTypeNode {
			return true
		}
	}
	return false
}

// doctypeFollows returns true if there is a doctype node following the given child.
func (n *Node) doctypeFollows(child *Node) bool {
	for c := child.nextSibling; c != nil; c = c.nextSibling {
		if c.nodeType == DocumentTypeNode {
			return true
		}
	}
	return false
}

// elementPrecedesExcluding returns true if there is an element node preceding the given
// child, excluding the specified node from consideration.
func (n *Node) elementPrecedesExcluding(child, exclude *Node) bool {
	for c := n.firstChild; c != nil && c != child; c = c.nextSibling {
		if c != exclude && c.nodeType == ElementNode {
			return true
		}
	}
	return false
}

// insertBefore performs the actual insertion after validation has passed.
func (n *Node) insertBefore(newChild, refChild *Node) *Node {
	if newChild == nil {
		return nil
	}

	// If newChild is a DocumentFragment, move all its children. A fragment
	// with zero children is a legal no-op.
	if newChild.nodeType == DocumentFragmentNode {
		children := newChild.Children()

		// Sibling info for the mutation notification, before any insertions
		var prevSib *Node
		if refChild != nil {
			prevSib = refChild.prevSibling
		} else {
			prevSib = n.lastChild
		}

		for _, child := range children {
			n.insertBeforeInternal(child, refChild)
		}

		if len(children) > 0 {
			notifyChildListMutation(n, children, nil, prevSib, refChild)
			for _, child := range children {
				if child.hooks != nil {
					child.hooks.Inserted(child, n)
				}
			}
		}
		return newChild
	}

	// Inserting a node before itself is a no-op
	if newChild == refChild {
		return newChild
	}

	var prevSib *Node
	if refChild != nil {
		prevSib = refChild.prevSibling
	} else {
		prevSib = n.lastChild
	}

	// Sever any existing parent relationship (with its own removal notification)
	if newChild.parentNode != nil {
		newChild.parentNode.RemoveChild(newChild)
	}

	n.insertBeforeInternal(newChild, refChild)

	notifyChildListMutation(n, []*Node{newChild}, nil, prevSib, refChild)
	if newChild.hooks != nil {
		newChild.hooks.Inserted(newChild, n)
	}

	return newChild
}

// insertBeforeInternal links newChild into this node's child sequence before
// refChild (or at the end when refChild is nil), adopting it into this node's
// document when owners differ. No validation, no notification.
func (n *Node) insertBeforeInternal(newChild, refChild *Node) {
	if newChild == nil {
		return
	}

	// Remove from current parent if necessary (without notification)
	if newChild.parentNode != nil {
		newChild.parentNode.removeChildInternal(newChild)
	}

	newChild.parentNode = n

	// Adopt the node (and its whole subtree) into this document if owners differ
	if doc := n.document(); doc != nil && newChild.document() != doc {
		adopt(newChild, doc)
	}

	if refChild == nil {
		// Append to the end
		newChild.prevSibling = n.lastChild
		newChild.nextSibling = nil
		if n.lastChild != nil {
			n.lastChild.nextSibling = newChild
		} else {
			n.firstChild = newChild
		}
		n.lastChild = newChild
	} else {
		// Insert before refChild
		newChild.prevSibling = refChild.prevSibling
		newChild.nextSibling = refChild
		if refChild.prevSibling != nil {
			refChild.prevSibling.nextSibling = newChild
		} else {
			n.firstChild = newChild
		}
		refChild.prevSibling = newChild
	}
}

// adopt recursively reassigns the owning document of a node and its
// descendants. A Document node never gets an owner, even when nested.
func adopt(node *Node, doc *Document) {
	if node.nodeType != DocumentNode {
		node.ownerDoc = doc
	}
	for child := node.firstChild; child != nil; child = child.nextSibling {
		adopt(child, doc)
	}
}

// RemoveChild removes a child node from this node.
// For error-returning version, use RemoveChildWithError.
func (n *Node) RemoveChild(child *Node) *Node {
	result, _ := n.RemoveChildWithError(child)
	return result
}

// RemoveChildWithError removes a child node from this node.
// Returns an error if the child is not a child of this node.
func (n *Node) RemoveChildWithError(child *Node) (*Node, error) {
	if child == nil {
		return nil, ErrNotFound("The node to be removed is null.")
	}
	if child.parentNode != n {
		return nil, ErrNotFound("The node to be removed is not a child of this node.")
	}

	// Capture sibling info before removal for the notification and hook
	prevSib := child.prevSibling
	nextSib := child.nextSibling

	n.removeChildInternal(child)

	notifyChildListMutation(n, nil, []*Node{child}, prevSib, nextSib)
	if child.hooks != nil {
		child.hooks.Removed(child, n, prevSib)
	}

	return child, nil
}

// removeChildInternal unlinks a child from this node's child sequence.
// No validation, no notification.
func (n *Node) removeChildInternal(child *Node) {
	if child.prevSibling != nil {
		child.prevSibling.nextSibling = child.nextSibling
	} else {
		n.firstChild = child.nextSibling
	}

	if child.nextSibling != nil {
		child.nextSibling.prevSibling = child.prevSibling
	} else {
		n.lastChild = child.prevSibling
	}

	child.parentNode = nil
	child.prevSibling = nil
	child.nextSibling = nil
}

// ReplaceChild replaces a child node with a new node.
// For error-returning version, use ReplaceChildWithError.
func (n *Node) ReplaceChild(newChild, oldChild *Node) *Node {
	result, _ := n.ReplaceChildWithError(newChild, oldChild)
	return result
}

// ReplaceChildWithError replaces oldChild with newChild in this node's child
// sequence and returns oldChild. Validation mirrors insertion, with oldChild
// excluded from the document-shape counts.
func (n *Node) ReplaceChildWithError(newChild, oldChild *Node) (*Node, error) {
	if oldChild == nil {
		return nil, ErrNotFound("The node to be replaced is null.")
	}

	if err := n.validatePreReplace(newChild, oldChild); err != nil {
		return nil, err
	}

	// Replacing a node with itself is a no-op
	if newChild == oldChild {
		return oldChild, nil
	}

	// Capture sibling info before any modifications
	prevSib := oldChild.prevSibling
	nextSib := oldChild.nextSibling

	// The re-insertion reference is oldChild's next sibling, unless that is
	// newChild itself, which is about to move.
	referenceChild := oldChild.nextSibling
	if referenceChild == newChild {
		referenceChild = newChild.nextSibling
	}

	if newChild.nodeType == DocumentFragmentNode {
		children := newChild.Children()

		n.removeChildInternal(oldChild)
		for _, child := range children {
			n.insertBeforeInternal(child, referenceChild)
		}

		notifyChildListMutation(n, children, []*Node{oldChild}, prevSib, nextSib)
		if oldChild.hooks != nil {
			oldChild.hooks.Removed(oldChild, n, prevSib)
		}
		for _, child := range children {
			if child.hooks != nil {
				child.hooks.Inserted(child, n)
			}
		}
		return oldChild, nil
	}

	if newChild.parentNode != nil {
		newChild.parentNode.removeChildInternal(newChild)
	}

	n.removeChildInternal(oldChild)
	n.insertBeforeInternal(newChild, referenceChild)

	notifyChildListMutation(n, []*Node{newChild}, []*Node{oldChild}, prevSib, nextSib)
	if oldChild.hooks != nil {
		oldChild.hooks.Removed(oldChild, n, prevSib)
	}
	if newChild.hooks != nil {
		newChild.hooks.Inserted(newChild, n)
	}

	return oldChild, nil
}

// ReplaceAllChildren removes every existing child of this node and inserts
// newChild (or, for a DocumentFragment, its flattened children) as the sole
// new content. A nil newChild just empties the node. Used for whole-content
// replacement such as SetTextContent, not incremental editing.
func (n *Node) ReplaceAllChildren(newChild *Node) error {
	if newChild != nil {
		// Existing children are on their way out, so the document-shape
		// counts do not apply; the structural rules still do.
		if n.flags&FlagContainer == 0 {
			return ErrHierarchyRequest("The operation would yield an incorrect node tree.")
		}
		if n.isInclusiveAncestor(newChild) {
			return ErrHierarchyRequest("The new child element contains the parent.")
		}
		if !isValidChildType(newChild) {
			return ErrHierarchyRequest("The operation would yield an incorrect node tree.")
		}
		if newChild.nodeType == TextNode && n.nodeType == DocumentNode {
			return ErrHierarchyRequest("Cannot insert Text node as a direct child of Document.")
		}
		if newChild.nodeType == DocumentTypeNode && n.nodeType != DocumentNode {
			return ErrHierarchyRequest("DocumentType nodes can only be children of Document.")
		}
	}
	n.replaceAll(newChild)
	return nil
}

// replaceAll is the unvalidated whole-content replacement primitive.
func (n *Node) replaceAll(newChild *Node) {
	removed := n.Children()
	for _, child := range removed {
		n.removeChildInternal(child)
	}

	var added []*Node
	if newChild != nil {
		if newChild.nodeType == DocumentFragmentNode {
			added = newChild.Children()
		} else {
			added = []*Node{newChild}
		}
		for _, child := range added {
			n.insertBeforeInternal(child, nil)
		}
	}

	if len(removed) > 0 || len(added) > 0 {
		notifyChildListMutation(n, added, removed, nil, nil)
	}
	for _, child := range removed {
		if child.hooks != nil {
			child.hooks.Removed(child, n, nil)
		}
	}
	for _, child := range added {
		if child.hooks != nil {
			child.hooks.Inserted(child, n)
		}
	}
}

// CloneNode creates a copy of this node. The clone keeps the original's
// owner document and base URI override and is never attached to the
// original tree. If deep is true, all descendants are cloned in order.
func (n *Node) CloneNode(deep bool) *Node {
	clone := n.shallowClone()

	if deep {
		for child := n.firstChild; child != nil; child = child.nextSibling {
			clone.insertBeforeInternal(child.CloneNode(true), nil)
		}
	}

	return clone
}

// Clone creates a deep copy of this node. Callers needing a shallow clone
// use CloneNode(false) explicitly.
func (n *Node) Clone() *Node {
	return n.CloneNode(true)
}

func (n *Node) shallowClone() *Node {
	clone := newNode(n.nodeType, n.nodeName, n.ownerDoc)

	if n.nodeValue != nil {
		value := *n.nodeValue
		clone.nodeValue = &value
	}
	if n.baseURI != nil {
		uri := *n.baseURI
		clone.baseURI = &uri
	}

	switch n.nodeType {
	case ElementNode:
		if n.elementData != nil {
			clone.elementData = &elementData{
				localName:    n.elementData.localName,
				namespaceURI: n.elementData.namespaceURI,
				prefix:       n.elementData.prefix,
			}
			clone.elementData.attrs = append(clone.elementData.attrs, n.elementData.attrs...)
		}
	case DocumentTypeNode:
		if n.docTypeData != nil {
			clone.docTypeData = &docTypeData{
				name:     n.docTypeData.name,
				publicID: n.docTypeData.publicID,
				systemID: n.docTypeData.systemID,
			}
		}
	case DocumentNode:
		if n.docData != nil {
			data := *n.docData
			clone.docData = &data
		} else {
			clone.docData = &documentData{contentType: "text/html"}
		}
		clone.ownerDoc = nil
	}

	return clone
}

// AppendText appends character data to this node's content, extending an
// existing trailing text child when there is one. The markup parser uses
// this to build content incrementally. Returns the text node that received
// the data. Appending to a node that cannot legally host a text child fails
// the same way insertion would, leaving the tree unchanged.
func (n *Node) AppendText(data string) (*Node, error) {
	if last := n.lastChild; last != nil && last.flags&FlagText != 0 {
		last.SetNodeValue(last.NodeValue() + data)
		return last, nil
	}
	text := newText(data, n.ownerDoc)
	if _, err := n.InsertBeforeWithError(text, nil); err != nil {
		return nil, err
	}
	return text, nil
}

// InsertTextAt inserts character data at the given child index, extending
// the leading or trailing text neighbor when one exists. Returns the text
// node that received the data.
func (n *Node) InsertTextAt(index int, data string) (*Node, error) {
	count := n.ChildCount()
	if index < 0 || index > count {
		return nil, ErrIndexSize("The index is not in the allowed range.")
	}

	if prev := n.ChildAt(index - 1); prev != nil && prev.flags&FlagText != 0 {
		prev.SetNodeValue(prev.NodeValue() + data)
		return prev, nil
	}
	if ref := n.ChildAt(index); ref != nil && ref.flags&FlagText != 0 {
		ref.SetNodeValue(data + ref.NodeValue())
		return ref, nil
	}

	text := newText(data, n.ownerDoc)
	var refChild *Node
	if index < count {
		refChild = n.ChildAt(index)
	}
	if _, err := n.InsertBeforeWithError(text, refChild); err != nil {
		return nil, err
	}
	return text, nil
}
