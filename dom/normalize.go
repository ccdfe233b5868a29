package dom

// Normalize puts the subtree rooted at this node into normal form: no two
// adjacent text nodes survive and no empty text node survives, anywhere in
// the subtree. Empty text children are removed in place; a non-empty text
// child absorbs every immediately following text sibling in order, and the
// drained siblings are removed. Normalizing an already-normalized subtree
// is a no-op.
func (n *Node) Normalize() {
	for child := n.firstChild; child != nil; {
		next := child.nextSibling

		switch {
		case child.flags&FlagText != 0:
			if child.NodeValue() == "" {
				n.RemoveChild(child)
			} else {
				// Merge the whole run of following text siblings forward
				for next != nil && next.flags&FlagText != 0 {
					after := next.nextSibling
					child.SetNodeValue(child.NodeValue() + next.NodeValue())
					n.RemoveChild(next)
					next = after
				}
			}
		case child.firstChild != nil:
			child.Normalize()
		}

		child = next
	}
}
