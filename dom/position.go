package dom

// Document position bitmask values returned by CompareDocumentPosition.
const (
	// DocumentPositionSame is the empty mask returned for identical nodes.
	DocumentPositionSame uint16 = 0x00
	// DocumentPositionDisconnected is set when the nodes are in different trees.
	DocumentPositionDisconnected uint16 = 0x01
	// DocumentPositionPreceding is set when other comes before this node in
	// document order.
	DocumentPositionPreceding uint16 = 0x02
	// DocumentPositionFollowing is set when other comes after this node in
	// document order.
	DocumentPositionFollowing uint16 = 0x04
	// DocumentPositionContains is set when other is an ancestor of this node.
	DocumentPositionContains uint16 = 0x08
	// DocumentPositionContainedBy is set when other is a descendant of this node.
	DocumentPositionContainedBy uint16 = 0x10
	// DocumentPositionImplementationSpecific is set alongside Disconnected to
	// mark that the Preceding/Following choice is implementation-defined.
	DocumentPositionImplementationSpecific uint16 = 0x20
)

// CompareDocumentPosition returns a bitmask indicating the position of the
// given node relative to this node. For every ordered pair of distinct nodes
// exactly one of Preceding/Following is set, including across disconnected
// trees, where the choice falls back to a stable construction-order total
// order so that the relation stays antisymmetric.
func (n *Node) CompareDocumentPosition(other *Node) uint16 {
	if n == other {
		return DocumentPositionSame
	}

	if other == nil {
		return DocumentPositionDisconnected | DocumentPositionImplementationSpecific
	}

	// Build the root-to-node ancestor chains. Different roots means the
	// nodes live in different trees.
	chain1 := n.ancestorChain()
	chain2 := other.ancestorChain()
	if chain1[0] != chain2[0] {
		result := DocumentPositionDisconnected | DocumentPositionImplementationSpecific
		if other.serial < n.serial {
			result |= DocumentPositionPreceding
		} else {
			result |= DocumentPositionFollowing
		}
		return result
	}

	// Containment: other above n precedes and contains it; other below n
	// follows and is contained by it.
	if other.Contains(n) {
		return DocumentPositionContains | DocumentPositionPreceding
	}
	if n.Contains(other) {
		return DocumentPositionContainedBy | DocumentPositionFollowing
	}

	// Walk both chains past the common prefix; the diverging children are
	// siblings whose order decides document order.
	i := 0
	for i < len(chain1) && i < len(chain2) && chain1[i] == chain2[i] {
		i++
	}
	for sibling := chain1[i].nextSibling; sibling != nil; sibling = sibling.nextSibling {
		if sibling == chain2[i] {
			return DocumentPositionFollowing
		}
	}
	return DocumentPositionPreceding
}

// ancestorChain returns the path from the tree root down to this node,
// inclusive.
func (n *Node) ancestorChain() []*Node {
	var chain []*Node
	for node := n; node != nil; node = node.parentNode {
		chain = append(chain, node)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
