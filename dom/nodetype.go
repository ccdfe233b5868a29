// Package dom implements the generic tree-node core of a document object
// model: node identity, ordered children, tree mutation with hierarchy
// validation, cross-document adoption, text-run normalization, namespace
// resolution, document-order comparison, and capture/bubble event dispatch.
// https://dom.spec.whatwg.org/
package dom

// NodeType represents the type of a Node as defined in the DOM specification.
type NodeType uint16

const (
	// ElementNode represents an Element node.
	ElementNode NodeType = 1
	// TextNode represents a Text node.
	TextNode NodeType = 3
	// CommentNode represents a Comment node.
	CommentNode NodeType = 8
	// DocumentNode represents a Document node.
	DocumentNode NodeType = 9
	// DocumentTypeNode represents a DocumentType node.
	DocumentTypeNode NodeType = 10
	// DocumentFragmentNode represents a DocumentFragment node.
	DocumentFragmentNode NodeType = 11
)

// String returns the string representation of the NodeType.
func (nt NodeType) String() string {
	switch nt {
	case ElementNode:
		return "ELEMENT_NODE"
	case TextNode:
		return "TEXT_NODE"
	case CommentNode:
		return "COMMENT_NODE"
	case DocumentNode:
		return "DOCUMENT_NODE"
	case DocumentTypeNode:
		return "DOCUMENT_TYPE_NODE"
	case DocumentFragmentNode:
		return "DOCUMENT_FRAGMENT_NODE"
	default:
		return "UNKNOWN_NODE"
	}
}

// NodeFlags is a bitset of static classification markers fixed at
// construction. They classify what a node kind can do without branching on
// NodeType at every call site.
type NodeFlags uint16

const (
	// FlagContainer marks node kinds that may host children
	// (Document, DocumentFragment, Element).
	FlagContainer NodeFlags = 1 << iota
	// FlagCharacterData marks node kinds whose payload is character data
	// (Text, Comment).
	FlagCharacterData
	// FlagText marks node kinds that participate in text-run normalization.
	FlagText
	// FlagRoot marks node kinds that root a tree (Document, DocumentFragment).
	FlagRoot
)

// flagsForType returns the classification flags for a node kind.
func flagsForType(nodeType NodeType) NodeFlags {
	switch nodeType {
	case ElementNode:
		return FlagContainer
	case TextNode:
		return FlagCharacterData | FlagText
	case CommentNode:
		return FlagCharacterData
	case DocumentNode:
		return FlagContainer | FlagRoot
	case DocumentFragmentNode:
		return FlagContainer | FlagRoot
	default:
		return 0
	}
}
