package dom

import (
	"testing"
)

func TestText_WholeText(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div").AsNode()
	div.AppendChild(doc.CreateTextNode("one "))
	mid := doc.CreateTextNode("two ")
	div.AppendChild(mid)
	div.AppendChild(doc.CreateTextNode("three"))
	div.AppendChild(doc.CreateElement("br").AsNode())
	div.AppendChild(doc.CreateTextNode("outside"))

	text := (*Text)(mid)
	if got := text.WholeText(); got != "one two three" {
		t.Errorf("WholeText should cover the contiguous run only, got %q", got)
	}
	if text.Data() != "two " || text.Length() != 4 {
		t.Errorf("unexpected text view state: %q (length %d)", text.Data(), text.Length())
	}
	if text.NodeName() != "#text" || text.NodeType() != TextNode {
		t.Errorf("unexpected identity: %q %v", text.NodeName(), text.NodeType())
	}

	text.SetData("2 ")
	if mid.NodeValue() != "2 " {
		t.Errorf("SetData should write through to the node value, got %q", mid.NodeValue())
	}
	if got := text.WholeText(); got != "one 2 three" {
		t.Errorf("WholeText should see the updated run, got %q", got)
	}
}

func TestText_WholeTextSingleNode(t *testing.T) {
	doc := NewDocument()
	text := (*Text)(doc.CreateTextNode("alone"))

	if got := text.WholeText(); got != "alone" {
		t.Errorf("a detached text node is its own run, got %q", got)
	}
}

func TestComment_Data(t *testing.T) {
	doc := NewDocument()
	node := doc.CreateComment("draft")
	comment := (*Comment)(node)

	if comment.Data() != "draft" {
		t.Errorf("unexpected comment data %q", comment.Data())
	}
	if comment.NodeName() != "#comment" || comment.NodeType() != CommentNode {
		t.Errorf("unexpected identity: %q %v", comment.NodeName(), comment.NodeType())
	}

	comment.SetData("final")
	if node.NodeValue() != "final" {
		t.Errorf("SetData should write through to the node value, got %q", node.NodeValue())
	}
}
