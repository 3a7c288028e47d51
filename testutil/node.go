package testutil

import (
	"slices"
	"strings"

	"github.com/boolean-maybe/mycounter/controller"
)

// Node is a tagged region of the active view, looked up on every call so it
// follows navigation.
type Node struct {
	ta  *TestApp
	tag string
}

// NodeWithTag returns a handle to the region the active view exposes under tag
func (ta *TestApp) NodeWithTag(tag string) *Node {
	return &Node{ta: ta, tag: tag}
}

func (n *Node) view() controller.TaggedView {
	tagged, ok := n.ta.ContentView().(controller.TaggedView)
	if !ok {
		return nil
	}
	return tagged
}

// Exists reports whether the active view exposes the tag
func (n *Node) Exists() bool {
	v := n.view()
	return v != nil && slices.Contains(v.Tags(), n.tag)
}

// Text returns the text shown by the tagged region
func (n *Node) Text() string {
	v := n.view()
	if v == nil {
		return ""
	}
	text, _ := v.TagText(n.tag)
	return text
}

// IsDisplayed reports whether the tagged region's text is visible on screen
func (n *Node) IsDisplayed() bool {
	if !n.Exists() {
		return false
	}
	text := strings.TrimSpace(n.Text())
	if text == "" {
		return false
	}
	n.ta.Draw()
	found, _, _ := n.ta.FindText(text)
	return found
}

// PerformClick activates the tagged control and redraws
func (n *Node) PerformClick() bool {
	v := n.view()
	if v == nil {
		return false
	}
	clicked := v.PerformClick(n.tag)
	n.ta.Draw()
	return clicked
}

// AssertIsDisplayed fails the test if the tagged region is not on screen
func (n *Node) AssertIsDisplayed() *Node {
	n.ta.t.Helper()
	if !n.IsDisplayed() {
		n.ta.DumpScreen()
		n.ta.t.Errorf("node %q is not displayed", n.tag)
	}
	return n
}

// AssertTextEquals fails the test if the tagged region shows different text
func (n *Node) AssertTextEquals(want string) *Node {
	n.ta.t.Helper()
	if got := n.Text(); got != want {
		n.ta.t.Errorf("node %q text = %q, want %q", n.tag, got, want)
	}
	return n
}

// AssertDoesNotExist fails the test if the active view exposes the tag
func (n *Node) AssertDoesNotExist() *Node {
	n.ta.t.Helper()
	if n.Exists() {
		n.ta.t.Errorf("node %q exists, want absent", n.tag)
	}
	return n
}
