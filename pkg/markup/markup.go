// Package markup extracts the structural outline from press release content.
// The content convention is light: lines starting with "## " are section
// headings, "### " sub-headings, and "- **Label**: text" labeled bullets.
package markup

import "strings"

// NodeKind classifies an outline node
type NodeKind string

const (
	NodeHeading    NodeKind = "heading"
	NodeSubheading NodeKind = "subheading"
	NodeLabel      NodeKind = "label"
)

// Node is one structural element of the content, in document order.
type Node struct {
	Kind  NodeKind `json:"kind"`
	Text  string   `json:"text"`
	Value string   `json:"value,omitempty"`
}

// Outline scans content line by line and returns its structural nodes.
// Plain prose lines are not part of the outline.
func Outline(content string) []Node {
	var nodes []Node
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, " \t\r")
		switch {
		case strings.HasPrefix(line, "### "):
			text := strings.TrimSpace(strings.TrimPrefix(line, "### "))
			if text != "" {
				nodes = append(nodes, Node{Kind: NodeSubheading, Text: text})
			}
		case strings.HasPrefix(line, "## "):
			text := strings.TrimSpace(strings.TrimPrefix(line, "## "))
			if text != "" {
				nodes = append(nodes, Node{Kind: NodeHeading, Text: text})
			}
		case strings.HasPrefix(line, "- **"):
			if n, ok := parseLabeledBullet(line); ok {
				nodes = append(nodes, n)
			}
		}
	}
	return nodes
}

// parseLabeledBullet parses "- **Label**: value" lines.
func parseLabeledBullet(line string) (Node, bool) {
	rest := strings.TrimPrefix(line, "- **")
	end := strings.Index(rest, "**:")
	if end < 0 {
		return Node{}, false
	}
	label := strings.TrimSpace(rest[:end])
	if label == "" {
		return Node{}, false
	}
	value := strings.TrimSpace(rest[end+len("**:"):])
	return Node{Kind: NodeLabel, Text: label, Value: value}, true
}
