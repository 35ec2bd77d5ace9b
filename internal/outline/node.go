// Package outline models a remote outliner document as a tree over a flat,
// id-linked node list, and converts between that tree and indented text.
package outline

// Node is one outline entry as stored by the document service. Children is an
// ordered list of node ids; the order is semantic, not incidental.
type Node struct {
	// ID is an opaque identifier, unique within a document
	ID string `json:"id"`

	// Content is the single-line display text
	Content string `json:"content"`

	// Note is optional free text and may span multiple lines
	Note string `json:"note,omitempty"`

	// Children lists child node ids in sibling order
	Children []string `json:"children,omitempty"`

	// Checked is only meaningful when Checkbox is true
	Checked  bool `json:"checked,omitempty"`
	Checkbox bool `json:"checkbox,omitempty"`

	// Heading is 0 for a plain item, 1-3 for heading levels
	Heading int `json:"heading,omitempty"`

	// Color is a display-only label, 0-6
	Color int `json:"color,omitempty"`

	// Created and Modified are Unix timestamps in milliseconds
	Created  int64 `json:"created,omitempty"`
	Modified int64 `json:"modified,omitempty"`
}

// Document is one fetched document snapshot: identity plus the flat node list.
type Document struct {
	ID      string
	Title   string
	Version int
	Nodes   []Node
}

// Index builds an id → node lookup over a flat node list. Duplicate ids
// overwrite silently; the last occurrence wins.
func Index(nodes []Node) map[string]*Node {
	byID := make(map[string]*Node, len(nodes))
	for i := range nodes {
		byID[nodes[i].ID] = &nodes[i]
	}
	return byID
}
