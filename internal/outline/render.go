package outline

import "strings"

// DefaultIndentWidth is the number of spaces per depth level when the caller
// does not specify one.
const DefaultIndentWidth = 4

// RenderOptions controls indented-text serialization.
type RenderOptions struct {
	// MaxDepth limits descent below the starting point: 0 renders only the
	// immediate children, never grandchildren. nil means unlimited.
	MaxDepth *int

	// IncludeNotes emits each non-blank note line as a plain bullet one
	// level deeper than its node, in the note's original line order.
	IncludeNotes bool

	// IncludeChecked keeps checked nodes. When false, a checked node and
	// its entire subtree are skipped.
	IncludeChecked bool

	// IndentWidth is the number of spaces per depth level.
	// Defaults to DefaultIndentWidth.
	IndentWidth int
}

// Render serializes the subtree rooted at startID as canonical indented text.
// Traversal is depth-first pre-order following children in stored order;
// sibling order is semantic and is never changed.
//
// The starting node itself is rendered at depth zero and is exempt from the
// depth limit; MaxDepth counts levels of children below it.
func Render(nodes []Node, startID string, opts RenderOptions) string {
	limit := -1
	if opts.MaxDepth != nil {
		limit = *opts.MaxDepth + 1
	}
	var b strings.Builder
	renderNode(&b, Index(nodes), startID, 0, limit, indentWidth(opts), opts)
	return b.String()
}

// RenderDocument renders every top-level item of the document as an
// independent tree. The document root only anchors the children list and is
// itself never rendered.
func RenderDocument(nodes []Node, opts RenderOptions) string {
	byID := Index(nodes)
	root, ok := byID[FindRoot(nodes)]
	if !ok {
		return ""
	}
	limit := -1
	if opts.MaxDepth != nil {
		limit = *opts.MaxDepth
	}
	var b strings.Builder
	for _, c := range root.Children {
		renderNode(&b, byID, c, 0, limit, indentWidth(opts), opts)
	}
	return b.String()
}

func indentWidth(opts RenderOptions) int {
	if opts.IndentWidth > 0 {
		return opts.IndentWidth
	}
	return DefaultIndentWidth
}

// renderNode emits one node line and recurses into its children. limit is the
// maximum depth to emit, or -1 for unlimited.
func renderNode(b *strings.Builder, byID map[string]*Node, id string, depth, limit, width int, opts RenderOptions) {
	if limit >= 0 && depth > limit {
		return
	}
	n, ok := byID[id]
	if !ok {
		return
	}
	if n.Checked && !opts.IncludeChecked {
		// Checked items are assumed fully resolved: skip the whole subtree.
		return
	}

	// Nodes with no content and no children produce no line.
	if strings.TrimSpace(n.Content) != "" || len(n.Children) > 0 {
		b.WriteString(strings.Repeat(" ", depth*width))
		b.WriteString(bullet(n))
		b.WriteString(n.Content)
		b.WriteByte('\n')

		if opts.IncludeNotes && n.Note != "" {
			noteIndent := strings.Repeat(" ", (depth+1)*width)
			for _, line := range strings.Split(n.Note, "\n") {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				b.WriteString(noteIndent)
				b.WriteString("- ")
				b.WriteString(line)
				b.WriteByte('\n')
			}
		}
	}

	for _, c := range n.Children {
		renderNode(b, byID, c, depth+1, limit, width, opts)
	}
}

// bullet picks the line prefix: checkbox state wins over heading level, which
// wins over the plain dash.
func bullet(n *Node) string {
	switch {
	case n.Checkbox && n.Checked:
		return "- [x] "
	case n.Checkbox:
		return "- [ ] "
	case n.Heading > 0:
		return strings.Repeat("#", n.Heading) + " "
	default:
		return "- "
	}
}
