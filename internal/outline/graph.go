package outline

// FindRoot returns the id of the node never listed as a child by any other
// node. When no such node exists (a cycle, or a response missing the
// synthetic root) it falls back to the first node in the list. This is a
// best-effort recovery, not a correctness guarantee.
func FindRoot(nodes []Node) string {
	if len(nodes) == 0 {
		return ""
	}
	isChild := make(map[string]bool)
	for i := range nodes {
		for _, c := range nodes[i].Children {
			isChild[c] = true
		}
	}
	for i := range nodes {
		if !isChild[nodes[i].ID] {
			return nodes[i].ID
		}
	}
	return nodes[0].ID
}

// ParentRef locates a node within its parent's children list.
type ParentRef struct {
	ParentID string
	Index    int
}

// FindParent scans every children list for id and returns the first match.
// ok is false when id is the root or absent from the document.
func FindParent(nodes []Node, id string) (ParentRef, bool) {
	for i := range nodes {
		for idx, c := range nodes[i].Children {
			if c == id {
				return ParentRef{ParentID: nodes[i].ID, Index: idx}, true
			}
		}
	}
	return ParentRef{}, false
}

// Ancestors returns up to levels ancestor ids of id, nearest first. It stops
// early once a node with no discoverable parent is reached.
func Ancestors(nodes []Node, id string, levels int) []string {
	var chain []string
	cur := id
	for len(chain) < levels {
		ref, ok := FindParent(nodes, cur)
		if !ok {
			break
		}
		chain = append(chain, ref.ParentID)
		cur = ref.ParentID
	}
	return chain
}

// Descendants collects id and everything transitively reachable through
// children, in pre-order. Ids already collected are never revisited, so an
// accidental cycle cannot turn this into an infinite loop.
func Descendants(nodes []Node, id string) []string {
	byID := Index(nodes)
	seen := make(map[string]bool)
	var collected []string
	var walk func(string)
	walk = func(cur string) {
		if seen[cur] {
			return
		}
		seen[cur] = true
		collected = append(collected, cur)
		n, ok := byID[cur]
		if !ok {
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(id)
	return collected
}
