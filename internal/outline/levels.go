package outline

// AttachToRoot is the ParentIndex sentinel for level-0 nodes, meaning "attach
// directly to the externally supplied insertion root".
const AttachToRoot = -1

// LevelNode is a pending node flattened into its depth level. ParentIndex is
// the position of its parent within the previous level — and therefore within
// the id array returned by the previous level's insert call.
type LevelNode struct {
	Node        *PendingNode
	ParentIndex int
}

// Level holds every pending node at one depth. A whole level is submitted as
// one batch call; nodes within it are independent of each other.
type Level []LevelNode

// GroupByLevel flattens a pending forest into depth levels: level 0 is the
// roots, level k is every node whose parent sits at level k-1. A child cannot
// be inserted before its parent's id is known, so levels must be inserted
// strictly in order, each awaited before the next.
func GroupByLevel(roots []*PendingNode) []Level {
	var levels []Level
	current := make(Level, 0, len(roots))
	for _, r := range roots {
		current = append(current, LevelNode{Node: r, ParentIndex: AttachToRoot})
	}
	for len(current) > 0 {
		levels = append(levels, current)
		var next Level
		for i := range current {
			for _, c := range current[i].Node.Children {
				next = append(next, LevelNode{Node: c, ParentIndex: i})
			}
		}
		current = next
	}
	return levels
}

// CountNodes returns the total node count across all levels.
func CountNodes(levels []Level) int {
	total := 0
	for _, l := range levels {
		total += len(l)
	}
	return total
}
