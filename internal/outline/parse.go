package outline

import "strings"

// PendingNode is a parsed outline entry. It has no id until the batch
// inserter creates it remotely.
type PendingNode struct {
	Content  string
	Children []*PendingNode
}

// tabWidth is how many spaces a tab counts for when measuring indentation.
const tabWidth = 4

// Parse converts indented or bulleted text into an ordered forest of pending
// nodes. Blank lines never create nodes and never reset indentation
// tracking. The indentation unit is inferred once for the whole input; mixed
// schemes are not separately detected. Indentation that jumps by more than
// one unit is treated as a single nesting step below the nearest open
// ancestor.
func Parse(text string) []*PendingNode {
	lines := strings.Split(text, "\n")
	unit := inferIndentUnit(lines)

	type open struct {
		node  *PendingNode
		level int
	}
	var roots []*PendingNode
	var stack []open

	for _, raw := range lines {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		level := leadingWidth(raw) / unit
		content := stripMarker(strings.TrimLeft(raw, " \t"))
		if content == "" {
			continue
		}
		node := &PendingNode{Content: content}

		// Anything at the same or deeper level cannot be an ancestor.
		for len(stack) > 0 && stack[len(stack)-1].level >= level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, node)
		} else {
			top := stack[len(stack)-1].node
			top.Children = append(top.Children, node)
		}
		stack = append(stack, open{node: node, level: level})
	}
	return roots
}

// inferIndentUnit returns the smallest positive leading-whitespace width seen
// on any non-blank line, with tabs counted as tabWidth spaces. Defaults to 4
// when nothing is indented.
func inferIndentUnit(lines []string) int {
	unit := 0
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		w := leadingWidth(l)
		if w > 0 && (unit == 0 || w < unit) {
			unit = w
		}
	}
	if unit == 0 {
		return 4
	}
	return unit
}

// leadingWidth measures a line's leading whitespace in spaces.
func leadingWidth(line string) int {
	w := 0
	for _, r := range line {
		switch r {
		case ' ':
			w++
		case '\t':
			w += tabWidth
		default:
			return w
		}
	}
	return w
}

// stripMarker removes at most one leading bullet marker ("-", "*", "•", a
// numbered marker like "1." or "1)", or a quote marker ">"). A marker only
// counts when followed by whitespace; the remainder is trimmed.
func stripMarker(s string) string {
	for _, m := range []string{"-", "*", "•", ">"} {
		if rest, ok := cutMarker(s, m); ok {
			return rest
		}
	}
	// Numbered markers: digits then "." or ")".
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 && i < len(s) && (s[i] == '.' || s[i] == ')') {
		if rest, ok := cutMarker(s, s[:i+1]); ok {
			return rest
		}
	}
	return strings.TrimSpace(s)
}

// cutMarker strips marker from the front of s when it is followed by
// whitespace.
func cutMarker(s, marker string) (string, bool) {
	rest, found := strings.CutPrefix(s, marker)
	if !found || rest == "" {
		return "", false
	}
	if rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	return strings.TrimSpace(rest), true
}
