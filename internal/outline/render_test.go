package outline

import "testing"

func intPtr(v int) *int { return &v }

// doc builds a small fixture: root anchors two trees.
//
//	root
//	├── a "Projects"
//	│   ├── b "Website" (checkbox, checked)
//	│   │   └── c "Deploy"
//	│   └── d "Garden" (heading 2, note "water daily\nfeed weekly")
//	└── e "Someday"
func doc() []Node {
	return []Node{
		{ID: "root", Children: []string{"a", "e"}},
		{ID: "a", Content: "Projects", Children: []string{"b", "d"}},
		{ID: "b", Content: "Website", Checkbox: true, Checked: true, Children: []string{"c"}},
		{ID: "c", Content: "Deploy"},
		{ID: "d", Content: "Garden", Heading: 2, Note: "water daily\nfeed weekly"},
		{ID: "e", Content: "Someday"},
	}
}

func TestRenderDocument(t *testing.T) {
	got := RenderDocument(doc(), RenderOptions{IncludeChecked: true})
	want := "- Projects\n" +
		"    - [x] Website\n" +
		"        - Deploy\n" +
		"    ## Garden\n" +
		"- Someday\n"
	if got != want {
		t.Errorf("RenderDocument:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderSubtree(t *testing.T) {
	got := Render(doc(), "a", RenderOptions{IncludeChecked: true})
	want := "- Projects\n" +
		"    - [x] Website\n" +
		"        - Deploy\n" +
		"    ## Garden\n"
	if got != want {
		t.Errorf("Render(a):\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderMaxDepthZero(t *testing.T) {
	// maxDepth 0 renders the start node and its immediate children only.
	got := Render(doc(), "a", RenderOptions{MaxDepth: intPtr(0), IncludeChecked: true})
	want := "- Projects\n" +
		"    - [x] Website\n" +
		"    ## Garden\n"
	if got != want {
		t.Errorf("Render maxDepth=0:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderDocumentMaxDepthZero(t *testing.T) {
	got := RenderDocument(doc(), RenderOptions{MaxDepth: intPtr(0), IncludeChecked: true})
	want := "- Projects\n- Someday\n"
	if got != want {
		t.Errorf("RenderDocument maxDepth=0:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderExcludeChecked(t *testing.T) {
	// A checked node takes its whole subtree with it.
	got := Render(doc(), "a", RenderOptions{IncludeChecked: false})
	want := "- Projects\n" +
		"    ## Garden\n"
	if got != want {
		t.Errorf("Render exclude checked:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderNotes(t *testing.T) {
	got := Render(doc(), "d", RenderOptions{IncludeNotes: true, IncludeChecked: true})
	want := "## Garden\n" +
		"    - water daily\n" +
		"    - feed weekly\n"
	if got != want {
		t.Errorf("Render with notes:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderSkipsEmptyLeaf(t *testing.T) {
	nodes := []Node{
		{ID: "root", Children: []string{"a", "b"}},
		{ID: "a", Content: "kept"},
		{ID: "b", Content: "   "},
	}
	got := RenderDocument(nodes, RenderOptions{IncludeChecked: true})
	if got != "- kept\n" {
		t.Errorf("empty leaf should be skipped, got:\n%s", got)
	}
}

func TestRenderEmptyNodeWithChildrenKept(t *testing.T) {
	nodes := []Node{
		{ID: "root", Children: []string{"a"}},
		{ID: "a", Content: "", Children: []string{"b"}},
		{ID: "b", Content: "child"},
	}
	got := RenderDocument(nodes, RenderOptions{IncludeChecked: true})
	want := "- \n    - child\n"
	if got != want {
		t.Errorf("empty node with children:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderIndentWidth(t *testing.T) {
	nodes := []Node{
		{ID: "root", Children: []string{"a"}},
		{ID: "a", Content: "top", Children: []string{"b"}},
		{ID: "b", Content: "sub"},
	}
	got := RenderDocument(nodes, RenderOptions{IndentWidth: 2, IncludeChecked: true})
	want := "- top\n  - sub\n"
	if got != want {
		t.Errorf("indent width 2:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestBullet(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"plain", Node{}, "- "},
		{"checkbox unchecked", Node{Checkbox: true}, "- [ ] "},
		{"checkbox checked", Node{Checkbox: true, Checked: true}, "- [x] "},
		{"heading", Node{Heading: 3}, "### "},
		{"checkbox wins over heading", Node{Checkbox: true, Heading: 1}, "- [ ] "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bullet(&tt.node); got != tt.want {
				t.Errorf("bullet = %q, want %q", got, tt.want)
			}
		})
	}
}
