package outline

import (
	"reflect"
	"testing"
)

func TestFindRoot(t *testing.T) {
	nodes := []Node{
		{ID: "1", Children: []string{"2", "3"}},
		{ID: "2"},
		{ID: "3"},
	}
	if got := FindRoot(nodes); got != "1" {
		t.Errorf("FindRoot = %q, want %q", got, "1")
	}
}

func TestFindRootFallback(t *testing.T) {
	// Every node is someone's child: fall back to the first node.
	nodes := []Node{
		{ID: "a", Children: []string{"b"}},
		{ID: "b", Children: []string{"a"}},
	}
	if got := FindRoot(nodes); got != "a" {
		t.Errorf("FindRoot = %q, want fallback %q", got, "a")
	}
}

func TestFindRootEmpty(t *testing.T) {
	if got := FindRoot(nil); got != "" {
		t.Errorf("FindRoot(nil) = %q, want empty", got)
	}
}

func TestFindParent(t *testing.T) {
	nodes := []Node{
		{ID: "root", Children: []string{"a", "b"}},
		{ID: "a", Children: []string{"c"}},
		{ID: "b"},
		{ID: "c"},
	}

	ref, ok := FindParent(nodes, "b")
	if !ok {
		t.Fatal("FindParent(b): not found")
	}
	if ref.ParentID != "root" || ref.Index != 1 {
		t.Errorf("FindParent(b) = %+v, want {root 1}", ref)
	}

	ref, ok = FindParent(nodes, "c")
	if !ok {
		t.Fatal("FindParent(c): not found")
	}
	if ref.ParentID != "a" || ref.Index != 0 {
		t.Errorf("FindParent(c) = %+v, want {a 0}", ref)
	}

	if _, ok := FindParent(nodes, "root"); ok {
		t.Error("FindParent(root): expected not found for the root")
	}
	if _, ok := FindParent(nodes, "missing"); ok {
		t.Error("FindParent(missing): expected not found")
	}
}

func TestAncestors(t *testing.T) {
	nodes := []Node{
		{ID: "root", Children: []string{"a"}},
		{ID: "a", Children: []string{"b"}},
		{ID: "b", Children: []string{"c"}},
		{ID: "c"},
	}

	got := Ancestors(nodes, "c", 5)
	want := []string{"b", "a", "root"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Ancestors(c, 5) = %v, want %v", got, want)
	}

	got = Ancestors(nodes, "c", 2)
	want = []string{"b", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Ancestors(c, 2) = %v, want %v", got, want)
	}

	if got := Ancestors(nodes, "root", 5); len(got) != 0 {
		t.Errorf("Ancestors(root) = %v, want empty", got)
	}
}

func TestDescendantsPreOrder(t *testing.T) {
	nodes := []Node{
		{ID: "a", Children: []string{"b", "e"}},
		{ID: "b", Children: []string{"c", "d"}},
		{ID: "c"},
		{ID: "d"},
		{ID: "e"},
	}
	got := Descendants(nodes, "a")
	want := []string{"a", "b", "c", "d", "e"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Descendants = %v, want %v", got, want)
	}
}

func TestDescendantsCycleSafe(t *testing.T) {
	nodes := []Node{
		{ID: "a", Children: []string{"b"}},
		{ID: "b", Children: []string{"a"}},
	}
	got := Descendants(nodes, "a")
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Descendants with cycle = %v, want %v", got, want)
	}
}

func TestDescendantsDanglingChild(t *testing.T) {
	nodes := []Node{
		{ID: "a", Children: []string{"gone"}},
	}
	got := Descendants(nodes, "a")
	want := []string{"a", "gone"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Descendants with dangling child = %v, want %v", got, want)
	}
}

func TestIndexLastWriteWins(t *testing.T) {
	nodes := []Node{
		{ID: "x", Content: "first"},
		{ID: "x", Content: "second"},
	}
	byID := Index(nodes)
	if byID["x"].Content != "second" {
		t.Errorf("Index duplicate id: got %q, want last occurrence", byID["x"].Content)
	}
}
