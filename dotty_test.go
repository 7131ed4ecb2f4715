package segtree

import (
	"strings"
	"testing"
)

func TestTree2Dot(t *testing.T) {
	tree := makeTree(t, 0, 7, 0, Sum)
	if err := tree.RangeAssign(0, 3, 2); err != nil {
		t.Fatal(err)
	}
	if err := tree.RangeAdd(4, 7, 1); err != nil {
		t.Fatal(err)
	}
	if err := tree.PointAdd(0, 1); err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err := Tree2Dot(tree, &b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dot := b.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Fatalf("output is not a digraph")
	}
	if strings.Count(dot, "[label=") != tree.NodeCount() {
		t.Errorf("expected %d node labels", tree.NodeCount())
	}
	if strings.Count(dot, "->") != tree.NodeCount()-1 {
		t.Errorf("expected %d edges", tree.NodeCount()-1)
	}
	if !strings.Contains(dot, "[4,7]\\nsum 4\\n+1") {
		t.Errorf("expected pending add to be shown for [4,7]")
	}
	if !strings.Contains(dot, "fillcolor=\""+addFill+"\"") {
		t.Errorf("expected node with pending add to be filled with %s", addFill)
	}
}
