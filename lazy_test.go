package segtree

import "testing"

func TestPendingPlus(t *testing.T) {
	var p pending
	p = p.plus(0)
	if !p.isEmpty() {
		t.Fatalf("adding zero to an empty tag should leave it empty, got %v", p)
	}
	p = p.plus(3).plus(4)
	if p.kind != PendingAdd || p.value != 7 {
		t.Fatalf("expected accumulated add 7, got %v", p)
	}
	p = p.plus(-7)
	if !p.isEmpty() {
		t.Fatalf("expected deltas to cancel out, got %v", p)
	}
	p = assignTag(5).plus(2).plus(-10)
	if p.kind != PendingAssign || p.value != -3 {
		t.Fatalf("expected deltas folded into assignment -3, got %v", p)
	}
}

func TestPendingThen(t *testing.T) {
	add := pending{kind: PendingAdd, value: 2}
	asg := assignTag(9)
	if got := add.then(asg); got != asg {
		t.Errorf("assign after add should win, got %v", got)
	}
	if got := asg.then(add); got.kind != PendingAssign || got.value != 11 {
		t.Errorf("add after assign should fold, got %v", got)
	}
	if got := add.then(pending{}); got != add {
		t.Errorf("empty tag should be neutral, got %v", got)
	}
	if got := (pending{}).then(add); got != add {
		t.Errorf("empty tag should be neutral, got %v", got)
	}
	if v := asg.then(add).valueAt(100); v != 11 {
		t.Errorf("expected value 11, got %d", v)
	}
}

func TestPushDownAssignThenAdd(t *testing.T) {
	tree := makeTree(t, 0, 7, 1, Sum)
	tree.applyAssign(tree.root, 4)
	tree.applyAdd(tree.root, 3)
	if tree.root.tag.kind != PendingAssign || tree.root.tag.value != 7 {
		t.Fatalf("expected root to hold folded assignment 7, got %v", tree.root.tag)
	}
	if tree.root.agg != 56 {
		t.Fatalf("expected root aggregate 56, got %d", tree.root.agg)
	}
	tree.pushDown(tree.root)
	if !tree.root.tag.isEmpty() {
		t.Fatalf("expected root tag to be cleared, got %v", tree.root.tag)
	}
	for _, child := range []*node{tree.root.left, tree.root.right} {
		if child.tag.kind != PendingAssign || child.tag.value != 7 || child.agg != 28 {
			t.Fatalf("unexpected child state [%d,%d] tag=%v agg=%d",
				child.l, child.r, child.tag, child.agg)
		}
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestPushDownAddIntoAssignedChild(t *testing.T) {
	tree := makeTree(t, 0, 3, 0, Max)
	tree.pushDown(tree.root)
	tree.applyAssign(tree.root.left, 5)
	tree.pull(tree.root)
	tree.applyAdd(tree.root, 2)
	tree.pushDown(tree.root)
	left, right := tree.root.left, tree.root.right
	if left.tag.kind != PendingAssign || left.tag.value != 7 {
		t.Fatalf("expected delta folded into left assignment, got %v", left.tag)
	}
	if right.tag.kind != PendingAdd || right.tag.value != 2 {
		t.Fatalf("expected right child to accumulate delta, got %v", right.tag)
	}
	tree.pull(tree.root)
	if tree.root.agg != 7 {
		t.Fatalf("expected max 7, got %d", tree.root.agg)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestEnsureChildrenSplitsAtMidpoint(t *testing.T) {
	tree := makeTree(t, -5, 4, 2, Sum)
	tree.ensureChildren(tree.root)
	if tree.root.left.l != -5 || tree.root.left.r != -1 ||
		tree.root.right.l != 0 || tree.root.right.r != 4 {
		t.Fatalf("unexpected split [%d,%d] [%d,%d]", tree.root.left.l, tree.root.left.r,
			tree.root.right.l, tree.root.right.r)
	}
	if tree.root.left.agg != 10 || tree.root.right.agg != 10 {
		t.Fatalf("children should be filled with default value")
	}
	left := tree.root.left
	tree.ensureChildren(tree.root)
	if tree.root.left != left {
		t.Fatalf("ensureChildren must not replace existing children")
	}
	if tree.NodeCount() != 3 {
		t.Fatalf("expected 3 nodes, got %d", tree.NodeCount())
	}
	leaf := tree.makeNode(3, 3)
	tree.ensureChildren(leaf)
	if leaf.isSplit() {
		t.Fatalf("leaves must not be split")
	}
}
