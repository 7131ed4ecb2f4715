package segtree

import "fmt"

// Check validates structural and aggregate invariants of the tree.
//
// It is meant to be used in tests; its cost is linear in the number of
// materialized nodes.
func (t *Tree) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		return fmt.Errorf("%w: missing root", ErrInvariant)
	}
	if t.root.l != t.cfg.Start || t.root.r != t.cfg.End {
		return fmt.Errorf("%w: root [%d,%d] does not span domain [%d,%d]",
			ErrInvariant, t.root.l, t.root.r, t.cfg.Start, t.cfg.End)
	}
	count, err := t.checkNode(t.root)
	if err != nil {
		return err
	}
	if count != t.nodes {
		return fmt.Errorf("%w: node count mismatch (%d != %d)", ErrInvariant, count, t.nodes)
	}
	return nil
}

func (t *Tree) checkNode(n *node) (int, error) {
	if n.l > n.r {
		return 0, fmt.Errorf("%w: empty node [%d,%d]", ErrInvariant, n.l, n.r)
	}
	if (n.left == nil) != (n.right == nil) {
		return 0, fmt.Errorf("%w: node [%d,%d] has a single child", ErrInvariant, n.l, n.r)
	}
	if n.tag.kind == PendingAdd && n.tag.value == 0 {
		return 0, fmt.Errorf("%w: node [%d,%d] holds a zero delta", ErrInvariant, n.l, n.r)
	}
	if !n.isSplit() {
		// an unsplit node is uniform
		want := t.agg.Fill(n.length(), n.tag.valueAt(t.cfg.Default))
		if n.isLeaf() {
			want = n.agg
		}
		if n.agg != want {
			return 0, fmt.Errorf("%w: uniform node [%d,%d] aggregate %d, expected %d",
				ErrInvariant, n.l, n.r, n.agg, want)
		}
		return 1, nil
	}
	if n.isLeaf() {
		return 0, fmt.Errorf("%w: leaf [%d,%d] has children", ErrInvariant, n.l, n.r)
	}
	m := n.mid()
	if n.left.l != n.l || n.left.r != m || n.right.l != m+1 || n.right.r != n.r {
		return 0, fmt.Errorf("%w: node [%d,%d] split as [%d,%d] [%d,%d]",
			ErrInvariant, n.l, n.r, n.left.l, n.left.r, n.right.l, n.right.r)
	}
	var want int64
	merged := t.agg.Merge(n.left.agg, n.right.agg)
	switch n.tag.kind {
	case PendingAssign:
		want = t.agg.Fill(n.length(), n.tag.value)
	case PendingAdd:
		want = t.agg.ApplyDelta(merged, n.length(), n.tag.value)
	default:
		want = merged
	}
	if n.agg != want {
		return 0, fmt.Errorf("%w: node [%d,%d] aggregate %d, expected %d",
			ErrInvariant, n.l, n.r, n.agg, want)
	}
	lc, err := t.checkNode(n.left)
	if err != nil {
		return 0, err
	}
	rc, err := t.checkNode(n.right)
	if err != nil {
		return 0, err
	}
	return lc + rc + 1, nil
}
