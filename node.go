package segtree

// node represents the sub-range [l, r] of the domain.
//
// Children are either both present or both absent. A node without children
// is uniform: every index in [l, r] holds the same value. agg is always up to
// date with respect to tag, i.e. tag describes what still has to be done to
// the children, not to the node itself.
type node struct {
	l, r        int64
	agg         int64
	tag         pending
	left, right *node
}

func (n *node) length() int64 { return n.r - n.l + 1 }
func (n *node) isLeaf() bool  { return n.l == n.r }
func (n *node) isSplit() bool { return n.left != nil }

func (n *node) mid() int64 { return n.l + (n.r-n.l)/2 }

// covered reports whether n lies completely within [lo, hi].
func (n *node) covered(lo, hi int64) bool {
	return lo <= n.l && n.r <= hi
}

// intersects reports whether n and [lo, hi] share at least one index.
func (n *node) intersects(lo, hi int64) bool {
	return lo <= n.r && n.l <= hi
}

// makeNode materializes a node for [l, r] filled with the tree's default value.
func (t *Tree) makeNode(l, r int64) *node {
	assert(l <= r, "makeNode called with empty range")
	t.nodes++
	return &node{
		l:   l,
		r:   r,
		agg: t.agg.Fill(r-l+1, t.cfg.Default),
	}
}

// ensureChildren splits n at its midpoint if it has not been split yet.
// Leaves are never split.
func (t *Tree) ensureChildren(n *node) {
	if n.isLeaf() || n.isSplit() {
		return
	}
	m := n.mid()
	n.left = t.makeNode(n.l, m)
	n.right = t.makeNode(m+1, n.r)
	T().Debugf("segtree: split [%d,%d] at %d", n.l, n.r, m)
}

// applyAssign sets every index of n to value.
func (t *Tree) applyAssign(n *node, value int64) {
	n.tag = assignTag(value)
	n.agg = t.agg.Fill(n.length(), value)
}

// applyAdd adds delta to every index of n. A pending assignment absorbs the
// delta.
func (t *Tree) applyAdd(n *node, delta int64) {
	if delta == 0 {
		return
	}
	n.tag = n.tag.plus(delta)
	if n.tag.kind == PendingAssign {
		n.agg = t.agg.Fill(n.length(), n.tag.value)
		return
	}
	n.agg = t.agg.ApplyDelta(n.agg, n.length(), delta)
}

// pushDown materializes the children of n and hands its lazy tag on to them.
func (t *Tree) pushDown(n *node) {
	assert(!n.isLeaf(), "pushDown called on a leaf")
	t.ensureChildren(n)
	switch n.tag.kind {
	case PendingAssign:
		t.applyAssign(n.left, n.tag.value)
		t.applyAssign(n.right, n.tag.value)
	case PendingAdd:
		t.applyAdd(n.left, n.tag.value)
		t.applyAdd(n.right, n.tag.value)
	}
	n.tag = pending{}
}

// pull recomputes the aggregate of a split node from its children.
func (t *Tree) pull(n *node) {
	assert(n.tag.isEmpty(), "pull called on a node with a pending tag")
	n.agg = t.agg.Merge(n.left.agg, n.right.agg)
}
