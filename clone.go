package segtree

// Clone returns a deep copy of the tree.
//
// The clone shares no nodes with t, so both trees may be mutated
// independently afterwards. The cost is linear in NodeCount.
func (t *Tree) Clone() *Tree {
	if t == nil {
		return nil
	}
	cloned := *t
	cloned.root = cloneNode(t.root)
	return &cloned
}

func cloneNode(n *node) *node {
	if n == nil {
		return nil
	}
	c := *n
	c.left = cloneNode(n.left)
	c.right = cloneNode(n.right)
	return &c
}
