package segtree

import (
	"fmt"
)

// Tree is a dynamic segment tree over the closed index domain [Start, End]
// of its Config.
//
// Every index initially holds Config.Default. Nodes are materialized only
// when an operation has to descend into a sub-range. A Tree is not safe for
// concurrent use.
type Tree struct {
	cfg   Config
	agg   Aggregator
	root  *node
	nodes int // number of materialized nodes
}

// New creates a tree with validated configuration.
func New(cfg Config) (*Tree, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	agg, err := AggregatorFor(cfg.Kind)
	if err != nil {
		return nil, err
	}
	t := &Tree{cfg: cfg, agg: agg}
	t.root = t.makeNode(cfg.Start, cfg.End)
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree) Config() Config {
	return t.cfg
}

// Domain returns the bounds of the index domain.
func (t *Tree) Domain() (start, end int64) {
	return t.cfg.Start, t.cfg.End
}

// Default returns the value of untouched indices.
func (t *Tree) Default() int64 {
	return t.cfg.Default
}

// Kind returns the aggregation kind of the tree.
func (t *Tree) Kind() Kind {
	return t.agg.Kind()
}

// Aggregator returns the aggregation rule of the tree.
func (t *Tree) Aggregator() Aggregator {
	return t.agg
}

// NodeCount returns the number of materialized nodes.
func (t *Tree) NodeCount() int {
	return t.nodes
}

// Total returns the aggregate over the whole domain.
func (t *Tree) Total() int64 {
	return t.root.agg
}

// ValidRange checks that lo ≤ hi and that [lo, hi] lies within the domain.
func (t *Tree) ValidRange(lo, hi int64) error {
	if lo > hi {
		return fmt.Errorf("%w: [%d, %d]", ErrMalformedRange, lo, hi)
	}
	if lo < t.cfg.Start || hi > t.cfg.End {
		return fmt.Errorf("%w: [%d, %d] not within [%d, %d]",
			ErrOutOfDomain, lo, hi, t.cfg.Start, t.cfg.End)
	}
	return nil
}

func (t *Tree) checkRange(op string, lo, hi int64) error {
	if err := t.ValidRange(lo, hi); err != nil {
		T().Errorf("segtree: %s rejected: %v", op, err)
		return err
	}
	return nil
}

// RangeAssign sets every index in [lo, hi] to value.
func (t *Tree) RangeAssign(lo, hi, value int64) error {
	if err := t.checkRange("assign", lo, hi); err != nil {
		return err
	}
	t.assign(t.root, lo, hi, value)
	return nil
}

// RangeAdd adds delta to every index in [lo, hi].
func (t *Tree) RangeAdd(lo, hi, delta int64) error {
	if err := t.checkRange("add", lo, hi); err != nil {
		return err
	}
	if delta == 0 {
		return nil
	}
	t.add(t.root, lo, hi, delta)
	return nil
}

// PointUpdate sets the value at index to value.
// It is equivalent to RangeAssign(index, index, value).
func (t *Tree) PointUpdate(index, value int64) error {
	return t.RangeAssign(index, index, value)
}

// PointAdd adds delta to the value at index.
// It is equivalent to RangeAdd(index, index, delta).
func (t *Tree) PointAdd(index, delta int64) error {
	return t.RangeAdd(index, index, delta)
}

// Query returns the aggregate over [lo, hi].
//
// Query may push pending tags down and materialize nodes; it is a mutating
// operation with respect to the tree's internal structure. Use Get or
// Segments for read-only access.
func (t *Tree) Query(lo, hi int64) (int64, error) {
	if err := t.checkRange("query", lo, hi); err != nil {
		return 0, err
	}
	return t.query(t.root, lo, hi), nil
}

// Get returns the value at index without changing the tree.
func (t *Tree) Get(index int64) (int64, error) {
	if err := t.checkRange("get", index, index); err != nil {
		return 0, err
	}
	n, inherited := t.root, pending{}
	for n.isSplit() {
		inherited = n.tag.then(inherited)
		if index <= n.mid() {
			n = n.left
		} else {
			n = n.right
		}
	}
	return inherited.valueAt(t.uniformValue(n)), nil
}

// uniformValue returns the value every index of the unsplit node n holds,
// not counting tags of its ancestors.
func (t *Tree) uniformValue(n *node) int64 {
	assert(!n.isSplit(), "uniformValue called on split node")
	if n.isLeaf() {
		// for a single index all aggregation rules reduce to the value itself
		return n.agg
	}
	return n.tag.valueAt(t.cfg.Default)
}

// --- Recursive walks -------------------------------------------------------

func (t *Tree) assign(n *node, lo, hi, value int64) {
	assert(n.intersects(lo, hi), "assign descended into disjoint node")
	if n.covered(lo, hi) {
		t.applyAssign(n, value)
		return
	}
	t.pushDown(n)
	if n.left.intersects(lo, hi) {
		t.assign(n.left, lo, hi, value)
	}
	if n.right.intersects(lo, hi) {
		t.assign(n.right, lo, hi, value)
	}
	t.pull(n)
}

func (t *Tree) add(n *node, lo, hi, delta int64) {
	assert(n.intersects(lo, hi), "add descended into disjoint node")
	if n.covered(lo, hi) {
		t.applyAdd(n, delta)
		return
	}
	t.pushDown(n)
	if n.left.intersects(lo, hi) {
		t.add(n.left, lo, hi, delta)
	}
	if n.right.intersects(lo, hi) {
		t.add(n.right, lo, hi, delta)
	}
	t.pull(n)
}

func (t *Tree) query(n *node, lo, hi int64) int64 {
	assert(n.intersects(lo, hi), "query descended into disjoint node")
	if n.covered(lo, hi) {
		return n.agg
	}
	t.pushDown(n)
	m := n.mid()
	switch {
	case hi <= m:
		return t.query(n.left, lo, hi)
	case lo > m:
		return t.query(n.right, lo, hi)
	}
	return t.agg.Merge(t.query(n.left, lo, hi), t.query(n.right, lo, hi))
}
