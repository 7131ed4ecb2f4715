package segtree

import (
	"fmt"
	"iter"
)

// Segment is a maximal run of indices [Lo, Hi] holding the same Value.
type Segment struct {
	Lo, Hi int64
	Value  int64
}

func (s Segment) String() string {
	return fmt.Sprintf("[%d,%d]=%d", s.Lo, s.Hi, s.Value)
}

// Segments returns an iterator over the runs of equal values within [lo, hi],
// in ascending order. Adjacent runs of the same value are merged.
// The tree is not modified. An invalid range yields no segments; use
// ValidRange to tell it apart from an empty result.
func (t *Tree) Segments(lo, hi int64) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		if t.ValidRange(lo, hi) != nil {
			return
		}
		var run Segment
		var started bool
		emit := func(s Segment) bool {
			if started && run.Value == s.Value && run.Hi+1 == s.Lo {
				run.Hi = s.Hi
				return true
			}
			if started && !yield(run) {
				return false
			}
			run, started = s, true
			return true
		}
		if !t.segments(t.root, lo, hi, pending{}, emit) {
			return
		}
		if started {
			yield(run)
		}
	}
}

// segments reports the uniform pieces of n within [lo, hi]. inherited is the
// combined tag of all ancestors of n which has not been pushed down yet.
func (t *Tree) segments(n *node, lo, hi int64, inherited pending, emit func(Segment) bool) bool {
	if !n.intersects(lo, hi) {
		return true
	}
	if !n.isSplit() || inherited.kind == PendingAssign {
		return emit(Segment{
			Lo:    max(lo, n.l),
			Hi:    min(hi, n.r),
			Value: t.effectiveUniform(n, inherited),
		})
	}
	inherited = n.tag.then(inherited)
	return t.segments(n.left, lo, hi, inherited, emit) &&
		t.segments(n.right, lo, hi, inherited, emit)
}

func (t *Tree) effectiveUniform(n *node, inherited pending) int64 {
	if inherited.kind == PendingAssign {
		return inherited.value
	}
	return inherited.valueAt(t.uniformValue(n))
}

// NodeInfo describes a materialized node, as reported by Walk.
type NodeInfo struct {
	Lo, Hi       int64       // sub-range of the node
	Depth        int         // 0 for the root
	Aggregate    int64       // aggregate over [Lo, Hi], ancestor tags not applied
	Pending      PendingKind // lazy tag held for the children
	PendingValue int64       // delta or assigned value of the tag
	Leaf         bool        // node covers a single index
	Split        bool        // node has materialized children
}

// Walk calls fn for every materialized node in pre-order.
// Iteration stops early if fn returns false.
func (t *Tree) Walk(fn func(NodeInfo) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.walkNode(t.root, 0, fn)
}

func (t *Tree) walkNode(n *node, depth int, fn func(NodeInfo) bool) bool {
	info := NodeInfo{
		Lo:           n.l,
		Hi:           n.r,
		Depth:        depth,
		Aggregate:    n.agg,
		Pending:      n.tag.kind,
		PendingValue: n.tag.value,
		Leaf:         n.isLeaf(),
		Split:        n.isSplit(),
	}
	if !fn(info) {
		return false
	}
	if !n.isSplit() {
		return true
	}
	return t.walkNode(n.left, depth+1, fn) && t.walkNode(n.right, depth+1, fn)
}
