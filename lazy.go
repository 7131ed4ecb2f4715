package segtree

import "fmt"

// PendingKind tells which lazy tag, if any, a node holds for its children.
type PendingKind uint8

const (
	// NoPending means the children of a node are up to date.
	NoPending PendingKind = iota
	// PendingAdd means a delta has to be added to every index of the node.
	PendingAdd
	// PendingAssign means every index of the node has to become a value.
	// Additions arriving after the assignment are folded into the value.
	PendingAssign
)

func (k PendingKind) String() string {
	switch k {
	case NoPending:
		return "none"
	case PendingAdd:
		return "add"
	case PendingAssign:
		return "assign"
	}
	return fmt.Sprintf("PendingKind(%d)", uint8(k))
}

// pending is the lazy tag of a node. A single slot holds either a delta or an
// assigned value, so an assignment and a stale delta can never coexist.
type pending struct {
	kind  PendingKind
	value int64 // delta for PendingAdd, assigned value for PendingAssign
}

func (p pending) isEmpty() bool {
	return p.kind == NoPending
}

// plus returns the tag after adding delta on top of p.
func (p pending) plus(delta int64) pending {
	switch p.kind {
	case PendingAssign:
		return pending{kind: PendingAssign, value: p.value + delta}
	case PendingAdd:
		if p.value+delta == 0 {
			return pending{}
		}
		return pending{kind: PendingAdd, value: p.value + delta}
	}
	if delta == 0 {
		return p
	}
	return pending{kind: PendingAdd, value: delta}
}

func assignTag(value int64) pending {
	return pending{kind: PendingAssign, value: value}
}

// valueAt applies p to a uniform range holding value v.
func (p pending) valueAt(v int64) int64 {
	switch p.kind {
	case PendingAssign:
		return p.value
	case PendingAdd:
		return v + p.value
	}
	return v
}

func (p pending) String() string {
	switch p.kind {
	case PendingAssign:
		return fmt.Sprintf("=%d", p.value)
	case PendingAdd:
		return fmt.Sprintf("%+d", p.value)
	}
	return "·"
}

// then returns the tag equivalent to applying p first and q afterwards.
func (p pending) then(q pending) pending {
	switch q.kind {
	case PendingAssign:
		return q
	case PendingAdd:
		return p.plus(q.value)
	}
	return p
}
