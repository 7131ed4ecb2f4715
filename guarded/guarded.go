package guarded

import (
	"context"
	"fmt"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/segtree"
)

// Op identifies the kind of mutation reported by a Change.
type Op uint8

const (
	// OpAssign is reported for RangeAssign and PointUpdate.
	OpAssign Op = iota + 1
	// OpAdd is reported for RangeAdd and PointAdd.
	OpAdd
)

func (op Op) String() string {
	switch op {
	case OpAssign:
		return "assign"
	case OpAdd:
		return "add"
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// Change describes a successful mutation of a Tree.
type Change struct {
	Seq    uint64 // position of the mutation in the tree's history, starting at 1
	Op     Op
	Lo, Hi int64
	Value  int64 // assigned value or delta
	Total  int64 // aggregate over the whole domain after the mutation
}

func (c Change) String() string {
	return fmt.Sprintf("#%d %s [%d,%d] %d → total %d", c.Seq, c.Op, c.Lo, c.Hi, c.Value, c.Total)
}

// Tree is a segment tree which is safe for concurrent use.
type Tree struct {
	mu        sync.Mutex
	tree      *segtree.Tree
	seq       uint64
	cast      *caster.Caster
	closing   chan struct{} // closed by Close, releases stalled subscriptions
	closeOnce sync.Once
	opts      options
}

// New creates a guarded tree for cfg.
func New(cfg segtree.Config, opts ...Option) (*Tree, error) {
	tree, err := segtree.New(cfg)
	if err != nil {
		return nil, err
	}
	return Wrap(tree, opts...), nil
}

// Wrap guards an existing tree. The caller must not use tree directly
// afterwards.
func Wrap(tree *segtree.Tree, opts ...Option) *Tree {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Tree{
		tree: tree,
		cast:    caster.New(o.ctx), // changes are broadcast to subscribers
		closing: make(chan struct{}),
		opts:    o,
	}
}

// Config returns the configuration of the underlying tree.
func (g *Tree) Config() segtree.Config {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tree.Config()
}

// RangeAssign sets every index in [lo, hi] to value.
func (g *Tree) RangeAssign(lo, hi, value int64) error {
	return g.mutate(OpAssign, lo, hi, value, g.tree.RangeAssign)
}

// RangeAdd adds delta to every index in [lo, hi].
func (g *Tree) RangeAdd(lo, hi, delta int64) error {
	return g.mutate(OpAdd, lo, hi, delta, g.tree.RangeAdd)
}

// PointUpdate sets the value at index.
func (g *Tree) PointUpdate(index, value int64) error {
	return g.RangeAssign(index, index, value)
}

// PointAdd adds delta to the value at index.
func (g *Tree) PointAdd(index, delta int64) error {
	return g.RangeAdd(index, index, delta)
}

func (g *Tree) mutate(op Op, lo, hi, v int64, apply func(lo, hi, v int64) error) error {
	g.mu.Lock()
	if err := apply(lo, hi, v); err != nil {
		g.mu.Unlock()
		return err
	}
	g.seq++
	change := Change{
		Seq:   g.seq,
		Op:    op,
		Lo:    lo,
		Hi:    hi,
		Value: v,
		Total: g.tree.Total(),
	}
	g.mu.Unlock()
	T().Debugf("guarded: publish %v", change)
	g.cast.Pub(change)
	return nil
}

// Query returns the aggregate over [lo, hi].
func (g *Tree) Query(lo, hi int64) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tree.Query(lo, hi)
}

// Get returns the value at index.
func (g *Tree) Get(index int64) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tree.Get(index)
}

// Total returns the aggregate over the whole domain.
func (g *Tree) Total() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tree.Total()
}

// Seq returns the sequence number of the latest mutation, 0 if the tree has
// never been mutated.
func (g *Tree) Seq() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seq
}

// Snapshot returns a deep copy of the current tree together with the
// sequence number of the latest mutation it contains. The copy is owned by
// the caller and not guarded.
func (g *Tree) Snapshot() (*segtree.Tree, uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tree.Clone(), g.seq
}

// Subscribe returns a channel receiving every subsequent Change, and a
// function to cancel the subscription. The channel is closed after
// cancellation, when ctx is done, or when the tree is closed. Cancelling
// never blocks.
//
// Subscribers have to drain their channel: once it is full, every further
// mutation of the tree waits until the subscriber reads or cancels.
func (g *Tree) Subscribe(ctx context.Context) (<-chan Change, func()) {
	if ctx == nil {
		ctx = context.Background()
	}
	out := make(chan Change, g.opts.capacity)
	select {
	case <-g.closing:
		T().Infof("guarded: subscription to closed tree")
		close(out)
		return out, func() {}
	default:
	}
	// the caster drops a subscription at its next broadcast after subCtx ends
	subCtx, cancel := context.WithCancel(ctx)
	raw, _ := g.cast.Sub(subCtx, g.opts.capacity)
	go forward(subCtx, raw, out, g.closing)
	return out, cancel
}

// forward converts messages of a caster subscription to changes. When the
// subscription ends, raw is drained in the background until the caster
// closes it, so that broadcasting is never stuck on an abandoned channel.
func forward(ctx context.Context, raw <-chan interface{}, out chan<- Change, closing <-chan struct{}) {
	defer close(out)
	for {
		select {
		case msg, ok := <-raw:
			if !ok {
				return
			}
			change, ok := msg.(Change)
			if !ok {
				T().Errorf("guarded: unexpected broadcast message of type %T", msg)
				continue
			}
			select {
			case out <- change:
			case <-ctx.Done():
				go discard(raw)
				return
			case <-closing:
				go discard(raw)
				return
			}
		case <-ctx.Done():
			go discard(raw)
			return
		case <-closing:
			go discard(raw)
			return
		}
	}
}

func discard(raw <-chan interface{}) {
	for range raw {
	}
}

// Close stops broadcasting changes and closes all subscriptions.
// The tree itself remains usable.
func (g *Tree) Close() {
	g.closeOnce.Do(func() {
		close(g.closing)
	})
	g.cast.Close()
}
