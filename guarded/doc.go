/*
Package guarded wraps a segment tree for use by multiple goroutines.

A segtree.Tree carries no locking of its own. Even queries mutate it, as they
push lazy tags down towards the leaves. Tree in this package serializes every
operation with a single mutex and offers two ways to observe the tree without
holding on to the lock: snapshots, which are deep copies owned by the caller,
and subscriptions, which receive a Change for every successful mutation.

Changes are broadcast after the lock has been released. Subscribers may
therefore call back into the tree while handling a change. Changes carry a
sequence number reflecting the order in which they were applied; delivery to
a subscriber may be out of order if mutations race with each other.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package guarded

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
