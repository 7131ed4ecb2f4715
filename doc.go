/*
Package segtree offers a dynamic segment tree with lazy range updates.

Segment Trees

A segment tree partitions a fixed index domain [start, end] into a binary
hierarchy of sub-ranges. Every node carries the aggregate (sum, minimum or
maximum) of the values within its range. Range updates and range queries touch
O(log N) nodes, where N is the size of the domain.

This package grows the tree on demand. At construction time only the root exists;
it represents the whole domain filled with a default value. Nodes are created
the first time an operation has to descend past a node which is only partially
covered by the requested range. Memory therefore grows with the number of
distinct range boundaries ever touched, not with the size of the domain. This
makes it possible to work on domains like [-10^15, 10^15] without allocating
anything up front.

Lazy Propagation

Two kinds of range mutation are supported:

	RangeAssign(lo, hi, v)   every index in [lo, hi] becomes v
	RangeAdd(lo, hi, d)      every index in [lo, hi] is incremented by d

Both are applied to the topmost nodes which are fully covered by [lo, hi] and
recorded there as a pending tag. Tags are pushed down to the children only when
a later operation needs to descend. An assignment overwrites whatever was
pending before; an addition arriving at a node with a pending assignment is
folded into the assigned value. A node never holds more than one tag.

Aggregation

The aggregation rule is selected at construction time through Config.Kind:

	tree, err := segtree.New(segtree.Config{
	    Start:   0,
	    End:     1_000_000_000,
	    Default: 0,
	    Kind:    segtree.Sum,
	})
	tree.RangeAssign(2, 5, 7)
	sum, err := tree.Query(0, 9)   // sum = 28

Concurrency

A Tree is not safe for concurrent use. Queries push pending tags downwards and
therefore mutate the tree as well. Package guarded wraps a tree with a mutex
and broadcasts changes to subscribers.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package segtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
