/*
Package console prints the materialized structure of a segment tree to a
terminal.

Every node is printed on a line of its own, indented by its depth, showing its
range, its aggregate and its pending lazy tag. Colors distinguish split nodes,
uniform nodes and nodes holding a tag. Output is meant for debugging; its
format is not stable.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package console

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
