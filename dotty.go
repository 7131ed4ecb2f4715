package segtree

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes).
//
// Every materialized node is labelled with its range and aggregate. Nodes
// holding a lazy tag show it in a second line and are highlighted.
func Tree2Dot(t *Tree, w io.Writer) error {
	var nodelist, edgelist strings.Builder
	id := 0
	var visit func(n *node) int
	visit = func(n *node) int {
		id++
		ID := id
		label := fmt.Sprintf("[%d,%d]\\n%s %d", n.l, n.r, t.agg.Kind(), n.agg)
		if !n.tag.isEmpty() {
			label += fmt.Sprintf("\\n%s", n.tag)
		}
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(n))
		if n.isSplit() {
			l := visit(n.left)
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, l)
			r := visit(n.right)
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, r)
		}
		return ID
	}
	if t != nil && t.root != nil {
		visit(t.root)
	}
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist.String())
	write(edgelist.String())
	write("}\n")
	if err != nil {
		T().Errorf("segtree DOT: %s", err.Error())
	}
	return err
}

func nodeDotStyles(n *node) string {
	s := ",style=filled"
	if !n.isSplit() {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=ellipse"
	}
	switch n.tag.kind {
	case PendingAssign:
		s += fmt.Sprintf(",fillcolor=\"%s\"", assignFill)
	case PendingAdd:
		s += fmt.Sprintf(",fillcolor=\"%s\"", addFill)
	default:
		s += fmt.Sprintf(",fillcolor=\"%s\"", plainFill)
	}
	return s
}

// Fill colors by pending tag.
const (
	assignFill = "#FFAA66"
	addFill    = "#88BBFF"
	plainFill  = "#a3d7e4"
)
