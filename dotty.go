package grove

import (
	"fmt"
	"io"
	"strings"
)

// Grove2Dot outputs the structure of a Grove in Graphviz DOT format
// (for debugging purposes).
//
// Every record becomes a vertex labelled with its value and width; edges
// run from each interior node to its direct children. Vertex names are the
// record positions within the view, so the children-before-parent layout
// can be read off the rendered graph.
func Grove2Dot[T any](g Grove[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	var nodelist, edgelist strings.Builder
	for i := 0; i < len(g.nodes); i++ {
		n := g.nodes[i]
		label := fmt.Sprintf("%v\\nw=%d", n.value, n.width)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", i, label, nodeDotStyles(n.width == 1))
		for j := i - 1; j > i-n.width; j -= g.nodes[j].width {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", i, j)
		}
	}
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

// Tree2Dot outputs the structure of a single tree in Graphviz DOT format.
func Tree2Dot[T any](t Tree[T], w io.Writer) {
	Grove2Dot(t.AsGrove(), w)
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
