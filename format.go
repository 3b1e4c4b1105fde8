package grove

import (
	"fmt"
	"strings"
)

// String renders the grove in bracket notation, children before the root,
// trees separated by commas:
//
//	[1, 2] => 3, 4
//
// denotes a grove of two trees, the first rooted in 3 with leaves 1 and 2,
// the second a single leaf 4. Values are rendered with fmt.Sprint. The
// notation subpackage parses this format back into a store.
func (g Grove[T]) String() string {
	var sb strings.Builder
	formatForest(&sb, g.nodes)
	return sb.String()
}

// String renders the tree in bracket notation; see Grove.String.
func (t Tree[T]) String() string {
	var sb strings.Builder
	formatTree(&sb, t.nodes)
	return sb.String()
}

func formatForest[T any](sb *strings.Builder, nodes []node[T]) {
	// collect tree boundaries right-to-left, then emit left-to-right
	var bounds []int // end position (exclusive) of each tree
	rest := len(nodes)
	for rest > 0 {
		bounds = append(bounds, rest)
		w := nodes[rest-1].width
		assert(w >= 1 && w <= rest, "formatter requires a well-formed store")
		rest -= w
	}
	start := 0
	for i := len(bounds) - 1; i >= 0; i-- {
		if start > 0 {
			sb.WriteString(", ")
		}
		formatTree(sb, nodes[start:bounds[i]])
		start = bounds[i]
	}
}

func formatTree[T any](sb *strings.Builder, nodes []node[T]) {
	root := nodes[len(nodes)-1]
	if root.width == 1 {
		fmt.Fprintf(sb, "%v", root.value)
		return
	}
	sb.WriteString("[")
	formatForest(sb, nodes[:len(nodes)-1])
	fmt.Fprintf(sb, "] => %v", root.value)
}
