package grove

// node is the atomic storage unit of a grove: a value plus the width of the
// subtree rooted at the node.
//
// width counts the records of the subtree including the node itself; leaves
// have width 1. A record at position i therefore owns the record range
// [i-width+1, i] of its backing store, and that range contains no records of
// sibling or unrelated subtrees. The width is the only structural
// information kept per node; there are no child lists and no parent
// pointers.
type node[T any] struct {
	value T
	width int
}

// subtreeAt derives the subtree view of the record at position i within
// nodes: a record of width w spans [i-w+1, i]. Callers must have checked
// that i is within range; a width pointing beyond the start of the range can
// only stem from misuse of a trusted append entry point and panics.
func subtreeAt[T any](nodes []node[T], i int) Tree[T] {
	w := nodes[i].width
	if w < 1 || w > i+1 {
		panic(ErrInvalidStructure)
	}
	return Tree[T]{nodes: nodes[i-w+1 : i+1]}
}
