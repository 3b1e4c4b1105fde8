package grove

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "iter"

// Grove is a non-owning view of a contiguous run of records inside a
// GroveBuf, interpreted as zero or more complete, consecutive top-level
// trees. There are no partial trees at either boundary of the run.
//
// A Grove borrows the records of the store it was taken from: it is a
// subslice, value mutation through the view writes through to the store,
// and the view must not be held across a structural append to the store.
type Grove[T any] struct {
	nodes []node[T]
}

// IsEmpty reports whether the grove contains no trees.
func (g Grove[T]) IsEmpty() bool {
	return len(g.nodes) == 0
}

// Len returns the number of node records in the grove.
func (g Grove[T]) Len() int {
	return len(g.nodes)
}

// Tree returns the view of the subtree whose root is the record at position
// i. Panics with ErrIndexOutOfBounds if i is outside the grove.
func (g Grove[T]) Tree(i int) Tree[T] {
	if i < 0 || i >= len(g.nodes) {
		panic(ErrIndexOutOfBounds)
	}
	return subtreeAt(g.nodes, i)
}

// Nodes returns an iterator over the node values of the grove, visited in
// the prescribed traversal order.
func (g Grove[T]) Nodes(order Order) iter.Seq[T] {
	return nodesSeq(g.nodes, order)
}

// NodesMut returns an iterator over pointers to the node values of the
// grove, visited in the prescribed traversal order. Values may be replaced
// through the pointers; widths and record count are not touchable this way,
// so the tree shape is preserved.
func (g Grove[T]) NodesMut(order Order) iter.Seq[*T] {
	return nodesMutSeq(g.nodes, order)
}

// Trees returns an iterator over the subtree views rooted at each record of
// the grove, visited in the prescribed traversal order. Every record
// contributes the view of the subtree it roots: leaves appear as single-node
// trees, interior nodes as the subtrees they close over.
func (g Grove[T]) Trees(order Order) iter.Seq[Tree[T]] {
	return treesSeq(g.nodes, order)
}

// TreesRev returns an iterator over the top-level trees of the grove in
// right-to-left order, derived by repeatedly peeling the width of the
// rightmost root off the end of the range. The iterator is restartable: a
// fresh range over it re-derives the trees from the same view.
func (g Grove[T]) TreesRev() iter.Seq[Tree[T]] {
	return childrenRev(g.nodes)
}

// Check validates the width invariant for every record of the grove: each
// width addresses a range lying within the view, and the records below every
// root partition exactly into complete child subtrees satisfying the same
// property. A nil result certifies the view is a well-formed forest.
//
// Safe construction through Push, PushRoot with correct counts, and Builder
// sessions cannot violate the invariant; Check is intended as a debugging
// aid after bulk use of PushUnchecked.
func (g Grove[T]) Check() error {
	return checkForest(g.nodes)
}
