package grove

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "iter"

// Tree is a non-owning view of a contiguous record range inside a GroveBuf
// forming exactly one tree. The record at the last position of the range is
// the root; all records before it are descendants, themselves forming a
// sequence of complete child-subtree ranges readable right-to-left from the
// end.
//
// Like Grove, a Tree borrows the records of its store and must not be held
// across a structural append. The zero Tree is not a valid view; trees are
// obtained from a GroveBuf or Grove by indexing, or from another Tree by
// child enumeration.
type Tree[T any] struct {
	nodes []node[T]
}

// Len returns the number of nodes contained in the tree, including the
// root. This equals the width of the root record.
func (t Tree[T]) Len() int {
	return len(t.nodes)
}

// Root returns the value held at the root of the tree.
func (t Tree[T]) Root() T {
	return t.nodes[len(t.nodes)-1].value
}

// RootRef returns a pointer to the value held at the root of the tree, for
// in-place mutation. Only the value is reachable this way; the shape of the
// tree cannot be changed through a view.
func (t Tree[T]) RootRef() *T {
	return &t.nodes[len(t.nodes)-1].value
}

// SetRoot replaces the value held at the root of the tree, writing through
// to the backing store.
func (t Tree[T]) SetRoot(value T) {
	t.nodes[len(t.nodes)-1].value = value
}

// Tree returns the view of the subtree whose root is the record at position
// i within this tree's range. Panics with ErrIndexOutOfBounds if i is
// outside the tree.
func (t Tree[T]) Tree(i int) Tree[T] {
	if i < 0 || i >= len(t.nodes) {
		panic(ErrIndexOutOfBounds)
	}
	return subtreeAt(t.nodes, i)
}

// ChildrenRev returns an iterator over the direct children of the root, in
// right-to-left order. Starting from the range excluding the root, the
// width of the record at the tail is peeled off as one child subtree, and
// enumeration continues on the remaining prefix until none remains. The sum
// of the lengths of all children equals Len()-1.
//
// The iterator is restartable: a fresh range over it re-derives the
// children from the same view. It is the sole mechanism for descending from
// a node to its children; there is no stored child list.
func (t Tree[T]) ChildrenRev() iter.Seq[Tree[T]] {
	return childrenRev(t.nodes[:len(t.nodes)-1])
}

// AsGrove reinterprets the tree as a grove holding this single tree.
func (t Tree[T]) AsGrove() Grove[T] {
	return Grove[T]{nodes: t.nodes}
}

// Nodes returns an iterator over the node values of the tree, visited in
// the prescribed traversal order.
func (t Tree[T]) Nodes(order Order) iter.Seq[T] {
	return nodesSeq(t.nodes, order)
}

// NodesMut returns an iterator over pointers to the node values of the
// tree, visited in the prescribed traversal order.
func (t Tree[T]) NodesMut(order Order) iter.Seq[*T] {
	return nodesMutSeq(t.nodes, order)
}

// Trees returns an iterator over the subtree views rooted at each record of
// the tree, visited in the prescribed traversal order.
func (t Tree[T]) Trees(order Order) iter.Seq[Tree[T]] {
	return treesSeq(t.nodes, order)
}

// childrenRev peels complete subtrees off the tail of a record range. The
// range must consist of complete, consecutive subtrees, which holds for the
// descendants range below any root and for a run of top-level trees.
func childrenRev[T any](nodes []node[T]) iter.Seq[Tree[T]] {
	return func(yield func(Tree[T]) bool) {
		rest := nodes
		for len(rest) > 0 {
			w := rest[len(rest)-1].width
			if w < 1 || w > len(rest) {
				panic(ErrInvalidStructure)
			}
			child := Tree[T]{nodes: rest[len(rest)-w:]}
			if !yield(child) {
				return
			}
			rest = rest[:len(rest)-w]
		}
	}
}
