package grove

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "iter"

// GroveBuf is an owning, append-only store for a sequence of trees,
// structured so that nodes can be efficiently visited in pre-order or
// reverse post-order, and so that for any node its children can be visited
// as well. All nodes are kept within a single contiguous allocation.
//
// The store is append-only: once a subtree has been formed it can no longer
// be modified in shape. In particular, all children must be appended before
// a (sub)tree's root. Node values remain mutable in place, through views.
//
// The zero value is a valid, empty store, but clients may use NewGroveBuf.
type GroveBuf[T any] struct {
	nodes []node[T]
}

// NewGroveBuf creates a GroveBuf containing no trees.
func NewGroveBuf[T any]() *GroveBuf[T] {
	return &GroveBuf[T]{}
}

// IsEmpty reports whether the store contains no trees.
func (g *GroveBuf[T]) IsEmpty() bool {
	return g == nil || len(g.nodes) == 0
}

// Len returns the number of node records in the store. This counts every
// node of every tree, not the number of top-level trees.
func (g *GroveBuf[T]) Len() int {
	if g == nil {
		return 0
	}
	return len(g.nodes)
}

// Push appends a leaf with value value. The leaf is a top-level tree of its
// own until a later append adopts it into a subtree.
func (g *GroveBuf[T]) Push(value T) {
	g.nodes = append(g.nodes, node[T]{value: value, width: 1})
}

// PushRoot appends a node with value value that adopts the children most
// recently appended top-level subtrees as its children. The subtree start is
// located by walking backward from the end of the store, subtracting the
// width of one complete tree per step.
//
// PushRoot trusts its caller: it does not verify that the tail of the store
// really holds children complete trees that are not already part of another
// subtree. Handing it a count that reaches into a formed subtree corrupts
// the width invariant. Walking past the start of the store panics with
// ErrIndexOutOfBounds.
func (g *GroveBuf[T]) PushRoot(value T, children int) {
	position := len(g.nodes)
	for range children {
		if position <= 0 {
			panic(ErrIndexOutOfBounds)
		}
		position -= g.nodes[position-1].width
	}
	g.PushUnchecked(value, position)
}

// PushUnchecked appends a node with value value whose subtree consists of
// all records at position and beyond; its width becomes the length of that
// range plus one.
//
// This is the direct-append primitive underneath PushRoot and the Builder,
// and it is a trusted entry point: other than a range check on position, no
// validation is performed that position is a tree boundary. It is the
// caller's responsibility to ensure that no record before position belongs
// to a subtree whose root lies at or beyond position. The Builder is the
// only validated caller; everyone else should prefer Push/PushRoot or a
// Builder session. Check may be used after bulk appends to validate the
// result.
func (g *GroveBuf[T]) PushUnchecked(value T, position int) {
	if position < 0 || position > len(g.nodes) {
		panic(ErrIndexOutOfBounds)
	}
	g.nodes = append(g.nodes, node[T]{value: value, width: len(g.nodes) - position + 1})
}

// Builder begins a construction session on the store. The session borrows
// the store exclusively: until Build has been called, no other access to the
// store may be interleaved with the session.
func (g *GroveBuf[T]) Builder() *Builder[T] {
	return &Builder[T]{buf: g}
}

// AsGrove returns a Grove view of the entire current contents of the store.
// The view shares the store's records without copying; it must not be held
// across a subsequent append.
func (g *GroveBuf[T]) AsGrove() Grove[T] {
	if g == nil {
		return Grove[T]{}
	}
	return Grove[T]{nodes: g.nodes}
}

// Tree returns the view of the subtree whose root is the record at position
// i. Every position addresses some valid node, but only positions holding
// roots of top-level trees yield trees of the grove itself; other positions
// yield nested subtrees. Panics with ErrIndexOutOfBounds if i is outside the
// store.
func (g *GroveBuf[T]) Tree(i int) Tree[T] {
	return g.AsGrove().Tree(i)
}

// Nodes returns an iterator over the node values in the store, visited in
// the prescribed traversal order.
func (g *GroveBuf[T]) Nodes(order Order) iter.Seq[T] {
	return g.AsGrove().Nodes(order)
}

// NodesMut returns an iterator over pointers to the node values in the
// store, visited in the prescribed traversal order. Values may be replaced
// through the pointers; tree shape is unaffected by value mutation.
func (g *GroveBuf[T]) NodesMut(order Order) iter.Seq[*T] {
	return g.AsGrove().NodesMut(order)
}

// Trees returns an iterator over the subtree views rooted at each record of
// the store, visited in the prescribed traversal order. This includes all
// subtrees, not just the top-level trees: every record contributes the view
// of the subtree it roots, so leaves appear as single-node trees and
// interior nodes as the growing subtrees they represent.
func (g *GroveBuf[T]) Trees(order Order) iter.Seq[Tree[T]] {
	return g.AsGrove().Trees(order)
}

// Check validates the width invariant of the store's records. See
// Grove.Check.
func (g *GroveBuf[T]) Check() error {
	return g.AsGrove().Check()
}

// String renders the store contents in bracket notation; see Grove.String.
func (g *GroveBuf[T]) String() string {
	return g.AsGrove().String()
}
