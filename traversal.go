package grove

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "iter"

// Order prescribes one of the two total traversal orders over the records
// of a grove or tree. Both orders are O(n) scans over the flat backing
// range, without recursion and without an auxiliary stack.
type Order int

const (
	// Preorder visits records in raw storage order. All descendants of a
	// node precede the node itself, with a node's children appearing left
	// to right before it; across a grove, trees appear in construction
	// (left-to-right) order.
	Preorder Order = iota

	// ReversePostorder is the exact reverse of Preorder: top-level trees
	// are visited right to left, and within a tree the root is visited
	// before its children, children right to left.
	ReversePostorder
)

func (order Order) String() string {
	switch order {
	case Preorder:
		return "Preorder"
	case ReversePostorder:
		return "ReversePostorder"
	}
	return "Order(unknown)"
}

// nodesSeq iterates the values of a record range in the given order.
func nodesSeq[T any](nodes []node[T], order Order) iter.Seq[T] {
	return func(yield func(T) bool) {
		switch order {
		case Preorder:
			for i := 0; i < len(nodes); i++ {
				if !yield(nodes[i].value) {
					return
				}
			}
		case ReversePostorder:
			for i := len(nodes) - 1; i >= 0; i-- {
				if !yield(nodes[i].value) {
					return
				}
			}
		default:
			panic(ErrIllegalArguments)
		}
	}
}

// nodesMutSeq iterates pointers to the values of a record range in the
// given order. Only values are reachable; widths stay private to the
// package, so shape cannot be altered through the pointers.
func nodesMutSeq[T any](nodes []node[T], order Order) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		switch order {
		case Preorder:
			for i := 0; i < len(nodes); i++ {
				if !yield(&nodes[i].value) {
					return
				}
			}
		case ReversePostorder:
			for i := len(nodes) - 1; i >= 0; i-- {
				if !yield(&nodes[i].value) {
					return
				}
			}
		default:
			panic(ErrIllegalArguments)
		}
	}
}

// treesSeq iterates the subtree views rooted at each record of a range, in
// the given order. Each view is derived from the record's width alone.
func treesSeq[T any](nodes []node[T], order Order) iter.Seq[Tree[T]] {
	return func(yield func(Tree[T]) bool) {
		switch order {
		case Preorder:
			for i := 0; i < len(nodes); i++ {
				if !yield(subtreeAt(nodes, i)) {
					return
				}
			}
		case ReversePostorder:
			for i := len(nodes) - 1; i >= 0; i-- {
				if !yield(subtreeAt(nodes, i)) {
					return
				}
			}
		default:
			panic(ErrIllegalArguments)
		}
	}
}
