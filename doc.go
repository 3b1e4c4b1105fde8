/*
Package grove implements a compact in-memory forest of trees.

Groves

A grove is an ordered sequence of trees. All nodes of all trees in a grove
live in one contiguous, append-only backing store, the GroveBuf. Besides its
value, each node carries a single integer: the width of its subtree, i.e.
the number of nodes the subtree holds, including the node itself. Nodes are
laid out children-before-parent, so the node at position i owns exactly the
record range [i-width+1, i] of the store. This one number per node replaces
child lists and parent pointers completely: any node can be turned into a
view of its whole subtree with O(1) arithmetic.

The layout makes two total traversal orders trivially cheap. Walking the
store front to back visits every node after its children, with children in
left-to-right order (Preorder); walking it back to front yields the exact
reverse (ReversePostorder). Both are plain slice scans without recursion and
without an auxiliary stack.

Trees are built bottom-up. Leaves are appended with Push; an interior node
is appended after its children, either through PushRoot or through a Builder
session whose Open/Close calls track nesting depth and compute the widths.
Once a subtree has been closed its shape is immutable; only node values may
still be mutated in place, through views.

Views

Grove and Tree are non-owning windows into a GroveBuf. A Grove view covers a
run of complete trees, a Tree view covers exactly one tree with the root as
its last record. Views are subslices of the backing store: cheap to pass
around, never copied, and not to be held across an append (appending may
relocate the store's records).

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package grove

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'grove'
func tracer() tracing.Trace {
	return tracing.Select("grove")
}

// assert panics on violated internal invariants.
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
