package grove

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Builder is a utility type for appending to a GroveBuf safely. It is only
// constructible by invoking Builder on a GroveBuf.
//
// Each call to Open indicates that further calls to Push will happen one
// extra level deep in the tree under construction. Each call to Close
// accepts the value for the parent of the nodes pushed since the matching
// Open; the parent's width is computed from the recorded store length, so a
// balanced session can only produce well-formed trees.
//
// Builder keeps the balance of Open and Close calls as an explicit stack of
// pending open positions and fails fast on protocol violations: Close with
// no pending Open panics with ErrCloseWithoutOpen, Build with open levels
// remaining panics with ErrUnclosedLevels.
//
// One exception is permitted: a session that is abandoned — trailing Open
// calls followed by neither Close nor Build — behaves as if those Open calls
// were never made. Opens record positions only, so there is nothing to undo;
// everything pushed before stays in the store as top-level trees.
type Builder[T any] struct {
	buf   *GroveBuf[T]
	marks []int // store lengths at the time of each pending Open
}

// Push appends a leaf with value value at the current nesting depth.
// Returns the builder to allow chaining of calls.
func (b *Builder[T]) Push(value T) *Builder[T] {
	b.buf.Push(value)
	return b
}

// Open starts a new nesting level. There must be a corresponding call to
// Close before Build to match this call.
func (b *Builder[T]) Open() *Builder[T] {
	b.marks = append(b.marks, b.buf.Len())
	return b
}

// Close ends the innermost open level, appending value as the root of a new
// subtree adopting every record pushed since the matching Open — leaves
// and fully closed nested subtrees, in left-to-right order. Panics with
// ErrCloseWithoutOpen if no level is open.
func (b *Builder[T]) Close(value T) *Builder[T] {
	if len(b.marks) == 0 {
		tracer().Errorf("grove builder: close without a matching open")
		panic(ErrCloseWithoutOpen)
	}
	m := b.marks[len(b.marks)-1]
	b.marks = b.marks[:len(b.marks)-1]
	b.buf.PushUnchecked(value, m)
	return b
}

// Depth returns the number of currently open levels, i.e. the number of
// Open calls not yet matched by a Close.
func (b *Builder[T]) Depth() int {
	return len(b.marks)
}

// Build ends the session and returns the underlying store. Panics with
// ErrUnclosedLevels if open levels remain.
func (b *Builder[T]) Build() *GroveBuf[T] {
	if len(b.marks) != 0 {
		tracer().Errorf("grove builder: build with %d unclosed level(s)", len(b.marks))
		panic(ErrUnclosedLevels)
	}
	if b.buf.IsEmpty() {
		tracer().Debugf("grove builder: grove is empty")
	}
	return b.buf
}
