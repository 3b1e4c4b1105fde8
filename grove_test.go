package grove

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func setupTracing(t *testing.T) func() {
	t.Helper()
	return gotestingadapter.QuickConfig(t, "grove")
}

func expectPanic(t *testing.T, want error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %v, got none", want)
		}
		if err, ok := r.(error); !ok || err != want {
			t.Fatalf("expected panic %v, got %v", want, r)
		}
	}()
	f()
}

func TestEmptyGroveBuf(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	g := NewGroveBuf[int]()
	if !g.IsEmpty() {
		t.Errorf("expected new store to be empty, is not")
	}
	if g.Len() != 0 {
		t.Errorf("Len of empty store = %d, should be 0", g.Len())
	}
	if v := slices.Collect(g.Nodes(Preorder)); len(v) != 0 {
		t.Errorf("Preorder over empty store yields %v, should be empty", v)
	}
	if v := slices.Collect(g.Nodes(ReversePostorder)); len(v) != 0 {
		t.Errorf("ReversePostorder over empty store yields %v, should be empty", v)
	}
}

func TestPushLeaves(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	g := NewGroveBuf[int]()
	g.Push(3)
	g.Push(4)
	if g.Len() != 2 {
		t.Fatalf("Len = %d, should be 2", g.Len())
	}
	v := slices.Collect(g.Nodes(Preorder))
	if !slices.Equal(v, []int{3, 4}) {
		t.Errorf("Preorder = %v, should be [3 4]", v)
	}
	// both leaves are independent trees of length 1
	for i := 0; i < 2; i++ {
		if l := g.Tree(i).Len(); l != 1 {
			t.Errorf("tree at %d has length %d, should be 1", i, l)
		}
	}
}

func TestPushRoot(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	g := NewGroveBuf[int]()
	g.Push(3)
	g.Push(4)
	g.PushRoot(5, 2)
	if g.Len() != 3 {
		t.Fatalf("Len = %d, should be 3", g.Len())
	}
	v := slices.Collect(g.Nodes(Preorder))
	if !slices.Equal(v, []int{3, 4, 5}) {
		t.Errorf("Preorder = %v, should be [3 4 5]", v)
	}
	var lens []int
	for tree := range g.Trees(Preorder) {
		lens = append(lens, tree.Len())
	}
	if !slices.Equal(lens, []int{1, 1, 3}) {
		t.Errorf("tree-view lengths = %v, should be [1 1 3]", lens)
	}
	whole := g.Tree(2)
	if !Equal(whole.AsGrove(), g.AsGrove()) {
		t.Errorf("tree at 2 = %v, should equal the whole structure %v", whole, g)
	}
}

func TestForestOfTwoTrees(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	g := NewGroveBuf[int]()
	g.Push(1)
	g.Builder().Open().Push(2).Push(3).Close(4).Build()
	v := slices.Collect(g.Nodes(Preorder))
	if !slices.Equal(v, []int{1, 2, 3, 4}) {
		t.Errorf("Preorder = %v, should be [1 2 3 4]", v)
	}
	first := g.Tree(0)
	if first.Len() != 1 || first.Root() != 1 {
		t.Errorf("tree at 0 = %v, should be the single leaf 1", first)
	}
	second := g.Tree(3)
	if second.Len() != 3 || second.Root() != 4 {
		t.Errorf("tree at 3 = %v, should be the 3-node tree [2, 3] => 4", second)
	}
	w := slices.Collect(second.Nodes(Preorder))
	if !slices.Equal(w, []int{2, 3, 4}) {
		t.Errorf("Preorder of second tree = %v, should be [2 3 4]", w)
	}
}

func TestIndexOutOfBoundsPanics(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	g := NewGroveBuf[int]()
	g.Push(1)
	expectPanic(t, ErrIndexOutOfBounds, func() { g.Tree(1) })
	expectPanic(t, ErrIndexOutOfBounds, func() { g.Tree(-1) })
	expectPanic(t, ErrIndexOutOfBounds, func() { g.PushUnchecked(9, 5) })
}

func TestPushRootPastStartPanics(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	g := NewGroveBuf[int]()
	g.Push(1)
	expectPanic(t, ErrIndexOutOfBounds, func() { g.PushRoot(2, 2) })
}

func TestViewIdempotence(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	g := NewGroveBuf[string]()
	g.Builder().Open().Push("a").Push("b").Close("c").Build()
	g.Push("d")
	first := slices.Collect(g.AsGrove().Nodes(Preorder))
	second := slices.Collect(g.AsGrove().Nodes(Preorder))
	if !slices.Equal(first, second) {
		t.Errorf("two reads of the same view differ: %v vs %v", first, second)
	}
}

func TestBracketNotationString(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	g := NewGroveBuf[int]()
	g.Builder().Open().Push(1).Push(2).Close(3).Build()
	g.Push(4)
	if s := g.String(); s != "[1, 2] => 3, 4" {
		t.Errorf("String = %q, should be \"[1, 2] => 3, 4\"", s)
	}
	if s := g.Tree(2).String(); s != "[1, 2] => 3" {
		t.Errorf("tree String = %q, should be \"[1, 2] => 3\"", s)
	}
	if s := g.Tree(3).String(); s != "4" {
		t.Errorf("leaf String = %q, should be \"4\"", s)
	}
}

func TestEqualComparesWidths(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	// same flattened values, different shapes
	a := NewGroveBuf[int]()
	a.Builder().Open().Push(1).Push(2).Close(3).Build()
	b := NewGroveBuf[int]()
	b.Builder().Push(1).Open().Push(2).Close(3).Build()
	if Equal(a.AsGrove(), b.AsGrove()) {
		t.Errorf("groves %v and %v differ in shape but compare equal", a, b)
	}
	c := NewGroveBuf[int]()
	c.Builder().Open().Push(1).Push(2).Close(3).Build()
	if !Equal(a.AsGrove(), c.AsGrove()) {
		t.Errorf("groves %v and %v are identical but compare unequal", a, c)
	}
}
