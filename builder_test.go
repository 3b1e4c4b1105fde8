package grove

import (
	"slices"
	"testing"
)

func TestBuilderNested(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	// [[1, 2] => 3] => 6
	g := NewGroveBuf[int]()
	g.Builder().Open().Open().Push(1).Push(2).Close(3).Close(6).Build()
	v := slices.Collect(g.Nodes(Preorder))
	if !slices.Equal(v, []int{1, 2, 3, 6}) {
		t.Fatalf("Preorder = %v, should be [1 2 3 6]", v)
	}
	var widths []int
	for tree := range g.Trees(Preorder) {
		widths = append(widths, tree.Len())
	}
	if !slices.Equal(widths, []int{1, 1, 3, 4}) {
		t.Errorf("widths = %v, should be [1 1 3 4]", widths)
	}
	root := g.Tree(3)
	var children []Tree[int]
	for child := range root.ChildrenRev() {
		children = append(children, child)
	}
	if len(children) != 1 {
		t.Fatalf("root has %d children, should be 1", len(children))
	}
	if children[0].Len() != 3 || children[0].Root() != 3 {
		t.Errorf("child = %v, should be the tree [1, 2] => 3", children[0])
	}
}

func TestBuilderChaining(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	g := NewGroveBuf[string]()
	b := g.Builder()
	b.Open()
	b.Push("x")
	if b.Depth() != 1 {
		t.Errorf("Depth = %d, should be 1", b.Depth())
	}
	b.Close("y")
	if b.Depth() != 0 {
		t.Errorf("Depth after Close = %d, should be 0", b.Depth())
	}
	if built := b.Build(); built != g {
		t.Errorf("Build should hand back the underlying store")
	}
}

func TestBuilderCloseWithoutOpenPanics(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	g := NewGroveBuf[int]()
	b := g.Builder()
	b.Push(1)
	expectPanic(t, ErrCloseWithoutOpen, func() { b.Close(2) })
}

func TestBuilderUnbalancedBuildPanics(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	g := NewGroveBuf[int]()
	b := g.Builder().Open().Push(1)
	expectPanic(t, ErrUnclosedLevels, func() { b.Build() })
}

func TestBuilderAbandonedSession(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	// Trailing opens of an abandoned session are discarded: the store holds
	// exactly the records pushed before, as top-level trees.
	g := NewGroveBuf[int]()
	b := g.Builder()
	b.Push(1)
	b.Open()
	b.Push(2)
	b.Open()
	// neither Close nor Build: drop b
	if err := g.Check(); err != nil {
		t.Fatalf("store after abandoned session is malformed: %v", err)
	}
	v := slices.Collect(g.Nodes(Preorder))
	if !slices.Equal(v, []int{1, 2}) {
		t.Errorf("Preorder = %v, should be [1 2]", v)
	}
	if g.Tree(0).Len() != 1 || g.Tree(1).Len() != 1 {
		t.Errorf("leftover records should be independent leaves")
	}
}

func TestBuilderEmptySubtree(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	// Open directly followed by Close yields a leaf.
	g := NewGroveBuf[int]()
	g.Builder().Open().Close(7).Build()
	if g.Len() != 1 {
		t.Fatalf("Len = %d, should be 1", g.Len())
	}
	if tree := g.Tree(0); tree.Len() != 1 || tree.Root() != 7 {
		t.Errorf("tree = %v, should be the single leaf 7", tree)
	}
}

func TestBuilderWideForest(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	// [[1, 2, 3] => 4, 5, [6] => 7, 8] => 9
	g := NewGroveBuf[int]()
	g.Builder().
		Open().
		Open().Push(1).Push(2).Push(3).Close(4).
		Push(5).
		Open().Push(6).Close(7).
		Push(8).
		Close(9).
		Build()
	if err := g.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
	v := slices.Collect(g.Nodes(Preorder))
	if !slices.Equal(v, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}) {
		t.Fatalf("Preorder = %v", v)
	}
	var childStrs []string
	for child := range g.Tree(8).ChildrenRev() {
		childStrs = append(childStrs, child.String())
	}
	want := []string{"8", "[6] => 7", "5", "[1, 2, 3] => 4"}
	if !slices.Equal(childStrs, want) {
		t.Errorf("children (reversed) = %v, should be %v", childStrs, want)
	}
}
