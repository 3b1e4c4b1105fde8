package grove

import (
	"math/rand"
	"testing"
)

// TestRandomBuilderPrograms drives Builder sessions with random balanced
// open/push/close programs and validates the width invariant afterwards.
func TestRandomBuilderPrograms(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	rng := rand.New(rand.NewSource(42))
	for run := 0; run < 100; run++ {
		g := NewGroveBuf[int]()
		b := g.Builder()
		next := 0
		steps := rng.Intn(60)
		for i := 0; i < steps; i++ {
			switch op := rng.Intn(3); {
			case op == 0 && b.Depth() < 8:
				b.Open()
			case op == 1 && b.Depth() > 0:
				b.Close(next)
				next++
			default:
				b.Push(next)
				next++
			}
		}
		for b.Depth() > 0 {
			b.Close(next)
			next++
		}
		b.Build()
		if err := g.Check(); err != nil {
			t.Fatalf("run %d: invariant violated: %v", run, err)
		}
		// top-level trees partition the store exactly
		sum := 0
		for tree := range g.AsGrove().TreesRev() {
			sum += tree.Len()
		}
		if sum != g.Len() {
			t.Fatalf("run %d: top-level trees cover %d of %d records", run, sum, g.Len())
		}
		// child ranges below every root partition the descendants exactly
		for tree := range g.Trees(Preorder) {
			children := 0
			for child := range tree.ChildrenRev() {
				children += child.Len()
			}
			if children != tree.Len()-1 {
				t.Fatalf("run %d: children of %v cover %d of %d records",
					run, tree, children, tree.Len()-1)
			}
		}
	}
}
