package grove

import "fmt"

// checkForest validates that a record range partitions into complete,
// well-formed trees. It peels trees off the tail like childrenRev does and
// recurses into the descendants range of every root.
//
// This checker is intentionally strict and meant for tests and for auditing
// stores grown through the trusted direct-append entry points.
func checkForest[T any](nodes []node[T]) error {
	return checkRange(nodes, 0)
}

// checkRange checks one complete forest range; base is the absolute
// position of the range's first record, used for error reporting only.
func checkRange[T any](nodes []node[T], base int) error {
	rest := len(nodes)
	for rest > 0 {
		w := nodes[rest-1].width
		if w < 1 {
			return fmt.Errorf("%w: width %d < 1 at position %d", ErrInvalidStructure, w, base+rest-1)
		}
		if w > rest {
			return fmt.Errorf("%w: subtree of width %d at position %d runs past the start of its range",
				ErrInvalidStructure, w, base+rest-1)
		}
		if err := checkRange(nodes[rest-w:rest-1], base+rest-w); err != nil {
			return err
		}
		rest -= w
	}
	return nil
}
