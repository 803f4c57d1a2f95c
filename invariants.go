// SPDX-License-Identifier: MIT

package ebtree

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// CheckInvariants32 walks t and returns an error describing the first
// structural inconsistency found, or nil if t is well-formed. It is
// meant for tests and debugging, not for the hot path.
func CheckInvariants32[V any](t *Tree32[V]) error {
	visited := bitset.New(0)
	// The root splits on the key's highest bit like any other branch, so
	// both sides are walked independently.
	if err := checkNode32(&t.root, t.root.left, 32, visited, 1); err != nil {
		return err
	}
	return checkNode32(&t.root, t.root.right, 32, visited, 2)
}

// checkNode32 validates the subtree rooted at n, reached from parent.
// ceiling is an exclusive upper bound on n's bit position: every branch
// must test a strictly lower bit than its ancestors.
func checkNode32[V any](parent, n *Node32[V], ceiling uint32, visited *bitset.BitSet, id uint) error {
	if n == nil {
		return nil
	}
	if visited.Test(id) {
		return fmt.Errorf("ebtree: cycle detected while validating tree")
	}
	visited.Set(id)

	if n.leafParent == parent {
		if n.dupNext == nil || n.dupPrev == nil {
			return fmt.Errorf("ebtree: leaf %d has nil duplicate-list pointer", n.Key)
		}
		if n.dupNext.dupPrev != n || n.dupPrev.dupNext != n {
			return fmt.Errorf("ebtree: leaf %d duplicate list is inconsistent", n.Key)
		}
		for dup := n.dupNext; dup != n; dup = dup.dupNext {
			if dup.Key != n.Key {
				return fmt.Errorf("ebtree: duplicate of %d has mismatched key %d", n.Key, dup.Key)
			}
			if dup.leafParent != nil {
				return fmt.Errorf("ebtree: non-head duplicate of %d has non-nil leafParent", n.Key)
			}
		}
		return nil
	}

	if n.bitPosition == 0 || n.bitPosition >= ceiling {
		return fmt.Errorf("ebtree: branch at key %d violates strictly decreasing bit position (got %d, bound %d)", n.Key, n.bitPosition, ceiling)
	}
	if n.branchParent != parent {
		return fmt.Errorf("ebtree: branch at key %d has inconsistent branchParent", n.Key)
	}
	if n.left == nil && n.right == nil {
		return fmt.Errorf("ebtree: branch at key %d has no children", n.Key)
	}

	if err := checkNode32(n, n.left, n.bitPosition, visited, id*2+1); err != nil {
		return err
	}
	return checkNode32(n, n.right, n.bitPosition, visited, id*2+2)
}

// CheckInvariantsMB walks t and returns an error describing the first
// structural inconsistency found, or nil if t is well-formed.
func CheckInvariantsMB[V any](t *TreeMB[V]) error {
	visited := bitset.New(0)
	return checkNodeMB(&t.root, t.root.left, -1, visited, 0)
}

func checkNodeMB[V any](parent, n *NodeMB[V], lo int32, visited *bitset.BitSet, id uint) error {
	if n == nil {
		return nil
	}
	if visited.Test(id) {
		return fmt.Errorf("ebtree: cycle detected while validating tree")
	}
	visited.Set(id)

	if n.leafParent == parent {
		// A leaf may also be lending its branch role higher up; if so, that
		// branch role must still be linked to its own parent.
		if n.branching && (n.branchParent == nil || (n.branchParent.left != n && n.branchParent.right != n)) {
			return fmt.Errorf("ebtree: leaf %x has branching set but its branch role is not linked", n.Key)
		}
		return nil
	}

	if n.branchParent != parent {
		return fmt.Errorf("ebtree: branch at key %x has inconsistent branchParent", n.Key)
	}
	if !n.branching {
		return fmt.Errorf("ebtree: node at key %x reached as branch but branching is false", n.Key)
	}

	if n.bitPosition < 0 {
		if n.left == nil || n.right == nil {
			return fmt.Errorf("ebtree: duplicate anchor at key %x missing a child", n.Key)
		}
		if err := checkNodeMB(n, n.left, lo, visited, id*2+1); err != nil {
			return err
		}
		return checkNodeMB(n, n.right, lo, visited, id*2+2)
	}

	if n.bitPosition <= lo {
		return fmt.Errorf("ebtree: branch at key %x violates strictly increasing bit position (got %d, bound %d)", n.Key, n.bitPosition, lo)
	}
	if n.left == nil || n.right == nil {
		return fmt.Errorf("ebtree: branch at key %x has a nil child", n.Key)
	}
	if err := checkNodeMB(n, n.left, n.bitPosition, visited, id*2+1); err != nil {
		return err
	}
	return checkNodeMB(n, n.right, n.bitPosition, visited, id*2+2)
}
