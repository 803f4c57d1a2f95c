// SPDX-License-Identifier: MIT

package ebtree

import (
	"fmt"
	"io"

	"github.com/bits-and-blooms/bitset"
)

// Dump32 writes a human-readable rendering of t to w, one node per line,
// indented by depth. It is meant for debugging, not for parsing.
func Dump32[V any](w io.Writer, t *Tree32[V]) {
	visited := bitset.New(0)
	// The root splits on the key's highest bit like any other branch, so
	// both sides are walked independently.
	dump32(w, &t.root, t.root.left, 0, visited, 1)
	dump32(w, &t.root, t.root.right, 0, visited, 2)
}

func dump32[V any](w io.Writer, parent, n *Node32[V], depth int, visited *bitset.BitSet, id uint) {
	if n == nil {
		return
	}
	if visited.Test(id) {
		fmt.Fprintf(w, "%*scycle detected, aborting dump\n", depth*2, "")
		return
	}
	visited.Set(id)

	if n.leafParent == parent {
		fmt.Fprintf(w, "%*sleaf key=%d value=%v\n", depth*2, "", n.Key, n.Value)
		for dup := n.dupNext; dup != n; dup = dup.dupNext {
			fmt.Fprintf(w, "%*s  dup key=%d value=%v\n", depth*2, "", dup.Key, dup.Value)
		}
		return
	}

	fmt.Fprintf(w, "%*sbranch bit=%d\n", depth*2, "", n.bitPosition)
	dump32(w, n, n.left, depth+1, visited, id*2+1)
	dump32(w, n, n.right, depth+1, visited, id*2+2)
}

// DumpMB writes a human-readable rendering of t to w, one node per line,
// indented by depth.
func DumpMB[V any](w io.Writer, t *TreeMB[V]) {
	visited := bitset.New(0)
	dumpMB(w, &t.root, t.root.left, 0, visited, 0)
}

func dumpMB[V any](w io.Writer, parent, n *NodeMB[V], depth int, visited *bitset.BitSet, id uint) {
	if n == nil {
		return
	}
	if visited.Test(id) {
		fmt.Fprintf(w, "%*scycle detected, aborting dump\n", depth*2, "")
		return
	}
	visited.Set(id)

	if n.leafParent == parent {
		fmt.Fprintf(w, "%*sleaf key=%x value=%v\n", depth*2, "", n.Key, n.Value)
		return
	}
	if n.bitPosition < 0 {
		fmt.Fprintf(w, "%*sdup-anchor key=%x\n", depth*2, "", n.Key)
		dumpMB(w, n, n.left, depth+1, visited, id*2+1)
		dumpMB(w, n, n.right, depth+1, visited, id*2+2)
		return
	}

	fmt.Fprintf(w, "%*sbranch bit=%d\n", depth*2, "", n.bitPosition)
	dumpMB(w, n, n.left, depth+1, visited, id*2+1)
	dumpMB(w, n, n.right, depth+1, visited, id*2+2)
}
