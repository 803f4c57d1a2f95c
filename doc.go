// SPDX-License-Identifier: MIT

// Package ebtree provides elastic binary trees: ordered associative
// containers keyed by either a fixed-width 32-bit unsigned integer
// (Tree32/Node32) or an arbitrary-length byte string (TreeMB/NodeMB).
//
// An elastic binary tree is a radix tree in which every internal
// decision node doubles as a leaf: each node embeds exactly one leaf
// role and one branch role, so the tree never allocates routing nodes of
// its own. Callers own node storage — typically by embedding a Node32 or
// NodeMB value directly inside their own record and carrying the record's
// other fields in the node's Value field.
//
// Insertion and lookup are O(key width) for Tree32 and O(key length in
// bits) for TreeMB. Deletion of a known node is O(1) unless the deleted
// node was also lending its branch role elsewhere in the tree, in which
// case it is O(key width). Next/Prev are amortized O(1).
//
// The tree is not safe for concurrent mutation; callers needing that
// guarantee must supply their own locking.
package ebtree
