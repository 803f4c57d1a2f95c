// SPDX-License-Identifier: MIT

package ebtree

import (
	"sync"
	"sync/atomic"
)

// NodePool32 is a type-safe wrapper around sync.Pool, specialized for
// recycling *Node32[V] storage.
//
// The core tree operations never allocate and never consult a pool;
// NodePool32 is opt-in sugar for callers who churn through many
// insert/delete cycles and would rather reuse node storage than let the
// garbage collector reclaim it.
type NodePool32[V any] struct {
	pool sync.Pool

	// TODO: remove once the allocation profile of real callers is known.
	totalAllocated atomic.Int64
	currentLive    atomic.Int64
}

// NewNodePool32 creates an empty NodePool32.
func NewNodePool32[V any]() *NodePool32[V] {
	p := &NodePool32[V]{}
	p.pool.New = func() any {
		p.totalAllocated.Add(1)
		return new(Node32[V])
	}
	return p
}

// Get returns a Node32 ready for Insert, either recycled or freshly
// allocated. A nil *NodePool32 is valid and always allocates.
func (p *NodePool32[V]) Get() *Node32[V] {
	if p == nil {
		return new(Node32[V])
	}
	p.currentLive.Add(1)
	return p.pool.Get().(*Node32[V])
}

// Put returns n to the pool. n must have already been removed from any
// tree (see Tree32.Delete). A nil *NodePool32 discards n.
func (p *NodePool32[V]) Put(n *Node32[V]) {
	if p == nil {
		return
	}
	p.currentLive.Add(-1)

	var zero V
	n.Value = zero
	n.Key = 0
	n.leafParent, n.branchParent = nil, nil
	n.left, n.right = nil, nil
	n.dupNext, n.dupPrev = nil, nil
	n.bitPosition = 0

	p.pool.Put(n)
}

// Stats returns the number of currently checked-out nodes and the total
// number of Node32 values ever allocated by this pool.
func (p *NodePool32[V]) Stats() (live, total int64) {
	if p == nil {
		return 0, 0
	}
	return p.currentLive.Load(), p.totalAllocated.Load()
}

// NodePoolMB is the byte-string-key counterpart of NodePool32.
type NodePoolMB[V any] struct {
	pool sync.Pool

	totalAllocated atomic.Int64
	currentLive    atomic.Int64
}

// NewNodePoolMB creates an empty NodePoolMB.
func NewNodePoolMB[V any]() *NodePoolMB[V] {
	p := &NodePoolMB[V]{}
	p.pool.New = func() any {
		p.totalAllocated.Add(1)
		return new(NodeMB[V])
	}
	return p
}

// Get returns a NodeMB ready for Insert, either recycled or freshly
// allocated. A nil *NodePoolMB is valid and always allocates.
func (p *NodePoolMB[V]) Get() *NodeMB[V] {
	if p == nil {
		return new(NodeMB[V])
	}
	p.currentLive.Add(1)
	return p.pool.Get().(*NodeMB[V])
}

// Put returns n to the pool. n must have already been removed from any
// tree (see TreeMB.Delete). A nil *NodePoolMB discards n.
func (p *NodePoolMB[V]) Put(n *NodeMB[V]) {
	if p == nil {
		return
	}
	p.currentLive.Add(-1)

	var zero V
	n.Value = zero
	n.Key = nil
	n.leafParent, n.branchParent = nil, nil
	n.left, n.right = nil, nil
	n.branching = false

	p.pool.Put(n)
}

// Stats returns the number of currently checked-out nodes and the total
// number of NodeMB values ever allocated by this pool.
func (p *NodePoolMB[V]) Stats() (live, total int64) {
	if p == nil {
		return 0, 0
	}
	return p.currentLive.Load(), p.totalAllocated.Load()
}
