// SPDX-License-Identifier: MIT

package ebtree

import "iter"

// All32 returns an iterator over all nodes of t in ascending key order,
// including duplicates, in insertion order within each key.
func All32[V any](t *Tree32[V]) iter.Seq[*Node32[V]] {
	return func(yield func(*Node32[V]) bool) {
		for n := t.First(); n != nil; n = n.Next() {
			if !yield(n) {
				return
			}
		}
	}
}

// Backward32 returns an iterator over all nodes of t in descending key
// order, including duplicates, in reverse insertion order within each
// key (the mirror image of All32).
func Backward32[V any](t *Tree32[V]) iter.Seq[*Node32[V]] {
	return func(yield func(*Node32[V]) bool) {
		for n := t.Last(); n != nil; n = n.Prev() {
			if !yield(n) {
				return
			}
		}
	}
}

// Keys32 returns an iterator over the keys of t in ascending order,
// including one entry per duplicate.
func Keys32[V any](t *Tree32[V]) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for n := range All32(t) {
			if !yield(n.Key) {
				return
			}
		}
	}
}

// Values32 returns an iterator over the values of t in ascending key
// order, including one entry per duplicate.
func Values32[V any](t *Tree32[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for n := range All32(t) {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// AllMB returns an iterator over all nodes of t in ascending key order,
// including duplicates, in insertion order within each key.
func AllMB[V any](t *TreeMB[V]) iter.Seq[*NodeMB[V]] {
	return func(yield func(*NodeMB[V]) bool) {
		for n := t.First(); n != nil; n = n.Next() {
			if !yield(n) {
				return
			}
		}
	}
}

// BackwardMB returns an iterator over all nodes of t in descending key
// order, including duplicates, in reverse insertion order within each
// key (the mirror image of AllMB).
func BackwardMB[V any](t *TreeMB[V]) iter.Seq[*NodeMB[V]] {
	return func(yield func(*NodeMB[V]) bool) {
		for n := t.Last(); n != nil; n = n.Prev() {
			if !yield(n) {
				return
			}
		}
	}
}

// KeysMB returns an iterator over the keys of t in ascending order,
// including one entry per duplicate.
func KeysMB[V any](t *TreeMB[V]) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for n := range AllMB(t) {
			if !yield(n.Key) {
				return
			}
		}
	}
}

// ValuesMB returns an iterator over the values of t in ascending key
// order, including one entry per duplicate.
func ValuesMB[V any](t *TreeMB[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for n := range AllMB(t) {
			if !yield(n.Value) {
				return
			}
		}
	}
}
