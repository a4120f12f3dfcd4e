package btree

import "github.com/sundew-labs/ordtree/ring"

// treeNode is implemented by *leafNode[K,V] and *internalNode[K,V]. Code
// that needs to tell them apart uses a type switch, the same dispatch
// style the rest of this package uses for node-kind-specific logic.
type treeNode[K, V any] interface {
	isLeaf() bool
}

// leafEntry is one (key, value) pair stored in a leaf's ring.
type leafEntry[K, V any] struct {
	key   K
	value V
}

// separator is one (key, child) pair stored in an internal node's ring.
// child's subtree holds every key >= this separator's key and < the key
// of the next separator (or unbounded, for the last one).
type separator[K, V any] struct {
	key   K
	child treeNode[K, V]
}

// leafNode holds entries in sorted order and participates in the leaf
// chain via prev/next, independent of the tree's own shape.
type leafNode[K, V any] struct {
	items *ring.Ring[leafEntry[K, V]]
	prev  *leafNode[K, V]
	next  *leafNode[K, V]
}

func (l *leafNode[K, V]) isLeaf() bool { return true }

// internalNode holds a left-most child plus an ordered ring of
// separators. The child for separator index i is items[i].child; the
// child before the first separator is left.
type internalNode[K, V any] struct {
	left  treeNode[K, V]
	items *ring.Ring[separator[K, V]]
}

func (n *internalNode[K, V]) isLeaf() bool { return false }

// childAt returns the slot-th child: childAt(0) is left, childAt(k) for
// k >= 1 is items[k-1].child.
func (n *internalNode[K, V]) childAt(slot int) treeNode[K, V] {
	if slot == 0 {
		return n.left
	}
	sep, err := n.items.At(slot - 1)
	assert(err == nil, "childAt: slot out of range")
	return sep.child
}

// childCount returns the number of children, always items.Len()+1.
func (n *internalNode[K, V]) childCount() int { return n.items.Len() + 1 }

func half(cap int) int { return cap / 2 }

func leafIsFull[K, V any](l *leafNode[K, V]) bool {
	return l.items.Len() >= l.items.Cap()
}

// leafIsHalfFull reports whether l satisfies the fill invariant for a
// non-root leaf.
func leafIsHalfFull[K, V any](l *leafNode[K, V]) bool {
	return l.items.Len() >= half(l.items.Cap())
}

func internalIsFull[K, V any](n *internalNode[K, V]) bool {
	return n.items.Len() >= n.items.Cap()
}

func internalIsHalfFull[K, V any](n *internalNode[K, V]) bool {
	return n.items.Len() >= half(n.items.Cap())
}

// firstKey returns the smallest key in n's subtree.
func firstKey[K, V any](n treeNode[K, V]) K {
	switch v := n.(type) {
	case *leafNode[K, V]:
		e, err := v.items.At(0)
		assert(err == nil, "firstKey: empty leaf")
		return e.key
	case *internalNode[K, V]:
		return firstKey[K, V](v.left)
	}
	panic("btree: unknown node kind")
}

// lastKey returns the largest key in n's subtree.
func lastKey[K, V any](n treeNode[K, V]) K {
	switch v := n.(type) {
	case *leafNode[K, V]:
		e, err := v.items.At(v.items.Len() - 1)
		assert(err == nil, "lastKey: empty leaf")
		return e.key
	case *internalNode[K, V]:
		if v.items.Len() == 0 {
			return lastKey[K, V](v.left)
		}
		s, err := v.items.At(v.items.Len() - 1)
		assert(err == nil, "lastKey: internal items.At")
		return lastKey[K, V](s.child)
	}
	panic("btree: unknown node kind")
}

// rightmostChild returns n's immediate rightmost child, one level down.
// A leaf has no children and is returned unchanged; childRelatives only
// calls this on a sibling of an internal node, which is itself internal.
func rightmostChild[K, V any](n treeNode[K, V]) treeNode[K, V] {
	inner, ok := n.(*internalNode[K, V])
	if !ok {
		return n
	}
	if inner.items.Len() == 0 {
		return inner.left
	}
	sep, err := inner.items.At(inner.items.Len() - 1)
	assert(err == nil, "rightmostChild: items.At")
	return sep.child
}

// leftmostChild returns n's immediate leftmost child, one level down.
func leftmostChild[K, V any](n treeNode[K, V]) treeNode[K, V] {
	inner, ok := n.(*internalNode[K, V])
	if !ok {
		return n
	}
	return inner.left
}
