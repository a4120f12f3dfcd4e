package btree

// Iterator walks entries in key order, forward or backward, along the
// leaf chain rather than by re-descending the tree on every step. It
// captures the tree's version at creation and reports
// ErrConcurrentModification from Next once that version changes.
type Iterator[K, V any] struct {
	t       *Tree[K, V]
	version int
	leaf    *leafNode[K, V]
	idx     int
	forward bool
	done    bool
}

// Range returns an Iterator over the tree's entries. If start is nil,
// iteration begins at the first (forward) or last (!forward) entry.
// Otherwise it begins at start if present, or at the nearest entry on
// the iteration side of start (the next-larger key going forward, the
// next-smaller key going backward).
func (t *Tree[K, V]) Range(forward bool, start *K) *Iterator[K, V] {
	it := &Iterator[K, V]{t: t, version: t.version, forward: forward}
	if t.root == nil {
		it.done = true
		return it
	}
	if start == nil {
		if forward {
			it.leaf, it.idx = t.head, 0
		} else {
			it.leaf, it.idx = t.tail, t.tail.items.Len()-1
		}
		return it
	}

	l := t.locateLeaf(*start)
	i := leafFind(l, *start, t.cfg.Compare)
	if i >= 0 {
		it.leaf, it.idx = l, i
		return it
	}
	i = ^i
	if forward {
		if i < l.items.Len() {
			it.leaf, it.idx = l, i
		} else {
			it.leaf, it.idx = l.next, 0
		}
	} else {
		if i > 0 {
			it.leaf, it.idx = l, i-1
		} else {
			it.leaf = l.prev
			if it.leaf != nil {
				it.idx = it.leaf.items.Len() - 1
			}
		}
	}
	if it.leaf == nil {
		it.done = true
	}
	return it
}

// Next returns the next entry in iteration order. ok is false once the
// sequence is exhausted.
func (it *Iterator[K, V]) Next() (key K, value V, ok bool, err error) {
	var zeroK K
	var zeroV V
	if it.version != it.t.version {
		return zeroK, zeroV, false, ErrConcurrentModification
	}
	if it.done || it.leaf == nil {
		return zeroK, zeroV, false, nil
	}
	e, err := it.leaf.items.At(it.idx)
	if err != nil {
		return zeroK, zeroV, false, err
	}
	if it.forward {
		it.idx++
		if it.idx >= it.leaf.items.Len() {
			it.leaf, it.idx = it.leaf.next, 0
		}
	} else {
		it.idx--
		if it.idx < 0 {
			it.leaf = it.leaf.prev
			if it.leaf != nil {
				it.idx = it.leaf.items.Len() - 1
			}
		}
	}
	if it.leaf == nil {
		it.done = true
	}
	return e.key, e.value, true, nil
}
