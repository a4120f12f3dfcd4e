package btree

import "github.com/sundew-labs/ordtree/ring"

func leafFind[K, V any](l *leafNode[K, V], key K, cmp Comparator[K]) int {
	return l.items.BinarySearch(func(e leafEntry[K, V]) int { return cmp.Compare(e.key, key) })
}

// leafInsert resolves an insertArgs against l, splitting or spilling
// into a sibling if l is full. It returns a non-nil separator when l
// split, to be inserted into l's parent by the caller.
func (t *Tree[K, V]) leafInsert(l *leafNode[K, V], rel *Relatives[K, V], args *insertArgs[K, V]) (*separator[K, V], error) {
	i := leafFind(l, args.key, t.cfg.Compare)
	if i >= 0 {
		e, err := l.items.At(i)
		if err != nil {
			return nil, err
		}
		e.value = args.update(args.key, args.arg, e.value)
		if err := l.items.Set(i, e); err != nil {
			return nil, err
		}
		args.added = false
		t.version++
		return nil, nil
	}
	i = ^i
	entry := leafEntry[K, V]{key: args.key, value: args.add(args.key, args.arg)}
	args.added = true
	t.count++
	t.version++

	if l.items.Len() < l.items.Cap() {
		return nil, l.items.Insert(i, entry)
	}

	if left, ok := rel.leftSibling.(*leafNode[K, V]); ok && left != nil && left.items.Len() < left.items.Cap() {
		return nil, t.leafSpillLeft(l, left, rel, i, entry)
	}
	if right, ok := rel.rightSibling.(*leafNode[K, V]); ok && right != nil && right.items.Len() < right.items.Cap() {
		return nil, t.leafSpillRight(l, right, rel, i, entry)
	}
	return t.leafSplit(l, i, entry)
}

// leafSpillLeft relieves a full leaf by moving its current first entry
// to the end of left, then inserting entry at the (shifted) index i.
func (t *Tree[K, V]) leafSpillLeft(l, left *leafNode[K, V], rel *Relatives[K, V], i int, entry leafEntry[K, V]) error {
	first, err := l.items.PopFirst()
	if err != nil {
		return err
	}
	if err := left.items.PushLast(first); err != nil {
		return err
	}
	idx := i - 1
	if idx < 0 {
		idx = 0
	}
	if err := l.items.Insert(idx, entry); err != nil {
		return err
	}
	rel.updateLeftSeparator(firstKey[K, V](l))
	return nil
}

// leafSpillRight relieves a full leaf by moving its current last entry
// to the front of right, then inserting entry at index i. When entry
// would land past l's last entry, entry itself moves to right instead.
func (t *Tree[K, V]) leafSpillRight(l, right *leafNode[K, V], rel *Relatives[K, V], i int, entry leafEntry[K, V]) error {
	if i == l.items.Len() {
		if err := right.items.PushFirst(entry); err != nil {
			return err
		}
		rel.updateRightSeparator(firstKey[K, V](right))
		return nil
	}
	last, err := l.items.PopLast()
	if err != nil {
		return err
	}
	if err := right.items.PushFirst(last); err != nil {
		return err
	}
	if err := l.items.Insert(i, entry); err != nil {
		return err
	}
	rel.updateRightSeparator(firstKey[K, V](right))
	return nil
}

// leafSplit splits a full leaf l plus the pending entry into two leaves
// that differ in length by at most one, relinking the leaf chain and
// returning a separator promoting the new right half.
func (t *Tree[K, V]) leafSplit(l *leafNode[K, V], i int, entry leafEntry[K, V]) (*separator[K, V], error) {
	existing := l.items.Slice()
	combined := make([]leafEntry[K, V], 0, len(existing)+1)
	combined = append(combined, existing[:i]...)
	combined = append(combined, entry)
	combined = append(combined, existing[i:]...)

	leftSize := (len(combined) + 1) / 2

	if err := l.items.Clear(); err != nil {
		return nil, err
	}
	for _, e := range combined[:leftSize] {
		if err := l.items.PushLast(e); err != nil {
			return nil, err
		}
	}
	rightItems, err := ring.NewFromSlice(combined[leftSize:], l.items.Cap())
	if err != nil {
		return nil, err
	}
	right := &leafNode[K, V]{items: rightItems}

	right.next = l.next
	if l.next != nil {
		l.next.prev = right
	}
	right.prev = l
	l.next = right

	return &separator[K, V]{key: combined[leftSize].key, child: right}, nil
}

// leafRemove removes key from l if present, rebalancing via borrow or
// merge when l drops below half-full. isRoot suppresses rebalancing
// entirely, since a root leaf has no siblings to borrow from or merge
// with.
func (t *Tree[K, V]) leafRemove(l *leafNode[K, V], rel *Relatives[K, V], key K, isRoot bool) (removeResult[V], error) {
	i := leafFind(l, key, t.cfg.Compare)
	if i < 0 {
		return removeResult[V]{}, nil
	}
	entry, err := l.items.RemoveAt(i)
	if err != nil {
		return removeResult[V]{}, err
	}
	t.count--
	t.version++
	result := removeResult[V]{found: true, value: entry.value}
	if i == 0 && l.items.Len() > 0 {
		rel.updateLeftSeparator(firstKey[K, V](l))
	}

	if isRoot || (l.items.Len() > 0 && leafIsHalfFull[K, V](l)) {
		return result, nil
	}

	if left, ok := rel.leftSibling.(*leafNode[K, V]); ok && left != nil && left.items.Len() > half(left.items.Cap()) && left.items.Len() > 1 {
		borrowed, err := left.items.PopLast()
		if err != nil {
			return result, err
		}
		if err := l.items.PushFirst(borrowed); err != nil {
			return result, err
		}
		rel.updateLeftSeparator(borrowed.key)
		return result, nil
	}
	if right, ok := rel.rightSibling.(*leafNode[K, V]); ok && right != nil && right.items.Len() > half(right.items.Cap()) && right.items.Len() > 1 {
		borrowed, err := right.items.PopFirst()
		if err != nil {
			return result, err
		}
		if err := l.items.PushLast(borrowed); err != nil {
			return result, err
		}
		rel.updateLeftSeparator(firstKey[K, V](l))
		rel.updateRightSeparator(firstKey[K, V](right))
		return result, nil
	}

	if rel.leftIsTrue {
		left := rel.leftSibling.(*leafNode[K, V])
		if err := left.items.MergeLeft(l.items); err != nil {
			return result, err
		}
		left.next = l.next
		if l.next != nil {
			l.next.prev = left
		}
		result.merged = true
		result.mergedLeft = true
		return result, nil
	}
	if rel.rightIsTrue {
		right := rel.rightSibling.(*leafNode[K, V])
		if err := l.items.MergeLeft(right.items); err != nil {
			return result, err
		}
		rel.updateLeftSeparator(firstKey[K, V](l))
		l.next = right.next
		if right.next != nil {
			right.next.prev = l
		}
		result.merged = true
		result.mergedLeft = false
		return result, nil
	}
	// No true sibling: l is the tree's only non-root leaf under a root
	// with a single child, which the caller collapses separately.
	return result, nil
}
