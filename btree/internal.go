package btree

import "github.com/sundew-labs/ordtree/ring"

// internalSlot returns the child slot (0..n.items.Len()) that owns key:
// slot 0 is n.left, slot k>=1 is n.items[k-1].child.
func internalSlot[K, V any](n *internalNode[K, V], key K, cmp Comparator[K]) int {
	fi := n.items.BinarySearch(func(s separator[K, V]) int { return cmp.Compare(s.key, key) })
	if fi >= 0 {
		return fi + 1
	}
	return ^fi
}

func (t *Tree[K, V]) internalInsert(n *internalNode[K, V], rel *Relatives[K, V], args *insertArgs[K, V]) (*separator[K, V], error) {
	slot := internalSlot(n, args.key, t.cfg.Compare)
	child := n.childAt(slot)
	childRel := childRelatives(n, slot, rel)

	var promoted *separator[K, V]
	var err error
	switch c := child.(type) {
	case *leafNode[K, V]:
		promoted, err = t.leafInsert(c, childRel, args)
	case *internalNode[K, V]:
		promoted, err = t.internalInsert(c, childRel, args)
	default:
		panic("btree: unknown node kind")
	}
	if err != nil || promoted == nil {
		return nil, err
	}
	return t.internalAdopt(n, rel, slot, *promoted)
}

// internalAdopt places a promoted separator into n, splitting or
// spilling into a sibling if n is full. It returns a non-nil separator
// when n itself split, to be inserted into n's parent by the caller.
func (t *Tree[K, V]) internalAdopt(n *internalNode[K, V], rel *Relatives[K, V], slot int, promoted separator[K, V]) (*separator[K, V], error) {
	if n.items.Len() < n.items.Cap() {
		return nil, n.items.Insert(slot, promoted)
	}
	if left, ok := rel.leftSibling.(*internalNode[K, V]); ok && left != nil && left.items.Len() < left.items.Cap() {
		return nil, t.internalSpillLeft(n, left, rel, slot, promoted)
	}
	if right, ok := rel.rightSibling.(*internalNode[K, V]); ok && right != nil && right.items.Len() < right.items.Cap() {
		return nil, t.internalSpillRight(n, right, rel, slot, promoted)
	}
	return t.internalSplit(n, slot, promoted)
}

// internalSpillLeft relieves a full n by moving one child-pair to the
// end of left, then placing promoted at the resulting slot.
func (t *Tree[K, V]) internalSpillLeft(n, left *internalNode[K, V], rel *Relatives[K, V], slot int, promoted separator[K, V]) error {
	oldAncestorKey := rel.leftSeparatorKey()
	if slot == 0 {
		oldLeft := n.left
		n.left = promoted.child
		if err := left.items.PushLast(separator[K, V]{key: oldAncestorKey, child: oldLeft}); err != nil {
			return err
		}
		rel.updateLeftSeparator(promoted.key)
		return nil
	}
	firstSep, err := n.items.PopFirst()
	if err != nil {
		return err
	}
	oldLeft := n.left
	n.left = firstSep.child
	if err := left.items.PushLast(separator[K, V]{key: oldAncestorKey, child: oldLeft}); err != nil {
		return err
	}
	rel.updateLeftSeparator(firstSep.key)
	return n.items.Insert(slot-1, promoted)
}

// internalSpillRight relieves a full n by moving one child-pair to the
// front of right, then placing promoted at the (unaffected) slot.
func (t *Tree[K, V]) internalSpillRight(n, right *internalNode[K, V], rel *Relatives[K, V], slot int, promoted separator[K, V]) error {
	oldAncestorKey := rel.rightSeparatorKey()
	if slot == n.items.Len() {
		oldRightLeft := right.left
		right.left = promoted.child
		if err := right.items.PushFirst(separator[K, V]{key: oldAncestorKey, child: oldRightLeft}); err != nil {
			return err
		}
		rel.updateRightSeparator(promoted.key)
		return nil
	}
	lastSep, err := n.items.PopLast()
	if err != nil {
		return err
	}
	oldRightLeft := right.left
	right.left = lastSep.child
	if err := right.items.PushFirst(separator[K, V]{key: oldAncestorKey, child: oldRightLeft}); err != nil {
		return err
	}
	rel.updateRightSeparator(lastSep.key)
	return n.items.Insert(slot, promoted)
}

// internalSplit splits a full n plus the pending promotion into two
// internal nodes, sacrificing the middle separator upward as the
// returned promotion.
func (t *Tree[K, V]) internalSplit(n *internalNode[K, V], slot int, promoted separator[K, V]) (*separator[K, V], error) {
	oldSeps := n.items.Slice()
	children := make([]treeNode[K, V], 0, len(oldSeps)+2)
	keys := make([]K, 0, len(oldSeps)+1)
	children = append(children, n.left)
	for _, s := range oldSeps {
		children = append(children, s.child)
		keys = append(keys, s.key)
	}
	children = insertAt(children, slot+1, promoted.child)
	keys = insertAt(keys, slot, promoted.key)

	total := len(children)
	leftCount := (total + 1) / 2
	middleKey := keys[leftCount-1]

	if err := n.items.Clear(); err != nil {
		return nil, err
	}
	n.left = children[0]
	for i := 0; i < leftCount-1; i++ {
		if err := n.items.PushLast(separator[K, V]{key: keys[i], child: children[i+1]}); err != nil {
			return nil, err
		}
	}

	rightSeps := make([]separator[K, V], 0, total-leftCount-1)
	for i := leftCount; i < total-1; i++ {
		rightSeps = append(rightSeps, separator[K, V]{key: keys[i], child: children[i+1]})
	}
	rightItems, err := ring.NewFromSlice(rightSeps, n.items.Cap())
	if err != nil {
		return nil, err
	}
	right := &internalNode[K, V]{left: children[leftCount], items: rightItems}

	return &separator[K, V]{key: middleKey, child: right}, nil
}

func (t *Tree[K, V]) internalRemove(n *internalNode[K, V], rel *Relatives[K, V], key K, isRoot bool) (removeResult[V], error) {
	slot := internalSlot(n, key, t.cfg.Compare)
	child := n.childAt(slot)
	childRel := childRelatives(n, slot, rel)

	var result removeResult[V]
	var err error
	switch c := child.(type) {
	case *leafNode[K, V]:
		result, err = t.leafRemove(c, childRel, key, false)
	case *internalNode[K, V]:
		result, err = t.internalRemove(c, childRel, key, false)
	default:
		panic("btree: unknown node kind")
	}
	if err != nil || !result.found || !result.merged {
		return result, err
	}

	idx := slot
	if result.mergedLeft {
		idx = slot - 1
	}
	if idx < 0 {
		idx = 0
	}
	if _, err := n.items.RemoveAt(idx); err != nil {
		return result, err
	}
	t.version++

	out := removeResult[V]{found: true, value: result.value}
	if isRoot || internalIsHalfFull[K, V](n) {
		return out, nil
	}
	return t.internalRebalance(n, rel, out)
}

// internalRebalance restores n's fill invariant after a child merge
// dropped it below half-full, by borrowing from a sibling or, failing
// that, merging n itself into or with a true sibling.
func (t *Tree[K, V]) internalRebalance(n *internalNode[K, V], rel *Relatives[K, V], result removeResult[V]) (removeResult[V], error) {
	if left, ok := rel.leftSibling.(*internalNode[K, V]); ok && left != nil && left.items.Len() > half(left.items.Cap()) {
		return result, t.internalBorrowLeft(n, left, rel)
	}
	if right, ok := rel.rightSibling.(*internalNode[K, V]); ok && right != nil && right.items.Len() > half(right.items.Cap()) {
		return result, t.internalBorrowRight(n, right, rel)
	}
	if rel.leftIsTrue {
		left := rel.leftSibling.(*internalNode[K, V])
		if err := t.internalMergeInto(left, n, rel, true); err != nil {
			return result, err
		}
		result.merged = true
		result.mergedLeft = true
		return result, nil
	}
	if rel.rightIsTrue {
		right := rel.rightSibling.(*internalNode[K, V])
		if err := t.internalMergeInto(n, right, rel, false); err != nil {
			return result, err
		}
		result.merged = true
		result.mergedLeft = false
		return result, nil
	}
	return result, nil
}

func (t *Tree[K, V]) internalBorrowLeft(n, left *internalNode[K, V], rel *Relatives[K, V]) error {
	lastSep, err := left.items.PopLast()
	if err != nil {
		return err
	}
	oldLeft := n.left
	n.left = lastSep.child
	if err := n.items.PushFirst(separator[K, V]{key: rel.leftSeparatorKey(), child: oldLeft}); err != nil {
		return err
	}
	rel.updateLeftSeparator(lastSep.key)
	return nil
}

func (t *Tree[K, V]) internalBorrowRight(n, right *internalNode[K, V], rel *Relatives[K, V]) error {
	firstSep, err := right.items.PopFirst()
	if err != nil {
		return err
	}
	oldRightLeft := right.left
	right.left = firstSep.child
	if err := n.items.PushLast(separator[K, V]{key: rel.rightSeparatorKey(), child: oldRightLeft}); err != nil {
		return err
	}
	rel.updateRightSeparator(firstSep.key)
	return nil
}

// internalMergeInto absorbs rightNode into leftNode using the separator
// key shared between them (read from rel before either side changes).
func (t *Tree[K, V]) internalMergeInto(leftNode, rightNode *internalNode[K, V], rel *Relatives[K, V], awayIsLeft bool) error {
	var mergeKey K
	if awayIsLeft {
		mergeKey = rel.leftSeparatorKey()
	} else {
		mergeKey = rel.rightSeparatorKey()
	}
	if err := leftNode.items.PushLast(separator[K, V]{key: mergeKey, child: rightNode.left}); err != nil {
		return err
	}
	return leftNode.items.MergeLeft(rightNode.items)
}
