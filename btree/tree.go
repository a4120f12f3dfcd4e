package btree

// Tree is an in-memory, ordered associative container backed by a B+
// tree with unique keys. Height 0 means empty (root is nil).
type Tree[K, V any] struct {
	cfg     Config[K, V]
	root    treeNode[K, V]
	head    *leafNode[K, V]
	tail    *leafNode[K, V]
	height  int
	count   int
	version int
}

// New creates an empty tree with a validated, normalized configuration.
func New[K, V any](cfg Config[K, V]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[K, V]{cfg: cfg}, nil
}

// Len returns the number of entries.
func (t *Tree[K, V]) Len() int { return t.count }

// Height returns the tree height: 0 for an empty tree, 1 when the root
// is itself a leaf.
func (t *Tree[K, V]) Height() int { return t.height }

// Version returns the mutation counter Iterator uses to detect
// concurrent modification.
func (t *Tree[K, V]) Version() int { return t.version }

// Add inserts key with value, failing with ErrDuplicateKey if key is
// already present.
func (t *Tree[K, V]) Add(key K, value V) error {
	added, err := t.TryAdd(key, value)
	if err != nil {
		return err
	}
	if !added {
		return ErrDuplicateKey
	}
	return nil
}

// TryAdd inserts key with value if absent, leaving an existing entry
// untouched. added reports whether a new entry was created.
func (t *Tree[K, V]) TryAdd(key K, value V) (added bool, err error) {
	args := &insertArgs[K, V]{
		key:    key,
		add:    func(K, any) V { return value },
		update: func(k K, arg any, old V) V { return old },
	}
	if err := t.insertViaArgs(args); err != nil {
		return false, err
	}
	return args.added, nil
}

// AddOrReplace inserts key with value if absent, or overwrites the
// existing value if present. added reports whether the entry is new.
func (t *Tree[K, V]) AddOrReplace(key K, value V) (added bool, err error) {
	args := &insertArgs[K, V]{
		key:    key,
		add:    func(K, any) V { return value },
		update: func(k K, arg any, old V) V { return value },
	}
	if err := t.insertViaArgs(args); err != nil {
		return false, err
	}
	return args.added, nil
}

// AddOrUpdate inserts key with value if absent, or replaces the
// existing value with update(key, value, old) if present.
func (t *Tree[K, V]) AddOrUpdate(key K, value V, update func(key K, newValue, oldValue V) V) (added bool, err error) {
	args := &insertArgs[K, V]{
		key:    key,
		add:    func(K, any) V { return value },
		update: func(k K, arg any, old V) V { return update(k, value, old) },
	}
	if err := t.insertViaArgs(args); err != nil {
		return false, err
	}
	return args.added, nil
}

// AddOrUpdateFromArg is the general form behind Add/AddOrUpdate: it
// avoids constructing a value the caller may not need by deferring to
// add(key, arg) on insert or update(key, arg, old) on update. arg is
// passed through unexamined.
func (t *Tree[K, V]) AddOrUpdateFromArg(key K, arg any, add func(key K, arg any) V, update func(key K, arg any, old V) V) (added bool, err error) {
	args := &insertArgs[K, V]{key: key, arg: arg, add: add, update: update}
	if err := t.insertViaArgs(args); err != nil {
		return false, err
	}
	return args.added, nil
}

// insertViaArgs runs args against the tree, creating the initial leaf
// on a first insert and growing the root by one level whenever the
// current root splits.
func (t *Tree[K, V]) insertViaArgs(args *insertArgs[K, V]) error {
	if t.root == nil {
		entry := leafEntry[K, V]{key: args.key, value: args.add(args.key, args.arg)}
		leaf := makeLeaf(t.cfg, []leafEntry[K, V]{entry})
		t.root = leaf
		t.height = 1
		t.count = 1
		t.version++
		args.added = true
		t.refreshEnds()
		tracer().Debugf("btree: created root leaf")
		return nil
	}

	rel := rootRelatives[K, V]()
	var promoted *separator[K, V]
	var err error
	switch root := t.root.(type) {
	case *leafNode[K, V]:
		promoted, err = t.leafInsert(root, rel, args)
	case *internalNode[K, V]:
		promoted, err = t.internalInsert(root, rel, args)
	default:
		panic("btree: unknown node kind")
	}
	if err != nil {
		return err
	}
	if promoted != nil {
		t.root = makeInternal(t.cfg, t.root, []separator[K, V]{*promoted})
		t.height++
		tracer().Debugf("btree: root split, height now %d", t.height)
	}
	t.refreshEnds()
	return nil
}

// Remove deletes key if present, returning the value that was removed.
func (t *Tree[K, V]) Remove(key K) (removed bool, value V, err error) {
	var zero V
	if t.root == nil {
		return false, zero, nil
	}
	rel := rootRelatives[K, V]()
	var result removeResult[V]
	switch root := t.root.(type) {
	case *leafNode[K, V]:
		result, err = t.leafRemove(root, rel, key, true)
	case *internalNode[K, V]:
		result, err = t.internalRemove(root, rel, key, true)
	default:
		panic("btree: unknown node kind")
	}
	if err != nil {
		return false, zero, err
	}
	if !result.found {
		return false, zero, nil
	}
	t.collapseRoot()
	t.refreshEnds()
	return true, result.value, nil
}

// collapseRoot shrinks the tree by one level whenever the root has
// been reduced to a single child, and drops the root entirely once the
// last entry is removed.
func (t *Tree[K, V]) collapseRoot() {
	for {
		inner, ok := t.root.(*internalNode[K, V])
		if !ok || inner.items.Len() > 0 {
			break
		}
		t.root = inner.left
		t.height--
		tracer().Debugf("btree: root collapsed, height now %d", t.height)
	}
	if leaf, ok := t.root.(*leafNode[K, V]); ok && leaf.items.Len() == 0 {
		t.root = nil
		t.height = 0
	}
}

// RemoveFirst removes and returns the smallest entry.
func (t *Tree[K, V]) RemoveFirst() (key K, value V, err error) {
	var zeroK K
	var zeroV V
	if t.root == nil {
		return zeroK, zeroV, ErrEmptyCollection
	}
	e, err := t.head.items.At(0)
	if err != nil {
		return zeroK, zeroV, err
	}
	_, v, err := t.Remove(e.key)
	if err != nil {
		return zeroK, zeroV, err
	}
	return e.key, v, nil
}

// RemoveLast removes and returns the largest entry.
func (t *Tree[K, V]) RemoveLast() (key K, value V, err error) {
	var zeroK K
	var zeroV V
	if t.root == nil {
		return zeroK, zeroV, ErrEmptyCollection
	}
	e, err := t.tail.items.At(t.tail.items.Len() - 1)
	if err != nil {
		return zeroK, zeroV, err
	}
	_, v, err := t.Remove(e.key)
	if err != nil {
		return zeroK, zeroV, err
	}
	return e.key, v, nil
}

// locateLeaf descends from the root to the leaf that would hold key,
// whether or not key is actually present in it.
func (t *Tree[K, V]) locateLeaf(key K) *leafNode[K, V] {
	n := t.root
	for {
		switch v := n.(type) {
		case *leafNode[K, V]:
			return v
		case *internalNode[K, V]:
			n = v.childAt(internalSlot(v, key, t.cfg.Compare))
		default:
			return nil
		}
	}
}

// TryGet returns the value stored for key, if any.
func (t *Tree[K, V]) TryGet(key K) (value V, ok bool) {
	var zero V
	if t.root == nil {
		return zero, false
	}
	l := t.locateLeaf(key)
	i := leafFind(l, key, t.cfg.Compare)
	if i < 0 {
		return zero, false
	}
	e, err := l.items.At(i)
	if err != nil {
		return zero, false
	}
	return e.value, true
}

// ContainsKey reports whether key is present.
func (t *Tree[K, V]) ContainsKey(key K) bool {
	_, ok := t.TryGet(key)
	return ok
}

// NextNearest returns the value of the smallest key >= key, or
// ErrKeyNotFound if key is larger than every key in the tree, or
// ErrEmptyCollection if the tree is empty.
func (t *Tree[K, V]) NextNearest(key K) (value V, err error) {
	var zero V
	if t.root == nil {
		return zero, ErrEmptyCollection
	}
	l := t.locateLeaf(key)
	i := leafFind(l, key, t.cfg.Compare)
	if i >= 0 {
		e, err := l.items.At(i)
		return e.value, err
	}
	i = ^i
	if i < l.items.Len() {
		e, err := l.items.At(i)
		return e.value, err
	}
	for cur := l.next; cur != nil; cur = cur.next {
		if cur.items.Len() > 0 {
			e, err := cur.items.At(0)
			return e.value, err
		}
	}
	return zero, ErrKeyNotFound
}

// First returns the smallest key and its value.
func (t *Tree[K, V]) First() (key K, value V, err error) {
	var zeroK K
	var zeroV V
	if t.root == nil {
		return zeroK, zeroV, ErrEmptyCollection
	}
	e, err := t.head.items.At(0)
	if err != nil {
		return zeroK, zeroV, err
	}
	return e.key, e.value, nil
}

// Last returns the largest key and its value.
func (t *Tree[K, V]) Last() (key K, value V, err error) {
	var zeroK K
	var zeroV V
	if t.root == nil {
		return zeroK, zeroV, ErrEmptyCollection
	}
	e, err := t.tail.items.At(t.tail.items.Len() - 1)
	if err != nil {
		return zeroK, zeroV, err
	}
	return e.key, e.value, nil
}

// Clear empties the tree, releasing every node. It always bumps the
// version, even on an already-empty tree, since it is a mutation of
// the tree's identity regardless of prior contents.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.head = nil
	t.tail = nil
	t.height = 0
	t.count = 0
	t.version++
}

// refreshEnds recomputes head and tail by walking from the root, an
// O(height) pass run once per top-level mutation rather than carrying
// parent pointers through every node.
func (t *Tree[K, V]) refreshEnds() {
	if t.root == nil {
		t.head = nil
		t.tail = nil
		return
	}
	n := t.root
	for {
		if leaf, ok := n.(*leafNode[K, V]); ok {
			t.head = leaf
			break
		}
		n = n.(*internalNode[K, V]).left
	}
	n = t.root
	for {
		if leaf, ok := n.(*leafNode[K, V]); ok {
			t.tail = leaf
			break
		}
		inner := n.(*internalNode[K, V])
		if inner.items.Len() == 0 {
			n = inner.left
			continue
		}
		sep, err := inner.items.At(inner.items.Len() - 1)
		assert(err == nil, "refreshEnds: items.At")
		n = sep.child
	}
}
