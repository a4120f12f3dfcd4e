package btree

// builderOp is one staged mutation: an insert/replace, or a removal.
type builderOp[K, V any] struct {
	isRemove bool
	key      K
	value    V
}

// Builder stages a sequence of Add/Remove calls and produces a Tree
// from them in one pass. Staged keys that arrive in strictly increasing
// order, with no Remove calls, are bulk-loaded level by level in O(n);
// any out-of-order key or any Remove instead falls back to replaying
// every staged operation through the ordinary insert/remove path.
//
// Build is idempotent: calling it again without an intervening Add or
// Remove returns the same Tree without rebuilding.
type Builder[K, V any] struct {
	cfg        Config[K, V]
	ops        []builderOp[K, V]
	lastKey    K
	haveLast   bool
	outOfOrder bool
	built      *Tree[K, V]
}

// NewBuilder creates a Builder with a validated, normalized configuration.
func NewBuilder[K, V any](cfg Config[K, V]) (*Builder[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Builder[K, V]{cfg: cfg.normalized()}, nil
}

// Add stages an insert-or-replace of key with value. A key equal to the
// most recently staged key, while still in bulk mode, updates that
// staged entry in place rather than forcing a passthrough fallback;
// only a genuine decrease does that.
func (b *Builder[K, V]) Add(key K, value V) {
	if b.haveLast && !b.outOfOrder {
		switch cmp := b.cfg.Compare.Compare(b.lastKey, key); {
		case cmp == 0:
			b.ops[len(b.ops)-1].value = value
			b.built = nil
			return
		case cmp > 0:
			b.outOfOrder = true
		}
	}
	b.ops = append(b.ops, builderOp[K, V]{key: key, value: value})
	b.lastKey, b.haveLast = key, true
	b.built = nil
}

// Remove stages a removal. Any staged removal forces passthrough
// construction, since bulk-loading only produces trees from a flat
// sorted run of live entries.
func (b *Builder[K, V]) Remove(key K) {
	b.outOfOrder = true
	b.ops = append(b.ops, builderOp[K, V]{isRemove: true, key: key})
	b.built = nil
}

// Build constructs the Tree from every staged operation.
func (b *Builder[K, V]) Build() (*Tree[K, V], error) {
	if b.built != nil {
		return b.built, nil
	}
	var t *Tree[K, V]
	var err error
	if b.outOfOrder {
		tracer().Debugf("btree: builder falling back to passthrough, %d staged ops", len(b.ops))
		t, err = b.buildPassthrough()
	} else {
		tracer().Debugf("btree: builder bulk-loading %d entries", len(b.ops))
		t, err = b.buildBulk()
	}
	if err != nil {
		return nil, err
	}
	b.built = t
	return t, nil
}

func (b *Builder[K, V]) buildPassthrough() (*Tree[K, V], error) {
	t, err := New(b.cfg)
	if err != nil {
		return nil, err
	}
	for _, op := range b.ops {
		if op.isRemove {
			if _, _, err := t.Remove(op.key); err != nil {
				return nil, err
			}
			continue
		}
		if _, err := t.AddOrReplace(op.key, op.value); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (b *Builder[K, V]) buildBulk() (*Tree[K, V], error) {
	n := len(b.ops)
	if n == 0 {
		return New(b.cfg)
	}
	entries := make([]leafEntry[K, V], n)
	for i, op := range b.ops {
		entries[i] = leafEntry[K, V]{key: op.key, value: op.value}
	}

	leaves := chunkLeaves(b.cfg, entries)
	for i := range leaves {
		if i > 0 {
			leaves[i].prev = leaves[i-1]
		}
		if i+1 < len(leaves) {
			leaves[i].next = leaves[i+1]
		}
	}

	level := make([]treeNode[K, V], len(leaves))
	for i, l := range leaves {
		level[i] = l
	}

	height := 1
	for len(level) > 1 {
		level = buildLevel(b.cfg, level)
		height++
	}

	t := &Tree[K, V]{cfg: b.cfg, root: level[0], height: height, count: n}
	t.refreshEnds()
	return t, nil
}

// chunkLeaves partitions entries into leaves of size LeafCap or
// LeafCap-1-ish, as evenly as ceiling division allows.
func chunkLeaves[K, V any](cfg Config[K, V], entries []leafEntry[K, V]) []*leafNode[K, V] {
	n := len(entries)
	numLeaves := (n + cfg.LeafCap - 1) / cfg.LeafCap
	if numLeaves == 0 {
		numLeaves = 1
	}
	base, extra := n/numLeaves, n%numLeaves
	leaves := make([]*leafNode[K, V], numLeaves)
	pos := 0
	for i := 0; i < numLeaves; i++ {
		size := base
		if i < extra {
			size++
		}
		leaves[i] = makeLeaf(cfg, entries[pos:pos+size])
		pos += size
	}
	return leaves
}

// buildLevel groups children into internal nodes of up to
// InternalCap+1 children each, as evenly as ceiling division allows.
func buildLevel[K, V any](cfg Config[K, V], children []treeNode[K, V]) []treeNode[K, V] {
	maxChildren := cfg.InternalCap + 1
	n := len(children)
	numNodes := (n + maxChildren - 1) / maxChildren
	if numNodes == 0 {
		numNodes = 1
	}
	base, extra := n/numNodes, n%numNodes
	out := make([]treeNode[K, V], numNodes)
	pos := 0
	for i := 0; i < numNodes; i++ {
		size := base
		if i < extra {
			size++
		}
		group := children[pos : pos+size]
		pos += size
		seps := make([]separator[K, V], 0, len(group)-1)
		for _, c := range group[1:] {
			seps = append(seps, separator[K, V]{key: firstKey[K, V](c), child: c})
		}
		out[i] = makeInternal(cfg, group[0], seps)
	}
	return out
}
