package btree

import "github.com/sundew-labs/ordtree/ring"

func makeLeaf[K, V any](cfg Config[K, V], entries []leafEntry[K, V]) *leafNode[K, V] {
	items, err := ring.NewFromSlice(entries, cfg.LeafCap)
	assert(err == nil, "makeLeaf: NewFromSlice")
	return &leafNode[K, V]{items: items}
}

func makeInternal[K, V any](cfg Config[K, V], left treeNode[K, V], seps []separator[K, V]) *internalNode[K, V] {
	items, err := ring.NewFromSlice(seps, cfg.InternalCap)
	assert(err == nil, "makeInternal: NewFromSlice")
	return &internalNode[K, V]{left: left, items: items}
}
