package sparse

import "github.com/sundew-labs/ordtree/btree"

// Array is a sparse, ordered multi-map: each key holds a group of values
// in the order they were added, and a key with no values at all simply
// isn't present.
type Array[K, V any] struct {
	tree *btree.Tree[K, []V]
}

// New creates an empty Array using cfg's comparator and capacities.
func New[K, V any](cfg btree.Config[K, []V]) (*Array[K, V], error) {
	t, err := btree.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Array[K, V]{tree: t}, nil
}

// Add appends v to key's value group, creating the group if key is not
// yet present.
func (a *Array[K, V]) Add(key K, v V) error {
	_, err := a.tree.AddOrUpdateFromArg(key, v,
		func(k K, arg any) []V { return []V{arg.(V)} },
		func(k K, arg any, old []V) []V { return append(old, arg.(V)) },
	)
	return err
}

// Values returns key's value group, and whether key is present at all.
func (a *Array[K, V]) Values(key K) ([]V, bool) {
	return a.tree.TryGet(key)
}

// Remove deletes key and its entire value group.
func (a *Array[K, V]) Remove(key K) (removed bool, values []V, err error) {
	return a.tree.Remove(key)
}

// Range returns an iterator over (key, group) pairs in key order,
// forward or backward, optionally starting at or after/before start.
func (a *Array[K, V]) Range(forward bool, start *K) *btree.Iterator[K, []V] {
	return a.tree.Range(forward, start)
}

// Len returns the number of distinct keys.
func (a *Array[K, V]) Len() int { return a.tree.Len() }
