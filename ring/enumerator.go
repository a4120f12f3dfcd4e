package ring

// Enumerator walks a ring's logical sequence in order, failing fast if
// the ring is mutated after the enumerator was created. This mirrors the
// version-guard discipline the owning tree applies to its own iterators:
// each component guards its own version counter rather than relying on
// an outer one.
type Enumerator[T any] struct {
	r       *Ring[T]
	version int
	next    int
}

// Enumerate creates an Enumerator snapshotting the current version.
func (r *Ring[T]) Enumerate() *Enumerator[T] {
	return &Enumerator[T]{r: r, version: r.version}
}

// Next returns the next element and advances the cursor. ok is false
// once the sequence is exhausted. err is ErrConcurrentModification if r
// changed since Enumerate was called.
func (e *Enumerator[T]) Next() (item T, ok bool, err error) {
	var zero T
	if e.version != e.r.version {
		return zero, false, ErrConcurrentModification
	}
	if e.next >= e.r.count {
		return zero, false, nil
	}
	item = e.r.buf[e.r.physical(e.next)]
	e.next++
	return item, true, nil
}
