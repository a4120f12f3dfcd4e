package ring

// Variant constrains which mutations a Ring permits.
type Variant int

const (
	// None is a growable ring: capacity doubles (starting at 4) when an
	// insert would overflow it.
	None Variant = iota
	// FixedCapacity never grows; an insert that would overflow it fails
	// with ErrFixedCapacityViolation. This is the variant tree nodes use.
	FixedCapacity
	// FixedSize permits neither insertion nor removal, only Set.
	FixedSize
	// ReadOnly permits no mutation at all.
	ReadOnly
)

const initialCapacity = 4

// Ring is a circular buffer of logical length Len(), backed by a slice of
// capacity Cap(). The logical sequence starts at physical offset `start`
// and wraps around the end of buf when start+count > cap(buf).
type Ring[T any] struct {
	buf     []T
	start   int
	count   int
	variant Variant
	version int
}

// New creates a ring with the given variant and initial capacity.
//
// capacity is the starting backing-array size for None, and the (fixed)
// backing-array size for FixedCapacity/FixedSize/ReadOnly. A negative
// capacity is invalid.
func New[T any](capacity int, variant Variant) (*Ring[T], error) {
	if capacity < 0 {
		return nil, ErrInvalidArgument
	}
	if variant == None && capacity == 0 {
		capacity = initialCapacity
	}
	return &Ring[T]{
		buf:     make([]T, capacity),
		variant: variant,
	}, nil
}

// NewFromSlice creates a FixedCapacity ring of the given capacity, seeded
// with items in order. len(items) must not exceed capacity.
func NewFromSlice[T any](items []T, capacity int) (*Ring[T], error) {
	if capacity < len(items) {
		return nil, ErrInvalidArgument
	}
	r, err := New[T](capacity, FixedCapacity)
	if err != nil {
		return nil, err
	}
	copy(r.buf, items)
	r.count = len(items)
	return r, nil
}

// Len returns the logical element count.
func (r *Ring[T]) Len() int { return r.count }

// Cap returns the backing-array capacity.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// Version returns the mutation counter, bumped on every successful
// structural or positional mutation. Enumerators compare against this to
// detect concurrent modification.
func (r *Ring[T]) Version() int { return r.version }

// physical maps a logical index to a physical buf index.
func (r *Ring[T]) physical(logical int) int {
	p := r.start + logical
	if p >= len(r.buf) {
		p -= len(r.buf)
	}
	return p
}

// At returns the logical-index-th element.
func (r *Ring[T]) At(index int) (T, error) {
	var zero T
	if index < 0 || index >= r.count {
		return zero, ErrIndexOutOfRange
	}
	return r.buf[r.physical(index)], nil
}

// Set overwrites the logical-index-th element in place; valid for every
// variant except ReadOnly.
func (r *Ring[T]) Set(index int, item T) error {
	if r.variant == ReadOnly {
		return ErrReadOnlyViolation
	}
	if index < 0 || index >= r.count {
		return ErrIndexOutOfRange
	}
	r.buf[r.physical(index)] = item
	r.version++
	return nil
}

func (r *Ring[T]) checkMutable() error {
	switch r.variant {
	case ReadOnly:
		return ErrReadOnlyViolation
	case FixedSize:
		return ErrFixedSizeViolation
	}
	return nil
}

// grow doubles capacity (None variant only) or fails for FixedCapacity.
func (r *Ring[T]) grow() error {
	if r.variant == FixedCapacity {
		return ErrFixedCapacityViolation
	}
	newCap := len(r.buf) * 2
	if newCap == 0 {
		newCap = initialCapacity
	}
	grown := make([]T, newCap)
	for i := 0; i < r.count; i++ {
		grown[i] = r.buf[r.physical(i)]
	}
	r.buf = grown
	r.start = 0
	return nil
}

// Insert places item at logical index, shifting whichever side (the
// `index` items before it, or the `count-index` items after it) is
// smaller. index must be in [0, Len()].
func (r *Ring[T]) Insert(index int, item T) error {
	if err := r.checkMutable(); err != nil {
		return err
	}
	if index < 0 || index > r.count {
		return ErrIndexOutOfRange
	}
	if r.count == len(r.buf) {
		if err := r.grow(); err != nil {
			return err
		}
	}
	leftCost := index
	rightCost := r.count - index
	if leftCost <= rightCost {
		// Shift [0, index) one slot toward the front, opening a hole at
		// the new front, then move start back by one.
		r.start--
		if r.start < 0 {
			r.start += len(r.buf)
		}
		for i := 0; i < leftCost; i++ {
			r.buf[r.physical(i)] = r.buf[r.physical(i + 1)]
		}
		r.buf[r.physical(leftCost)] = item
	} else {
		for i := r.count; i > index; i-- {
			r.buf[r.physical(i)] = r.buf[r.physical(i - 1)]
		}
		r.buf[r.physical(index)] = item
	}
	r.count++
	r.version++
	return nil
}

// RemoveAt removes and returns the logical-index-th element, shifting
// whichever side is smaller, mirroring Insert.
func (r *Ring[T]) RemoveAt(index int) (T, error) {
	var zero T
	if err := r.checkMutable(); err != nil {
		return zero, err
	}
	if index < 0 || index >= r.count {
		return zero, ErrIndexOutOfRange
	}
	removed := r.buf[r.physical(index)]
	leftCost := index
	rightCost := r.count - index - 1
	if leftCost <= rightCost {
		for i := leftCost; i > 0; i-- {
			r.buf[r.physical(i)] = r.buf[r.physical(i - 1)]
		}
		r.buf[r.physical(0)] = zero
		r.start++
		if r.start >= len(r.buf) {
			r.start -= len(r.buf)
		}
	} else {
		for i := index; i < r.count-1; i++ {
			r.buf[r.physical(i)] = r.buf[r.physical(i + 1)]
		}
		r.buf[r.physical(r.count-1)] = zero
	}
	r.count--
	r.version++
	return removed, nil
}

// PushFirst inserts item as the new first element in O(1).
func (r *Ring[T]) PushFirst(item T) error {
	if err := r.checkMutable(); err != nil {
		return err
	}
	if r.count == len(r.buf) {
		if err := r.grow(); err != nil {
			return err
		}
	}
	r.start--
	if r.start < 0 {
		r.start += len(r.buf)
	}
	r.buf[r.start] = item
	r.count++
	r.version++
	return nil
}

// PushLast inserts item as the new last element in O(1).
func (r *Ring[T]) PushLast(item T) error {
	if err := r.checkMutable(); err != nil {
		return err
	}
	if r.count == len(r.buf) {
		if err := r.grow(); err != nil {
			return err
		}
	}
	r.buf[r.physical(r.count)] = item
	r.count++
	r.version++
	return nil
}

// PopFirst removes and returns the first element in O(1).
func (r *Ring[T]) PopFirst() (T, error) {
	var zero T
	if err := r.checkMutable(); err != nil {
		return zero, err
	}
	if r.count == 0 {
		return zero, ErrEmptyCollection
	}
	item := r.buf[r.start]
	r.buf[r.start] = zero
	r.start++
	if r.start >= len(r.buf) {
		r.start -= len(r.buf)
	}
	r.count--
	r.version++
	return item, nil
}

// PopLast removes and returns the last element in O(1).
func (r *Ring[T]) PopLast() (T, error) {
	var zero T
	if err := r.checkMutable(); err != nil {
		return zero, err
	}
	if r.count == 0 {
		return zero, ErrEmptyCollection
	}
	last := r.physical(r.count - 1)
	item := r.buf[last]
	r.buf[last] = zero
	r.count--
	r.version++
	return item, nil
}

// InsertPopFirst inserts item at index and pops the first element, as one
// capacity-preserving step. If index == 0 it returns item unchanged
// without ever growing the ring.
func (r *Ring[T]) InsertPopFirst(index int, item T) (T, error) {
	var zero T
	if index == 0 {
		return item, nil
	}
	if index < 0 || index > r.count {
		return zero, ErrIndexOutOfRange
	}
	first, err := r.PopFirst()
	if err != nil {
		return zero, err
	}
	if err := r.Insert(index-1, item); err != nil {
		return zero, err
	}
	return first, nil
}

// InsertPopLast inserts item at index and pops the last element, as one
// capacity-preserving step. If index == Len() it returns item unchanged
// without ever growing the ring, symmetric to InsertPopFirst.
func (r *Ring[T]) InsertPopLast(index int, item T) (T, error) {
	var zero T
	if index == r.count {
		return item, nil
	}
	if index < 0 || index > r.count {
		return zero, ErrIndexOutOfRange
	}
	last, err := r.PopLast()
	if err != nil {
		return zero, err
	}
	if err := r.Insert(index, item); err != nil {
		return zero, err
	}
	return last, nil
}

// Clear drops every element. Valid for every variant except ReadOnly.
func (r *Ring[T]) Clear() error {
	if r.variant == ReadOnly {
		return ErrReadOnlyViolation
	}
	var zero T
	for i := 0; i < r.count; i++ {
		r.buf[r.physical(i)] = zero
	}
	r.start = 0
	r.count = 0
	r.version++
	return nil
}

// Slice materializes the logical sequence into a freshly allocated slice,
// for callers (tests, debug dumps) that want a plain, non-rotated view.
func (r *Ring[T]) Slice() []T {
	out := make([]T, r.count)
	for i := 0; i < r.count; i++ {
		out[i] = r.buf[r.physical(i)]
	}
	return out
}
