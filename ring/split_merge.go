package ring

// SplitRight moves the upper half of r into a newly allocated ring of the
// same capacity and variant, leaving the lower, ceiling-half in r.
//
// After a successful split, r.Len() == ceil(n/2) and the returned ring's
// Len() == floor(n/2), where n is r.Len() before the call.
func (r *Ring[T]) SplitRight() (*Ring[T], error) {
	if err := r.checkMutable(); err != nil {
		return nil, err
	}
	n := r.count
	leftLen := (n + 1) / 2
	rightLen := n - leftLen
	right, err := New[T](len(r.buf), r.variant)
	if err != nil {
		return nil, err
	}
	var zero T
	for i := 0; i < rightLen; i++ {
		right.buf[i] = r.buf[r.physical(leftLen + i)]
		r.buf[r.physical(leftLen+i)] = zero
	}
	right.count = rightLen
	r.count = leftLen
	r.version++
	return right, nil
}

// MergeLeft appends every element of right onto the end of r, requiring
// r.Len()+right.Len() <= r.Cap(). right is left untouched; callers that
// want to discard it do so themselves.
func (r *Ring[T]) MergeLeft(right *Ring[T]) error {
	if err := r.checkMutable(); err != nil {
		return err
	}
	if r.count+right.count > len(r.buf) {
		return ErrFixedCapacityViolation
	}
	for i := 0; i < right.count; i++ {
		r.buf[r.physical(r.count+i)] = right.buf[right.physical(i)]
	}
	r.count += right.count
	r.version++
	return nil
}
