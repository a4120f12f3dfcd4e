package ring

// BinarySearch searches a ring that is sorted according to cmp, where
// cmp(item) must return <0 if item sorts before the target, 0 if item
// equals the target, and >0 if item sorts after it.
//
// It returns the logical index of a match when found, or the bitwise
// complement (^insertionPoint) of the index the target would need to be
// inserted at to keep the ring sorted, when not found. This mirrors the
// convention of sort.Search's cousins that report "not found" without an
// extra return value: a negative result is always ^insertionPoint, and
// insertionPoint is always recoverable as ^result.
//
// The search operates on logical indices throughout and only maps to a
// physical slot per probe, so rotation (start+count wrapping past Cap())
// never needs special-casing here.
func (r *Ring[T]) BinarySearch(cmp func(item T) int) int {
	lo, hi := 0, r.count
	for lo < hi {
		mid := (lo + hi) / 2
		c := cmp(r.buf[r.physical(mid)])
		switch {
		case c == 0:
			return mid
		case c < 0:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return ^lo
}
