package ring

import "testing"

func TestInsertAndSliceOrder(t *testing.T) {
	r, err := New[int](4, FixedCapacity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range []int{1, 2, 3, 4} {
		if err := r.Insert(i, v); err != nil {
			t.Fatalf("insert %d: %v", v, err)
		}
	}
	got := r.Slice()
	want := []int{1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Slice() = %v, want %v", got, want)
		}
	}
}

func TestInsertFixedCapacityOverflow(t *testing.T) {
	r, _ := New[int](2, FixedCapacity)
	_ = r.Insert(0, 1)
	_ = r.Insert(1, 2)
	if err := r.Insert(1, 3); err != ErrFixedCapacityViolation {
		t.Fatalf("expected ErrFixedCapacityViolation, got %v", err)
	}
}

func TestGrowableRingGrows(t *testing.T) {
	r, _ := New[int](0, None)
	for i := 0; i < 10; i++ {
		if err := r.PushLast(i); err != nil {
			t.Fatalf("PushLast(%d): %v", i, err)
		}
	}
	if r.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", r.Len())
	}
	if r.Cap() < 10 {
		t.Fatalf("Cap() = %d, want >= 10", r.Cap())
	}
}

func TestPushPopBothEndsStayInSync(t *testing.T) {
	r, _ := New[int](8, FixedCapacity)
	_ = r.PushLast(2)
	_ = r.PushLast(3)
	_ = r.PushFirst(1)
	_ = r.PushFirst(0)
	// Now logically [0,1,2,3]; rotate by popping/pushing across the wrap.
	first, _ := r.PopFirst()
	if first != 0 {
		t.Fatalf("PopFirst() = %d, want 0", first)
	}
	last, _ := r.PopLast()
	if last != 3 {
		t.Fatalf("PopLast() = %d, want 3", last)
	}
	if got := r.Slice(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("Slice() = %v, want [1 2]", got)
	}
}

func TestRemoveAtMirrorsInsert(t *testing.T) {
	r, _ := New[int](8, FixedCapacity)
	for i, v := range []int{10, 20, 30, 40, 50} {
		_ = r.Insert(i, v)
	}
	removed, err := r.RemoveAt(2)
	if err != nil || removed != 30 {
		t.Fatalf("RemoveAt(2) = %d, %v, want 30, nil", removed, err)
	}
	want := []int{10, 20, 40, 50}
	got := r.Slice()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Slice() after remove = %v, want %v", got, want)
		}
	}
}

func TestInsertPopFirstNoOpAtZero(t *testing.T) {
	r, _ := New[int](4, FixedCapacity)
	_ = r.PushLast(1)
	_ = r.PushLast(2)
	got, err := r.InsertPopFirst(0, 99)
	if err != nil || got != 99 {
		t.Fatalf("InsertPopFirst(0, 99) = %d, %v, want 99, nil", got, err)
	}
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want unchanged 2", r.Len())
	}
}

func TestInsertPopFirstShiftsAndPops(t *testing.T) {
	r, _ := New[int](4, FixedCapacity)
	_ = r.PushLast(1)
	_ = r.PushLast(2)
	_ = r.PushLast(3)
	got, err := r.InsertPopFirst(2, 99)
	if err != nil || got != 1 {
		t.Fatalf("InsertPopFirst(2, 99) = %d, %v, want 1, nil", got, err)
	}
	want := []int{2, 99, 3}
	out := r.Slice()
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("Slice() = %v, want %v", out, want)
		}
	}
}

func TestBinarySearchFoundAndNotFound(t *testing.T) {
	r, _ := New[int](8, FixedCapacity)
	for i, v := range []int{1, 3, 5, 7, 9} {
		_ = r.Insert(i, v)
	}
	cmp := func(target int) func(int) int {
		return func(item int) int { return item - target }
	}
	if idx := r.BinarySearch(cmp(5)); idx != 2 {
		t.Fatalf("BinarySearch(5) = %d, want 2", idx)
	}
	idx := r.BinarySearch(cmp(4))
	if idx >= 0 {
		t.Fatalf("BinarySearch(4) = %d, want negative", idx)
	}
	if insertionPoint := ^idx; insertionPoint != 2 {
		t.Fatalf("insertion point = %d, want 2", insertionPoint)
	}
}

func TestSplitRightBalancesHalves(t *testing.T) {
	r, _ := New[int](8, FixedCapacity)
	for i, v := range []int{1, 2, 3, 4, 5} {
		_ = r.Insert(i, v)
	}
	right, err := r.SplitRight()
	if err != nil {
		t.Fatalf("SplitRight: %v", err)
	}
	if r.Len() != 3 || right.Len() != 2 {
		t.Fatalf("after split left=%d right=%d, want 3,2", r.Len(), right.Len())
	}
	if got := r.Slice(); got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("left half = %v, want [1 2 3]", got)
	}
	if got := right.Slice(); got[0] != 4 || got[1] != 5 {
		t.Fatalf("right half = %v, want [4 5]", got)
	}
}

func TestMergeLeftAppendsInOrder(t *testing.T) {
	left, _ := New[int](8, FixedCapacity)
	for i, v := range []int{1, 2, 3} {
		_ = left.Insert(i, v)
	}
	right, _ := New[int](8, FixedCapacity)
	for i, v := range []int{4, 5} {
		_ = right.Insert(i, v)
	}
	if err := left.MergeLeft(right); err != nil {
		t.Fatalf("MergeLeft: %v", err)
	}
	want := []int{1, 2, 3, 4, 5}
	got := left.Slice()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Slice() after merge = %v, want %v", got, want)
		}
	}
}

func TestEnumeratorDetectsConcurrentModification(t *testing.T) {
	r, _ := New[int](4, FixedCapacity)
	_ = r.PushLast(1)
	_ = r.PushLast(2)
	e := r.Enumerate()
	if _, _, err := e.Next(); err != nil {
		t.Fatalf("unexpected error on first Next: %v", err)
	}
	_ = r.PushLast(3)
	if _, _, err := e.Next(); err != ErrConcurrentModification {
		t.Fatalf("expected ErrConcurrentModification, got %v", err)
	}
}

func TestReadOnlyRejectsMutation(t *testing.T) {
	r, _ := NewFromSlice([]int{1, 2, 3}, 3)
	r.variant = ReadOnly
	if err := r.Insert(0, 9); err != ErrReadOnlyViolation {
		t.Fatalf("expected ErrReadOnlyViolation, got %v", err)
	}
	if err := r.Set(0, 9); err != ErrReadOnlyViolation {
		t.Fatalf("Set: expected ErrReadOnlyViolation, got %v", err)
	}
}

func TestFixedSizeRejectsInsertRemoveButAllowsSet(t *testing.T) {
	r, _ := NewFromSlice([]int{1, 2, 3}, 3)
	r.variant = FixedSize
	if err := r.Insert(0, 9); err != ErrFixedSizeViolation {
		t.Fatalf("Insert: expected ErrFixedSizeViolation, got %v", err)
	}
	if err := r.Set(1, 42); err != nil {
		t.Fatalf("Set: unexpected error %v", err)
	}
	if got, _ := r.At(1); got != 42 {
		t.Fatalf("At(1) = %d, want 42", got)
	}
}
