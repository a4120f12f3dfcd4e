package btree

import (
	"fmt"
	"testing"
)

func TestBuilderBulkLoadsSortedInput(t *testing.T) {
	b, err := NewBuilder(intCfg(4, 4))
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	for i := 0; i < 100; i++ {
		b.Add(i, fmt.Sprintf("v%d", i))
	}
	tr, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	checkOK(t, tr)
	if tr.Len() != 100 {
		t.Fatalf("Len() = %d, want 100", tr.Len())
	}
	for i := 0; i < 100; i++ {
		v, ok := tr.TryGet(i)
		if !ok || v != fmt.Sprintf("v%d", i) {
			t.Fatalf("TryGet(%d) = %q, %v", i, v, ok)
		}
	}
	k, _, err := tr.First()
	if err != nil || k != 0 {
		t.Fatalf("First() = %d, %v, want 0, nil", k, err)
	}
	k, _, err = tr.Last()
	if err != nil || k != 99 {
		t.Fatalf("Last() = %d, %v, want 99, nil", k, err)
	}
}

func TestBuilderBuildIsIdempotent(t *testing.T) {
	b, _ := NewBuilder(intCfg(4, 4))
	b.Add(1, "a")
	b.Add(2, "b")
	t1, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	t2, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if t1 != t2 {
		t.Fatalf("Build() returned a new tree without an intervening Add/Remove")
	}
}

func TestBuilderFallsBackOnOutOfOrderInput(t *testing.T) {
	b, _ := NewBuilder(intCfg(4, 4))
	b.Add(1, "a")
	b.Add(3, "c")
	b.Add(2, "b")
	tr, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	checkOK(t, tr)
	for k, want := range map[int]string{1: "a", 2: "b", 3: "c"} {
		v, ok := tr.TryGet(k)
		if !ok || v != want {
			t.Fatalf("TryGet(%d) = %q, %v, want %q, true", k, v, ok, want)
		}
	}
}

func TestBuilderDuplicateKeyStaysInBulkMode(t *testing.T) {
	b, _ := NewBuilder(intCfg(4, 4))
	b.Add(1, "a")
	b.Add(5, "a")
	b.Add(5, "b")
	b.Add(9, "c")
	if b.outOfOrder {
		t.Fatalf("duplicate key at the same position forced a passthrough fallback")
	}
	tr, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	checkOK(t, tr)
	if tr.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tr.Len())
	}
	v, ok := tr.TryGet(5)
	if !ok || v != "b" {
		t.Fatalf("TryGet(5) = %q, %v, want b, true", v, ok)
	}
}

func TestBuilderFallsBackOnRemove(t *testing.T) {
	b, _ := NewBuilder(intCfg(4, 4))
	for i := 0; i < 10; i++ {
		b.Add(i, "x")
	}
	b.Remove(5)
	tr, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	checkOK(t, tr)
	if tr.ContainsKey(5) {
		t.Fatalf("ContainsKey(5) = true, want false after staged Remove")
	}
	if tr.Len() != 9 {
		t.Fatalf("Len() = %d, want 9", tr.Len())
	}
}

func TestBuilderSingleEntryRootExemptFromHalfFull(t *testing.T) {
	b, _ := NewBuilder(intCfg(4, 4))
	b.Add(1, "a")
	tr, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	checkOK(t, tr)
	if tr.Height() != 1 {
		t.Fatalf("Height() = %d, want 1", tr.Height())
	}
}

func TestBuilderEmpty(t *testing.T) {
	b, _ := NewBuilder(intCfg(4, 4))
	tr, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if tr.Len() != 0 || tr.Height() != 0 {
		t.Fatalf("empty builder produced non-empty tree: Len=%d Height=%d", tr.Len(), tr.Height())
	}
	checkOK(t, tr)
}

func TestBuilderLargeBulkLoadMultiLevel(t *testing.T) {
	b, _ := NewBuilder(intCfg(3, 3))
	const n = 500
	for i := 0; i < n; i++ {
		b.Add(i, "x")
	}
	tr, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	checkOK(t, tr)
	if tr.Height() < 3 {
		t.Fatalf("Height() = %d, want a multi-level tree for n=%d with small caps", tr.Height(), n)
	}
	it := tr.Range(true, nil)
	for i := 0; i < n; i++ {
		k, _, ok, err := it.Next()
		if err != nil || !ok || k != i {
			t.Fatalf("Next() at %d = %d, %v, %v", i, k, ok, err)
		}
	}
}
