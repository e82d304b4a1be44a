package vec

import (
	"errors"
	"testing"
)

func TestPushInsertRemovePopSequence(t *testing.T) {
	v := New[int]()

	mustPush(t, v, 1, 2, 3)
	requireElems(t, v, []int{1, 2, 3})
	if v.Cap() < 3 {
		t.Fatalf("Cap() = %d, want >= 3", v.Cap())
	}

	if _, err := v.Insert(1, 99); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	requireElems(t, v, []int{1, 99, 2, 3})

	v.Remove(2)
	requireElems(t, v, []int{1, 99, 3})

	v.Pop()
	requireElems(t, v, []int{1, 99})
}

func TestInsertReturnsIndex(t *testing.T) {
	v := New[int]()
	mustPush(t, v, 1, 2, 3)

	i, err := v.Insert(1, 99)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if i != 1 {
		t.Fatalf("Insert returned %d, want 1", i)
	}
	if *v.At(i) != 99 {
		t.Fatalf("*At(%d) = %d, want 99", i, *v.At(i))
	}
}

func TestInsertAtFrontWithReallocation(t *testing.T) {
	v := New[int]()
	mustPush(t, v, 2, 3)
	// Fill to capacity so the insert must reallocate.
	for v.Len() < v.Cap() {
		mustPush(t, v, 4)
	}
	before := v.Len()

	i, err := v.Insert(0, 1)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if i != 0 {
		t.Fatalf("Insert returned %d, want 0", i)
	}
	if v.Len() != before+1 {
		t.Fatalf("Len() = %d, want %d", v.Len(), before+1)
	}
	if *v.At(0) != 1 || *v.At(1) != 2 {
		t.Fatalf("front = %d, %d, want 1, 2", *v.At(0), *v.At(1))
	}
}

func TestInsertAtEndEqualsPush(t *testing.T) {
	v := New[int]()
	mustPush(t, v, 1)

	i, err := v.Insert(v.Len(), 2)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if i != 1 {
		t.Fatalf("Insert returned %d, want 1", i)
	}
	requireElems(t, v, []int{1, 2})
}

func TestEmplaceBuilds(t *testing.T) {
	type pair struct{ a, b int }
	v := New[pair]()

	i, err := v.Emplace(0, func() (pair, error) {
		return pair{a: 1, b: 2}, nil
	})
	if err != nil {
		t.Fatalf("Emplace: %v", err)
	}
	if got := *v.At(i); got != (pair{1, 2}) {
		t.Fatalf("*At(%d) = %+v, want {1 2}", i, got)
	}
}

func TestEmplaceBuildErrorLeavesVectorUntouched(t *testing.T) {
	errBuild := errors.New("build failed")

	// Reallocating path: the vector is full.
	v := New[int]()
	mustPush(t, v, 1, 2)
	for v.Len() < v.Cap() {
		mustPush(t, v, 3)
	}
	wantLen, wantCap := v.Len(), v.Cap()

	_, err := v.Emplace(1, func() (int, error) { return 0, errBuild })
	if !errors.Is(err, errBuild) {
		t.Fatalf("err = %v, want %v", err, errBuild)
	}
	if v.Len() != wantLen || v.Cap() != wantCap {
		t.Fatalf("Len(), Cap() = %d, %d, want %d, %d", v.Len(), v.Cap(), wantLen, wantCap)
	}

	// In-place path: spare capacity available.
	if err := v.Grow(v.Len() + 4); err != nil {
		t.Fatalf("Grow: %v", err)
	}
	wantLen, wantCap = v.Len(), v.Cap()

	_, err = v.Emplace(0, func() (int, error) { return 0, errBuild })
	if !errors.Is(err, errBuild) {
		t.Fatalf("err = %v, want %v", err, errBuild)
	}
	if v.Len() != wantLen || v.Cap() != wantCap {
		t.Fatalf("Len(), Cap() = %d, %d, want %d, %d", v.Len(), v.Cap(), wantLen, wantCap)
	}
}

func TestEmplacePanicsOutOfRange(t *testing.T) {
	v := New[int]()
	mustPush(t, v, 1)
	for _, i := range []int{-1, 2} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("Emplace at %d on length 1 did not panic", i)
				}
			}()
			_, _ = v.Emplace(i, func() (int, error) { return 0, nil })
		}()
	}
}

func TestRemoveReturnsSuccessorIndex(t *testing.T) {
	v := New[int]()
	mustPush(t, v, 1, 2, 3)

	i := v.Remove(1)
	if i != 1 {
		t.Fatalf("Remove returned %d, want 1", i)
	}
	if *v.At(i) != 3 {
		t.Fatalf("*At(%d) = %d, want 3 (the successor)", i, *v.At(i))
	}
}

func TestRemoveLastReturnsLen(t *testing.T) {
	v := New[int]()
	mustPush(t, v, 1, 2)

	i := v.Remove(1)
	if i != v.Len() {
		t.Fatalf("Remove returned %d, want Len() = %d", i, v.Len())
	}
}

func TestRemovePanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Remove on empty vector did not panic")
		}
	}()
	New[int]().Remove(0)
}

func TestRemovePanicsOutOfRange(t *testing.T) {
	v := New[int]()
	mustPush(t, v, 1)
	defer func() {
		if recover() == nil {
			t.Fatal("Remove(1) on length 1 did not panic")
		}
	}()
	v.Remove(1)
}

func TestRemoveClearsVacatedSlot(t *testing.T) {
	v := New[*int]()
	for range 3 {
		if err := v.Push(new(int)); err != nil {
			t.Fatalf("Push: %v", err)
		}
	}

	v.Remove(0)

	if v.buf.slots[2] != nil {
		t.Fatal("vacated slot still references its element")
	}
}

func TestPopOnEmptyIsNoop(t *testing.T) {
	v := New[int]()
	v.Pop() // must not panic
	if v.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", v.Len())
	}
}

func TestPopClearsSlot(t *testing.T) {
	v := New[*int]()
	if err := v.Push(new(int)); err != nil {
		t.Fatalf("Push: %v", err)
	}

	v.Pop()

	if v.buf.slots[0] != nil {
		t.Fatal("popped slot still references its element")
	}
}

func TestInterleavedLenMatchesNetOperations(t *testing.T) {
	v := New[int]()
	net := 0
	for i := range 50 {
		mustPush(t, v, i)
		net++
		if i%3 == 0 {
			v.Pop()
			net--
		}
		if i%7 == 0 && v.Len() > 0 {
			v.Remove(0)
			net--
		}
		if v.Len() != net {
			t.Fatalf("step %d: Len() = %d, want %d", i, v.Len(), net)
		}
	}
}
