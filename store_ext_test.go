package steady

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestReserve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "steady")
	defer teardown()
	//
	s := Of(1, 2, 3)
	if err := s.Reserve(10); err != nil {
		t.Fatal(err)
	}
	if s.Cap() < 13 || s.Cap() != 16 {
		t.Errorf("expected capacity 16 after reserving, is %d", s.Cap())
	}
	p, _ := s.At(0)
	for i := range 10 {
		_ = s.Push(i)
	}
	if s.Cap() != 16 {
		t.Errorf("expected no allocation within reserved capacity, cap=%d", s.Cap())
	}
	if q, _ := s.At(0); q != p {
		t.Errorf("reserve moved an element")
	}
	if err := s.Reserve(-1); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments, got %v", err)
	}
	if err := s.Reserve(MaxLen); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("expected ErrCapacityExceeded, got %v", err)
	}
	checked(t, s)
}

func TestTruncateAndClear(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "steady")
	defer teardown()
	//
	s, _ := Collect(intRange(30))
	s.Truncate(50)
	if s.Len() != 30 {
		t.Errorf("truncating beyond length changed the store")
	}
	s.Truncate(7)
	if !slices.Equal(contents(s), []int{0, 1, 2, 3, 4, 5, 6}) {
		t.Errorf("unexpected contents after truncate: %v", contents(s))
	}
	if s.Cap() != 32 {
		t.Errorf("expected capacity to be retained, is %d", s.Cap())
	}
	for k := 7; k < s.Cap(); k++ {
		if v := *s.slot(k); v != 0 {
			t.Fatalf("slot %d not cleared after truncate: %d", k, v)
		}
	}
	s.Clear()
	if !s.IsEmpty() || s.Cap() != 32 {
		t.Errorf("expected empty store with retained capacity, have len=%d cap=%d", s.Len(), s.Cap())
	}
	checked(t, s)
}

func TestSwapRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "steady")
	defer teardown()
	//
	s := Of("a", "b", "c", "d", "e")
	v, err := s.SwapRemove(1)
	if err != nil || v != "b" {
		t.Fatalf("expected to remove b, got %q (%v)", v, err)
	}
	if !slices.Equal(contents(s), []string{"a", "e", "c", "d"}) {
		t.Errorf("unexpected contents %v", contents(s))
	}
	v, _ = s.SwapRemove(3)
	if v != "d" || !slices.Equal(contents(s), []string{"a", "e", "c"}) {
		t.Errorf("removing the last element failed: %q, %v", v, contents(s))
	}
	if _, err := s.SwapRemove(3); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestResize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "steady")
	defer teardown()
	//
	s := Of(1, 2)
	if err := s.Resize(6, 9); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(contents(s), []int{1, 2, 9, 9, 9, 9}) {
		t.Errorf("unexpected contents %v", contents(s))
	}
	n := 0
	if err := s.ResizeFunc(9, func() int { n++; return n * 10 }); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(contents(s), []int{1, 2, 9, 9, 9, 9, 10, 20, 30}) {
		t.Errorf("unexpected contents %v", contents(s))
	}
	if err := s.Resize(3, 0); err != nil || s.Len() != 3 {
		t.Errorf("shrinking resize failed: len=%d, %v", s.Len(), err)
	}
	if err := s.Resize(-1, 0); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments, got %v", err)
	}
	checked(t, s)
}

func TestResizeHonorsMaxLen(t *testing.T) {
	s, _ := New[int](Config{MaxLen: 10})
	if err := s.Resize(11, 0); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("expected ErrCapacityExceeded, got %v", err)
	}
	if s.Len() != 0 || s.Cap() != 0 {
		t.Errorf("failed resize modified the store")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "steady")
	defer teardown()
	//
	s, _ := Collect(intRange(20))
	_ = s.Reserve(100)
	c, err := s.Clone()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(contents(c), contents(s)) {
		t.Fatalf("clone differs from original")
	}
	if c.Cap() != 32 {
		t.Errorf("expected clone to allocate only needed segments, cap=%d", c.Cap())
	}
	_ = c.Set(0, 100)
	if v, _ := s.Get(0); v != 0 {
		t.Errorf("modifying the clone changed the original")
	}
	checked(t, c)
	//
	var empty Store[int]
	e, err := empty.Clone()
	if err != nil || !e.IsEmpty() || e.Cap() != 0 {
		t.Errorf("unexpected clone of empty store: %v", err)
	}
}

func TestCloneSharesBudget(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "steady")
	defer teardown()
	//
	budget := NewMemoryLimit(96)
	s, _ := New[int64](Config{Budget: budget})
	for i := range 5 {
		_ = s.Push(int64(i))
	}
	if budget.Used() != 64 {
		t.Fatalf("expected two segments of int64 to use 64 bytes, have %d", budget.Used())
	}
	if _, err := s.Clone(); !errors.Is(err, ErrAllocationFailure) {
		t.Errorf("expected clone to be refused by the budget, got %v", err)
	}
	if budget.Used() != 64 {
		t.Errorf("failed clone leaked budget: %d bytes in use", budget.Used())
	}
}

func TestExtendStopsAtFirstError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "steady")
	defer teardown()
	//
	s, _ := New[int](Config{MaxLen: 5})
	err := s.Extend(intRange(10))
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("expected ErrCapacityExceeded, got %v", err)
	}
	if !slices.Equal(contents(s), []int{0, 1, 2, 3, 4}) {
		t.Errorf("unexpected contents %v", contents(s))
	}
}

func TestOfWithoutValues(t *testing.T) {
	s := Of[int]()
	if !s.IsEmpty() {
		t.Errorf("expected Of() to create an empty store")
	}
}
