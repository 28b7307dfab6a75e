package steady

/*
BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"unsafe"

	"github.com/npillmayer/steady/segment"
)

// Store is a growable sequence of elements of type T. Elements live in
// segments of fixed capacity which, once allocated, are never moved or
// resized.
//
// A store created by
//
//	Store[T]{}
//
// is a valid object and behaves like an empty store without a budget.
//
//	Operation     |   Store        |  Slice
//	--------------+----------------+----------------
//	Index         |   O(1)         |   O(1)
//	Push          |   O(1)         |   O(1) amortized, copies on growth
//	Pop           |   O(1)         |   O(1)
//	Insert        |   O(n)         |   O(n)
//	Remove        |   O(n)         |   O(n)
//
// Stores are not safe for concurrent use.
type Store[T any] struct {
	// segments[i] is nil until needed, then holds exactly segment.Capacity(i)
	// slots. Allocated segments always form a prefix of length nseg.
	segments [segment.Count][]T
	nseg     int
	length   int
	maxLen   int // 0 means MaxLen
	budget   MemoryBudget
}

// New creates an empty store with validated configuration. No segment is
// allocated until the first element is added.
func New[T any](cfg Config) (*Store[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Store[T]{
		maxLen: cfg.MaxLen,
		budget: cfg.Budget,
	}, nil
}

// Len returns the number of elements in the store.
func (s *Store[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.length
}

// IsEmpty reports whether the store has no elements.
func (s *Store[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Cap returns the number of slots in all allocated segments. This is the
// number of elements the store can hold without allocating.
func (s *Store[T]) Cap() int {
	if s == nil {
		return 0
	}
	return int(segment.Start(s.nseg))
}

// MaxLen returns the configured maximum length of the store.
func (s *Store[T]) MaxLen() int {
	if s == nil || s.maxLen == 0 {
		return MaxLen
	}
	return s.maxLen
}

// Push appends v to the end of the store.
//
// Push allocates a new segment if all existing ones are full. Existing
// elements are never moved.
func (s *Store[T]) Push(v T) error {
	if err := s.ensure(s.length + 1); err != nil {
		return err
	}
	*s.slot(s.length) = v
	s.length++
	return nil
}

// Pop removes the last element and returns it. If the store is empty, Pop
// returns the zero value and false. The vacated slot is cleared, while its
// segment is retained.
func (s *Store[T]) Pop() (T, bool) {
	var zero T
	if s.IsEmpty() {
		return zero, false
	}
	s.length--
	p := s.slot(s.length)
	v := *p
	*p = zero
	return v, true
}

// Get returns the element at logical index k.
func (s *Store[T]) Get(k int) (T, error) {
	if k < 0 || k >= s.Len() {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return *s.slot(k), nil
}

// At returns a pointer to the element at logical index k.
//
// The pointer stays valid and keeps addressing the same element as long as
// no element at or below k is inserted or removed. Pushes, pops of other
// elements and growth of the store do not affect it.
func (s *Store[T]) At(k int) (*T, error) {
	if k < 0 || k >= s.Len() {
		return nil, ErrIndexOutOfBounds
	}
	return s.slot(k), nil
}

// Set overwrites the element at logical index k with v.
func (s *Store[T]) Set(k int, v T) error {
	if k < 0 || k >= s.Len() {
		return ErrIndexOutOfBounds
	}
	*s.slot(k) = v
	return nil
}

// Swap exchanges the values at logical indices i and j. The slots themselves
// stay in place.
func (s *Store[T]) Swap(i, j int) error {
	if i < 0 || j < 0 || i >= s.Len() || j >= s.Len() {
		return ErrIndexOutOfBounds
	}
	a, b := s.slot(i), s.slot(j)
	*a, *b = *b, *a
	return nil
}

// Insert puts v at logical index k, shifting the values of all elements at k
// and above one position to the right. k may be equal to Len, making Insert
// behave like Push.
//
// Insert is O(Len-k). Pointers obtained for indices ≥ k will afterwards
// address the element preceding the one they did before.
func (s *Store[T]) Insert(k int, v T) error {
	if k < 0 || k > s.Len() {
		return ErrIndexOutOfBounds
	}
	if err := s.ensure(s.length + 1); err != nil {
		return err
	}
	// walk the segments bottom up, carrying the value pushed out at the top
	// of each segment into the bottom of the next one
	carry := v
	for _, sp := range segment.Spans(uint64(k), uint64(s.length)) {
		seg := s.segments[sp.Seg]
		next := seg[sp.To]
		copy(seg[sp.From+1:sp.To+1], seg[sp.From:sp.To])
		seg[sp.From] = carry
		carry = next
	}
	s.length++
	return nil
}

// Remove deletes the element at logical index k and returns it, shifting the
// values of all elements above k one position to the left.
//
// Remove is O(Len-k). The last slot is cleared, while its segment is retained.
func (s *Store[T]) Remove(k int) (T, error) {
	var zero T
	if k < 0 || k >= s.Len() {
		return zero, ErrIndexOutOfBounds
	}
	removed := *s.slot(k)
	spans := segment.Spans(uint64(k), uint64(s.length-1))
	for i, sp := range spans {
		seg := s.segments[sp.Seg]
		copy(seg[sp.From:sp.To], seg[sp.From+1:sp.To+1])
		if i+1 < len(spans) {
			seg[sp.To] = s.segments[spans[i+1].Seg][0]
		} else {
			seg[sp.To] = zero
		}
	}
	s.length--
	return removed, nil
}

// Free drops all elements and segments of the store, handing their memory
// back to the budget. The store is empty afterwards and may be re-used.
func (s *Store[T]) Free() {
	if s == nil {
		return
	}
	var bytes int64
	for i := range s.nseg {
		bytes += segmentBytes[T](i)
		s.segments[i] = nil
	}
	if s.budget != nil {
		s.budget.Release(bytes)
	}
	tracer().Debugf("steady: freed %d segments (%d bytes)", s.nseg, bytes)
	s.nseg, s.length = 0, 0
}

// --- Internals -------------------------------------------------------------

// slot returns the address of logical index k, which has to be covered by an
// allocated segment.
func (s *Store[T]) slot(k int) *T {
	seg, off := segment.Locate(uint64(k))
	assert(seg < s.nseg, "slot: segment for index not allocated")
	return &s.segments[seg][off]
}

// ensure allocates segments until the store can hold n elements.
func (s *Store[T]) ensure(n int) error {
	if n > s.MaxLen() {
		return fmt.Errorf("%w: length %d exceeds maximum of %d", ErrCapacityExceeded, n, s.MaxLen())
	}
	for need := segment.Needed(uint64(n)); s.nseg < need; {
		if err := s.allocate(); err != nil {
			return err
		}
	}
	return nil
}

// allocate adds the next segment. If the budget refuses, the store is left
// unchanged.
func (s *Store[T]) allocate() error {
	i := s.nseg
	assert(i < segment.Count, "allocate: all segments in use")
	assert(s.segments[i] == nil, "allocate: segment already present")
	bytes := segmentBytes[T](i)
	if s.budget != nil {
		if err := s.budget.Acquire(bytes); err != nil {
			tracer().Debugf("steady: cannot allocate segment %d of %d bytes: %v", i, bytes, err)
			return fmt.Errorf("%w: segment %d: %w", ErrAllocationFailure, i, err)
		}
	}
	s.segments[i] = make([]T, segment.Capacity(i))
	s.nseg++
	tracer().Debugf("steady: allocated segment %d, capacity now %d", i, s.Cap())
	return nil
}

// segmentBytes returns the size of the memory block of segment i.
func segmentBytes[T any](i int) int64 {
	var zero T
	return int64(segment.Capacity(i)) * int64(unsafe.Sizeof(zero))
}
