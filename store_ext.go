package steady

import (
	"iter"
	"slices"

	"github.com/npillmayer/steady/segment"
)

// Of creates a store from a list of values.
//
// Of panics if the values do not fit into a store.
func Of[T any](values ...T) *Store[T] {
	s, err := Collect(slices.Values(values))
	assert(err == nil, "Of: values exceed the capacity of a store")
	return s
}

// Collect creates a store from the values of seq, in sequence order. On error,
// the partially filled store is returned together with the error.
func Collect[T any](seq iter.Seq[T]) (*Store[T], error) {
	s := &Store[T]{}
	err := s.Extend(seq)
	return s, err
}

// Extend pushes all values of seq. It stops at the first error.
func (s *Store[T]) Extend(seq iter.Seq[T]) error {
	for v := range seq {
		if err := s.Push(v); err != nil {
			return err
		}
	}
	return nil
}

// Reserve makes sure that at least additional more elements fit into the
// store without further allocation.
func (s *Store[T]) Reserve(additional int) error {
	if additional < 0 {
		return ErrIllegalArguments
	}
	return s.ensure(s.length + additional)
}

// Truncate keeps the first n elements and clears the remaining ones. If n is
// not smaller than Len, Truncate does nothing. Capacity is retained.
func (s *Store[T]) Truncate(n int) {
	n = max(n, 0)
	if n >= s.Len() {
		return
	}
	for _, sp := range segment.Spans(uint64(n), uint64(s.length-1)) {
		clear(s.segments[sp.Seg][sp.From : sp.To+1])
	}
	s.length = n
}

// Clear removes all elements. Capacity is retained.
func (s *Store[T]) Clear() {
	s.Truncate(0)
}

// SwapRemove deletes the element at logical index k and returns it. The slot
// is filled with the last element of the store, making SwapRemove O(1) at the
// cost of not preserving order.
func (s *Store[T]) SwapRemove(k int) (T, error) {
	var zero T
	if k < 0 || k >= s.Len() {
		return zero, ErrIndexOutOfBounds
	}
	p := s.slot(k)
	removed := *p
	last, _ := s.Pop()
	if k < s.length {
		*p = last
	}
	return removed, nil
}

// Resize changes the length of the store to n. If n is less than Len, the
// store is truncated. Otherwise it is extended by copies of v.
func (s *Store[T]) Resize(n int, v T) error {
	return s.ResizeFunc(n, func() T { return v })
}

// ResizeFunc changes the length of the store to n. If n is less than Len, the
// store is truncated. Otherwise new elements are produced by calling f.
func (s *Store[T]) ResizeFunc(n int, f func() T) error {
	if n < 0 || f == nil {
		return ErrIllegalArguments
	}
	if n <= s.length {
		s.Truncate(n)
		return nil
	}
	if err := s.ensure(n); err != nil {
		return err
	}
	for k := s.length; k < n; k++ {
		*s.slot(k) = f()
	}
	s.length = n
	return nil
}

// Clone returns a copy of the store, sharing its configuration. The copy
// allocates only as many segments as are needed to hold the elements, so its
// capacity may be smaller than the one of s.
func (s *Store[T]) Clone() (*Store[T], error) {
	c := &Store[T]{maxLen: s.maxLen, budget: s.budget}
	if s.IsEmpty() {
		return c, nil
	}
	if err := c.ensure(s.length); err != nil {
		c.Free()
		return nil, err
	}
	for _, sp := range segment.Spans(0, uint64(s.length-1)) {
		copy(c.segments[sp.Seg][:sp.To+1], s.segments[sp.Seg][:sp.To+1])
	}
	c.length = s.length
	return c, nil
}
