package steady

import (
	"iter"

	"github.com/npillmayer/steady/segment"
)

// All returns an iterator over index/value pairs of the store, in logical
// order.
//
// The length of the store must not change while iterating; doing so makes
// the iterator panic. Overwriting elements is fine.
func (s *Store[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s.walk(func(k int, p *T) bool {
			return yield(k, *p)
		})
	}
}

// Values returns an iterator over the values of the store, in logical order.
// The restrictions of All apply.
func (s *Store[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.walk(func(_ int, p *T) bool {
			return yield(*p)
		})
	}
}

// Refs returns an iterator over index/pointer pairs, allowing clients to
// modify elements in place. The restrictions of All apply.
func (s *Store[T]) Refs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		s.walk(yield)
	}
}

// Backward returns an iterator over index/value pairs of the store, starting
// with the last element. The restrictions of All apply.
func (s *Store[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := s.Len()
		for k := n - 1; k >= 0; k-- {
			if !yield(k, *s.slot(k)) {
				return
			}
			assert(s.length == n, "store length changed during iteration")
		}
	}
}

// walk visits the slots of all live elements, segment by segment.
func (s *Store[T]) walk(fn func(int, *T) bool) {
	n := s.Len()
	k := 0
	for i := 0; k < n; i++ {
		seg := s.segments[i]
		live := seg[:min(len(seg), n-k)]
		for j := range live {
			if !fn(k, &live[j]) {
				return
			}
			assert(s.length == n, "store length changed during iteration")
			k++
		}
	}
}

// SegmentInfo describes an allocated segment of a store.
type SegmentInfo struct {
	Index    int    // segment number
	Start    uint64 // logical index of the first slot
	Capacity int    // number of slots
	Used     int    // number of slots holding live elements
}

// Full reports whether every slot of the segment holds a live element.
func (si SegmentInfo) Full() bool {
	return si.Used == si.Capacity
}

// Segments returns an iterator over all allocated segments, in ascending
// order.
func (s *Store[T]) Segments() iter.Seq[SegmentInfo] {
	return func(yield func(SegmentInfo) bool) {
		if s == nil {
			return
		}
		for i := range s.nseg {
			info := SegmentInfo{
				Index:    i,
				Start:    segment.Start(i),
				Capacity: segment.Capacity(i),
			}
			if used := s.length - int(info.Start); used > 0 {
				info.Used = min(used, info.Capacity)
			}
			if !yield(info) {
				return
			}
		}
	}
}
